package nativelist_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/pavanmanishd/nativelist"
)

// TestEdgeCases covers edge cases of the public API
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		for _, capacity := range []int{0, -1, -1000} {
			l := nativelist.NewList[int](capacity)
			if l.Capacity() != 0 || l.Count() != 0 {
				t.Errorf("NewList(%d): got %s, want empty", capacity, l)
			}
			if l.Pinned().Pointer() != nil {
				t.Errorf("NewList(%d): empty list exposes an address", capacity)
			}
			l.Dispose()
		}
	})

	t.Run("LargeLists", func(t *testing.T) {
		l := nativelist.NewList[int64](0)
		defer l.Dispose()

		const n = 1 << 20
		for i := 0; i < n; i++ {
			l.Add(int64(i))
		}
		if l.Count() != n || l.Capacity() != n {
			t.Errorf("after %d adds: %s", n, l)
		}
		if l.Get(n-1) != n-1 {
			t.Errorf("last element = %d, want %d", l.Get(n-1), n-1)
		}
	})

	t.Run("Alignment", func(t *testing.T) {
		type aligned struct {
			a int8
			b int64
		}
		l := nativelist.NewList[aligned](1)
		defer l.Dispose()
		l.Add(aligned{a: 1, b: 2})

		addr := uintptr(unsafe.Pointer(l.Pinned().Pointer()))
		if addr%unsafe.Alignof(aligned{}) != 0 {
			t.Errorf("element not properly aligned: %x", addr)
		}
	})

	t.Run("UseAfterDispose", func(t *testing.T) {
		l := nativelist.ListFrom([]int{1, 2, 3})
		l.Dispose()

		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic after Dispose()", name)
				}
			}()
			fn()
		}

		testPanic("Get", func() { l.Get(0) })
		testPanic("Set", func() { l.Set(0, 1) })

		// a disposed list is empty and usable again
		if l.Contains(1) || l.IndexOf(1) != -1 || l.TryRemoveAt(0) {
			t.Error("disposed list still reports elements")
		}
		l.Add(4)
		if l.Count() != 1 {
			t.Errorf("Count after reuse = %d, want 1", l.Count())
		}
		l.Dispose()
	})

	t.Run("MultipleDisposes", func(t *testing.T) {
		l := nativelist.NewList[int](8)
		r := nativelist.ListFrom([]int{1}).ToReadOnly()
		e := nativelist.NewErasedList(8, nativelist.TypeFor[int]())
		for i := 0; i < 3; i++ {
			l.Dispose()
			r.Dispose()
			e.Dispose()
		}
	})

	t.Run("PointerTypesRejected", func(t *testing.T) {
		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic for a pointer-holding type", name)
				}
			}()
			fn()
		}

		type withPtr struct{ P *int }
		testPanic("string", func() { nativelist.NewList[string](1) })
		testPanic("*int", func() { nativelist.NewList[*int](1) })
		testPanic("struct", func() { nativelist.NewList[withPtr](1) })
		testPanic("erased", func() { nativelist.TypeFor[[]byte]() })
	})
}

// TestMemoryCorruption checks that neighbouring slots do not overlap
func TestMemoryCorruption(t *testing.T) {
	l := nativelist.NewList[[64]byte](0)
	defer l.Dispose()

	for i := 0; i < 100; i++ {
		var v [64]byte
		for j := range v {
			v[j] = byte(i)
		}
		l.Add(v)
	}

	c := l.Cursor()
	for c.Next() {
		for j, b := range c.Current() {
			if b != byte(c.Index()) {
				t.Fatalf("Memory corruption detected at [%d][%d]: got %d, want %d", c.Index(), j, b, byte(c.Index()))
			}
		}
	}
}

// TestTypeSpecificLists tests lists of various pointer-free types
func TestTypeSpecificLists(t *testing.T) {
	t.Run("BasicTypes", func(t *testing.T) {
		lb := nativelist.NewList[bool](1)
		li := nativelist.NewList[int16](1)
		lu := nativelist.NewList[uint64](1)
		lf := nativelist.NewList[float64](1)
		lc := nativelist.NewList[complex128](1)
		defer lb.Dispose()
		defer li.Dispose()
		defer lu.Dispose()
		defer lf.Dispose()
		defer lc.Dispose()

		// reserved slots read as zero
		if lb.Get(0) || li.Get(0) != 0 || lu.Get(0) != 0 || lf.Get(0) != 0 || lc.Get(0) != 0 {
			t.Error("Basic types not properly zero-initialized")
		}

		lb.Add(true)
		lf.Add(3.14159)
		lc.Add(1 + 2i)
		if !lb.Get(0) || lf.Get(0) != 3.14159 || lc.Get(0) != 1+2i {
			t.Error("Could not store basic types")
		}
	})

	t.Run("NestedStructs", func(t *testing.T) {
		type vec struct{ X, Y, Z float32 }
		type particle struct {
			Pos, Vel vec
			ID       uint32
			Alive    bool
			Tag      [4]byte
		}

		l := nativelist.NewList[particle](0)
		defer l.Dispose()

		for i := 0; i < 10; i++ {
			l.Add(particle{Pos: vec{X: float32(i)}, ID: uint32(i), Alive: i%2 == 0})
		}
		if i := l.IndexOf(particle{Pos: vec{X: 3}, ID: 3}); i != 3 {
			t.Errorf("IndexOf(particle 3) = %d, want 3", i)
		}
	})
}

// balanceAllocator tracks blocks handed out and not yet freed.
type balanceAllocator struct {
	nativelist.HeapAllocator
	live, total int
}

func (b *balanceAllocator) Calloc(size int) ([]byte, error) {
	b.live++
	b.total++
	return b.HeapAllocator.Calloc(size)
}

func (b *balanceAllocator) Free(p []byte) error {
	b.live--
	return b.HeapAllocator.Free(p)
}

// TestDisposeReleasesMemory checks that every buffer obtained is freed exactly once
func TestDisposeReleasesMemory(t *testing.T) {
	a := &balanceAllocator{}
	opt := nativelist.WithAllocator(a)

	for i := 0; i < 100; i++ {
		l := nativelist.NewList[int64](0, opt)
		for j := 0; j < 1000; j++ {
			l.Add(int64(j))
		}
		l.TryRemoveAt(0)
		l.Dispose()
		l.Dispose()

		r := nativelist.ListFrom([]int32{1, 2, 3}, opt).ToReadOnly()
		r.Dispose()
		r.Dispose()

		e := nativelist.NewErasedList(0, nativelist.TypeFor[uint16](), opt)
		for j := 0; j < 100; j++ {
			nativelist.TryAdd(e, uint16(j))
		}
		e.Dispose()
		e.Dispose()
	}

	if a.total == 0 {
		t.Fatal("allocator was never used")
	}
	if a.live != 0 {
		t.Errorf("Potential memory leak: %d of %d blocks still live", a.live, a.total)
	}
}

// TestConcurrencyStress performs stress testing on SafeList
func TestConcurrencyStress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	s := nativelist.NewSafeList[int64](0)
	defer s.Dispose()

	const (
		numWorkers      = 20
		numOpsPerWorker = 1000
	)

	var wg sync.WaitGroup
	errors := make(chan error, numWorkers)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for j := 0; j < numOpsPerWorker; j++ {
				v := int64(workerID*numOpsPerWorker + j)
				switch j % 5 {
				case 0, 1:
					s.Add(v)
				case 2:
					if !s.Contains(v - 1) {
						errors <- fmt.Errorf("worker %d: lost element %d", workerID, v-1)
						return
					}
				case 3:
					s.TryRemove(v - 2)
				case 4:
					_ = s.Metrics()
				}

				if j%50 == 0 {
					runtime.Gosched()
				}
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Error(err)
	}
}

// TestSafeListDeadlock tests for potential deadlocks in SafeList
func TestSafeListDeadlock(t *testing.T) {
	s := nativelist.NewSafeList[int32](0)
	defer s.Dispose()

	done := make(chan bool, 2)
	timeout := time.After(5 * time.Second)

	go func() {
		for i := 0; i < 1000; i++ {
			s.Add(int32(i))
			if i%100 == 0 {
				runtime.Gosched()
			}
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 1000; i++ {
			_ = s.Metrics()
			_ = s.Snapshot()
			if i%100 == 0 {
				runtime.Gosched()
			}
		}
		done <- true
	}()

	completed := 0
	for completed < 2 {
		select {
		case <-done:
			completed++
		case <-timeout:
			t.Fatal("Test timed out - possible deadlock")
		}
	}
}
