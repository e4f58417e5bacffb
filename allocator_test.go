package nativelist

import (
	"sync"
	"testing"
)

func TestMmapAllocator(t *testing.T) {
	a := NewMmapAllocator()
	defer a.Close()

	b, err := a.Calloc(64)
	if err != nil {
		t.Fatalf("Calloc(64) error = %v", err)
	}
	if len(b) != 64 {
		t.Fatalf("Calloc(64) length = %d, want 64", len(b))
	}
	for i := range b {
		if b[i] != 0 {
			t.Fatalf("Calloc byte %d = %d, want 0", i, b[i])
		}
		b[i] = byte(i)
	}

	b, err = a.Realloc(b, 256)
	if err != nil {
		t.Fatalf("Realloc(256) error = %v", err)
	}
	if len(b) < 256 {
		t.Fatalf("Realloc(256) length = %d, want >= 256", len(b))
	}
	for i := 0; i < 64; i++ {
		if b[i] != byte(i) {
			t.Fatalf("Realloc lost byte %d: got %d", i, b[i])
		}
	}

	if err := a.Free(b); err != nil {
		t.Errorf("Free error = %v", err)
	}
}

func TestMmapAllocatorConcurrent(t *testing.T) {
	a := NewMmapAllocator()
	defer a.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b, err := a.Calloc(128)
				if err != nil {
					t.Errorf("Calloc error = %v", err)
					return
				}
				if err := a.Free(b); err != nil {
					t.Errorf("Free error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator

	b, _ := a.Calloc(4)
	copy(b, []byte{1, 2, 3, 4})

	b, _ = a.Realloc(b, 8)
	want := []byte{1, 2, 3, 4, 0, 0, 0, 0}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, b[i], want[i])
		}
	}
	if err := a.Free(b); err != nil {
		t.Errorf("Free error = %v", err)
	}
}

func TestSetDefaultAllocator(t *testing.T) {
	orig := DefaultAllocator()
	defer SetDefaultAllocator(orig)

	c := &countingAllocator{}
	SetDefaultAllocator(c)

	l := NewList[int32](2)
	l.Add(1)
	l.Add(2)
	l.Add(3)
	l.Dispose()

	if c.callocs != 1 || c.reallocs != 1 || c.frees != 1 {
		t.Errorf("calls = %d/%d/%d, want 1/1/1", c.callocs, c.reallocs, c.frees)
	}

	SetDefaultAllocator(nil)
	if DefaultAllocator() == nil {
		t.Error("SetDefaultAllocator(nil) should restore a platform allocator")
	}
}

func TestWithAllocator(t *testing.T) {
	c := &countingAllocator{}
	l := NewList[int64](0, WithAllocator(c))
	for i := 0; i < 5; i++ {
		l.Add(int64(i))
	}
	l.Dispose()

	// 0 -> 4 allocates, 4 -> 8 reallocates
	if c.callocs != 1 || c.reallocs != 1 || c.frees != 1 {
		t.Errorf("calls = %d/%d/%d, want 1/1/1", c.callocs, c.reallocs, c.frees)
	}
}
