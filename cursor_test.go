package nativelist

import (
	"runtime"
	"testing"
)

func TestCursorEmpty(t *testing.T) {
	c := newCursor[int](nil)
	if c.Index() != -1 {
		t.Errorf("Index() = %d, want -1", c.Index())
	}
	if c.Next() {
		t.Error("Next() on empty cursor = true")
	}
	if c.Next() {
		t.Error("exhausted cursor advanced")
	}
}

func TestCursorWalk(t *testing.T) {
	items := []int{5, 7, 9}
	c := newCursor(items)

	for i, want := range items {
		if !c.Next() {
			t.Fatalf("Next() = false at %d", i)
		}
		if c.Index() != i {
			t.Errorf("Index() = %d, want %d", c.Index(), i)
		}
		if got := c.Current(); got != want {
			t.Errorf("Current() = %d, want %d", got, want)
		}
	}
	if c.Next() {
		t.Error("Next() past the end = true")
	}
	if c.Next() {
		t.Error("Next() after exhaustion = true")
	}
	if c.Index() != len(items) {
		t.Errorf("exhausted Index() = %d, want %d", c.Index(), len(items))
	}
}

func TestCursorCurrentPanics(t *testing.T) {
	testPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	testPanic("before Next", func() {
		c := newCursor([]int{1})
		c.Current()
	})
	testPanic("after end", func() {
		c := newCursor([]int{1})
		c.Next()
		c.Next()
		c.Current()
	})
}

func TestCursorCapturesRange(t *testing.T) {
	l := NewList[int](8)
	defer l.Dispose()
	l.Add(1)
	l.Add(2)

	c := l.Cursor()
	l.Add(3)

	n := 0
	for c.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("cursor visited %d elements, want 2", n)
	}
}

func TestValuesStopsEarly(t *testing.T) {
	l := ListFrom([]int{1, 2, 3, 4})
	defer l.Dispose()

	var got []int
	for v := range l.Values() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if len(got) != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestValuesSeesLaterAdds(t *testing.T) {
	l := NewList[int](0)
	defer l.Dispose()

	seq := l.Values()
	l.Add(1)
	l.Add(2)

	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Errorf("iterator visited %d elements, want 2", n)
	}
}

func TestPinnedEmpty(t *testing.T) {
	var l List[int]
	p := l.Pinned()
	if p.Pointer() != nil {
		t.Error("empty Pointer() should be nil")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	if p.PinTo(&pinner) != nil {
		t.Error("PinTo on empty view should return nil")
	}
}

func TestPinnedPinTo(t *testing.T) {
	for _, a := range []Allocator{NewMmapAllocator(), HeapAllocator{}} {
		l := NewList[uint32](4, WithAllocator(a))
		l.Add(0xCAFE)

		var pinner runtime.Pinner
		ptr := l.Pinned().PinTo(&pinner)
		if ptr == nil || *ptr != 0xCAFE {
			t.Errorf("%T: PinTo = %v, want pointer to 0xCAFE", a, ptr)
		}
		pinner.Unpin()
		l.Dispose()
	}
}
