package nativelist

import (
	"iter"
	"runtime"
)

// Cursor walks the live elements of a list or view once, front to back.
// It captures the element range when created; modifying the source while
// a cursor is in use gives undefined results.
//
//	c := l.Cursor()
//	for c.Next() {
//		use(c.Current())
//	}
type Cursor[T any] struct {
	items []T
	index int
}

func newCursor[T any](items []T) Cursor[T] {
	return Cursor[T]{items: items, index: -1}
}

// Next advances to the next element and reports whether there is one.
// Once it returns false the cursor stays exhausted.
func (c *Cursor[T]) Next() bool {
	i := c.index + 1
	if i >= len(c.items) {
		c.index = len(c.items)
		return false
	}
	c.index = i
	return true
}

// Current returns the element the cursor is on.
// Panics if Next has not returned true.
func (c *Cursor[T]) Current() T {
	if c.index < 0 || c.index >= len(c.items) {
		panic(indexOutOfRange("Current", c.index, len(c.items)))
	}
	return c.items[c.index]
}

// Index returns the position of the current element, -1 before the first Next.
func (c *Cursor[T]) Index() int { return c.index }

// Len returns the number of elements the cursor covers.
func (c *Cursor[T]) Len() int { return len(c.items) }

func values[T any](live func() []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := newCursor(live())
		for c.Next() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Pinned exposes a stable address of the first element of a buffer, for
// passing to foreign code. For an empty source the address is nil.
type Pinned[T any] struct {
	items []T
}

func newPinned[T any](items []T) Pinned[T] {
	return Pinned[T]{items: items}
}

// Pointer returns the address of the first element, or nil when empty.
// Callers must check for nil before dereferencing.
func (p Pinned[T]) Pointer() *T {
	if len(p.items) == 0 {
		return nil
	}
	return &p.items[0]
}

// Len returns the number of elements reachable from Pointer.
func (p Pinned[T]) Len() int { return len(p.items) }

// PinTo pins the first element with pinner and returns its address.
// Buffers outside the Go heap never move, in which case pinning is a no-op.
func (p Pinned[T]) PinTo(pinner *runtime.Pinner) *T {
	ptr := p.Pointer()
	if ptr != nil {
		pinner.Pin(ptr)
	}
	return ptr
}
