package nativelist

import (
	"fmt"
	"iter"
	"reflect"
)

// ReadOnly is an immutable, exactly-sized snapshot of a List, produced by
// List.ToReadOnly. It owns its buffer and must be disposed.
type ReadOnly[T comparable] struct {
	buf   Buffer
	count int
}

// Count returns the number of elements.
func (r *ReadOnly[T]) Count() int { return r.count }

// IsEmpty reports whether the view holds no elements.
func (r *ReadOnly[T]) IsEmpty() bool { return r.count == 0 }

// Get returns the element at index. Panics with ErrIndexOutOfRange if index
// is outside [0, Count).
func (r *ReadOnly[T]) Get(index int) T {
	if uint(index) >= uint(r.count) {
		panic(indexOutOfRange("ReadOnly.Get", index, r.count))
	}
	return slotsOf[T](&r.buf)[index]
}

// TryGet is Get without the panic.
func (r *ReadOnly[T]) TryGet(index int) (T, bool) {
	if uint(index) >= uint(r.count) {
		var zero T
		return zero, false
	}
	return slotsOf[T](&r.buf)[index], true
}

func (r *ReadOnly[T]) Contains(item T) bool {
	return r.count != 0 && r.IndexOf(item) != -1
}

func (r *ReadOnly[T]) IndexOf(item T) int {
	return indexOf(r.live(), item)
}

func (r *ReadOnly[T]) Cursor() Cursor[T] {
	return newCursor(r.live())
}

func (r *ReadOnly[T]) Values() iter.Seq[T] {
	return values(r.live)
}

// AppendTo appends the elements to dst and returns the extended slice.
func (r *ReadOnly[T]) AppendTo(dst []T) []T {
	return append(dst, r.live()...)
}

// Dispose frees the buffer exactly once; later calls are no-ops.
func (r *ReadOnly[T]) Dispose() {
	r.buf.Free()
	r.count = 0
}

// Equal reports whether r and other share the same buffer and count.
func (r *ReadOnly[T]) Equal(other *ReadOnly[T]) bool {
	if other == nil {
		return false
	}
	return r.buf.Addr() == other.buf.Addr() && r.count == other.count
}

func (r *ReadOnly[T]) Hash() uint64 {
	return identityHash("ReadOnly", reflect.TypeFor[T]().String(), r.buf.Addr(), r.count, r.count)
}

func (r *ReadOnly[T]) String() string {
	return fmt.Sprintf("ReadOnly[%s]{Count: %d}", reflect.TypeFor[T](), r.count)
}

func (r *ReadOnly[T]) live() []T {
	if r.count == 0 {
		return nil
	}
	return slotsOf[T](&r.buf)[:r.count]
}
