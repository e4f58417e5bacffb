package nativelist

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// List is a growable list of pointer-free values stored in a buffer outside
// the Go heap. The zero List is ready to use: it holds no allocation until
// the first Add. Not goroutine-safe; use SafeList for concurrent access.
//
// A List must be disposed with Dispose or transferred with ToReadOnly,
// otherwise its buffer is leaked.
type List[T comparable] struct {
	buf   Buffer
	count int
}

// NewList creates a list with room for capacity elements, zero-filled.
// A capacity <= 0 returns an empty list without an allocation.
func NewList[T comparable](capacity int, opts ...Option) *List[T] {
	o := buildOptions(opts)
	mustBeUnmanaged("NewList", reflect.TypeFor[T]())
	return &List[T]{buf: AllocateBuffer(o.alloc, capacity, sizeOf[T]())}
}

// ListFrom creates a list holding a copy of items, with capacity len(items).
// An empty items returns an empty list without an allocation.
func ListFrom[T comparable](items []T, opts ...Option) *List[T] {
	l := NewList[T](len(items), opts...)
	copy(slotsOf[T](&l.buf), items)
	l.count = len(items)
	return l
}

// Count returns the number of live elements.
func (l *List[T]) Count() int { return l.count }

// Capacity returns the number of allocated slots.
func (l *List[T]) Capacity() int { return l.buf.capacity }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// IsFull reports whether the next Add will grow the buffer.
func (l *List[T]) IsFull() bool { return l.buf.capacity > 0 && l.count == l.buf.capacity }

// Get returns the element in slot index. The index is checked against the
// capacity, not the count, so reserved slots past Count can be read; they
// hold zero until written. Panics with ErrIndexOutOfRange otherwise.
func (l *List[T]) Get(index int) T {
	if uint(index) >= uint(l.buf.capacity) {
		panic(indexOutOfRange("Get", index, l.buf.capacity))
	}
	return slotsOf[T](&l.buf)[index]
}

// Set stores item in slot index, checked against the capacity like Get.
// It does not change Count.
func (l *List[T]) Set(index int, item T) {
	if uint(index) >= uint(l.buf.capacity) {
		panic(indexOutOfRange("Set", index, l.buf.capacity))
	}
	slotsOf[T](&l.buf)[index] = item
}

// TryGet is Get without the panic.
func (l *List[T]) TryGet(index int) (T, bool) {
	if uint(index) >= uint(l.buf.capacity) {
		var zero T
		return zero, false
	}
	return slotsOf[T](&l.buf)[index], true
}

// Add appends item, growing the buffer when it is full.
func (l *List[T]) Add(item T) {
	if l.count == l.buf.capacity {
		l.grow()
	}
	slotsOf[T](&l.buf)[l.count] = item
	l.count++
}

// grow is kept out of Add so the fast path stays small.
func (l *List[T]) grow() {
	if !l.buf.IsAllocated() {
		// a zero List has not seen its element type yet
		mustBeUnmanaged("Add", reflect.TypeFor[T]())
		l.buf.elemSize = sizeOf[T]()
	}
	l.buf.Grow()
}

// TryRemove removes the first element equal to item, shifting the trailing
// elements left. It reports whether an element was removed.
func (l *List[T]) TryRemove(item T) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	return l.TryRemoveAt(i)
}

// TryRemoveAt removes the element at index, checked against Count, shifting
// the trailing elements left. The vacated slot is zeroed.
func (l *List[T]) TryRemoveAt(index int) bool {
	if uint(index) >= uint(l.count) {
		return false
	}
	s := slotsOf[T](&l.buf)
	copy(s[index:l.count-1], s[index+1:l.count])
	l.count--
	var zero T
	s[l.count] = zero
	return true
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) bool {
	return l.count != 0 && l.IndexOf(item) != -1
}

// IndexOf returns the index of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	return indexOf(l.live(), item)
}

// Clear drops every element. Capacity and buffer are kept.
func (l *List[T]) Clear() {
	l.count = 0
}

// AppendTo appends the live elements to dst and returns the extended slice.
func (l *List[T]) AppendTo(dst []T) []T {
	return append(dst, l.live()...)
}

// ToReadOnly moves the live elements into a new exactly-sized ReadOnly and
// disposes l. Further indexed access on l panics.
func (l *List[T]) ToReadOnly() *ReadOnly[T] {
	r := &ReadOnly[T]{}
	if l.count > 0 {
		r.buf = AllocateBuffer(l.buf.alloc, l.count, l.buf.elemSize)
		copy(slotsOf[T](&r.buf), l.live())
		r.count = l.count
	}
	l.Dispose()
	return r
}

// Cursor returns a forward-only cursor over the live elements. The list
// must not be modified while the cursor is in use.
func (l *List[T]) Cursor() Cursor[T] {
	return newCursor(l.live())
}

// Values returns an iterator over the live elements, for use with range.
func (l *List[T]) Values() iter.Seq[T] {
	return values(l.live)
}

// Pinned exposes the address of the first live element for interop.
func (l *List[T]) Pinned() Pinned[T] {
	return newPinned(l.live())
}

// Dispose frees the buffer and resets l to the empty state. Disposing an
// empty list is a no-op.
func (l *List[T]) Dispose() {
	l.buf.Free()
	l.count = 0
}

// Equal reports whether l and other share the same buffer, capacity and
// count. Two lists with equal contents in distinct buffers are not Equal.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil {
		return false
	}
	return l.buf.Addr() == other.buf.Addr() &&
		l.buf.capacity == other.buf.capacity &&
		l.count == other.count
}

// Hash returns an identity hash consistent with Equal.
func (l *List[T]) Hash() uint64 {
	return identityHash("List", reflect.TypeFor[T]().String(), l.buf.Addr(), l.buf.capacity, l.count)
}

// String is intended for logs and test output only.
func (l *List[T]) String() string {
	return fmt.Sprintf("List[%s]{Count: %d, Capacity: %d}", reflect.TypeFor[T](), l.count, l.buf.capacity)
}

func (l *List[T]) live() []T {
	if l.count == 0 {
		return nil
	}
	return slotsOf[T](&l.buf)[:l.count]
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func indexOf[T comparable](items []T, item T) int {
	for i := range items {
		if items[i] == item {
			return i
		}
	}
	return -1
}
