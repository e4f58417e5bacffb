package nativelist

import (
	"fmt"
	"iter"
	"reflect"
)

// ErasedList is a growable list whose element type is recorded at runtime
// as a TypeInfo instead of a type parameter. Element access goes through
// the generic functions TryAdd, TryGet, Get, TrySet, TryRemove, Contains,
// IndexOf, ErasedCursor and ErasedPinned, which compare the requested type
// against the recorded one.
//
// The zero ErasedList is Void: it has no type, so every element operation
// on it fails. A list built with a type but no capacity is Empty: it has a
// type and allocates on the first TryAdd. Not goroutine-safe.
type ErasedList struct {
	buf   Buffer
	typ   TypeInfo
	count int
}

// NewErasedList creates a list of capacity zero-filled slots for elements
// described by ti. A capacity <= 0 returns an Empty list of that type.
// Panics if ti is Void.
func NewErasedList(capacity int, ti TypeInfo, opts ...Option) *ErasedList {
	if ti.IsVoid() {
		panic(&Error{Op: "NewErasedList", Kind: KindNotInitialized, Detail: "void element type"})
	}
	o := buildOptions(opts)
	return &ErasedList{buf: AllocateBuffer(o.alloc, capacity, ti.size), typ: ti}
}

// ErasedFrom creates a list of T holding a copy of items. An empty items
// yields an Empty list of T.
func ErasedFrom[T comparable](items []T, opts ...Option) *ErasedList {
	l := NewErasedList(len(items), TypeFor[T](), opts...)
	copy(slotsOf[T](&l.buf), items)
	l.count = len(items)
	return l
}

// TypeHandle returns the recorded element type; Void for the zero list.
func (l *ErasedList) TypeHandle() TypeInfo { return l.typ }

// IsVoid reports whether the list has never been given an element type.
func (l *ErasedList) IsVoid() bool { return l.typ.IsVoid() }

func (l *ErasedList) Count() int    { return l.count }
func (l *ErasedList) Capacity() int { return l.buf.capacity }
func (l *ErasedList) IsEmpty() bool { return l.count == 0 }
func (l *ErasedList) IsFull() bool  { return l.buf.capacity > 0 && l.count == l.buf.capacity }

// TryRemoveAt removes the element at index, checked against Count, by moving
// the trailing bytes one slot left. It needs no type since it only moves
// bytes. Fails on a Void list.
func (l *ErasedList) TryRemoveAt(index int) bool {
	if l.typ.IsVoid() || uint(index) >= uint(l.count) {
		return false
	}
	size := l.buf.elemSize
	raw := l.buf.bytes()
	start := uintptr(index) * size
	end := uintptr(l.count) * size
	copy(raw[start:end-size], raw[start+size:end])
	l.count--
	clear(l.buf.slot(l.count))
	return true
}

// Clear drops every element. Capacity, buffer and type are kept.
func (l *ErasedList) Clear() {
	l.count = 0
}

// Dispose frees the buffer and resets l to Void, dropping its type.
// Disposing a Void list is a no-op.
func (l *ErasedList) Dispose() {
	if l.typ.IsVoid() && !l.buf.IsAllocated() {
		return
	}
	l.buf.Free()
	l.buf = Buffer{}
	l.typ = TypeInfo{}
	l.count = 0
}

// Equal reports whether l and other share the same buffer, type, capacity
// and count. A Void list never equals an Empty list of any type.
func (l *ErasedList) Equal(other *ErasedList) bool {
	if other == nil {
		return false
	}
	return l.buf.Addr() == other.buf.Addr() &&
		l.typ.typ == other.typ.typ &&
		l.buf.capacity == other.buf.capacity &&
		l.count == other.count
}

// Hash returns an identity hash consistent with Equal.
func (l *ErasedList) Hash() uint64 {
	return identityHash("ErasedList", l.typ.Name(), l.buf.Addr(), l.buf.capacity, l.count)
}

// String is intended for logs and test output only.
func (l *ErasedList) String() string {
	return fmt.Sprintf("ErasedList{Count: %d, Capacity: %d, Type: %s}", l.count, l.buf.capacity, l.typ.Name())
}

// accepts reports whether T may be used with l. Checked access requires T
// to be the recorded type; unchecked access only requires the same size
// and a pointer-free T.
func accepts[T any](l *ErasedList, checked bool) bool {
	if l.typ.IsVoid() {
		return false
	}
	if checked {
		return is[T](l.typ)
	}
	return sizeOf[T]() == l.typ.size && isUnmanaged(reflect.TypeFor[T]())
}

// TryAdd appends item to l. It returns false, leaving l unchanged, if T is
// not the element type of l.
func TryAdd[T any](l *ErasedList, item T) bool {
	return tryAdd(l, item, true)
}

// TryAddUnchecked appends the raw bytes of item to l without comparing
// types; only the element size must match. Unsafe: storing a T into a list
// of another type reinterprets its memory.
func TryAddUnchecked[T any](l *ErasedList, item T) bool {
	return tryAdd(l, item, false)
}

func tryAdd[T any](l *ErasedList, item T, checked bool) bool {
	if !accepts[T](l, checked) {
		return false
	}
	if l.count == l.buf.capacity {
		l.buf.Grow()
	}
	slotsOf[T](&l.buf)[l.count] = item
	l.count++
	return true
}

// TryGet returns the element in slot index, checked against the capacity
// rather than Count: reserved slots past Count are readable and hold zero
// until written. TryRemoveAt is the one index operation bounded by Count.
// It returns false on a type mismatch or a bad index.
func TryGet[T any](l *ErasedList, index int) (T, bool) {
	return tryGet[T](l, index, true)
}

// TryGetUnchecked reads slot index as a T without comparing types. Unsafe.
func TryGetUnchecked[T any](l *ErasedList, index int) (T, bool) {
	return tryGet[T](l, index, false)
}

func tryGet[T any](l *ErasedList, index int, checked bool) (T, bool) {
	if !accepts[T](l, checked) || uint(index) >= uint(l.buf.capacity) {
		var zero T
		return zero, false
	}
	return slotsOf[T](&l.buf)[index], true
}

// Get returns the element in slot index, checked against the capacity.
// Panics with ErrTypeMismatch if T is not the element type of l, and with
// ErrIndexOutOfRange on a bad index.
func Get[T any](l *ErasedList, index int) T {
	if !accepts[T](l, true) {
		panic(typeMismatch("Get", l.typ.Name(), reflect.TypeFor[T]().String()))
	}
	if uint(index) >= uint(l.buf.capacity) {
		panic(indexOutOfRange("Get", index, l.buf.capacity))
	}
	return slotsOf[T](&l.buf)[index]
}

// TrySet stores item in slot index, checked against the capacity. It does
// not change Count.
func TrySet[T any](l *ErasedList, index int, item T) bool {
	if !accepts[T](l, true) || uint(index) >= uint(l.buf.capacity) {
		return false
	}
	slotsOf[T](&l.buf)[index] = item
	return true
}

// TryRemove removes the first element equal to item.
func TryRemove[T comparable](l *ErasedList, item T) bool {
	return tryRemove(l, item, true)
}

// TryRemoveUnchecked compares item against the raw slots reinterpreted as T. Unsafe.
func TryRemoveUnchecked[T comparable](l *ErasedList, item T) bool {
	return tryRemove(l, item, false)
}

func tryRemove[T comparable](l *ErasedList, item T, checked bool) bool {
	i := indexOfErased(l, item, checked)
	if i < 0 {
		return false
	}
	return l.TryRemoveAt(i)
}

// Contains reports whether item is in l; false on a type mismatch.
func Contains[T comparable](l *ErasedList, item T) bool {
	return l.count != 0 && indexOfErased(l, item, true) != -1
}

// ContainsUnchecked is Contains without the type comparison. Unsafe.
func ContainsUnchecked[T comparable](l *ErasedList, item T) bool {
	return l.count != 0 && indexOfErased(l, item, false) != -1
}

// IndexOf returns the index of the first element equal to item, or -1,
// including on a type mismatch.
func IndexOf[T comparable](l *ErasedList, item T) int {
	return indexOfErased(l, item, true)
}

// IndexOfUnchecked is IndexOf without the type comparison. Unsafe.
func IndexOfUnchecked[T comparable](l *ErasedList, item T) int {
	return indexOfErased(l, item, false)
}

func indexOfErased[T comparable](l *ErasedList, item T, checked bool) int {
	if !accepts[T](l, checked) || l.count <= 0 {
		return -1
	}
	return indexOf(slotsOf[T](&l.buf)[:l.count], item)
}

// ErasedCursor returns a cursor over the live elements of l as T.
// Unlike the Try functions it panics with ErrTypeMismatch when T is not the
// element type: a cursor of the wrong type would reinterpret every slot.
func ErasedCursor[T any](l *ErasedList) Cursor[T] {
	return newCursor(erasedLive[T](l, "Cursor", true))
}

// ErasedCursorUnchecked returns a cursor without comparing types. Unsafe.
func ErasedCursorUnchecked[T any](l *ErasedList) Cursor[T] {
	return newCursor(erasedLive[T](l, "Cursor", false))
}

// ErasedValues returns an iterator over the live elements of l as T.
// Panics like ErasedCursor on a type mismatch.
func ErasedValues[T any](l *ErasedList) iter.Seq[T] {
	erasedLive[T](l, "Values", true)
	return values(func() []T { return erasedLive[T](l, "Values", true) })
}

// ErasedPinned exposes the address of the first live element of l as T.
// Panics with ErrTypeMismatch when T is not the element type.
func ErasedPinned[T any](l *ErasedList) Pinned[T] {
	return newPinned(erasedLive[T](l, "Pinned", true))
}

// ErasedPinnedUnchecked is ErasedPinned without the type comparison. Unsafe.
func ErasedPinnedUnchecked[T any](l *ErasedList) Pinned[T] {
	return newPinned(erasedLive[T](l, "Pinned", false))
}

func erasedLive[T any](l *ErasedList, op string, checked bool) []T {
	if !accepts[T](l, checked) {
		panic(typeMismatch(op, l.typ.Name(), reflect.TypeFor[T]().String()))
	}
	if l.count == 0 {
		return nil
	}
	return slotsOf[T](&l.buf)[:l.count]
}
