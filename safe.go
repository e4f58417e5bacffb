package nativelist

import (
	"sync"
)

// SafeList is a mutex-protected wrapper around List for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Cursors and pinned views are not offered: they would escape the lock.
type SafeList[T comparable] struct {
	mu sync.Mutex
	l  *List[T]
}

// NewSafeList creates a thread-safe list with the specified capacity.
func NewSafeList[T comparable](capacity int, opts ...Option) *SafeList[T] {
	return &SafeList[T]{l: NewList[T](capacity, opts...)}
}

// Add thread-safely appends item.
func (s *SafeList[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Add(item)
}

// Get thread-safely returns the element in slot index. Panics like List.Get.
func (s *SafeList[T]) Get(index int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

// Set thread-safely stores item in slot index. Panics like List.Set.
func (s *SafeList[T]) Set(index int, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Set(index, item)
}

func (s *SafeList[T]) TryGet(index int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.TryGet(index)
}

func (s *SafeList[T]) TryRemove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.TryRemove(item)
}

func (s *SafeList[T]) TryRemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.TryRemoveAt(index)
}

func (s *SafeList[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Contains(item)
}

func (s *SafeList[T]) IndexOf(item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IndexOf(item)
}

// Clear thread-safely drops every element.
func (s *SafeList[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

func (s *SafeList[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Count()
}

func (s *SafeList[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Capacity()
}

// Snapshot thread-safely copies the live elements into a new Go slice.
func (s *SafeList[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AppendTo(make([]T, 0, s.l.Count()))
}

// ToReadOnly thread-safely moves the elements into a ReadOnly and leaves
// the wrapped list empty.
func (s *SafeList[T]) ToReadOnly() *ReadOnly[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.ToReadOnly()
}

// Dispose thread-safely frees the buffer.
func (s *SafeList[T]) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Dispose()
}
