// Package nativelist implements growable lists of fixed-size values stored in
// buffers the garbage collector does not manage.
//
// # Overview
//
// A list keeps its elements in one contiguous block obtained from an
// Allocator and grows it by reallocation. Because the block lives outside
// the Go heap, lists of millions of elements add nothing to GC scan work.
// This is particularly useful for:
//
//   - Large numeric tables kept for the lifetime of a process
//   - Buffers handed to foreign code through a stable address
//   - Heterogeneous collections of lists held behind one type (ErasedList)
//
// # Basic Usage
//
//	l := nativelist.NewList[int64](0) // no allocation yet
//	defer l.Dispose()                   // release the buffer
//
//	l.Add(5)
//	l.Add(7)
//	i := l.IndexOf(7) // 1
//	l.TryRemove(5)
//
//	c := l.Cursor()
//	for c.Next() {
//		fmt.Println(c.Current())
//	}
//
// Element types must be pointer-free: numbers, bools, and arrays and structs
// of those. Building a list of a type holding strings, slices, maps or
// pointers panics.
//
// # Ownership
//
// Each buffer has exactly one owner. Dispose frees it and leaves the list
// empty; disposing again is a no-op. ToReadOnly moves the live elements into
// an exactly-sized ReadOnly and disposes the list. Cursors and pinned views
// borrow the owner's buffer and are valid only until it changes.
//
// # Growth
//
// Appending to a full list grows it to 4 slots from empty and doubles it
// afterwards, so n appends cost O(n) copying in total.
//
// # Erased Lists
//
// ErasedList records its element type as a TypeInfo at runtime. Element
// operations are generic functions that compare the requested type with the
// recorded one:
//
//	l := nativelist.NewErasedList(2, nativelist.TypeFor[int32]())
//	nativelist.TryAdd(l, int32(3))   // true
//	nativelist.TryAdd(l, float32(1)) // false: type mismatch
//
// The ...Unchecked variants skip the comparison and reinterpret memory.
//
// # Errors
//
// Expected outcomes (element not found, type mismatch) are reported by
// boolean or -1 results. Programmer errors panic with an *Error: indexing
// out of range, a cursor or pinned view of the wrong type, and allocation
// failure. Match the recovered value with errors.Is against ErrIndexOutOfRange,
// ErrTypeMismatch, ErrAllocation and ErrUnsupportedType.
//
// # Thread Safety
//
// List, ErasedList and ReadOnly are not thread-safe. For concurrent access,
// use SafeList:
//
//	s := nativelist.NewSafeList[int64](0)
//	defer s.Dispose()
//	s.Add(42)
//
// # Allocators
//
// By default buffers come from memory mapped by modernc.org/memory. Use
// WithAllocator or SetDefaultAllocator to pick HeapAllocator or your own.
// Building with the malloc_cgo tag makes libc the default.
//
// ArenaAllocator bump-allocates blocks for lists that die together and
// reclaims them all with one Reset:
//
//	a := nativelist.NewArenaAllocator(0, nil)
//	defer a.Release()
//	l := nativelist.NewList[int32](0, nativelist.WithAllocator(a))
//	// ... use l ...
//	a.Reset() // l must not be used afterwards
package nativelist
