package nativelist

import (
	"math"
	"unsafe"

	"go.uber.org/zap"
)

// InitialCapacity is the slot count a zero-capacity buffer grows to on the
// first append. Every later growth doubles the capacity.
const InitialCapacity = 4

// Buffer is a single-owner handle over one contiguous block of fixed-size slots.
// The zero Buffer is the uninitialized sentinel: it holds no allocation and
// freeing it is a no-op.
type Buffer struct {
	mem      []byte  // backing block; nil for the sentinel
	capacity int     // slot count
	elemSize uintptr // bytes per slot
	alloc    Allocator
}

// AllocateBuffer returns a zero-filled buffer of capacity slots of elemSize bytes.
// A capacity <= 0 yields the sentinel. If a is nil the default allocator is used.
// Allocation failure panics with an ErrAllocation error.
func AllocateBuffer(a Allocator, capacity int, elemSize uintptr) Buffer {
	if a == nil {
		a = DefaultAllocator()
	}
	b := Buffer{elemSize: elemSize, alloc: a}
	if capacity <= 0 {
		return b
	}
	mem, err := a.Calloc(blockSize("Allocate", capacity, elemSize))
	if err != nil {
		panic(&Error{Op: "Allocate", Kind: KindAllocation, Cause: err})
	}
	b.mem = mem
	b.capacity = capacity
	return b
}

// Capacity returns the number of allocated slots.
func (b *Buffer) Capacity() int { return b.capacity }

// ElementSize returns the slot size in bytes.
func (b *Buffer) ElementSize() uintptr { return b.elemSize }

// IsAllocated reports whether b owns a live block.
func (b *Buffer) IsAllocated() bool { return b.mem != nil }

// Addr returns the address of the first slot, or 0 for the sentinel.
func (b *Buffer) Addr() uintptr {
	if b.mem == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.mem)))
}

// Reallocate resizes b to capacity slots, preserving the existing prefix.
// The block may move. Slots beyond the old capacity are zeroed.
func (b *Buffer) Reallocate(capacity int) {
	if capacity <= 0 {
		b.Free()
		return
	}
	if b.alloc == nil {
		b.alloc = DefaultAllocator()
	}
	size := blockSize("Reallocate", capacity, b.elemSize)
	if b.mem == nil {
		mem, err := b.alloc.Calloc(size)
		if err != nil {
			panic(&Error{Op: "Reallocate", Kind: KindAllocation, Cause: err})
		}
		b.mem = mem
		b.capacity = capacity
		return
	}
	old := len(b.mem)
	mem, err := b.alloc.Realloc(b.mem, size)
	if err != nil {
		panic(&Error{Op: "Reallocate", Kind: KindAllocation, Cause: err})
	}
	if size > old {
		clear(mem[old:size])
	}
	b.mem = mem[:size]
	b.capacity = capacity
}

// Grow applies the growth policy: 4 slots from empty, doubling afterwards.
func (b *Buffer) Grow() {
	next := nextCapacity(b.capacity)
	if ce := Logger().Check(zap.DebugLevel, "buffer grow"); ce != nil {
		ce.Write(
			zap.Int("from", b.capacity),
			zap.Int("to", next),
			zap.Uintptr("elem_size", b.elemSize),
		)
	}
	b.Reallocate(next)
}

// Free releases the block and leaves b as the sentinel. Freeing the
// sentinel is a no-op, so Free is idempotent.
func (b *Buffer) Free() {
	if b.mem == nil {
		b.capacity = 0
		return
	}
	mem := b.mem
	b.mem = nil
	b.capacity = 0
	if err := b.alloc.Free(mem); err != nil {
		Logger().Error("buffer free", zap.Error(err))
		panic(&Error{Op: "Free", Kind: KindAllocation, Cause: err})
	}
}

// bytes returns the whole block as raw bytes.
func (b *Buffer) bytes() []byte {
	return b.mem[:uintptr(b.capacity)*b.elemSize]
}

// slot returns the raw bytes of slot i. The caller checks bounds.
func (b *Buffer) slot(i int) []byte {
	off := uintptr(i) * b.elemSize
	return b.mem[off : off+b.elemSize]
}

// slotsOf views the block as a []T of length capacity.
func slotsOf[T any](b *Buffer) []T {
	if b.mem == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b.mem))), b.capacity)
}

// nextCapacity returns the capacity after one growth step.
func nextCapacity(capacity int) int {
	if capacity == 0 {
		return InitialCapacity
	}
	if capacity > math.MaxInt/2 {
		panic(&Error{Op: "Grow", Kind: KindAllocation, Detail: "capacity overflow"})
	}
	return capacity * 2
}

// blockSize returns the byte size of capacity slots. Zero-size elements
// still get a one byte block so that a live buffer always has an address.
func blockSize(op string, capacity int, elemSize uintptr) int {
	if elemSize == 0 {
		return 1
	}
	if uintptr(capacity) > uintptr(math.MaxInt)/elemSize {
		panic(&Error{Op: op, Kind: KindAllocation, Detail: "size overflow"})
	}
	return capacity * int(elemSize)
}
