package nativelist

import (
	"sync"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// arenaAlign is the alignment of every block handed out by an arena.
const arenaAlign = 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// ArenaAllocator is a chunked bump allocator for lists that die together.
// Typical usage: build the lists of one request with WithAllocator(arena),
// then Reset the arena at the end of the request for O(1) cleanup.
//
// Free only reclaims the most recent block; everything else is reclaimed by
// Reset or Release. Chunks come from a backing Allocator. Safe for
// concurrent use.
type ArenaAllocator struct {
	mu        sync.Mutex
	backing   Allocator
	chunks    []chunk
	chunkSize int
	current   int // index of the chunk serving allocations
	released  bool
}

// NewArenaAllocator creates an arena whose chunks hold at least chunkSize
// bytes. If chunkSize <= 0, DefaultChunkSize is used. If backing is nil the
// default allocator is used.
func NewArenaAllocator(chunkSize int, backing Allocator) *ArenaAllocator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if backing == nil {
		backing = DefaultAllocator()
	}
	return &ArenaAllocator{backing: backing, chunkSize: chunkSize}
}

// ChunkSize returns the minimum size of a chunk.
func (a *ArenaAllocator) ChunkSize() int { return a.chunkSize }

// NumChunks returns the number of chunks currently held.
func (a *ArenaAllocator) NumChunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks)
}

// SizeInUse returns the number of bytes handed out since the last Reset,
// alignment padding included.
func (a *ArenaAllocator) SizeInUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	var n int
	for i := range a.chunks {
		n += int(a.chunks[i].offset)
	}
	return n
}

// Calloc returns a zero-filled block of size bytes carved from the current chunk.
func (a *ArenaAllocator) Calloc(size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.alloc(size)
}

// Realloc extends b in place when it is the most recent block and the chunk
// has room; otherwise it copies b into a new block.
func (a *ArenaAllocator) Realloc(b []byte, size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, start, ok := a.last(b); ok && start+uintptr(size) <= uintptr(len(c.buf)) {
		end := start + uintptr(size)
		if end > c.offset {
			clear(c.buf[c.offset:end])
		}
		c.offset = end
		return c.buf[start:end:end], nil
	}

	nb, err := a.alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

// Free rolls the arena back over b when b is the most recent block.
func (a *ArenaAllocator) Free(b []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return errArenaReleased
	}
	if c, start, ok := a.last(b); ok {
		c.offset = start
	}
	return nil
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Lists still holding blocks from the arena must not be used afterwards.
func (a *ArenaAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release returns every chunk to the backing allocator and makes the arena
// unusable. Releasing twice is a no-op.
func (a *ArenaAllocator) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return nil
	}
	a.released = true
	var first error
	for i := range a.chunks {
		if err := a.backing.Free(a.chunks[i].buf); err != nil && first == nil {
			first = err
		}
	}
	a.chunks = nil
	a.current = 0
	return first
}

func (a *ArenaAllocator) alloc(size int) ([]byte, error) {
	if a.released {
		return nil, errArenaReleased
	}

	// Fast path: current chunk, then any later chunk kept by Reset
	for ; a.current < len(a.chunks); a.current++ {
		c := &a.chunks[a.current]
		off := alignUp(c.offset)
		if off+uintptr(size) <= uintptr(len(c.buf)) {
			return a.carve(c, off, size), nil
		}
	}

	// Slow path: need new chunk
	if err := a.grow(size); err != nil {
		return nil, err
	}
	return a.carve(&a.chunks[a.current], 0, size), nil
}

// carve hands out size bytes at off. Reused chunks may hold stale bytes.
func (a *ArenaAllocator) carve(c *chunk, off uintptr, size int) []byte {
	end := off + uintptr(size)
	c.offset = end
	b := c.buf[off:end:end]
	clear(b)
	return b
}

// grow appends a new chunk of at least min bytes.
func (a *ArenaAllocator) grow(min int) error {
	size := max(a.chunkSize, min)
	buf, err := a.backing.Calloc(size)
	if err != nil {
		return err
	}
	a.chunks = append(a.chunks, chunk{buf: buf})
	a.current = len(a.chunks) - 1
	return nil
}

// last reports whether b is the most recent block of the current chunk and
// returns the chunk and the block's offset.
func (a *ArenaAllocator) last(b []byte) (*chunk, uintptr, bool) {
	if a.released || len(b) == 0 || a.current >= len(a.chunks) {
		return nil, 0, false
	}
	c := &a.chunks[a.current]
	if len(c.buf) == 0 {
		return nil, 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < base || p >= base+uintptr(len(c.buf)) {
		return nil, 0, false
	}
	start := p - base
	if start+uintptr(len(b)) != c.offset {
		return nil, 0, false
	}
	return c, start, true
}

// panicIfReleased panics if the arena has been released.
func (a *ArenaAllocator) panicIfReleased() {
	if a.released {
		panic(&Error{Op: "Reset", Kind: KindNotInitialized, Cause: errArenaReleased})
	}
}

// alignUp aligns the offset up to arenaAlign.
func alignUp(off uintptr) uintptr {
	const mask = arenaAlign - 1
	return (off + mask) &^ mask
}
