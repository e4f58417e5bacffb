package nativelist

import (
	"sync"

	"modernc.org/memory"
)

// Allocator supplies the raw blocks that back list buffers.
//
// Calloc returns a zero-filled block of exactly size bytes. Realloc resizes b,
// preserving its prefix, and may move it. Free releases b exactly once.
// *memory.Allocator from modernc.org/memory satisfies this interface, but is
// not safe for concurrent use on its own.
type Allocator interface {
	Calloc(size int) ([]byte, error)
	Realloc(b []byte, size int) ([]byte, error)
	Free(b []byte) error
}

// MmapAllocator serves blocks from memory mapped outside the Go heap.
// Blocks are invisible to the garbage collector. Safe for concurrent use.
type MmapAllocator struct {
	mu sync.Mutex
	a  memory.Allocator
}

// NewMmapAllocator creates an allocator backed by modernc.org/memory.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{}
}

func (m *MmapAllocator) Calloc(size int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.a.Calloc(size)
}

func (m *MmapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.a.Realloc(b, size)
}

func (m *MmapAllocator) Free(b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.a.Free(b)
}

// Close unmaps every page still held by the allocator.
// Buffers allocated from it must not be used afterwards.
func (m *MmapAllocator) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.a.Close()
}

// HeapAllocator keeps blocks on the garbage-collected heap.
// Free only drops the reference; the collector reclaims the block.
type HeapAllocator struct{}

func (HeapAllocator) Calloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	nb := make([]byte, size)
	copy(nb, b)
	return nb, nil
}

func (HeapAllocator) Free([]byte) error {
	return nil
}

var (
	defaultMu        sync.RWMutex
	defaultAllocator = platformAllocator()
)

// DefaultAllocator returns the allocator used by lists built without WithAllocator.
func DefaultAllocator() Allocator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultAllocator
}

// SetDefaultAllocator replaces the package default allocator; nil restores
// the platform default.
// Lists already holding a buffer keep the allocator they were built with.
func SetDefaultAllocator(a Allocator) {
	if a == nil {
		a = platformAllocator()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultAllocator = a
}

// Option configures list construction.
type Option func(*options)

type options struct {
	alloc Allocator
}

// WithAllocator makes the list allocate, grow and free its buffer through a.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
