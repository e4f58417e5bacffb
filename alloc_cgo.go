//go:build malloc_cgo

package nativelist

// #include <stdlib.h>
import "C"

import (
	"errors"
	"unsafe"
)

var errCAlloc = errors.New("libc allocation failed")

// CAllocator serves blocks from the C heap. Selected as the default
// allocator when building with the malloc_cgo tag.
type CAllocator struct{}

func (CAllocator) Calloc(size int) ([]byte, error) {
	p := C.calloc(1, C.size_t(size))
	if p == nil {
		return nil, errCAlloc
	}
	return unsafe.Slice((*byte)(p), size), nil
}

func (CAllocator) Realloc(b []byte, size int) ([]byte, error) {
	p := C.realloc(unsafe.Pointer(unsafe.SliceData(b)), C.size_t(size))
	if p == nil {
		return nil, errCAlloc
	}
	return unsafe.Slice((*byte)(p), size), nil
}

func (CAllocator) Free(b []byte) error {
	C.free(unsafe.Pointer(unsafe.SliceData(b)))
	return nil
}

func platformAllocator() Allocator {
	return CAllocator{}
}
