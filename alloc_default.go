//go:build !malloc_cgo

package nativelist

func platformAllocator() Allocator {
	return NewMmapAllocator()
}
