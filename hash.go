package nativelist

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// identityHash mixes what Equal compares: the buffer address, the element
// type and the sizes, behind a discriminator naming the container kind.
func identityHash(kind, elem string, addr uintptr, capacity, count int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(kind)
	_, _ = d.WriteString(elem)

	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(addr))
	binary.LittleEndian.PutUint64(b[8:], uint64(capacity))
	binary.LittleEndian.PutUint64(b[16:], uint64(count))
	_, _ = d.Write(b[:])

	return d.Sum64()
}
