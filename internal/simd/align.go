package simd

import "unsafe"

const (
	// CacheLineSize is the alignment used for scan buffers.
	CacheLineSize = 64
)

// AlignedBuffer is a byte buffer whose start address is aligned to a
// requested boundary. Tests use it to present aligned and deliberately
// misaligned inputs to the skippers.
type AlignedBuffer struct {
	raw     []byte
	aligned []byte
}

// NewAlignedBuffer allocates size bytes aligned to the given boundary,
// which must be a power of two.
func NewAlignedBuffer(size, alignment int) *AlignedBuffer {
	raw := make([]byte, size+alignment)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := (-addr) & uintptr(alignment-1)
	return &AlignedBuffer{
		raw:     raw,
		aligned: raw[off : off+uintptr(size)],
	}
}

// Bytes returns the aligned slice.
func (b *AlignedBuffer) Bytes() []byte {
	return b.aligned
}

// IsAligned reports whether ptr sits on the given power-of-two
// boundary.
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	return uintptr(ptr)&uintptr(alignment-1) == 0
}
