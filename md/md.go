// Package md holds the bit layout constants shared by the codec and the buffer.
package md

import "math"

const (
	BitsPerByte = 8
	ByteShift   = 3
	ByteMask    = BitsPerByte - 1
)

// Named access widths.
const (
	Bit   = 1
	Byte  = 8
	Short = 16
	Int   = 32
	Long  = 64
)

const (
	MinWidth = Bit
	MaxWidth = Long
)

// MaxBits is the largest buffer length in bits.
const MaxBits = int64(math.MaxInt32) * BitsPerByte

// Mask returns a value with the low width bits set.
func Mask(width int) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	if width <= 0 {
		return 0
	}
	return (uint64(1) << uint(width)) - 1
}

// BytesFor returns the number of bytes needed to hold nbits.
func BytesFor(nbits int64) int64 {
	return (nbits + ByteMask) >> ByteShift
}
