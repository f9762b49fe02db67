package bitbuf

import (
	"math"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/md"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// GetBits returns the width-bit field at pos, zero-extended.
func (b *BitBuffer) GetBits(pos int64, width int) (uint64, error) {
	if err := bits.CheckAccess(pos, width, b.n); err != nil {
		return 0, err
	}
	return bits.ReadBits(b.data, b.limit(), b.off+pos, width)
}

// PutBits stores the low width bits of v at pos.
func (b *BitBuffer) PutBits(pos int64, width int, v uint64) error {
	if err := bits.CheckAccess(pos, width, b.n); err != nil {
		return err
	}
	return bits.WriteBits(b.data, b.limit(), b.off+pos, width, v)
}

// GetBitsInBounds reads up to width bits at pos. The bits read are
// right-aligned in the result with the high bits zero; n is how many were
// read, fewer than width near the end of the buffer.
func (b *BitBuffer) GetBitsInBounds(pos int64, width int) (v uint64, n int, err error) {
	if err = b.checkClamped(pos, width); err != nil || pos >= b.n {
		return 0, 0, err
	}
	return bits.ReadBitsClamped(b.data, b.limit(), b.off+pos, width)
}

// PutBitsInBounds writes the low n bits of v at pos, where n is the part of
// width that fits, and returns n.
func (b *BitBuffer) PutBitsInBounds(pos int64, width int, v uint64) (n int, err error) {
	if err = b.checkClamped(pos, width); err != nil || pos >= b.n {
		return 0, err
	}
	return bits.WriteBitsClamped(b.data, b.limit(), b.off+pos, width, v)
}

func (b *BitBuffer) checkClamped(pos int64, width int) error {
	if err := bits.CheckPosition(pos); err != nil {
		return err
	}
	return bits.CheckWidth(width, md.MaxWidth)
}

// GetSignedBits returns the width-bit field at pos sign-extended from its
// first bit.
func (b *BitBuffer) GetSignedBits(pos int64, width int) (int64, error) {
	v, err := b.GetBits(pos, width)
	if err != nil {
		return 0, err
	}
	shift := uint(md.MaxWidth - width)
	return int64(v<<shift) >> shift, nil
}

func getAs[T integer](b *BitBuffer, pos int64, width int) (T, error) {
	v, err := b.GetBits(pos, width)
	return T(v), err
}

func putAs[T integer](b *BitBuffer, pos int64, width int, v T) error {
	return b.PutBits(pos, width, uint64(v))
}

func getInBoundsAs[T integer](b *BitBuffer, pos int64, width int) (T, int, error) {
	v, n, err := b.GetBitsInBounds(pos, width)
	return T(v), n, err
}

func putInBoundsAs[T integer](b *BitBuffer, pos int64, width int, v T) (int, error) {
	return b.PutBitsInBounds(pos, width, uint64(v))
}

// getBitsAs reads an n-bit field, n in [1, max], into T without sign extension.
func getBitsAs[T integer](b *BitBuffer, pos int64, n, max int) (T, error) {
	if err := bits.CheckPosition(pos); err != nil {
		return 0, err
	}
	if err := bits.CheckWidth(n, max); err != nil {
		return 0, err
	}
	return getAs[T](b, pos, n)
}

func putBitsAs[T integer](b *BitBuffer, pos int64, n, max int, v T) error {
	if err := bits.CheckPosition(pos); err != nil {
		return err
	}
	if err := bits.CheckWidth(n, max); err != nil {
		return err
	}
	return putAs(b, pos, n, v)
}

// GetBit returns the bit at pos.
func (b *BitBuffer) GetBit(pos int64) (bool, error) {
	v, err := b.GetBits(pos, md.Bit)
	return v == 1, err
}

// PutBit sets or clears the bit at pos.
func (b *BitBuffer) PutBit(pos int64, v bool) error {
	var u uint64
	if v {
		u = 1
	}
	return b.PutBits(pos, md.Bit, u)
}

// GetBitInBounds returns the bit at pos; n is 0 past the end.
func (b *BitBuffer) GetBitInBounds(pos int64) (v bool, n int, err error) {
	u, n, err := b.GetBitsInBounds(pos, md.Bit)
	return u == 1, n, err
}

// PutBitInBounds sets or clears the bit at pos if it exists.
func (b *BitBuffer) PutBitInBounds(pos int64, v bool) (int, error) {
	var u uint64
	if v {
		u = 1
	}
	return b.PutBitsInBounds(pos, md.Bit, u)
}

// 8 bits
//
// GetUintN returns the Go unsigned type of the same width. It already holds
// the whole unsigned range of the field, so no wider type is needed.

func (b *BitBuffer) GetInt8(pos int64) (int8, error)   { return getAs[int8](b, pos, md.Byte) }
// GetUint8 reads 8 bits at pos as a uint8, covering the full range 0..255.
func (b *BitBuffer) GetUint8(pos int64) (uint8, error) { return getAs[uint8](b, pos, md.Byte) }
func (b *BitBuffer) GetInt8InBounds(pos int64) (int8, int, error) {
	return getInBoundsAs[int8](b, pos, md.Byte)
}
func (b *BitBuffer) GetUint8InBounds(pos int64) (uint8, int, error) {
	return getInBoundsAs[uint8](b, pos, md.Byte)
}

// GetBitsAsInt8 reads an n-bit field, n in [1, 8], zero-extended.
func (b *BitBuffer) GetBitsAsInt8(pos int64, n int) (int8, error) {
	return getBitsAs[int8](b, pos, n, md.Byte)
}
func (b *BitBuffer) PutInt8(pos int64, v int8) error   { return putAs(b, pos, md.Byte, v) }
func (b *BitBuffer) PutUint8(pos int64, v uint8) error { return putAs(b, pos, md.Byte, v) }
func (b *BitBuffer) PutInt8InBounds(pos int64, v int8) (int, error) {
	return putInBoundsAs(b, pos, md.Byte, v)
}
func (b *BitBuffer) PutUint8InBounds(pos int64, v uint8) (int, error) {
	return putInBoundsAs(b, pos, md.Byte, v)
}

// PutBitsAsInt8 stores the low n bits of v, n in [1, 8].
func (b *BitBuffer) PutBitsAsInt8(pos int64, n int, v int8) error {
	return putBitsAs(b, pos, n, md.Byte, v)
}

// 16 bits

func (b *BitBuffer) GetInt16(pos int64) (int16, error)   { return getAs[int16](b, pos, md.Short) }
func (b *BitBuffer) GetUint16(pos int64) (uint16, error) { return getAs[uint16](b, pos, md.Short) }
func (b *BitBuffer) GetInt16InBounds(pos int64) (int16, int, error) {
	return getInBoundsAs[int16](b, pos, md.Short)
}
func (b *BitBuffer) GetUint16InBounds(pos int64) (uint16, int, error) {
	return getInBoundsAs[uint16](b, pos, md.Short)
}
func (b *BitBuffer) GetBitsAsInt16(pos int64, n int) (int16, error) {
	return getBitsAs[int16](b, pos, n, md.Short)
}
func (b *BitBuffer) PutInt16(pos int64, v int16) error   { return putAs(b, pos, md.Short, v) }
func (b *BitBuffer) PutUint16(pos int64, v uint16) error { return putAs(b, pos, md.Short, v) }
func (b *BitBuffer) PutInt16InBounds(pos int64, v int16) (int, error) {
	return putInBoundsAs(b, pos, md.Short, v)
}
func (b *BitBuffer) PutUint16InBounds(pos int64, v uint16) (int, error) {
	return putInBoundsAs(b, pos, md.Short, v)
}
func (b *BitBuffer) PutBitsAsInt16(pos int64, n int, v int16) error {
	return putBitsAs(b, pos, n, md.Short, v)
}

// 32 bits

func (b *BitBuffer) GetInt32(pos int64) (int32, error)   { return getAs[int32](b, pos, md.Int) }
func (b *BitBuffer) GetUint32(pos int64) (uint32, error) { return getAs[uint32](b, pos, md.Int) }
func (b *BitBuffer) GetInt32InBounds(pos int64) (int32, int, error) {
	return getInBoundsAs[int32](b, pos, md.Int)
}
func (b *BitBuffer) GetUint32InBounds(pos int64) (uint32, int, error) {
	return getInBoundsAs[uint32](b, pos, md.Int)
}
func (b *BitBuffer) GetBitsAsInt32(pos int64, n int) (int32, error) {
	return getBitsAs[int32](b, pos, n, md.Int)
}
func (b *BitBuffer) PutInt32(pos int64, v int32) error   { return putAs(b, pos, md.Int, v) }
func (b *BitBuffer) PutUint32(pos int64, v uint32) error { return putAs(b, pos, md.Int, v) }
func (b *BitBuffer) PutInt32InBounds(pos int64, v int32) (int, error) {
	return putInBoundsAs(b, pos, md.Int, v)
}
func (b *BitBuffer) PutUint32InBounds(pos int64, v uint32) (int, error) {
	return putInBoundsAs(b, pos, md.Int, v)
}
func (b *BitBuffer) PutBitsAsInt32(pos int64, n int, v int32) error {
	return putBitsAs(b, pos, n, md.Int, v)
}

// 64 bits

func (b *BitBuffer) GetInt64(pos int64) (int64, error)   { return getAs[int64](b, pos, md.Long) }
func (b *BitBuffer) GetUint64(pos int64) (uint64, error) { return getAs[uint64](b, pos, md.Long) }
func (b *BitBuffer) GetInt64InBounds(pos int64) (int64, int, error) {
	return getInBoundsAs[int64](b, pos, md.Long)
}
func (b *BitBuffer) GetUint64InBounds(pos int64) (uint64, int, error) {
	return getInBoundsAs[uint64](b, pos, md.Long)
}
func (b *BitBuffer) GetBitsAsInt64(pos int64, n int) (int64, error) {
	return getBitsAs[int64](b, pos, n, md.Long)
}
func (b *BitBuffer) PutInt64(pos int64, v int64) error   { return putAs(b, pos, md.Long, v) }
func (b *BitBuffer) PutUint64(pos int64, v uint64) error { return putAs(b, pos, md.Long, v) }
func (b *BitBuffer) PutInt64InBounds(pos int64, v int64) (int, error) {
	return putInBoundsAs(b, pos, md.Long, v)
}
func (b *BitBuffer) PutUint64InBounds(pos int64, v uint64) (int, error) {
	return putInBoundsAs(b, pos, md.Long, v)
}
func (b *BitBuffer) PutBitsAsInt64(pos int64, n int, v int64) error {
	return putBitsAs(b, pos, n, md.Long, v)
}

// Floats are the IEEE 754 bit patterns of the 32 and 64 bit fields.

func (b *BitBuffer) GetFloat32(pos int64) (float32, error) {
	v, err := b.GetBits(pos, md.Int)
	return math.Float32frombits(uint32(v)), err
}

func (b *BitBuffer) GetFloat64(pos int64) (float64, error) {
	v, err := b.GetBits(pos, md.Long)
	return math.Float64frombits(v), err
}

func (b *BitBuffer) GetFloat32InBounds(pos int64) (float32, int, error) {
	v, n, err := b.GetBitsInBounds(pos, md.Int)
	return math.Float32frombits(uint32(v)), n, err
}

func (b *BitBuffer) GetFloat64InBounds(pos int64) (float64, int, error) {
	v, n, err := b.GetBitsInBounds(pos, md.Long)
	return math.Float64frombits(v), n, err
}

func (b *BitBuffer) PutFloat32(pos int64, v float32) error {
	return b.PutBits(pos, md.Int, uint64(math.Float32bits(v)))
}

func (b *BitBuffer) PutFloat64(pos int64, v float64) error {
	return b.PutBits(pos, md.Long, math.Float64bits(v))
}

func (b *BitBuffer) PutFloat32InBounds(pos int64, v float32) (int, error) {
	return b.PutBitsInBounds(pos, md.Int, uint64(math.Float32bits(v)))
}

func (b *BitBuffer) PutFloat64InBounds(pos int64, v float64) (int, error) {
	return b.PutBitsInBounds(pos, md.Long, math.Float64bits(v))
}
