package bitbuf

import (
	"math"
	"math/big"
	mbits "math/bits"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Word is an unsigned element type for array conversions.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func wordWidth[T Word]() int {
	return mbits.Len64(uint64(^T(0)))
}

// ToWords returns the bits packed into ceil(Len()/w) elements of w bits, where
// w is the width of T. Content is left-aligned: a partial last element holds
// the remaining bits in its high end and zeros below.
func ToWords[T Word](b *BitBuffer) []T {
	w := wordWidth[T]()
	out := make([]T, (b.n+int64(w)-1)/int64(w))
	for i := range out {
		out[i] = T(b.element(int64(i)*int64(w), w))
	}
	return out
}

// element reads the w-bit element at pos, zero-padding a short tail.
func (b *BitBuffer) element(pos int64, w int) uint64 {
	v, n, _ := b.GetBitsInBounds(pos, w)
	if n < w {
		v <<= uint(w - n)
	}
	return v
}

// FromWords returns an owned buffer holding the elements of ws back to back.
func FromWords[T Word](ws []T) (*BitBuffer, error) {
	w := wordWidth[T]()
	b, err := New(int64(len(ws)) * int64(w))
	if err != nil {
		return nil, err
	}
	for i, v := range ws {
		_ = b.PutBits(int64(i)*int64(w), w, uint64(v))
	}
	return b, nil
}

// ToBytes returns the bits as bytes, the last byte zero-padded.
func (b *BitBuffer) ToBytes() []byte {
	nb := md.BytesFor(b.n)
	out := make([]byte, nb)
	if b.off&md.ByteMask == 0 {
		start := b.off >> md.ByteShift
		copy(out, b.data[start:start+nb])
		if tail := b.n & md.ByteMask; tail != 0 {
			out[nb-1] &= byte(md.Mask(int(tail)) << uint(md.BitsPerByte-tail))
		}
		return out
	}
	bits.Copy(out, 0, b.data, b.off, b.n)
	return out
}

func (b *BitBuffer) ToUint16s() []uint16 { return ToWords[uint16](b) }
func (b *BitBuffer) ToUint32s() []uint32 { return ToWords[uint32](b) }
func (b *BitBuffer) ToUint64s() []uint64 { return ToWords[uint64](b) }

func (b *BitBuffer) ToInt8s() []int8 {
	return convertWords(ToWords[uint8](b), func(v uint8) int8 { return int8(v) })
}

func (b *BitBuffer) ToInt16s() []int16 {
	return convertWords(ToWords[uint16](b), func(v uint16) int16 { return int16(v) })
}

func (b *BitBuffer) ToInt32s() []int32 {
	return convertWords(ToWords[uint32](b), func(v uint32) int32 { return int32(v) })
}

func (b *BitBuffer) ToInt64s() []int64 {
	return convertWords(ToWords[uint64](b), func(v uint64) int64 { return int64(v) })
}

func (b *BitBuffer) ToFloat32s() []float32 {
	return convertWords(ToWords[uint32](b), math.Float32frombits)
}

func (b *BitBuffer) ToFloat64s() []float64 {
	return convertWords(ToWords[uint64](b), math.Float64frombits)
}

func convertWords[W Word, T any](ws []W, conv func(W) T) []T {
	out := make([]T, len(ws))
	for i, w := range ws {
		out[i] = conv(w)
	}
	return out
}

// FromUint64 returns a width-bit buffer holding the low width bits of v.
func FromUint64(v uint64, width int) (*BitBuffer, error) {
	if err := bits.CheckWidth(width, md.MaxWidth); err != nil {
		return nil, err
	}
	b := Must(New(int64(width)))
	_ = b.PutBits(0, width, v)
	return b, nil
}

// ToBigInt interprets ToBytes() as a big-endian two's complement number: the
// first bit is the sign and a length that is not a multiple of 8 is padded
// with zeros at the end.
func (b *BitBuffer) ToBigInt() *big.Int {
	raw := b.ToBytes()
	v := new(big.Int).SetBytes(raw)
	if len(raw) > 0 && raw[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(raw))*md.BitsPerByte))
	}
	return v
}

// ToUnsignedBigInt interprets ToBytes() as a non-negative big-endian number.
func (b *BitBuffer) ToUnsignedBigInt() *big.Int {
	return new(big.Int).SetBytes(b.ToBytes())
}

// ToDecimal returns ToBigInt() as the unscaled value of a decimal with the
// given scale, i.e. ToBigInt() * 10^-scale.
func (b *BitBuffer) ToDecimal(scale int32) decimal.Decimal {
	return decimal.NewFromBigInt(b.ToBigInt(), -scale)
}

// FromBigInt returns an nbits-bit buffer holding v right-aligned in two's
// complement. v must lie in [-2^(nbits-1), 2^nbits).
func FromBigInt(v *big.Int, nbits int64) (*BitBuffer, error) {
	if err := gut.RequireNonNil(v, "value"); err != nil {
		return nil, err
	}
	b, err := New(nbits)
	if err != nil {
		return nil, err
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		if nbits == 0 || u.BitLen() > int(nbits-1) && !isMinSigned(u, nbits) {
			return nil, errors.Wrapf(gut.ErrOverflow, "%s does not fit %d bits", v, nbits)
		}
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), uint(nbits)))
	} else if int64(u.BitLen()) > nbits {
		return nil, errors.Wrapf(gut.ErrOverflow, "%s does not fit %d bits", v, nbits)
	}
	raw := u.FillBytes(make([]byte, md.BytesFor(nbits)))
	bits.Copy(b.data, 0, raw, int64(len(raw))*md.BitsPerByte-nbits, nbits)
	return b, nil
}

// isMinSigned reports whether v == -2^(nbits-1).
func isMinSigned(v *big.Int, nbits int64) bool {
	m := new(big.Int).Lsh(big.NewInt(1), uint(nbits-1))
	return m.Neg(m).Cmp(v) == 0
}
