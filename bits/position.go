package bits

import (
	"fmt"
	"math"

	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

// Position addresses a single bit as a byte index plus a bit offset 0..7
// counted from the most significant bit of that byte.
type Position struct {
	Byte   uint32
	Offset uint8
}

// MaxPosition is the largest absolute bit a Position can hold.
const MaxPosition = uint64(math.MaxUint32)*md.BitsPerByte + md.ByteMask

// At returns the position of bit offset within byte index.
func At(index uint32, offset uint8) (Position, error) {
	if offset > md.ByteMask {
		return Position{}, errors.Wrapf(gut.ErrInvalidArgument, "bit offset %d not in [0, 7]", offset)
	}
	return Position{Byte: index, Offset: offset}, nil
}

// FromBit converts an absolute bit index.
func FromBit(abs uint64) (Position, error) {
	if abs > MaxPosition {
		return Position{}, errors.Wrapf(gut.ErrOverflow, "bit %d exceeds position range", abs)
	}
	return Position{Byte: uint32(abs >> md.ByteShift), Offset: uint8(abs & md.ByteMask)}, nil
}

// ByteIndex converts a signed byte index, as accepted by the byte-flavoured
// accessors, into an absolute bit index.
func ByteIndex(index int) (int64, error) {
	if index < 0 {
		return 0, errors.Wrapf(gut.ErrInvalidArgument, "expected non-negative byte index, given: %d", index)
	}
	return gut.MulInt64(int64(index), md.BitsPerByte)
}

// Bit returns the absolute bit index.
func (p Position) Bit() uint64 {
	return uint64(p.Byte)<<md.ByteShift | uint64(p.Offset)
}

// Aligned reports whether p falls on a byte boundary.
func (p Position) Aligned() bool {
	return p.Offset == 0
}

// Add moves p by n bits in either direction.
func (p Position) Add(n int64) (Position, error) {
	abs := p.Bit()
	if n < 0 {
		if uint64(-n) > abs || n == math.MinInt64 {
			return Position{}, errors.Wrapf(gut.ErrOverflow, "%s - %d is negative", p, -n)
		}
		return FromBit(abs - uint64(-n))
	}
	if uint64(n) > MaxPosition-abs {
		return Position{}, errors.Wrapf(gut.ErrOverflow, "%s + %d", p, n)
	}
	return FromBit(abs + uint64(n))
}

// Sub returns the distance in bits from q to p.
func (p Position) Sub(q Position) int64 {
	return int64(p.Bit()) - int64(q.Bit())
}

// Compare returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	a, b := p.Bit(), q.Bit()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Byte, p.Offset)
}
