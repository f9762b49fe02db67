package bitbuf

import (
	"strings"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
)

var (
	ErrInvalidArgument = gut.ErrInvalidArgument
	ErrOutOfBounds     = gut.ErrOutOfBounds
	ErrOverflow        = gut.ErrOverflow
)

// BitBuffer is a fixed-length sequence of bits over a byte slice. The zero
// value is an empty buffer.
type BitBuffer struct {
	data  []byte
	off   int64 // first bit of the window inside data
	n     int64 // length in bits
	owned bool
}

// New allocates a zero-filled buffer of nbits bits.
func New(nbits int64) (*BitBuffer, error) {
	if err := bits.CheckLength(nbits); err != nil {
		return nil, err
	}
	return &BitBuffer{
		data:  make([]byte, md.BytesFor(nbits)),
		n:     nbits,
		owned: true,
	}, nil
}

// Wrap returns a buffer over all bits of data. The buffer shares data with the
// caller.
func Wrap(data []byte) (*BitBuffer, error) {
	return WrapBits(data, int64(len(data))*md.BitsPerByte)
}

// WrapBits returns a buffer over the first nbits bits of data.
func WrapBits(data []byte, nbits int64) (*BitBuffer, error) {
	if nbits > 0 {
		if err := gut.RequireNonNil(data, "data"); err != nil {
			return nil, err
		}
	}
	if err := bits.CheckLength(nbits); err != nil {
		return nil, err
	}
	if err := bits.CheckStorage(data, nbits); err != nil {
		return nil, err
	}
	return &BitBuffer{data: data, n: nbits}, nil
}

// Must panics if err is not nil.
func Must(b *BitBuffer, err error) *BitBuffer {
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the length in bits.
func (b *BitBuffer) Len() int64 {
	return b.n
}

// Owned reports whether b exclusively owns its storage. Wrapped buffers and
// shallow slices do not.
func (b *BitBuffer) Owned() bool {
	return b.owned
}

// limit is the end of the window in storage coordinates.
func (b *BitBuffer) limit() int64 {
	return b.off + b.n
}

// Equal reports whether b and o hold the same bits.
func (b *BitBuffer) Equal(o *BitBuffer) bool {
	if o == nil || b.n != o.n {
		return false
	}
	return bits.Equal(b.data, b.off, o.data, o.off, b.n)
}

// String returns the bits as a string of '0' and '1'.
func (b *BitBuffer) String() string {
	if b == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.Grow(int(b.n))
	b.appendBinary(&sb, 0, b.n)
	return sb.String()
}
