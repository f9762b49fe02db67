package bitbuf

import (
	"io"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

// BitsReader reads fields sequentially.
type BitsReader interface {
	// ReadBits reads up to n bits, returning them right-aligned along with the
	// number read. It returns io.EOF only when no bit was left.
	ReadBits(n int) (uint64, int, error)
}

// BitsWriter writes fields sequentially.
type BitsWriter interface {
	// WriteBits writes the low bits of v that fit, up to n, and returns how
	// many were written. It returns io.EOF only when no bit was left.
	WriteBits(n int, v uint64) (int, error)
}

// Cursor reads and writes a BitBuffer sequentially from a movable position.
type Cursor struct {
	b   *BitBuffer
	pos int64
}

var (
	_ BitsReader = (*Cursor)(nil)
	_ BitsWriter = (*Cursor)(nil)
)

// NewCursor returns a cursor at bit 0 of b.
func NewCursor(b *BitBuffer) *Cursor {
	return &Cursor{b: b}
}

func (c *Cursor) Pos() int64 {
	return c.pos
}

// Position returns Pos as a byte index and bit offset.
func (c *Cursor) Position() bits.Position {
	// buffer lengths stay far below MaxPosition
	p, _ := bits.FromBit(uint64(c.pos))
	return p
}

// SeekPosition moves the cursor to p.
func (c *Cursor) SeekPosition(p bits.Position) error {
	return c.Seek(int64(p.Bit()))
}

// Remaining returns the number of bits after the cursor.
func (c *Cursor) Remaining() int64 {
	return c.b.n - c.pos
}

func (c *Cursor) Rewind() {
	c.pos = 0
}

// Seek moves the cursor to pos, which may equal Len().
func (c *Cursor) Seek(pos int64) error {
	if err := bits.CheckRange(pos, 0, c.b.n); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// Skip moves the cursor by n bits in either direction.
func (c *Cursor) Skip(n int64) error {
	p, err := gut.AddInt64(c.pos, n)
	if err != nil {
		return err
	}
	return c.Seek(p)
}

func (c *Cursor) ReadBits(n int) (uint64, int, error) {
	v, read, err := c.b.GetBitsInBounds(c.pos, n)
	if err != nil {
		return 0, 0, err
	}
	if read == 0 {
		return 0, 0, io.EOF
	}
	c.pos += int64(read)
	return v, read, nil
}

func (c *Cursor) WriteBits(n int, v uint64) (int, error) {
	written, err := c.b.PutBitsInBounds(c.pos, n, v)
	if err != nil {
		return 0, err
	}
	if written == 0 {
		return 0, io.EOF
	}
	c.pos += int64(written)
	return written, nil
}

// ReadBit reads a single bit.
func (c *Cursor) ReadBit() (bool, error) {
	v, _, err := c.ReadBits(md.Bit)
	return v == 1, err
}

// ReadFull reads exactly n bits or fails with ErrOutOfBounds without moving.
func (c *Cursor) ReadFull(n int) (uint64, error) {
	v, err := c.b.GetBits(c.pos, n)
	if err != nil {
		return 0, err
	}
	c.pos += int64(n)
	return v, nil
}

// WriteFull writes exactly n bits or fails with ErrOutOfBounds without
// writing anything.
func (c *Cursor) WriteFull(n int, v uint64) error {
	if err := c.b.PutBits(c.pos, n, v); err != nil {
		return err
	}
	c.pos += int64(n)
	return nil
}

// Next returns a shallow slice of the next n bits and moves past them.
func (c *Cursor) Next(n int64) (*BitBuffer, error) {
	s, err := c.b.SliceShallow(c.pos, n)
	if err != nil {
		return nil, errors.WithMessagef(err, "cursor at %d", c.pos)
	}
	c.pos += n
	return s, nil
}
