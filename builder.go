package bitbuf

import (
	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
)

// Builder accumulates bits and freezes them into a fixed-length BitBuffer.
// The zero value is ready to use.
type Builder struct {
	data []byte
	n    int64
}

// NewBuilder returns a builder with room for capBits bits.
func NewBuilder(capBits int64) *Builder {
	if capBits < 0 {
		capBits = 0
	}
	return &Builder{data: make([]byte, 0, md.BytesFor(capBits))}
}

// Len returns the number of bits appended so far.
func (w *Builder) Len() int64 {
	return w.n
}

func (w *Builder) grow(nbits int64) error {
	end, err := gut.AddInt64(w.n, nbits)
	if err != nil {
		return err
	}
	if err := bits.CheckLength(end); err != nil {
		return err
	}
	for need := md.BytesFor(end); int64(len(w.data)) < need; {
		w.data = append(w.data, 0)
	}
	return nil
}

// AppendBits appends the low n bits of v, n in [1, 64].
func (w *Builder) AppendBits(n int, v uint64) error {
	if err := bits.CheckWidth(n, md.MaxWidth); err != nil {
		return err
	}
	if err := w.grow(int64(n)); err != nil {
		return err
	}
	end := w.n + int64(n)
	_ = bits.WriteBits(w.data, end, w.n, n, v)
	w.n = end
	return nil
}

func (w *Builder) AppendBit(v bool) error {
	var u uint64
	if v {
		u = 1
	}
	return w.AppendBits(md.Bit, u)
}

// AppendBytes appends all bits of p.
func (w *Builder) AppendBytes(p []byte) error {
	nbits := int64(len(p)) * md.BitsPerByte
	if err := w.grow(nbits); err != nil {
		return err
	}
	if w.n&md.ByteMask == 0 {
		// on byte boundary
		copy(w.data[w.n>>md.ByteShift:], p)
	} else {
		bits.Copy(w.data, w.n, p, 0, nbits)
	}
	w.n += nbits
	return nil
}

// AppendBuffer appends the content of b.
func (w *Builder) AppendBuffer(b *BitBuffer) error {
	if err := gut.RequireNonNil(b, "buffer"); err != nil {
		return err
	}
	if err := w.grow(b.n); err != nil {
		return err
	}
	bits.Copy(w.data, w.n, b.data, b.off, b.n)
	w.n += b.n
	return nil
}

// Build returns an owned copy of the bits appended so far. The builder stays
// usable.
func (w *Builder) Build() *BitBuffer {
	b := Must(New(w.n))
	copy(b.data, w.data)
	return b
}

// Reset discards the content, keeping the allocated storage.
func (w *Builder) Reset() {
	w.data = w.data[:0]
	w.n = 0
}
