package bitbuf

import (
	mbits "math/bits"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
)

// combine applies op to min(b.Len(), o.Len()) bits of both buffers from bit 0,
// storing the result in b.
func (b *BitBuffer) combine(o *BitBuffer, op func(x, y uint64) uint64) (int64, error) {
	if err := gut.RequireNonNil(o, "operand"); err != nil {
		return 0, err
	}
	if _, _, _, ok := shared(b, o); ok {
		o = o.Clone()
	}
	n := b.n
	if o.n < n {
		n = o.n
	}
	for done := int64(0); done < n; {
		w := chunkWidth(n - done)
		x, _ := bits.ReadBits(b.data, b.limit(), b.off+done, w)
		y, _ := bits.ReadBits(o.data, o.limit(), o.off+done, w)
		_ = bits.WriteBits(b.data, b.limit(), b.off+done, w, op(x, y))
		done += int64(w)
	}
	return n, nil
}

// And stores b AND o into b over their common length and returns it.
func (b *BitBuffer) And(o *BitBuffer) (int64, error) {
	return b.combine(o, func(x, y uint64) uint64 { return x & y })
}

// Or stores b OR o into b over their common length and returns it.
func (b *BitBuffer) Or(o *BitBuffer) (int64, error) {
	return b.combine(o, func(x, y uint64) uint64 { return x | y })
}

// Xor stores b XOR o into b over their common length and returns it.
func (b *BitBuffer) Xor(o *BitBuffer) (int64, error) {
	return b.combine(o, func(x, y uint64) uint64 { return x ^ y })
}

// Not inverts every bit.
func (b *BitBuffer) Not() {
	for done := int64(0); done < b.n; {
		w := chunkWidth(b.n - done)
		x, _ := bits.ReadBits(b.data, b.limit(), b.off+done, w)
		_ = bits.WriteBits(b.data, b.limit(), b.off+done, w, ^x)
		done += int64(w)
	}
}

// Reverse reverses the order of all bits.
func (b *BitBuffer) Reverse() {
	for i := int64(0); ; {
		mid := b.n - 2*i
		if mid < 2 {
			return
		}
		w := chunkWidth(mid / 2)
		lo := b.off + i
		hi := b.off + b.n - i - int64(w)
		x, _ := bits.ReadBits(b.data, b.limit(), lo, w)
		y, _ := bits.ReadBits(b.data, b.limit(), hi, w)
		_ = bits.WriteBits(b.data, b.limit(), lo, w, reverseWidth(y, w))
		_ = bits.WriteBits(b.data, b.limit(), hi, w, reverseWidth(x, w))
		i += int64(w)
	}
}

func reverseWidth(v uint64, w int) uint64 {
	return mbits.Reverse64(v) >> uint(md.MaxWidth-w)
}

// ReverseInBytes reverses the bit order inside every byte. It does nothing and
// returns false unless the length is a multiple of 8.
func (b *BitBuffer) ReverseInBytes() bool {
	if b.n%md.BitsPerByte != 0 {
		return false
	}
	for p := int64(0); p < b.n; p += md.BitsPerByte {
		x, _ := bits.ReadBits(b.data, b.limit(), b.off+p, md.Byte)
		_ = bits.WriteBits(b.data, b.limit(), b.off+p, md.Byte, uint64(mbits.Reverse8(uint8(x))))
	}
	return true
}

// CopyTo copies min(b.Len(), dest.Len()) bits from the start of b to the start
// of dest and returns that count.
func (b *BitBuffer) CopyTo(dest *BitBuffer) (int64, error) {
	if err := gut.RequireNonNil(dest, "destination"); err != nil {
		return 0, err
	}
	n := b.n
	if dest.n < n {
		n = dest.n
	}
	if data, soff, doff, ok := shared(b, dest); ok {
		bits.Move(data, doff, soff, n)
	} else {
		bits.Copy(dest.data, dest.off, b.data, b.off, n)
	}
	return n, nil
}

// Fill sets every bit to v.
func (b *BitBuffer) Fill(v bool) {
	bits.Fill(b.data, b.off, b.n, v)
}

// Clear sets every bit to zero.
func (b *BitBuffer) Clear() {
	b.Fill(false)
}

// OnesCount returns the number of set bits.
func (b *BitBuffer) OnesCount() int64 {
	var c int64
	for done := int64(0); done < b.n; {
		w := chunkWidth(b.n - done)
		x, _ := bits.ReadBits(b.data, b.limit(), b.off+done, w)
		c += int64(mbits.OnesCount64(x))
		done += int64(w)
	}
	return c
}

// shared reports whether a and b sit on the same backing array, comparing the
// last element of their capacities. If so it returns the slice reaching
// furthest back together with the window starts of a and b inside it.
func shared(a, b *BitBuffer) (data []byte, aoff, boff int64, ok bool) {
	ca, cb := cap(a.data), cap(b.data)
	if ca == 0 || cb == 0 {
		return nil, 0, 0, false
	}
	if &a.data[:ca][ca-1] != &b.data[:cb][cb-1] {
		return nil, 0, 0, false
	}
	if ca >= cb {
		return a.data[:ca], a.off, b.off + int64(ca-cb)*md.BitsPerByte, true
	}
	return b.data[:cb], a.off + int64(cb-ca)*md.BitsPerByte, b.off, true
}

func chunkWidth(n int64) int {
	if n > md.MaxWidth {
		return md.MaxWidth
	}
	return int(n)
}
