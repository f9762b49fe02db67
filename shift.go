package bitbuf

import (
	"github.com/pi/bitbuf/bits"
)

// Shift amounts outside [1, Len()-1] leave the buffer unchanged and report no
// error. Callers wanting modulo semantics must reduce the amount themselves.

func (b *BitBuffer) shiftable(n int64) bool {
	return n >= 1 && n <= b.n-1
}

// LogicalLeft shifts the content n bits toward bit 0. The vacated bits at the
// end become zero.
func (b *BitBuffer) LogicalLeft(n int64) {
	if !b.shiftable(n) {
		return
	}
	bits.Move(b.data, b.off, b.off+n, b.n-n)
	bits.Fill(b.data, b.off+b.n-n, n, false)
}

// ArithmeticLeft is LogicalLeft: left shifts do not depend on the sign.
func (b *BitBuffer) ArithmeticLeft(n int64) {
	b.LogicalLeft(n)
}

// LogicalRight shifts the content n bits toward the end. The vacated bits at
// the start become zero.
func (b *BitBuffer) LogicalRight(n int64) {
	if !b.shiftable(n) {
		return
	}
	bits.Move(b.data, b.off+n, b.off, b.n-n)
	bits.Fill(b.data, b.off, n, false)
}

// ArithmeticRight shifts like LogicalRight but fills the vacated bits with
// the original first bit.
func (b *BitBuffer) ArithmeticRight(n int64) {
	if !b.shiftable(n) {
		return
	}
	sign, _ := b.GetBit(0)
	bits.Move(b.data, b.off+n, b.off, b.n-n)
	bits.Fill(b.data, b.off, n, sign)
}

// RotateLeft rotates the content n bits toward bit 0; the bits shifted out
// of the start re-enter at the end.
func (b *BitBuffer) RotateLeft(n int64) {
	if !b.shiftable(n) {
		return
	}
	head := make([]byte, (n+7)/8)
	bits.Copy(head, 0, b.data, b.off, n)
	bits.Move(b.data, b.off, b.off+n, b.n-n)
	bits.Copy(b.data, b.off+b.n-n, head, 0, n)
}

// RotateRight rotates the content n bits toward the end.
func (b *BitBuffer) RotateRight(n int64) {
	if !b.shiftable(n) {
		return
	}
	b.RotateLeft(b.n - n)
}
