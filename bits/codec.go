// Package bits reads and writes bit fields of up to 64 bits at arbitrary bit
// positions inside a byte slice.
//
// Bits are numbered from the most significant bit of data[0]:
//
//	byte   0               1
//	      +---------------+---------------+-
//	      |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|
//	      +---------------+---------------+-
//	bit    0 1 2 3 4 5 6 7 8 9 ...
//
// A field is big-endian: its lowest-numbered bit is the most significant bit
// of the value. Every function takes a limit, the declared length of the
// storage in bits, and never touches bits at or beyond it.
package bits

import (
	"github.com/pi/bitbuf/md"
)

// ReadBits returns the width-bit field at pos.
func ReadBits(data []byte, limit, pos int64, width int) (uint64, error) {
	if err := CheckAccess(pos, width, limit); err != nil {
		return 0, err
	}
	return read(data, pos, width), nil
}

// WriteBits stores the low width bits of v at pos.
func WriteBits(data []byte, limit, pos int64, width int, v uint64) error {
	if err := CheckAccess(pos, width, limit); err != nil {
		return err
	}
	write(data, pos, width, v)
	return nil
}

// ReadBitsClamped reads as many of the requested bits as remain before limit.
// The bits read are right-aligned in v with the high bits zero; n reports how
// many were read and is 0 when pos is at or past limit.
func ReadBitsClamped(data []byte, limit, pos int64, width int) (v uint64, n int, err error) {
	if err = CheckPosition(pos); err != nil {
		return 0, 0, err
	}
	if err = CheckWidth(width, md.MaxWidth); err != nil {
		return 0, 0, err
	}
	n = clamp(limit, pos, width)
	if n == 0 {
		return 0, 0, nil
	}
	return read(data, pos, n), n, nil
}

// WriteBitsClamped stores the low n bits of v at pos, where n is the number of
// the requested width bits that fit before limit.
func WriteBitsClamped(data []byte, limit, pos int64, width int, v uint64) (n int, err error) {
	if err = CheckPosition(pos); err != nil {
		return 0, err
	}
	if err = CheckWidth(width, md.MaxWidth); err != nil {
		return 0, err
	}
	n = clamp(limit, pos, width)
	if n > 0 {
		write(data, pos, n, v)
	}
	return n, nil
}

func clamp(limit, pos int64, width int) int {
	if pos >= limit {
		return 0
	}
	if rem := limit - pos; rem < int64(width) {
		return int(rem)
	}
	return width
}

// read composes the field byte by byte: a partial head byte, whole bytes,
// then a partial tail byte.
func read(data []byte, pos int64, width int) uint64 {
	bi := pos >> md.ByteShift
	avail := md.BitsPerByte - int(pos&md.ByteMask)
	var v uint64
	for width > 0 {
		take := avail
		if take > width {
			take = width
		}
		chunk := (data[bi] >> uint(avail-take)) & byte(md.Mask(take))
		v = v<<uint(take) | uint64(chunk)
		width -= take
		bi++
		avail = md.BitsPerByte
	}
	return v
}

func write(data []byte, pos int64, width int, v uint64) {
	v &= md.Mask(width)
	bi := pos >> md.ByteShift
	avail := md.BitsPerByte - int(pos&md.ByteMask)
	for width > 0 {
		take := avail
		if take > width {
			take = width
		}
		shift := uint(avail - take)
		m := byte(md.Mask(take)) << shift
		chunk := byte(v>>uint(width-take)) << shift
		data[bi] = data[bi]&^m | chunk&m
		width -= take
		bi++
		avail = md.BitsPerByte
	}
}

// Move copies n bits from src to dst inside the same storage. Overlapping
// ranges are handled like memmove.
func Move(data []byte, dst, src, n int64) {
	if n <= 0 || dst == src {
		return
	}
	if dst < src || dst >= src+n {
		for done := int64(0); done < n; {
			w := chunk(n - done)
			write(data, dst+done, w, read(data, src+done, w))
			done += int64(w)
		}
		return
	}
	for left := n; left > 0; {
		w := chunk(left)
		left -= int64(w)
		write(data, dst+left, w, read(data, src+left, w))
	}
}

// Copy copies n bits from src at spos into dst at dpos. The slices must not
// share storage; use Move for that.
func Copy(dst []byte, dpos int64, src []byte, spos, n int64) {
	if n <= 0 {
		return
	}
	if dpos&md.ByteMask == 0 && spos&md.ByteMask == 0 {
		// aligned: whole bytes first
		whole := n >> md.ByteShift
		copy(dst[dpos>>md.ByteShift:], src[spos>>md.ByteShift:(spos>>md.ByteShift)+whole])
		done := whole << md.ByteShift
		dpos += done
		spos += done
		n -= done
	}
	for done := int64(0); done < n; {
		w := chunk(n - done)
		write(dst, dpos+done, w, read(src, spos+done, w))
		done += int64(w)
	}
}

// Fill sets n bits at pos to all ones or all zeros.
func Fill(data []byte, pos, n int64, one bool) {
	var v uint64
	if one {
		v = ^uint64(0)
	}
	for done := int64(0); done < n; {
		w := chunk(n - done)
		write(data, pos+done, w, v)
		done += int64(w)
	}
}

// Equal compares n bits of a at apos with n bits of b at bpos.
func Equal(a []byte, apos int64, b []byte, bpos, n int64) bool {
	for done := int64(0); done < n; {
		w := chunk(n - done)
		if read(a, apos+done, w) != read(b, bpos+done, w) {
			return false
		}
		done += int64(w)
	}
	return true
}

func chunk(n int64) int {
	if n > md.MaxWidth {
		return md.MaxWidth
	}
	return int(n)
}
