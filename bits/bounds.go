package bits

import (
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

// CheckWidth validates an access width against [1, max].
func CheckWidth(width, max int) error {
	if width < md.MinWidth || width > max {
		return errors.Wrapf(gut.ErrInvalidArgument, "invalid width; expected: [1, %d], given: %d", max, width)
	}
	return nil
}

// CheckPosition validates pos >= 0.
func CheckPosition(pos int64) error {
	return gut.RequireNonNegative(pos, "position")
}

// CheckAccess validates a width-bit access at pos inside [0, limit).
// Argument errors are reported before bounds errors.
func CheckAccess(pos int64, width int, limit int64) error {
	if err := CheckPosition(pos); err != nil {
		return err
	}
	if err := CheckWidth(width, md.MaxWidth); err != nil {
		return err
	}
	return CheckFits(pos, int64(width), limit)
}

// CheckFits validates that n bits starting at pos end at or before limit.
// Both pos and n are assumed non-negative.
func CheckFits(pos, n, limit int64) error {
	if pos > limit || n > limit-pos {
		return errors.Wrapf(gut.ErrOutOfBounds, "%d bits at %d exceed length %d", n, pos, limit)
	}
	return nil
}

// CheckRange validates a [start, start+length) window against limit.
func CheckRange(start, length, limit int64) error {
	if err := gut.RequireNonNegative(start, "start"); err != nil {
		return err
	}
	if err := gut.RequireNonNegative(length, "length"); err != nil {
		return err
	}
	return CheckFits(start, length, limit)
}

// CheckLength validates a buffer length in bits.
func CheckLength(nbits int64) error {
	if err := gut.RequireNonNegative(nbits, "length"); err != nil {
		return err
	}
	if nbits > md.MaxBits {
		return errors.Wrapf(gut.ErrOutOfBounds, "invalid length; expected: <= %d, given: %d", md.MaxBits, nbits)
	}
	return nil
}

// CheckStorage validates that data can hold limit bits.
func CheckStorage(data []byte, limit int64) error {
	if limit > int64(len(data))*md.BitsPerByte {
		return errors.Wrapf(gut.ErrOutOfBounds, "%d bits exceed storage of %d bytes", limit, len(data))
	}
	return nil
}
