package bitbuf

import (
	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

// Slicer is implemented by types that can be cut by position into views
// sharing storage (shallow) or into independent copies (deep).
type Slicer[T any] interface {
	SliceShallow(start, length int64) (T, error)
	SliceDeep(start, length int64) (T, error)
}

var _ Slicer[*BitBuffer] = (*BitBuffer)(nil)

// SliceShallow returns a view of length bits starting at start. The view
// shares storage with b.
func (b *BitBuffer) SliceShallow(start, length int64) (*BitBuffer, error) {
	if err := bits.CheckRange(start, length, b.n); err != nil {
		return nil, err
	}
	return b.view(start, length), nil
}

// SliceShallowFrom returns a shared view from start to the end of b.
func (b *BitBuffer) SliceShallowFrom(start int64) (*BitBuffer, error) {
	if err := bits.CheckRange(start, 0, b.n); err != nil {
		return nil, err
	}
	return b.SliceShallow(start, b.n-start)
}

// SliceDeep returns a copy of length bits starting at start.
func (b *BitBuffer) SliceDeep(start, length int64) (*BitBuffer, error) {
	if err := bits.CheckRange(start, length, b.n); err != nil {
		return nil, err
	}
	return b.copyOf(start, length), nil
}

// SliceDeepFrom returns a copy from start to the end of b.
func (b *BitBuffer) SliceDeepFrom(start int64) (*BitBuffer, error) {
	if err := bits.CheckRange(start, 0, b.n); err != nil {
		return nil, err
	}
	return b.SliceDeep(start, b.n-start)
}

// Clone returns an owned copy of b.
func (b *BitBuffer) Clone() *BitBuffer {
	return b.copyOf(0, b.n)
}

func (b *BitBuffer) view(start, length int64) *BitBuffer {
	return &BitBuffer{data: b.data, off: b.off + start, n: length}
}

func (b *BitBuffer) copyOf(start, length int64) *BitBuffer {
	c := &BitBuffer{data: make([]byte, md.BytesFor(length)), n: length, owned: true}
	bits.Copy(c.data, 0, b.data, b.off+start, length)
	return c
}

// Split cuts b into shallow slices of length bits. The last slice holds the
// remainder and is shorter when Len() is not a multiple of length.
func (b *BitBuffer) Split(length int64) ([]*BitBuffer, error) {
	if length <= 0 {
		return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid split length; expected: > 0, given: %d", length)
	}
	out := make([]*BitBuffer, 0, (b.n+length-1)/length)
	for p := int64(0); p < b.n; p += length {
		l := length
		if rem := b.n - p; rem < l {
			l = rem
		}
		out = append(out, b.view(p, l))
	}
	return out, nil
}

// IndexOf returns the first bit position at or after from where the bits of
// sep occur in b, or -1.
func (b *BitBuffer) IndexOf(sep *BitBuffer, from int64) (int64, error) {
	return b.indexOf(sep, from, 1)
}

func (b *BitBuffer) indexOf(sep *BitBuffer, from, step int64) (int64, error) {
	if err := checkSeparator(sep); err != nil {
		return 0, err
	}
	if err := bits.CheckPosition(from); err != nil {
		return 0, err
	}
	if r := from % step; r != 0 {
		from += step - r
	}
	for p := from; p <= b.n-sep.n; p += step {
		if bits.Equal(b.data, b.off+p, sep.data, sep.off, sep.n) {
			return p, nil
		}
	}
	return -1, nil
}

func checkSeparator(sep *BitBuffer) error {
	if err := gut.RequireNonNil(sep, "separator"); err != nil {
		return err
	}
	return gut.Require(sep.n > 0, gut.ErrInvalidArgument, "empty separator")
}

// SplitBy cuts b around every occurrence of sep, scanning one bit at a time.
// Separators are consumed. Like strings.Split, adjacent separators and
// separators at either end produce empty pieces. Pieces are shallow slices.
//
// Matching is bit-granular, so a byte-sized separator can also match across
// byte boundaries: FE 01 CC A0 10 FE split by 01 yields three pieces, not two,
// because the bits of A0 10 contain 0000_0001 at offset 4. Use
// SplitByAligned(sep, 8) to match whole bytes only.
func (b *BitBuffer) SplitBy(sep *BitBuffer) ([]*BitBuffer, error) {
	return b.splitBy(sep, 1)
}

// SplitByAligned is SplitBy considering only matches at multiples of step,
// e.g. 8 for byte-aligned separators.
func (b *BitBuffer) SplitByAligned(sep *BitBuffer, step int64) ([]*BitBuffer, error) {
	if step <= 0 {
		return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid step; expected: > 0, given: %d", step)
	}
	return b.splitBy(sep, step)
}

func (b *BitBuffer) splitBy(sep *BitBuffer, step int64) ([]*BitBuffer, error) {
	s := newSplitter(b, sep, step)
	var out []*BitBuffer
	for {
		piece, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, piece)
	}
}

// splitter yields the pieces of a separator split one at a time.
type splitter struct {
	b, sep *BitBuffer
	step   int64
	pos    int64
	done   bool
}

func newSplitter(b, sep *BitBuffer, step int64) *splitter {
	return &splitter{b: b, sep: sep, step: step}
}

func (s *splitter) next() (*BitBuffer, bool, error) {
	if s.done {
		return nil, false, nil
	}
	at, err := s.b.indexOf(s.sep, s.pos, s.step)
	if err != nil {
		return nil, false, err
	}
	if at < 0 {
		s.done = true
		return s.b.view(s.pos, s.b.n-s.pos), true, nil
	}
	piece := s.b.view(s.pos, at-s.pos)
	s.pos = at + s.sep.n
	return piece, true, nil
}
