package bitbuf

import (
	"math"

	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

// Stream is a lazy, single-pass sequence of elements cut from a BitBuffer.
// Once Next reports false the stream is exhausted; derive a new one from the
// buffer to start over.
type Stream[T any] struct {
	next func() (T, bool, error)
	left func() int
	err  error
	done bool
	n    int
}

// newStream builds a stream from next. left reports how many elements are
// still to come; a nil left means the count is unknown in advance.
func newStream[T any](next func() (T, bool, error), left func() int) *Stream[T] {
	return &Stream[T]{next: next, left: left}
}

// Next returns the next element, or false when the stream is exhausted or
// failed; check Err to tell them apart.
func (s *Stream[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, ok, err := s.next()
	if err != nil || !ok {
		s.err = err
		s.done = true
		return zero, false
	}
	s.n++
	return v, true
}

// Err returns the error that ended the stream, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Count returns how many elements Next has produced.
func (s *Stream[T]) Count() int {
	return s.n
}

// Remaining returns how many elements Next will still produce, or -1 when
// that is unknown without scanning, as for SplitStream.
func (s *Stream[T]) Remaining() int {
	switch {
	case s.done:
		return 0
	case s.left == nil:
		return -1
	}
	return s.left()
}

// Collect drains the remaining elements.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for {
		v, ok := s.Next()
		if !ok {
			return out, s.err
		}
		out = append(out, v)
	}
}

// elements streams w-bit elements, zero-padding a short last element the way
// ToWords does.
func elements[T any](b *BitBuffer, w int, conv func(uint64) T) *Stream[T] {
	pos := int64(0)
	return newStream(func() (T, bool, error) {
		var zero T
		if pos >= b.n {
			return zero, false, nil
		}
		v := b.element(pos, w)
		pos += int64(w)
		return conv(v), true, nil
	}, func() int {
		return pieces(b.n-pos, int64(w))
	})
}

// Int32Stream streams 32-bit elements.
func (b *BitBuffer) Int32Stream() *Stream[int32] {
	return elements(b, md.Int, func(v uint64) int32 { return int32(v) })
}

// Int64Stream streams 64-bit elements.
func (b *BitBuffer) Int64Stream() *Stream[int64] {
	return elements(b, md.Long, func(v uint64) int64 { return int64(v) })
}

// Float64Stream streams 64-bit elements as IEEE 754 doubles.
func (b *BitBuffer) Float64Stream() *Stream[float64] {
	return elements(b, md.Long, math.Float64frombits)
}

// ChunkStream streams shallow slices of width bits, the last one holding the
// remainder.
func (b *BitBuffer) ChunkStream(width int64) (*Stream[*BitBuffer], error) {
	if width <= 0 {
		return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid chunk width; expected: > 0, given: %d", width)
	}
	pos := int64(0)
	return newStream(func() (*BitBuffer, bool, error) {
		if pos >= b.n {
			return nil, false, nil
		}
		l := width
		if rem := b.n - pos; rem < l {
			l = rem
		}
		c := b.view(pos, l)
		pos += l
		return c, true, nil
	}, func() int {
		return pieces(b.n-pos, width)
	}), nil
}

// SplitStream yields the pieces of SplitBy(sep) lazily.
func (b *BitBuffer) SplitStream(sep *BitBuffer) (*Stream[*BitBuffer], error) {
	if err := checkSeparator(sep); err != nil {
		return nil, err
	}
	return newStream(newSplitter(b, sep, 1).next, nil), nil
}

// pieces returns ceil(n/w) for n >= 0.
func pieces(n, w int64) int {
	if n <= 0 {
		return 0
	}
	return int((n + w - 1) / w)
}
