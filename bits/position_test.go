package bits

import (
	"math"
	"testing"

	"github.com/pi/bitbuf/gut"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	p, err := At(3, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 29, p.Bit())
	assert.False(t, p.Aligned())
	assert.Equal(t, "3:5", p.String())

	q, err := FromBit(29)
	require.NoError(t, err)
	assert.Equal(t, p, q)
	assert.Equal(t, 0, p.Compare(q))

	_, err = At(0, 8)
	assert.True(t, errors.Is(err, gut.ErrInvalidArgument))

	last, err := FromBit(MaxPosition)
	require.NoError(t, err)
	assert.EqualValues(t, uint32(math.MaxUint32), last.Byte)
	assert.EqualValues(t, 7, last.Offset)
	_, err = FromBit(MaxPosition + 1)
	assert.True(t, errors.Is(err, gut.ErrOverflow))
}

func TestPositionArithmetic(t *testing.T) {
	p, _ := At(1, 6)
	q, err := p.Add(3)
	require.NoError(t, err)
	assert.Equal(t, Position{Byte: 2, Offset: 1}, q)
	assert.EqualValues(t, 3, q.Sub(p))
	assert.Equal(t, -1, p.Compare(q))
	assert.Equal(t, 1, q.Compare(p))

	back, err := q.Add(-3)
	require.NoError(t, err)
	assert.Equal(t, p, back)

	_, err = p.Add(-15)
	assert.True(t, errors.Is(err, gut.ErrOverflow))
	last, _ := FromBit(MaxPosition)
	_, err = last.Add(1)
	assert.True(t, errors.Is(err, gut.ErrOverflow))
	_, err = p.Add(math.MinInt64)
	assert.True(t, errors.Is(err, gut.ErrOverflow))
}

func TestByteIndex(t *testing.T) {
	b, err := ByteIndex(4)
	require.NoError(t, err)
	assert.EqualValues(t, 32, b)

	_, err = ByteIndex(-1)
	assert.True(t, errors.Is(err, gut.ErrInvalidArgument))
}
