package gut

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(true, ErrOutOfBounds, "never"))

	err := Require(false, ErrOutOfBounds, "position %d", 12)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "position 12")
}

func TestRequireNonNil(t *testing.T) {
	var p *int
	var s []byte
	assert.Error(t, RequireNonNil(nil, "x"))
	assert.Error(t, RequireNonNil(p, "p"))
	assert.Error(t, RequireNonNil(s, "s"))
	assert.NoError(t, RequireNonNil(3, "n"))
	assert.NoError(t, RequireNonNil([]byte{}, "empty"))

	err := RequireNonNil(p, "separator")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "separator")
}

func TestRequireNonNegative(t *testing.T) {
	assert.NoError(t, RequireNonNegative(0, "pos"))
	assert.True(t, errors.Is(RequireNonNegative(-1, "pos"), ErrInvalidArgument))
}

func TestAddMul(t *testing.T) {
	s, err := AddInt64(3, 4)
	assert.NoError(t, err)
	assert.EqualValues(t, 7, s)

	_, err = AddInt64(math.MaxInt64, 1)
	assert.True(t, errors.Is(err, ErrOverflow))
	_, err = AddInt64(math.MinInt64, -1)
	assert.True(t, errors.Is(err, ErrOverflow))

	p, err := MulInt64(1<<20, 8)
	assert.NoError(t, err)
	assert.EqualValues(t, 8<<20, p)

	_, err = MulInt64(math.MaxInt64/2, 3)
	assert.True(t, errors.Is(err, ErrOverflow))
	_, err = MulInt64(-1, math.MinInt64)
	assert.True(t, errors.Is(err, ErrOverflow))
}
