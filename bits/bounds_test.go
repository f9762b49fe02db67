package bits

import (
	"math"
	"testing"

	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckAccessOrder(t *testing.T) {
	// a negative position wins over an out of range width and end
	err := CheckAccess(-1, 100, 8)
	assert.True(t, errors.Is(err, gut.ErrInvalidArgument))

	err = CheckAccess(0, 0, 8)
	assert.True(t, errors.Is(err, gut.ErrInvalidArgument))

	err = CheckAccess(1, 8, 8)
	assert.True(t, errors.Is(err, gut.ErrOutOfBounds))

	assert.NoError(t, CheckAccess(0, 8, 8))
	assert.NoError(t, CheckAccess(7, 1, 8))
}

func TestCheckFitsOverflow(t *testing.T) {
	err := CheckFits(math.MaxInt64, math.MaxInt64, 16)
	assert.True(t, errors.Is(err, gut.ErrOutOfBounds))
	err = CheckFits(4, math.MaxInt64, 16)
	assert.True(t, errors.Is(err, gut.ErrOutOfBounds))
	assert.NoError(t, CheckFits(16, 0, 16))
}

func TestCheckRangeAndLength(t *testing.T) {
	assert.True(t, errors.Is(CheckRange(-1, 2, 8), gut.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckRange(1, -2, 8), gut.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckRange(4, 5, 8), gut.ErrOutOfBounds))
	assert.NoError(t, CheckRange(4, 4, 8))

	assert.NoError(t, CheckLength(md.MaxBits))
	assert.True(t, errors.Is(CheckLength(md.MaxBits+1), gut.ErrOutOfBounds))
	assert.True(t, errors.Is(CheckLength(-8), gut.ErrInvalidArgument))

	assert.NoError(t, CheckStorage(make([]byte, 2), 16))
	assert.True(t, errors.Is(CheckStorage(make([]byte, 2), 17), gut.ErrOutOfBounds))
}

func TestCheckWidth(t *testing.T) {
	assert.NoError(t, CheckWidth(13, 16))
	assert.True(t, errors.Is(CheckWidth(17, 16), gut.ErrInvalidArgument))
}
