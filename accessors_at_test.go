package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteIndexedAccessors(t *testing.T) {
	data := make([]byte, 16)
	b := Must(Wrap(data))

	require.NoError(t, b.PutUint16At(1, 0xBEEF))
	require.Equal(t, []byte{0x00, 0xBE, 0xEF}, data[:3])
	u16, err := b.GetUint16At(1)
	require.NoError(t, err)
	require.EqualValues(t, 0xBEEF, u16)

	require.NoError(t, b.PutInt8At(3, -1))
	i8, err := b.GetInt8At(3)
	require.NoError(t, err)
	require.EqualValues(t, -1, i8)
	u8, err := b.GetUint8At(3)
	require.NoError(t, err)
	require.EqualValues(t, 0xFF, u8)

	require.NoError(t, b.PutInt32At(4, -7))
	i32, err := b.GetInt32At(4)
	require.NoError(t, err)
	require.EqualValues(t, -7, i32)
	u32, err := b.GetUint32At(4)
	require.NoError(t, err)
	require.EqualValues(t, uint32(0xFFFFFFF9), u32)

	require.NoError(t, b.PutFloat64At(8, 3.25))
	f64, err := b.GetFloat64At(8)
	require.NoError(t, err)
	require.Equal(t, 3.25, f64)
	u64, err := b.GetUint64At(8)
	require.NoError(t, err)
	require.EqualValues(t, uint64(0x400A000000000000), u64)

	require.NoError(t, b.PutFloat32At(0, 1))
	f32, err := b.GetFloat32At(0)
	require.NoError(t, err)
	require.Equal(t, float32(1), f32)

	require.NoError(t, b.PutUint64At(8, 1))
	i64, err := b.GetInt64At(8)
	require.NoError(t, err)
	require.EqualValues(t, 1, i64)
	require.NoError(t, b.PutInt16At(14, -2))
	i16, err := b.GetInt16At(14)
	require.NoError(t, err)
	require.EqualValues(t, -2, i16)
	require.NoError(t, b.PutUint8At(15, 7))
	require.NoError(t, b.PutUint32At(0, 0))
	require.NoError(t, b.PutInt64At(8, 0))

	require.NoError(t, b.PutBitAt(2, true))
	bit, err := b.GetBitAt(2)
	require.NoError(t, err)
	require.True(t, bit)
	require.Equal(t, byte(0x80), data[2])
}

func TestByteIndexedErrors(t *testing.T) {
	b := Must(New(20))
	_, err := b.GetUint8At(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, b.PutInt16At(-3, 0), ErrInvalidArgument)
	_, err = b.GetUint16At(1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorIs(t, b.PutUint8At(2, 1), ErrOutOfBounds)
	_, err = b.GetBitAt(3)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.EqualValues(t, 0, b.OnesCount())
}
