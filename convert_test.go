package bitbuf

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToBytesLeftAligned(t *testing.T) {
	b := Must(New(7))
	b.Fill(true)
	require.Equal(t, []byte{0xFE}, b.ToBytes())

	// unaligned view
	w := Must(Wrap([]byte{0x0F, 0xF0}))
	v := Must(w.SliceShallow(4, 7))
	require.Equal(t, []byte{0xFE}, v.ToBytes())

	require.Empty(t, Must(New(0)).ToBytes())
}

func TestToWords(t *testing.T) {
	b := Must(FromUint64(0xABCDE, 20))
	require.Equal(t, []uint16{0xABCD, 0xE000}, b.ToUint16s())
	require.Equal(t, []uint32{0xABCDE000}, b.ToUint32s())
	require.Equal(t, []uint64{0xABCDE00000000000}, b.ToUint64s())
	require.Equal(t, []int8{-85, -51, -32}, b.ToInt8s())
	require.Equal(t, []int16{-21555, -8192}, b.ToInt16s())
	require.Equal(t, []uint8{0xAB, 0xCD, 0xE0}, ToWords[uint8](b))
}

func TestFromWords(t *testing.T) {
	b, err := FromWords([]uint16{0xABCD, 0x0001})
	require.NoError(t, err)
	require.EqualValues(t, 32, b.Len())
	v, err := b.GetUint32(0)
	require.NoError(t, err)
	require.EqualValues(t, 0xABCD0001, v)

	b, err = FromWords([]uint64(nil))
	require.NoError(t, err)
	require.EqualValues(t, 0, b.Len())
}

func TestToFloats(t *testing.T) {
	b := Must(New(128))
	require.NoError(t, b.PutFloat64(0, 2.5))
	require.NoError(t, b.PutFloat64(64, -1))
	require.Equal(t, []float64{2.5, -1}, b.ToFloat64s())

	require.NoError(t, b.PutFloat32(0, 0.5))
	require.Equal(t, float32(0.5), b.ToFloat32s()[0])
	require.Len(t, b.ToInt32s(), 4)
	require.Len(t, b.ToInt64s(), 2)
}

func TestFromUint64(t *testing.T) {
	b, err := FromUint64(0x1FF, 8)
	require.NoError(t, err)
	require.Equal(t, "11111111", b.String())
	_, err = FromUint64(1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromUint64(1, 65)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBigInt(t *testing.T) {
	b := Must(FromUint64(0xFE, 8))
	require.Equal(t, big.NewInt(-2), b.ToBigInt())
	require.Equal(t, big.NewInt(254), b.ToUnsignedBigInt())

	// seven ones are read left-aligned as 0xFE
	seven := Must(ParseBinary("1111111"))
	require.Equal(t, big.NewInt(-2), seven.ToBigInt())

	require.Equal(t, 0, Must(New(0)).ToBigInt().Sign())

	long := Must(ParseHex("0123456789abcdef0123"))
	want, ok := new(big.Int).SetString("0123456789abcdef0123", 16)
	require.True(t, ok)
	require.Equal(t, want, long.ToBigInt())
}

func TestFromBigInt(t *testing.T) {
	for _, tc := range []struct {
		v     int64
		nbits int64
		want  string
	}{
		{-2, 8, "11111110"},
		{-128, 8, "10000000"},
		{255, 8, "11111111"},
		{-1, 12, "111111111111"},
		{5, 3, "101"},
		{0, 1, "0"},
	} {
		b, err := FromBigInt(big.NewInt(tc.v), tc.nbits)
		require.NoError(t, err, "%d in %d bits", tc.v, tc.nbits)
		require.Equal(t, tc.want, b.String())
	}

	for _, tc := range []struct{ v, nbits int64 }{{-129, 8}, {256, 8}, {-1, 0}, {8, 3}} {
		_, err := FromBigInt(big.NewInt(tc.v), tc.nbits)
		require.ErrorIs(t, err, ErrOverflow, "%d in %d bits", tc.v, tc.nbits)
	}
	_, err := FromBigInt(nil, 8)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// round trip through the signed reading on byte multiples
	v := big.NewInt(-123456789)
	b, err := FromBigInt(v, 40)
	require.NoError(t, err)
	require.Equal(t, v, b.ToBigInt())
}

func TestToDecimal(t *testing.T) {
	b := Must(FromUint64(1234, 16))
	require.True(t, decimal.RequireFromString("12.34").Equal(b.ToDecimal(2)))
	n := Must(FromUint64(0xFFFF, 16))
	require.True(t, decimal.RequireFromString("-0.001").Equal(n.ToDecimal(3)))
}
