package bitbuf

import (
	"testing"

	"github.com/pi/bitbuf/md"
	"github.com/pi/bitbuf/th"
	"github.com/stretchr/testify/require"
)

func TestGetBitsAsInt(t *testing.T) {
	b := Must(Wrap([]byte{0xFF, 0xEE, 0xCC, 0xAA}))
	v, err := b.GetBitsAsInt32(8, 4)
	require.NoError(t, err)
	require.EqualValues(t, 0xE, v)

	v8, err := b.GetBitsAsInt8(12, 8)
	require.NoError(t, err)
	require.EqualValues(t, int8(-20), v8) // 0xEC

	_, err = b.GetBitsAsInt8(0, 9)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = b.GetBitsAsInt16(-1, 4)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = b.GetBitsAsInt64(30, 4)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGetPutBitsErrors(t *testing.T) {
	b := Must(Wrap([]byte{0xFF, 0xEE, 0xCC, 0xAA}))

	_, err := b.GetBits(-1, 8)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = b.GetBits(0, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = b.GetBits(0, 65)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = b.GetBits(30, 8)
	require.ErrorIs(t, err, ErrOutOfBounds)
	// argument errors win over bounds errors
	_, err = b.GetBits(100, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	before := b.ToBytes()
	require.ErrorIs(t, b.PutBits(30, 8, 0), ErrOutOfBounds)
	require.ErrorIs(t, b.PutUint64(0, 0), ErrOutOfBounds)
	require.Equal(t, before, b.ToBytes())
}

func TestGetPutFixedWidths(t *testing.T) {
	b := Must(New(200))
	require.NoError(t, b.PutInt8(3, -2))
	require.NoError(t, b.PutUint16(11, 0xBEEF))
	require.NoError(t, b.PutInt32(27, -123456))
	require.NoError(t, b.PutUint64(59, 0x0123456789ABCDEF))
	require.NoError(t, b.PutInt64(123, -1))

	i8, err := b.GetInt8(3)
	require.NoError(t, err)
	require.EqualValues(t, -2, i8)
	u8, err := b.GetUint8(3)
	require.NoError(t, err)
	require.EqualValues(t, 0xFE, u8)
	u16, err := b.GetUint16(11)
	require.NoError(t, err)
	require.EqualValues(t, 0xBEEF, u16)
	i16, err := b.GetInt16(11)
	require.NoError(t, err)
	require.EqualValues(t, int16(-16657), i16)
	i32, err := b.GetInt32(27)
	require.NoError(t, err)
	require.EqualValues(t, -123456, i32)
	u64, err := b.GetUint64(59)
	require.NoError(t, err)
	require.EqualValues(t, uint64(0x0123456789ABCDEF), u64)
	i64, err := b.GetInt64(123)
	require.NoError(t, err)
	require.EqualValues(t, -1, i64)
	u32, err := b.GetUint32(123)
	require.NoError(t, err)
	require.EqualValues(t, uint32(0xFFFFFFFF), u32)
}

func TestPutBitsAs(t *testing.T) {
	b := Must(New(16))
	require.NoError(t, b.PutBitsAsInt8(2, 3, 0x7F))
	require.Equal(t, "0011100000000000", b.String())
	require.NoError(t, b.PutBitsAsInt16(6, 10, -1))
	require.Equal(t, "0011101111111111", b.String())
	require.ErrorIs(t, b.PutBitsAsInt32(0, 33, 0), ErrInvalidArgument)
	require.ErrorIs(t, b.PutBitsAsInt64(10, 7, 0), ErrOutOfBounds)
	require.Equal(t, "0011101111111111", b.String())
}

func TestSignedBits(t *testing.T) {
	b := Must(Wrap([]byte{0xF0, 0x70}))
	v, err := b.GetSignedBits(0, 4)
	require.NoError(t, err)
	require.EqualValues(t, -1, v)
	v, err = b.GetSignedBits(8, 4)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)
	v, err = b.GetSignedBits(0, 16)
	require.NoError(t, err)
	require.EqualValues(t, -3984, v) // 0xF070
}

func TestInBounds(t *testing.T) {
	b := Must(New(5))
	require.NoError(t, b.PutBits(0, 5, 0b10110))

	v, n, err := b.GetUint8InBounds(0)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.EqualValues(t, 0b10110, v)

	v, n, err = b.GetUint8InBounds(3)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.EqualValues(t, 0b10, v)

	v, n, err = b.GetUint8InBounds(5)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.EqualValues(t, 0, v)

	_, _, err = b.GetInt64InBounds(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// writes the low bits that fit
	n, err = b.PutUint16InBounds(2, 0xFFF5)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "10101", b.String())

	n, err = b.PutInt32InBounds(9, -1)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, "10101", b.String())

	bit, n, err := b.GetBitInBounds(4)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, bit)
	n, err = b.PutBitInBounds(4, false)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "10100", b.String())
}

func TestBits(t *testing.T) {
	b := Must(New(10))
	require.NoError(t, b.PutBit(9, true))
	require.NoError(t, b.PutBit(0, true))
	v, err := b.GetBit(9)
	require.NoError(t, err)
	require.True(t, v)
	v, err = b.GetBit(5)
	require.NoError(t, err)
	require.False(t, v)
	_, err = b.GetBit(10)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, "1000000001", b.String())
}

func TestFloats(t *testing.T) {
	b := Must(New(100))
	require.NoError(t, b.PutFloat64(3, 1.5))
	require.NoError(t, b.PutFloat32(67, -0.25))
	f64, err := b.GetFloat64(3)
	require.NoError(t, err)
	require.Equal(t, 1.5, f64)
	f32, err := b.GetFloat32(67)
	require.NoError(t, err)
	require.Equal(t, float32(-0.25), f32)

	_, n, err := b.GetFloat64InBounds(90)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	n, err = b.PutFloat32InBounds(80, 2)
	require.NoError(t, err)
	require.Equal(t, 20, n)
}

func TestRandomAccessRoundTrip(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	b := Must(New(4096))
	for i := 0; i < 2000; i++ {
		w := th.Width(g)
		pos := int64(th.Intn(g, int(b.Len())-w+1))
		v := g.Next()
		require.NoError(t, b.PutBits(pos, w, v))
		got, err := b.GetBits(pos, w)
		require.NoError(t, err)
		require.Equal(t, v&md.Mask(w), got)
	}
}

func TestSignedBitsEveryWidth(t *testing.T) {
	// alternates small and near-max values so the top bit of every width flips
	g := th.NewSeqGen(th.SgTwist)
	r := th.NewSeqGen(th.SgRand)
	b := Must(New(256))
	for w := md.MinWidth; w <= md.MaxWidth; w++ {
		for i := 0; i < 8; i++ {
			v := g.Next()
			pos := int64(th.Intn(r, int(b.Len())-w+1))
			require.NoError(t, b.PutBits(pos, w, v))
			shift := uint(md.MaxWidth - w)
			s, err := b.GetSignedBits(pos, w)
			require.NoError(t, err)
			require.Equal(t, int64(v<<shift)>>shift, s, "width %d value %#x", w, v)
			u, err := b.GetBits(pos, w)
			require.NoError(t, err)
			require.Equal(t, v&md.Mask(w), u)
		}
	}
}
