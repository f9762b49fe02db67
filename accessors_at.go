package bitbuf

import "github.com/pi/bitbuf/bits"

// Byte-indexed accessors address the field starting at bit 0 of byte index i.

func (b *BitBuffer) GetBitAt(i int) (bool, error) {
	pos, err := bits.ByteIndex(i)
	if err != nil {
		return false, err
	}
	return b.GetBit(pos)
}

func (b *BitBuffer) PutBitAt(i int, v bool) error {
	pos, err := bits.ByteIndex(i)
	if err != nil {
		return err
	}
	return b.PutBit(pos, v)
}

func getAt[T any](i int, get func(int64) (T, error)) (T, error) {
	pos, err := bits.ByteIndex(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return get(pos)
}

func putAt[T any](i int, put func(int64, T) error, v T) error {
	pos, err := bits.ByteIndex(i)
	if err != nil {
		return err
	}
	return put(pos, v)
}

func (b *BitBuffer) GetInt8At(i int) (int8, error)       { return getAt(i, b.GetInt8) }
func (b *BitBuffer) GetUint8At(i int) (uint8, error)     { return getAt(i, b.GetUint8) }
func (b *BitBuffer) GetInt16At(i int) (int16, error)     { return getAt(i, b.GetInt16) }
func (b *BitBuffer) GetUint16At(i int) (uint16, error)   { return getAt(i, b.GetUint16) }
func (b *BitBuffer) GetInt32At(i int) (int32, error)     { return getAt(i, b.GetInt32) }
func (b *BitBuffer) GetUint32At(i int) (uint32, error)   { return getAt(i, b.GetUint32) }
func (b *BitBuffer) GetInt64At(i int) (int64, error)     { return getAt(i, b.GetInt64) }
func (b *BitBuffer) GetUint64At(i int) (uint64, error)   { return getAt(i, b.GetUint64) }
func (b *BitBuffer) GetFloat32At(i int) (float32, error) { return getAt(i, b.GetFloat32) }
func (b *BitBuffer) GetFloat64At(i int) (float64, error) { return getAt(i, b.GetFloat64) }

func (b *BitBuffer) PutInt8At(i int, v int8) error       { return putAt(i, b.PutInt8, v) }
func (b *BitBuffer) PutUint8At(i int, v uint8) error     { return putAt(i, b.PutUint8, v) }
func (b *BitBuffer) PutInt16At(i int, v int16) error     { return putAt(i, b.PutInt16, v) }
func (b *BitBuffer) PutUint16At(i int, v uint16) error   { return putAt(i, b.PutUint16, v) }
func (b *BitBuffer) PutInt32At(i int, v int32) error     { return putAt(i, b.PutInt32, v) }
func (b *BitBuffer) PutUint32At(i int, v uint32) error   { return putAt(i, b.PutUint32, v) }
func (b *BitBuffer) PutInt64At(i int, v int64) error     { return putAt(i, b.PutInt64, v) }
func (b *BitBuffer) PutUint64At(i int, v uint64) error   { return putAt(i, b.PutUint64, v) }
func (b *BitBuffer) PutFloat32At(i int, v float32) error { return putAt(i, b.PutFloat32, v) }
func (b *BitBuffer) PutFloat64At(i int, v float64) error { return putAt(i, b.PutFloat64, v) }
