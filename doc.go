/*
Package bitbuf provides BitBuffer, a fixed-length buffer addressed in bits.

A BitBuffer behaves like a byte slice whose length and access granularity are
measured in individual bits. Fields of 1 to 64 bits can be read and written at
any bit position; fields are big-endian, so the first bit of a field is its
most significant bit:

	b := bitbuf.Must(bitbuf.Wrap([]byte{0xFF, 0xEE, 0xCC, 0xAA}))
	v, _ := b.GetBitsAsInt32(8, 4) // 0xE

Buffers never change length. Put operations overwrite content; a failed put
leaves the buffer untouched. Every accessor reports ErrInvalidArgument for a
negative position or a width outside [1, 64] and ErrOutOfBounds when the field
does not fit. The InBounds variants never fail on a short buffer: they read or
write the bits that remain and report how many that was.

Slices come in two kinds. SliceShallow returns a view sharing storage with its
source, so writes through either are visible through the other. SliceDeep
copies the addressed bits. A BitBuffer has no internal locking; shallow views
that cross goroutines must be serialized by the caller, for example with
sync.Guard from this module.
*/
package bitbuf
