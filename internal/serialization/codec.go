package serialization

import (
	"encoding/binary"
	"io"
)

// Codec reads and writes single values of type T against a byte
// stream. Any T with a Codec plugs into the grid-level Encode and
// Decode routines; the grid never opens or closes streams itself.
type Codec[T any] interface {
	// Read decodes one value from r.
	Read(r io.Reader) (T, error)

	// Write encodes one value to w.
	Write(w io.Writer, v T) error
}

// DType is a constraint for the fixed-width element types with a
// built-in little-endian codec.
type DType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | ~bool
}

// binaryCodec encodes fixed-width values with encoding/binary in
// little-endian byte order.
type binaryCodec[T DType] struct{}

func (binaryCodec[T]) Read(r io.Reader) (T, error) {
	var v T
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func (binaryCodec[T]) Write(w io.Writer, v T) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// Binary returns the little-endian codec for a fixed-width element
// type. Booleans encode as a single byte (0 or 1).
func Binary[T DType]() Codec[T] {
	return binaryCodec[T]{}
}
