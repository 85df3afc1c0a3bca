package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/grid2d-go/grid2d/internal/grid"
)

// MaxElements caps the element count accepted by Decode. It protects
// against hostile streams declaring absurd dimensions before any
// allocation happens.
const MaxElements = 1 << 40

// Encode writes g to w in the grid wire format: width and height as
// little-endian uint64, then width*height element encodings in linear
// x-major order. Any underlying write failure propagates immediately.
//
// Width and height use a fixed 64-bit encoding rather than a
// platform-dependent word size, so the stream is portable across
// architectures.
func Encode[T any](w io.Writer, g *grid.Grid[T], elem Codec[T]) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(g.Width())); err != nil {
		return fmt.Errorf("failed to write width: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(g.Height())); err != nil {
		return fmt.Errorf("failed to write height: %w", err)
	}
	for i, v := range g.Data() {
		if err := elem.Write(w, v); err != nil {
			return fmt.Errorf("failed to write element %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a grid from r: width, height, then exactly
// width*height element decodes in linear x-major order. Any underlying
// read failure propagates immediately and no partial grid is returned.
func Decode[T any](r io.Reader, elem Codec[T]) (*grid.Grid[T], error) {
	var w64, h64 uint64
	if err := binary.Read(r, binary.LittleEndian, &w64); err != nil {
		return nil, fmt.Errorf("failed to read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h64); err != nil {
		return nil, fmt.Errorf("failed to read height: %w", err)
	}
	if err := checkDims(w64, h64); err != nil {
		return nil, err
	}

	w, h := int(w64), int(h64)
	data := make([]T, w*h)
	for i := range data {
		v, err := elem.Read(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read element %d: %w", i, err)
		}
		data[i] = v
	}

	return grid.FromSlice(data, w, h)
}

// checkDims rejects dimension pairs whose element count cannot be
// addressed or exceeds MaxElements.
func checkDims(w, h uint64) error {
	if w > math.MaxInt || h > math.MaxInt {
		return fmt.Errorf("%w: dimensions (%d, %d)", ErrGridTooLarge, w, h)
	}
	if h != 0 && w > MaxElements/h {
		return fmt.Errorf("%w: dimensions (%d, %d)", ErrGridTooLarge, w, h)
	}
	if w*h > math.MaxInt {
		return fmt.Errorf("%w: dimensions (%d, %d)", ErrGridTooLarge, w, h)
	}
	return nil
}

// GridCodec adapts a grid to the Codec interface so grids themselves
// become elements: GridCodec[T] is a Codec[*grid.Grid[T]], which lets
// grids nest recursively.
type GridCodec[T any] struct {
	Elem Codec[T]
}

func (c GridCodec[T]) Read(r io.Reader) (*grid.Grid[T], error) {
	return Decode(r, c.Elem)
}

func (c GridCodec[T]) Write(w io.Writer, g *grid.Grid[T]) error {
	return Encode(w, g, c.Elem)
}
