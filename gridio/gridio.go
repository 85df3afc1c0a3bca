// Copyright 2026 The grid2d Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gridio provides the public API for grid serialization: the
// length-prefixed binary stream codec and the .grd2 file format.
//
// The stream layout is fixed: width and height as little-endian
// uint64, then width*height element encodings in linear x-major
// order. Element encoding is supplied by a Codec, so any element type
// can participate, including grids themselves via GridCodec.
//
// Example:
//
//	var buf bytes.Buffer
//	err := gridio.Encode(&buf, g, gridio.Binary[float64]())
//	g2, err := gridio.Decode(&buf, gridio.Binary[float64]())
package gridio

import (
	"io"

	igrid "github.com/grid2d-go/grid2d/internal/grid"
	"github.com/grid2d-go/grid2d/internal/serialization"
)

// Type aliases for public API

// Codec reads and writes single values of type T against a byte
// stream. Implement it to serialize grids of custom element types.
type Codec[T any] = serialization.Codec[T]

// DType is a constraint for the fixed-width element types with a
// built-in little-endian codec.
type DType = serialization.DType

// GridCodec adapts a grid to the Codec interface, so grids nest
// recursively as elements of other grids.
type GridCodec[T any] = serialization.GridCodec[T]

// Header represents the JSON header of a .grd2 file.
type Header = serialization.Header

// Reader reads .grd2 files, exposing the parsed header without
// loading the data section.
type Reader = serialization.Reader

// Common errors.
var (
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrHeaderTooLarge     = serialization.ErrHeaderTooLarge
	ErrGridTooLarge       = serialization.ErrGridTooLarge
	ErrDTypeMismatch      = serialization.ErrDTypeMismatch
	ErrDataSizeMismatch   = serialization.ErrDataSizeMismatch
)

// Binary returns the built-in little-endian codec for a fixed-width
// element type.
func Binary[T DType]() Codec[T] {
	return serialization.Binary[T]()
}

// Encode writes g to w: width, height, then every element in linear
// x-major order. Any underlying write failure propagates immediately.
func Encode[T any](w io.Writer, g *igrid.Grid[T], elem Codec[T]) error {
	return serialization.Encode(w, g, elem)
}

// Decode reads a grid from r. Any underlying read failure propagates
// immediately and no partial grid is returned.
func Decode[T any](r io.Reader, elem Codec[T]) (*igrid.Grid[T], error) {
	return serialization.Decode(r, elem)
}

// Save writes g to path in .grd2 format with an optional metadata map.
func Save[T DType](path string, g *igrid.Grid[T], metadata map[string]string) error {
	return serialization.Save(path, g, metadata)
}

// Load reads a grid of element type T from a .grd2 file, verifying
// the stored dtype and the data checksum.
func Load[T DType](path string) (*igrid.Grid[T], error) {
	return serialization.Load[T](path)
}

// NewReader opens a .grd2 file and parses its header.
func NewReader(path string) (*Reader, error) {
	return serialization.NewReader(path)
}
