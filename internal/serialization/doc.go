// Package serialization provides the binary wire format for grids and
// the native .grd2 container file format.
//
// The wire format is a plain length-prefixed stream, parameterized by
// an element codec:
//
//	Stream Structure:
//	  [8 bytes: Width (uint64 LE)]
//	  [8 bytes: Height (uint64 LE)]
//	  [Elements: width*height encodings in linear x-major order]
//
// Any element type with a Codec makes the grid itself encodable, and
// GridCodec lets grids nest recursively (a grid of grids).
//
// The .grd2 file format wraps a single grid in a self-describing
// container:
//
//	Format Structure:
//	  [4 bytes: Magic "GRD2"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata, includes SHA-256 checksum of the data]
//	  [Element data: raw little-endian values, 64-byte aligned]
//
// Example usage:
//
//	// Stream round-trip
//	var buf bytes.Buffer
//	err := serialization.Encode(&buf, g, serialization.Binary[float64]())
//	g2, err := serialization.Decode(&buf, serialization.Binary[float64]())
//
//	// File round-trip
//	err := serialization.Save("heights.grd2", g, nil)
//	g2, err := serialization.Load[float64]("heights.grd2")
package serialization
