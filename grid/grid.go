// Copyright 2026 The grid2d Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for the fixed-size 2D container.
//
// A Grid stores width*height elements of any type in one contiguous
// buffer, with element (x, y) at linear offset x*height + y. The size
// is fixed at construction; there is no grow or resize path.
//
// Example:
//
//	g := grid.New(10, 4, 0.0)
//	g.Set(3, 1, 2.5)
//	for p, v := range g.All() {
//	    fmt.Println(p.X, p.Y, v)
//	}
package grid

import (
	"github.com/grid2d-go/grid2d/internal/grid"
)

// Type aliases for public API

// Grid is a fixed-size two-dimensional container backed by a single
// contiguous buffer.
//
// Indexed access is bounds-checked on every call; an out-of-range
// coordinate panics with the grid's dimensions and the offending
// index. Reads may be shared between goroutines, but any write
// requires exclusive access to the grid.
type Grid[T any] = grid.Grid[T]

// Point is a cell coordinate yielded by the iterators.
type Point = grid.Point

// Float is a constraint for IEEE-754 floating-point element types.
type Float = grid.Float

// New creates a Grid with the given dimensions, every cell initialized
// to def. Width or height of 0 is legal and yields an empty grid.
// Panics if width or height is negative.
//
// Example:
//
//	g := grid.New(3, 2, -1)  // 3 columns, 2 rows, all cells -1
func New[T any](width, height int, def T) *Grid[T] {
	return grid.New(width, height, def)
}

// FromSlice creates a Grid that adopts an existing linear buffer laid
// out in x-major order. The buffer length must equal width*height.
//
// Example:
//
//	g, err := grid.FromSlice([]int{1, 2, 3, 4, 5, 6}, 3, 2)
func FromSlice[T any](data []T, width, height int) (*Grid[T], error) {
	return grid.FromSlice(data, width, height)
}

// AnyNaN reports whether at least one cell of a floating-point grid
// holds a NaN value.
func AnyNaN[T Float](g *Grid[T]) bool {
	return grid.AnyNaN(g)
}

// Equal reports whether two grids have the same dimensions and the
// same element at every cell.
func Equal[T comparable](a, b *Grid[T]) bool {
	return grid.Equal(a, b)
}
