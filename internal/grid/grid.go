// Package grid provides the core fixed-size 2D container type.
package grid

import "fmt"

// Grid is a fixed-size two-dimensional container backed by a single
// contiguous buffer, removing one layer of indirection compared to a
// slice of slices.
//
// Element (x, y) lives at linear offset x*height + y, so all elements
// of a fixed x are contiguous in memory. Dimensions are set at
// construction and never change.
type Grid[T any] struct {
	data []T
	w, h int
}

// New creates a Grid with the given dimensions, every cell initialized
// to def. Width or height of 0 is legal and yields an empty grid.
// Panics if width or height is negative.
func New[T any](width, height int, def T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions (%d, %d)", width, height))
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = def
	}
	return &Grid[T]{data: data, w: width, h: height}
}

// FromSlice creates a Grid that adopts an existing linear buffer.
// The buffer is used directly, not copied; it must hold the elements
// in linear (x-major) order.
func FromSlice[T any](data []T, width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative dimensions (%d, %d)", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("dimensions (%d, %d) require %d elements, but got %d",
			width, height, width*height, len(data))
	}
	return &Grid[T]{data: data, w: width, h: height}, nil
}

// Width returns the fixed width.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the fixed height.
func (g *Grid[T]) Height() int {
	return g.h
}

// Len returns the total number of cells (width*height).
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// checkBounds panics unless (x, y) lies within the grid. Every indexed
// access goes through this before touching the buffer; read and write
// share the exact same check.
func (g *Grid[T]) checkBounds(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("index out of bounds: the len is (%d, %d) but the index is (%d, %d)",
			g.w, g.h, x, y))
	}
}

// At returns the element at (x, y).
// Panics if the index is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	g.checkBounds(x, y)
	return g.data[x*g.h+y]
}

// Set stores v at (x, y).
// Panics if the index is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.checkBounds(x, y)
	g.data[x*g.h+y] = v
}

// Ptr returns a pointer to the element at (x, y) for in-place updates.
// The pointer stays valid for the lifetime of the grid.
// Panics if the index is out of bounds.
func (g *Grid[T]) Ptr(x, y int) *T {
	g.checkBounds(x, y)
	return &g.data[x*g.h+y]
}

// InBounds reports whether (x, y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index maps (x, y) to its linear offset x*height + y.
// Panics if the index is out of bounds.
func (g *Grid[T]) Index(x, y int) int {
	g.checkBounds(x, y)
	return x*g.h + y
}

// Coordinate converts a linear offset back to (x, y).
func (g *Grid[T]) Coordinate(i int) (x, y int) {
	return i / g.h, i % g.h
}

// Data returns the backing slice in linear (x-major) order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// Column returns a zero-copy view of column x (all y for that x).
// Columns are contiguous under the x-major layout, so this is a plain
// subslice of the backing buffer.
// Panics if x is out of range.
func (g *Grid[T]) Column(x int) []T {
	if x < 0 || x >= g.w {
		panic(fmt.Sprintf("index out of bounds: the len is (%d, %d) but the index is (%d, 0)",
			g.w, g.h, x))
	}
	return g.data[x*g.h : (x+1)*g.h]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone creates a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, w: g.w, h: g.h}
}

// String returns a human-readable description of the grid.
func (g *Grid[T]) String() string {
	var dummy T
	return fmt.Sprintf("Grid[%T](%d, %d)", dummy, g.w, g.h)
}

// Equal reports whether two grids have the same dimensions and the
// same element at every cell.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
