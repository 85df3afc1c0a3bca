package grid

import "iter"

// Point is a cell coordinate. X indexes columns (0 <= X < Width),
// Y indexes rows within a column (0 <= Y < Height).
type Point struct {
	X, Y int
}

// All returns a read-only iterator over every cell as (Point, value)
// pairs. Cells are visited in linear buffer order, which enumerates
// x-major: all y for x=0, then all y for x=1, and so on. The iterator
// is single-pass; call All again to restart.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(Point{X: i / g.h, Y: i % g.h}, v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over every cell as (Point, *element)
// pairs for in-place mutation, in the same x-major order as All.
// The caller must not access the grid through any other path while
// the iteration is live.
func (g *Grid[T]) Pointers() iter.Seq2[Point, *T] {
	return func(yield func(Point, *T) bool) {
		for i := range g.data {
			if !yield(Point{X: i / g.h, Y: i % g.h}, &g.data[i]) {
				return
			}
		}
	}
}
