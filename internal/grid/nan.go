package grid

import "math"

// Float is a constraint for IEEE-754 floating-point element types.
type Float interface {
	~float32 | ~float64
}

// AnyNaN reports whether at least one cell holds a NaN value.
// NaN never compares equal to itself, so this uses the dedicated
// predicate rather than an equality scan.
func AnyNaN[T Float](g *Grid[T]) bool {
	for _, v := range g.data {
		if math.IsNaN(float64(v)) {
			return true
		}
	}
	return false
}
