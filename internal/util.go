package internal

import "math"

// Tolerance for comparisons made by tests and diagnostics. The predicates used
// by the ear clipper are exact sign tests and never consult it.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
