// Package mathx provides the numeric primitives shared by the outcome model.
package mathx

import "math"

// Logistic maps an unbounded score to a probability in the open interval (0,1).
// Logistic(0) = 0.5 and Logistic(-x) = 1 - Logistic(x).
func Logistic(score float64) float64 {
	return 1.0 / (1.0 + math.Exp(-score))
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
