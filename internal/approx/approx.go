// Package approx provides the floating-point tolerance constants and
// comparison helpers shared by every geometry and autodiff package in
// this module.
package approx

import "math"

// Epsilon values named directly after the numeric tolerances fixed by
// the specification: geometry comparisons, vector/quaternion
// normalization, and the small-angle branches taken in SO(3)/SE(2)/SE(3)
// exponential and logarithm maps.
const (
	CompareEpsilon    = 1e-6
	NormalizeEpsilon  = 1e-7
	SmallAngleEpsilon = 1e-9
	SE3QuadraticEpsilon = 1e-7
)

// Equal reports whether a and b differ by no more than CompareEpsilon.
func Equal(a, b float64) bool {
	return EqualWithinAbs(a, b, CompareEpsilon)
}

// EqualWithinAbs reports whether a and b have an absolute difference no
// greater than tol.
func EqualWithinAbs(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

// EqualWithinAbsOrRel reports whether a and b are within absTol of each
// other, or differ by no more than relTol relative to their magnitude.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if EqualWithinAbs(a, b, absTol) {
		return true
	}
	delta := math.Abs(a - b)
	if delta == 0 {
		return true
	}
	return delta/math.Max(math.Abs(a), math.Abs(b)) <= relTol
}
