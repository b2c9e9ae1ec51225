package r2

import (
	"math"

	"github.com/age-series/libage-sub000/internal/approx"
)

// Rotation is a 2D rotation represented as a unit complex number
// (Re, Im) with Re*Re+Im*Im ~= 1.
type Rotation struct {
	Re, Im float64
}

// Identity is the zero rotation.
var Identity = Rotation{Re: 1, Im: 0}

// NewRotation returns the unchecked rotation (re, im), without
// normalizing.
func NewRotation(re, im float64) Rotation {
	return Rotation{Re: re, Im: im}
}

// NewRotationNormalized returns (re, im) normalized to unit length.
func NewRotationNormalized(re, im float64) Rotation {
	return Rotation{Re: re, Im: im}.Normalized()
}

// Exp returns the rotation by angle theta: (cos theta, sin theta).
func Exp(theta float64) Rotation {
	s, c := math.Sincos(theta)
	return Rotation{Re: c, Im: s}
}

// Ln returns the angle of r, atan2(Im, Re).
func (r Rotation) Ln() float64 {
	return math.Atan2(r.Im, r.Re)
}

// Norm returns the magnitude of the underlying complex number.
func (r Rotation) Norm() float64 {
	return math.Hypot(r.Re, r.Im)
}

// Normalized returns r scaled to unit magnitude. A zero-magnitude input
// returns Identity rather than producing NaN.
func (r Rotation) Normalized() Rotation {
	n := r.Norm()
	if n == 0 {
		return Identity
	}
	return Rotation{Re: r.Re / n, Im: r.Im / n}
}

// Mul returns the composition a then b (complex multiplication a*b).
func Mul(a, b Rotation) Rotation {
	return Rotation{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Inverse returns the rotation that undoes r: its conjugate scaled by
// the reciprocal of its squared norm. For a unit rotation this is simply
// the conjugate; non-unit inputs are handled gracefully rather than
// assuming normalization.
func (r Rotation) Inverse() Rotation {
	n2 := r.Re*r.Re + r.Im*r.Im
	if n2 == 0 {
		return Identity
	}
	return Rotation{Re: r.Re / n2, Im: -r.Im / n2}
}

// Rotate returns v rotated by r.
func (r Rotation) Rotate(v Vector) Vector {
	return Vector{
		X: r.Re*v.X - r.Im*v.Y,
		Y: r.Im*v.X + r.Re*v.Y,
	}
}

// AngleAdd returns r composed with a rotation by theta (the "+" operator
// on a Rotation and a scalar angle).
func AngleAdd(r Rotation, theta float64) Rotation {
	return Mul(r, Exp(theta))
}

// AngleDiff returns the angle of a relative to b, i.e. Ln(a * b.Inverse())
// (the "-" operator on two Rotations).
func AngleDiff(a, b Rotation) float64 {
	return Mul(a, b.Inverse()).Ln()
}

// Interpolate returns the great-circle interpolation between r0 and r1 at
// parameter t: exp(t * ln(r1/r0)) * r0.
func Interpolate(r0, r1 Rotation, t float64) Rotation {
	diff := Mul(r1, r0.Inverse())
	return Mul(Exp(t*diff.Ln()), r0)
}

// IsUnit reports whether r has unit norm within the geometry comparison
// epsilon.
func (r Rotation) IsUnit() bool {
	return approx.Equal(r.Re*r.Re+r.Im*r.Im, 1)
}
