package r3

import (
	"math"

	"github.com/age-series/libage-sub000/internal/approx"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is a 3D rotation represented as a unit quaternion (x, y, z, w)
// stored as a gonum quat.Number (Imag, Jmag, Kmag, Real).
type Rotation struct {
	q quat.Number
}

// Identity3D is the identity rotation.
var Identity3D = Rotation{q: quat.Number{Real: 1}}

// NewRotation returns the unchecked rotation with the given quaternion
// components (x, y, z, w), without normalizing.
func NewRotation(x, y, z, w float64) Rotation {
	return Rotation{q: quat.Number{Imag: x, Jmag: y, Kmag: z, Real: w}}
}

// NewRotationNormalized returns the rotation (x, y, z, w) normalized to
// unit length.
func NewRotationNormalized(x, y, z, w float64) Rotation {
	return NewRotation(x, y, z, w).Normalized()
}

// XYZW returns the quaternion components of r.
func (r Rotation) XYZW() (x, y, z, w float64) {
	return r.q.Imag, r.q.Jmag, r.q.Kmag, r.q.Real
}

func raise(v Vector) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

func lower(q quat.Number) Vector {
	return Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Norm returns the magnitude of the underlying quaternion.
func (r Rotation) Norm() float64 {
	return quat.Abs(r.q)
}

// Normalized returns r scaled to unit magnitude. A zero-magnitude input
// returns the identity rotation.
func (r Rotation) Normalized() Rotation {
	n := r.Norm()
	if n == 0 {
		return Identity3D
	}
	return Rotation{q: quat.Scale(1/n, r.q)}
}

// IsUnit reports whether r has unit norm within the geometry comparison
// epsilon.
func (r Rotation) IsUnit() bool {
	return approx.Equal(quat.Abs(r.q), 1)
}

// ExpRotation returns the rotation corresponding to the rotation vector w
// (axis * angle): identity when w is zero, otherwise a unit quaternion
// with axis w/|w| and half-angle |w|/2.
func ExpRotation(w Vector) Rotation {
	theta := Norm(w)
	if theta == 0 {
		return Identity3D
	}
	axis := Scale(1/theta, w)
	s, c := math.Sincos(0.5 * theta)
	return Rotation{q: quat.Number{
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
		Real: c,
	}}
}

// Ln returns the rotation vector (axis * angle) of r, using a small-angle
// Taylor expansion below SmallAngleEpsilon to avoid dividing by a
// near-zero sine of the half-angle.
func (r Rotation) Ln() Vector {
	u := r.Normalized().q
	v := Vector{X: u.Imag, Y: u.Jmag, Z: u.Kmag}
	sinHalf := Norm(v)
	if sinHalf < approx.SmallAngleEpsilon {
		// atan2(sinHalf, w)/sinHalf -> 2/w for vanishing sinHalf.
		return Scale(2/u.Real, v)
	}
	halfAngle := math.Atan2(sinHalf, u.Real)
	return Scale(2*halfAngle/sinHalf, v)
}

// Mul returns the composition a*b (Hamilton product): rotating by the
// result is equivalent to rotating by b, then by a.
func Mul(a, b Rotation) Rotation {
	return Rotation{q: quat.Mul(a.q, b.q)}
}

// Inverse returns the rotation that undoes r: its conjugate scaled by the
// reciprocal of its squared norm, so non-unit inputs are handled
// gracefully.
func (r Rotation) Inverse() Rotation {
	n2 := quat.Abs(r.q)
	n2 *= n2
	if n2 == 0 {
		return Identity3D
	}
	return Rotation{q: quat.Scale(1/n2, quat.Conj(r.q))}
}

// Rotate returns v rotated by r using the sandwich product q*v*q^-1 (with
// q assumed unit, so q^-1 == conjugate).
func (r Rotation) Rotate(v Vector) Vector {
	p := quat.Mul(quat.Mul(r.q, raise(v)), quat.Conj(r.q))
	return lower(p)
}

// Interpolate returns the spherical interpolation between a and b at
// parameter t: exp(t * ln(b/a)) * a.
func Interpolate(a, b Rotation, t float64) Rotation {
	diff := Mul(b, a.Inverse())
	return Mul(ExpRotation(Scale(t, diff.Ln())), a)
}

// ToMatrix converts r to its equivalent 3x3 rotation matrix.
func (r Rotation) ToMatrix() Matrix {
	x, y, z, w := r.XYZW()
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return NewMatrixFromRows([]float64{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	})
}

// RotationFromMatrix converts a special-orthogonal 3x3 matrix to a unit
// quaternion rotation, using the standard stability-branching scheme:
// the branch is chosen by whichever of the trace or the diagonal
// elements is largest, avoiding division by a near-zero term.
func RotationFromMatrix(m Matrix) Rotation {
	tr := m.Trace()
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		return NewRotationNormalized(
			(m.At(2, 1)-m.At(1, 2))/s,
			(m.At(0, 2)-m.At(2, 0))/s,
			(m.At(1, 0)-m.At(0, 1))/s,
			0.25*s,
		)
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := math.Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2)) * 2
		return NewRotationNormalized(
			0.25*s,
			(m.At(0, 1)+m.At(1, 0))/s,
			(m.At(0, 2)+m.At(2, 0))/s,
			(m.At(2, 1)-m.At(1, 2))/s,
		)
	case m.At(1, 1) > m.At(2, 2):
		s := math.Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2)) * 2
		return NewRotationNormalized(
			(m.At(0, 1)+m.At(1, 0))/s,
			0.25*s,
			(m.At(1, 2)+m.At(2, 1))/s,
			(m.At(0, 2)-m.At(2, 0))/s,
		)
	default:
		s := math.Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1)) * 2
		return NewRotationNormalized(
			(m.At(0, 2)+m.At(2, 0))/s,
			(m.At(1, 2)+m.At(2, 1))/s,
			0.25*s,
			(m.At(1, 0)-m.At(0, 1))/s,
		)
	}
}
