// Package se2 provides 2D rigid-body poses, twists, and velocities, with
// the SE(2) exponential and logarithm maps connecting them.
package se2

import (
	"math"

	"github.com/age-series/libage-sub000/dual"
	"github.com/age-series/libage-sub000/internal/approx"
	"github.com/age-series/libage-sub000/r2"
)

// Pose is a rigid transform in the plane: a rotation followed by a
// translation (Apply rotates first, then translates, matching standard
// SE(2) semantics).
type Pose struct {
	Translation r2.Vector
	Rotation    r2.Rotation
}

// Identity is the identity pose.
var Identity = Pose{Translation: r2.Vector{}, Rotation: r2.Identity}

// NewPose returns the unchecked pose with the given translation and
// rotation, without normalizing the rotation.
func NewPose(translation r2.Vector, rotation r2.Rotation) Pose {
	return Pose{Translation: translation, Rotation: rotation}
}

// NewPoseNormalized returns the pose with the rotation normalized to
// unit magnitude.
func NewPoseNormalized(translation r2.Vector, rotation r2.Rotation) Pose {
	return Pose{Translation: translation, Rotation: rotation.Normalized()}
}

// Mul composes two poses: applying the result to a point is equivalent
// to applying b, then a.
func Mul(a, b Pose) Pose {
	return Pose{
		Translation: r2.Add(a.Translation, a.Rotation.Rotate(b.Translation)),
		Rotation:    r2.Mul(a.Rotation, b.Rotation),
	}
}

// Inverse returns the pose p⁻¹ such that Mul(p, p.Inverse()) ≈ Identity.
func (p Pose) Inverse() Pose {
	inv := p.Rotation.Inverse()
	return Pose{Translation: r2.Neg(inv.Rotate(p.Translation)), Rotation: inv}
}

// Apply transforms v by p: rotate then translate.
func (p Pose) Apply(v r2.Vector) r2.Vector {
	return r2.Add(p.Translation, p.Rotation.Rotate(v))
}

// Twist is an incremental SE(2) displacement: a planar translation and
// a rotation angle, consumed once by Exp.
type Twist struct {
	DX, DY, DTheta float64
}

// Velocity is the instantaneous rate of change of a Pose: a linear
// velocity and an angular rate.
type Velocity struct {
	Linear  r2.Vector
	Angular float64
}

// DualPose is a Pose whose translation and rotation angle are Duals of
// a shared truncation order, rather than plain float64s: the first-
// derivative tail of each component is the Pose's instantaneous
// Velocity, read off directly instead of integrated from a Twist.
type DualPose struct {
	Translation r2.DualVector
	Angle       dual.Dual
}

// PoseWithVelocity returns the order-2 DualPose representing p moving
// instantaneously with velocity v: VelocityOf(PoseWithVelocity(p, v))
// reproduces v exactly.
func PoseWithVelocity(p Pose, v Velocity) DualPose {
	return DualPose{
		Translation: r2.DualVector{
			X: dual.FromCoeffs([]float64{p.Translation.X, v.Linear.X}),
			Y: dual.FromCoeffs([]float64{p.Translation.Y, v.Linear.Y}),
		},
		Angle: dual.FromCoeffs([]float64{p.Rotation.Ln(), v.Angular}),
	}
}

// Value returns the real (zeroth-coefficient) Pose of dp.
func (dp DualPose) Value() Pose {
	return Pose{
		Translation: dp.Translation.Value(),
		Rotation:    r2.Exp(dp.Angle.Value()),
	}
}

// VelocityOf reads the instantaneous Velocity off dp's first-derivative
// tail.
func VelocityOf(dp DualPose) Velocity {
	return Velocity{
		Linear:  dp.Translation.Tail(1).Value(),
		Angular: dual.Tail(dp.Angle, 1).Value(),
	}
}

const smallAngleEpsilon = approx.SmallAngleEpsilon

// Exp is the SE(2) exponential map: it integrates the twist t over unit
// time to produce the pose that twist would produce starting from the
// identity.
func Exp(t Twist) Pose {
	dtheta := t.DTheta
	var s, c float64
	if math.Abs(dtheta) < smallAngleEpsilon {
		s = 1 - dtheta*dtheta/6
		c = dtheta / 2
	} else {
		s = math.Sin(dtheta) / dtheta
		c = (1 - math.Cos(dtheta)) / dtheta
	}
	translation := r2.Vector{
		X: s*t.DX - c*t.DY,
		Y: c*t.DX + s*t.DY,
	}
	return Pose{Translation: translation, Rotation: r2.Exp(dtheta)}
}

// Log is the SE(2) logarithm map, the inverse of Exp.
func Log(p Pose) Twist {
	dtheta := p.Rotation.Ln()
	var s, c float64
	if math.Abs(dtheta) < smallAngleEpsilon {
		s = 1 - dtheta*dtheta/6
		c = dtheta / 2
	} else {
		s = math.Sin(dtheta) / dtheta
		c = (1 - math.Cos(dtheta)) / dtheta
	}
	// Invert the 2x2 linear system [[s, -c], [c, s]] * (dx, dy) = translation.
	det := s*s + c*c
	tx, ty := p.Translation.X, p.Translation.Y
	return Twist{
		DX:     (s*tx + c*ty) / det,
		DY:     (-c*tx + s*ty) / det,
		DTheta: dtheta,
	}
}
