package se3

import (
	"math"

	"github.com/age-series/libage-sub000/dual"
	"github.com/age-series/libage-sub000/internal/approx"
	"github.com/age-series/libage-sub000/r3"
)

// Pose is a rigid transform in 3-space: a rotation followed by a
// translation (Apply rotates first, then translates).
type Pose struct {
	Translation r3.Vector
	Rotation    r3.Rotation
}

// Identity is the identity pose.
var Identity = Pose{Translation: r3.Vector{}, Rotation: r3.Identity3D}

// NewPose returns the unchecked pose, without normalizing the rotation.
func NewPose(translation r3.Vector, rotation r3.Rotation) Pose {
	return Pose{Translation: translation, Rotation: rotation}
}

// NewPoseNormalized returns the pose with the rotation normalized to
// unit magnitude.
func NewPoseNormalized(translation r3.Vector, rotation r3.Rotation) Pose {
	return Pose{Translation: translation, Rotation: rotation.Normalized()}
}

// Mul composes two poses: applying the result to a point is equivalent
// to applying b, then a.
func Mul(a, b Pose) Pose {
	return Pose{
		Translation: r3.Add(a.Translation, a.Rotation.Rotate(b.Translation)),
		Rotation:    r3.Mul(a.Rotation, b.Rotation),
	}
}

// Inverse returns the pose p⁻¹ such that Mul(p, p.Inverse()) ≈ Identity.
func (p Pose) Inverse() Pose {
	inv := p.Rotation.Inverse()
	return Pose{Translation: r3.Neg(inv.Rotate(p.Translation)), Rotation: inv}
}

// Apply transforms v by p: rotate then translate.
func (p Pose) Apply(v r3.Vector) r3.Vector {
	return r3.Add(p.Translation, p.Rotation.Rotate(v))
}

// ToMatrix4 returns the homogeneous transform matrix equivalent to p.
func (p Pose) ToMatrix4() Matrix4 {
	return NewMatrix4FromPose(p.Rotation.ToMatrix(), p.Translation)
}

// Twist is an incremental SE(3) displacement: a linear displacement and
// a rotation vector, consumed once by Exp.
type Twist struct {
	Linear  r3.Vector
	Angular r3.Vector // axis * angle
}

// Velocity is the instantaneous rate of change of a Pose: a linear
// velocity and an angular velocity.
type Velocity struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// DualPose is a Pose whose translation and rotation vector (axis*angle,
// as in Twist.Angular) are DualVectors of a shared truncation order,
// rather than plain r3.Vectors: the first-derivative tail of each
// component is the Pose's instantaneous Velocity, read off directly
// instead of integrated from a Twist.
type DualPose struct {
	Translation r3.DualVector
	Angular     r3.DualVector
}

// PoseWithVelocity returns the order-2 DualPose representing p moving
// instantaneously with velocity v: VelocityOf(PoseWithVelocity(p, v))
// reproduces v exactly.
func PoseWithVelocity(p Pose, v Velocity) DualPose {
	w := p.Rotation.Ln()
	return DualPose{
		Translation: r3.DualVector{
			X: dual.FromCoeffs([]float64{p.Translation.X, v.Linear.X}),
			Y: dual.FromCoeffs([]float64{p.Translation.Y, v.Linear.Y}),
			Z: dual.FromCoeffs([]float64{p.Translation.Z, v.Linear.Z}),
		},
		Angular: r3.DualVector{
			X: dual.FromCoeffs([]float64{w.X, v.Angular.X}),
			Y: dual.FromCoeffs([]float64{w.Y, v.Angular.Y}),
			Z: dual.FromCoeffs([]float64{w.Z, v.Angular.Z}),
		},
	}
}

// Value returns the real (zeroth-coefficient) Pose of dp.
func (dp DualPose) Value() Pose {
	return Pose{
		Translation: dp.Translation.Value(),
		Rotation:    r3.ExpRotation(dp.Angular.Value()),
	}
}

// VelocityOf reads the instantaneous Velocity off dp's first-derivative
// tail.
func VelocityOf(dp DualPose) Velocity {
	return Velocity{
		Linear:  dp.Translation.Tail(1).Value(),
		Angular: dp.Angular.Tail(1).Value(),
	}
}

// vCoefficients returns the (B, C) scalar coefficients of the SE(3)
// exponential's V matrix, V = I + B*[w]x + C*[w]x^2, for rotation-vector
// magnitude t. Below SE3QuadraticEpsilon it falls back to the Taylor
// expansion of B and C around t=0 to avoid cancellation.
func vCoefficients(t float64) (b, c float64) {
	if math.Abs(t) < approx.SE3QuadraticEpsilon {
		b = 0.5 - t*t/24
		c = 1.0/6 - t*t/120
		return b, c
	}
	b = (1 - math.Cos(t)) / (t * t)
	c = (t - math.Sin(t)) / (t * t * t)
	return b, c
}

// Exp is the SE(3) exponential map: it integrates the twist tw over
// unit time to produce the pose that twist would produce starting from
// the identity.
func Exp(tw Twist) Pose {
	rot := r3.ExpRotation(tw.Angular)
	t := r3.Norm(tw.Angular)
	b, c := vCoefficients(t)
	skew := r3.Skew(tw.Angular)
	skew2 := r3.MulMatrix(skew, skew)
	v := r3.Identity3
	v = addMatrix(v, scaleMatrix(b, skew))
	v = addMatrix(v, scaleMatrix(c, skew2))
	translation := v.MulVec(tw.Linear)
	return Pose{Translation: translation, Rotation: rot}
}

// vInverseCoefficient returns the scalar D such that V^-1 = I - (1/2)*[w]x + D*[w]x^2,
// for rotation-vector magnitude t.
func vInverseCoefficient(t float64) float64 {
	if math.Abs(t) < approx.SE3QuadraticEpsilon {
		return 1.0/12 + t*t/720
	}
	halfT := t / 2
	return (1 - halfT*(math.Cos(halfT)/math.Sin(halfT))) / (t * t)
}

// Log is the SE(3) logarithm map, the inverse of Exp.
func Log(p Pose) Twist {
	w := p.Rotation.Ln()
	t := r3.Norm(w)
	skew := r3.Skew(w)
	skew2 := r3.MulMatrix(skew, skew)
	d := vInverseCoefficient(t)
	vInv := r3.Identity3
	vInv = addMatrix(vInv, scaleMatrix(-0.5, skew))
	vInv = addMatrix(vInv, scaleMatrix(d, skew2))
	linear := vInv.MulVec(p.Translation)
	return Twist{Linear: linear, Angular: w}
}

func addMatrix(a, b r3.Matrix) r3.Matrix {
	return r3.NewMatrixFromColumns(
		r3.Add(a.Col(0), b.Col(0)),
		r3.Add(a.Col(1), b.Col(1)),
		r3.Add(a.Col(2), b.Col(2)),
	)
}

func scaleMatrix(f float64, m r3.Matrix) r3.Matrix {
	return r3.NewMatrixFromColumns(
		r3.Scale(f, m.Col(0)),
		r3.Scale(f, m.Col(1)),
		r3.Scale(f, m.Col(2)),
	)
}
