package r3

import (
	"errors"
	"math"

	"github.com/age-series/libage-sub000/internal/approx"
)

// ErrDegenerate is returned when three points do not determine a plane
// (they are collinear or coincident).
var ErrDegenerate = errors.New("r3: points are colinear or coincident")

// Plane is an infinite plane: points p satisfying Normal.p + Offset == 0.
type Plane struct {
	Normal Vector // unit vector
	Offset float64
}

// NewPlane returns the unchecked plane with the given normal and offset,
// without normalizing the normal.
func NewPlane(normal Vector, offset float64) Plane {
	return Plane{Normal: normal, Offset: offset}
}

// PlaneFromVertices returns the normalized plane containing the three
// non-colinear points a, b, c.
func PlaneFromVertices(a, b, c Vector) (Plane, error) {
	n := Cross(Sub(b, a), Sub(c, a))
	mag := Norm(n)
	if mag < approx.NormalizeEpsilon {
		return Plane{}, ErrDegenerate
	}
	n = Scale(1/mag, n)
	return Plane{Normal: n, Offset: -Dot(n, a)}, nil
}

// SignedDistanceToPoint returns Normal.p + Offset.
func (p Plane) SignedDistanceToPoint(v Vector) float64 {
	return Dot(p.Normal, v) + p.Offset
}

// EvaluateIntersection reports whether the plane crosses the axis-aligned
// Box b, by projecting the box's half-extents onto the absolute value of
// the plane normal and comparing against the signed distance of the
// box's center.
func (p Plane) EvaluateIntersection(b Box) bool {
	he := b.HalfSize()
	radius := math.Abs(p.Normal.X)*he.X + math.Abs(p.Normal.Y)*he.Y + math.Abs(p.Normal.Z)*he.Z
	dist := p.SignedDistanceToPoint(b.Center())
	return math.Abs(dist) <= radius
}

// IntersectsOBB reports whether the plane crosses the oriented box o, by
// projecting o's rotated half-extent axes onto the plane normal and
// comparing against the signed distance of o's center.
func (p Plane) IntersectsOBB(o OBB) bool {
	m := o.Rotation.ToMatrix()
	radius := math.Abs(o.HalfSize.X*Dot(p.Normal, m.Col(0))) +
		math.Abs(o.HalfSize.Y*Dot(p.Normal, m.Col(1))) +
		math.Abs(o.HalfSize.Z*Dot(p.Normal, m.Col(2)))
	dist := p.SignedDistanceToPoint(o.Center)
	return math.Abs(dist) <= radius
}
