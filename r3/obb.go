package r3

import "math"

// OBB is a 3D oriented bounding box: a frame (center + rotation) and a
// half-size along each of the frame's local axes.
type OBB struct {
	Center   Vector
	Rotation Rotation
	HalfSize Vector
}

// toLocal transforms a world-space point into the OBB's local,
// axis-aligned frame.
func (o OBB) toLocal(v Vector) Vector {
	return o.Rotation.Inverse().Rotate(Sub(v, o.Center))
}

// ForEachCorner calls f with each of the OBB's eight corners in world
// space.
func (o OBB) ForEachCorner(f func(Vector)) {
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				local := Vector{X: sx * o.HalfSize.X, Y: sy * o.HalfSize.Y, Z: sz * o.HalfSize.Z}
				f(Add(o.Center, o.Rotation.Rotate(local)))
			}
		}
	}
}

// axes returns the OBB's three world-space unit axes.
func (o OBB) axes() [3]Vector {
	m := o.Rotation.ToMatrix()
	return [3]Vector{m.Col(0), m.Col(1), m.Col(2)}
}

func (o OBB) halfSizeArr() [3]float64 {
	return [3]float64{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
}

// projectRadius returns the projected half-extent of o onto unit axis a.
func (o OBB) projectRadius(a Vector) float64 {
	ax := o.axes()
	he := o.halfSizeArr()
	return math.Abs(he[0]*Dot(a, ax[0])) + math.Abs(he[1]*Dot(a, ax[1])) + math.Abs(he[2]*Dot(a, ax[2]))
}

// Intersects reports whether o and other overlap, using the full 15-axis
// separating-axis test (the three axes of each box, and the nine cross
// products of their axis pairs).
func (o OBB) Intersects(other OBB) bool {
	d := Sub(other.Center, o.Center)
	aAxes := o.axes()
	bAxes := other.axes()

	test := func(axis Vector) bool {
		n2 := NormSquared(axis)
		if n2 < 1e-18 {
			return true // degenerate axis carries no separating information.
		}
		ra := o.projectRadius(axis)
		rb := other.projectRadius(axis)
		dist := math.Abs(Dot(d, axis))
		return dist <= ra+rb
	}

	for _, a := range aAxes {
		if !test(a) {
			return false
		}
	}
	for _, b := range bAxes {
		if !test(b) {
			return false
		}
	}
	for _, a := range aAxes {
		for _, b := range bAxes {
			if !test(Cross(a, b)) {
				return false
			}
		}
	}
	return true
}

// ContainsSphere reports whether o fully encloses s: s's center, put in
// o's local frame, must clear every face by at least the radius.
func (o OBB) ContainsSphere(s Sphere) bool {
	local := o.toLocal(s.Origin)
	return math.Abs(local.X)+s.Radius <= o.HalfSize.X &&
		math.Abs(local.Y)+s.Radius <= o.HalfSize.Y &&
		math.Abs(local.Z)+s.Radius <= o.HalfSize.Z
}

// IntersectsSphere reports whether o and s overlap.
func (o OBB) IntersectsSphere(s Sphere) bool {
	local := o.toLocal(s.Origin)
	return squaredDistanceToBox(local, o.HalfSize) <= s.Radius*s.Radius
}
