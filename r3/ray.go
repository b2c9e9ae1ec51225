package r3

import "math"

// Ray is a half-line: an origin and a unit direction.
type Ray struct {
	Origin    Vector
	Direction Vector
}

// NewRay returns the unchecked ray with the given origin and direction,
// without normalizing the direction.
func NewRay(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayNormalized returns the ray with direction normalized to unit
// length.
func NewRayNormalized(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: Normalize(direction)}
}

// Evaluate returns the point at parameter t along the ray:
// Origin + t*Direction.
func (r Ray) Evaluate(t float64) Vector {
	return Add(r.Origin, Scale(t, r.Direction))
}

func finite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// IntersectBox clips the ray against b using the slab method, returning
// the entry and exit parameters and whether an intersection exists. A
// box lying entirely behind the origin (exit < 0) yields ok == false, and
// so do NaN or infinite ray/box inputs rather than a spurious hit.
func (r Ray) IntersectBox(b Box) (entry, exit float64, ok bool) {
	if !finite(r.Origin) || !finite(r.Direction) || !finite(b.Min) || !finite(b.Max) || b.Empty() {
		return 0, 0, false
	}
	tMin, tMax := math.Inf(-1), math.Inf(1)
	origins := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := 0; i < 3; i++ {
		if dirs[i] == 0 {
			if origins[i] < mins[i] || origins[i] > maxs[i] {
				return 0, 0, false
			}
			continue
		}
		t0 := (mins[i] - origins[i]) / dirs[i]
		t1 := (maxs[i] - origins[i]) / dirs[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return 0, 0, false
		}
	}
	if tMax < 0 {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// IntersectOBB clips the ray against o by transforming it into o's local
// axis-aligned frame and reusing the slab test.
func (r Ray) IntersectOBB(o OBB) (entry, exit float64, ok bool) {
	if !finite(r.Origin) || !finite(r.Direction) {
		return 0, 0, false
	}
	inv := o.Rotation.Inverse()
	local := Ray{Origin: inv.Rotate(Sub(r.Origin, o.Center)), Direction: inv.Rotate(r.Direction)}
	box := Box{Min: Neg(o.HalfSize), Max: o.HalfSize}
	return local.IntersectBox(box)
}

// IntersectPlane solves the single linear equation for the ray/plane
// intersection parameter. ok is false when the ray is parallel to the
// plane, the intersection lies behind the origin (t < 0), or any input is
// non-finite.
func (r Ray) IntersectPlane(p Plane) (t float64, ok bool) {
	if !finite(r.Origin) || !finite(r.Direction) {
		return 0, false
	}
	denom := Dot(p.Normal, r.Direction)
	if denom == 0 {
		return 0, false
	}
	t = -(Dot(p.Normal, r.Origin) + p.Offset) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
