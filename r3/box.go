package r3

import "math"

// Box is a 3D axis-aligned bounding box. A well-formed Box has Min
// componentwise no greater than Max.
type Box struct {
	Min, Max Vector
}

// NewBox returns the canonical Box spanning the two given corners.
func NewBox(x0, y0, z0, x1, y1, z1 float64) Box {
	return Box{
		Min: Vector{X: math.Min(x0, x1), Y: math.Min(y0, y1), Z: math.Min(z0, z1)},
		Max: Vector{X: math.Max(x0, x1), Y: math.Max(y0, y1), Z: math.Max(z0, z1)},
	}
}

// Empty reports whether the Box encloses no volume.
func (b Box) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z
}

// Size returns the extent of the Box along each axis.
func (b Box) Size() Vector {
	return Sub(b.Max, b.Min)
}

// Center returns the midpoint of the Box.
func (b Box) Center() Vector {
	return Scale(0.5, Add(b.Min, b.Max))
}

// HalfSize returns half the extent of the Box along each axis.
func (b Box) HalfSize() Vector {
	return Scale(0.5, b.Size())
}

// Union returns the smallest Box enclosing both a and b.
func (a Box) Union(b Box) Box {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Box{Min: minElem(a.Min, b.Min), Max: maxElem(a.Max, b.Max)}
}

// Intersection returns the overlap of a and b, or the zero Box (which is
// Empty) if they do not overlap.
func (a Box) Intersection(b Box) Box {
	if a.Empty() || b.Empty() {
		return Box{}
	}
	out := Box{Min: maxElem(a.Min, b.Min), Max: minElem(a.Max, b.Max)}
	if out.Empty() {
		return Box{}
	}
	return out
}

// IntersectsWith reports whether a and b overlap, via the standard
// separating-axis reduction on the three coordinate axes.
func (a Box) IntersectsWith(b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether v lies within the bounds of the Box.
func (b Box) Contains(v Vector) bool {
	if b.Empty() {
		return false
	}
	return b.Min.X <= v.X && v.X <= b.Max.X &&
		b.Min.Y <= v.Y && v.Y <= b.Max.Y &&
		b.Min.Z <= v.Z && v.Z <= b.Max.Z
}

// Containment classifies the relationship produced by EvaluateContainment.
type Containment int

const (
	// Disjoint indicates the boxes do not overlap at all.
	Disjoint Containment = iota
	// Intersected indicates a partial overlap.
	Intersected
	// Contains indicates the receiver fully encloses the argument.
	Contains
	// ContainedBy indicates the argument fully encloses the receiver.
	ContainedBy
)

// EvaluateContainment classifies how b relates to the receiver a.
func (a Box) EvaluateContainment(b Box) Containment {
	inter := a.Intersection(b)
	if inter.Empty() {
		return Disjoint
	}
	aCanon, bCanon := a.Canon(), b.Canon()
	switch {
	case inter == bCanon && inter == aCanon:
		return Contains
	case inter == bCanon:
		return Contains
	case inter == aCanon:
		return ContainedBy
	default:
		return Intersected
	}
}

// Canon returns the canonical (well-formed) version of the Box.
func (a Box) Canon() Box {
	return Box{Min: minElem(a.Min, a.Max), Max: maxElem(a.Min, a.Max)}
}

// Vertices returns the 8 corners of the Box.
func (a Box) Vertices() [8]Vector {
	return [8]Vector{
		0: a.Min,
		1: {X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		2: {X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		3: {X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z},
		4: {X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z},
		5: {X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		6: a.Max,
		7: {X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z},
	}
}
