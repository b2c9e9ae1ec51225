package r2

import "math"

// Box is a 2D axis-aligned bounding box. A well-formed Box has Min
// componentwise no greater than Max.
type Box struct {
	Min, Max Vector
}

// NewBox returns the canonical Box spanning the two given corners.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{
		Min: Vector{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Vector{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Empty reports whether the Box encloses no volume.
func (b Box) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Size returns the extent of the Box along each axis.
func (b Box) Size() Vector {
	return Sub(b.Max, b.Min)
}

// Center returns the midpoint of the Box.
func (b Box) Center() Vector {
	return Scale(0.5, Add(b.Min, b.Max))
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

// Contains reports whether v lies within the bounds of the Box.
func (b Box) Contains(v Vector) bool {
	if b.Empty() {
		return false
	}
	return b.Min.X <= v.X && v.X <= b.Max.X &&
		b.Min.Y <= v.Y && v.Y <= b.Max.Y
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
	if inter == a.Canon() {
		if inter == b.Canon() {
			return Contains // identical boxes: treat as containing.
		}
		return ContainedBy
	}
	if inter == b.Canon() {
		return Contains
	}
	return Intersected
}

// Canon returns the canonical (well-formed) version of the Box.
func (a Box) Canon() Box {
	return Box{Min: minElem(a.Min, a.Max), Max: maxElem(a.Min, a.Max)}
}
