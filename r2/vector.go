// Package r2 provides 2D vector, point, rotation, and axis-aligned
// bounding box types, plus their dual-number (forward-autodiff)
// counterparts.
package r2

import "math"

// Vector is a 2D vector of float64.
type Vector struct {
	X, Y float64
}

// Point is a 2D lattice coordinate.
type Point struct {
	X, Y int
}

// Add returns the vector sum of p and q.
func Add(p, q Vector) Vector {
	return Vector{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func Sub(p, q Vector) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func Scale(f float64, p Vector) Vector {
	return Vector{X: f * p.X, Y: f * p.Y}
}

// Neg returns -p.
func Neg(p Vector) Vector {
	return Vector{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of p and q.
func Dot(p, q Vector) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar (z-component) of the 2D cross product p x q.
func Cross(p, q Vector) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of p.
func Norm(p Vector) float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length. A zero-magnitude vector
// returns the zero vector rather than producing NaN.
func Normalize(p Vector) Vector {
	n := Norm(p)
	if n == 0 {
		return Vector{}
	}
	return Scale(1/n, p)
}

// Equal reports whether p and q are equal within tol.
func Equal(p, q Vector, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

func minElem(a, b Vector) Vector {
	return Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func maxElem(a, b Vector) Vector {
	return Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}
