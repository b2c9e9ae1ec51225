// Package r3 provides 3D vector, point, matrix, quaternion-rotation, and
// volumetric primitive types (AABB, OBB, sphere, plane, ray, segment),
// plus their dual-number (forward-autodiff) counterparts.
package r3

import "math"

// Vector is a 3D vector of float64.
type Vector struct {
	X, Y, Z float64
}

// Point is a 3D lattice coordinate.
type Point struct {
	X, Y, Z int
}

// Add returns the vector sum of p and q.
func Add(p, q Vector) Vector {
	return Vector{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the vector difference p-q.
func Sub(p, q Vector) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by f.
func Scale(f float64, p Vector) Vector {
	return Vector{X: f * p.X, Y: f * p.Y, Z: f * p.Z}
}

// Neg returns -p.
func Neg(p Vector) Vector {
	return Vector{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Dot returns the dot product of p and q.
func Dot(p, q Vector) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func Cross(p, q Vector) Vector {
	return Vector{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func Norm(p Vector) float64 {
	return math.Sqrt(Dot(p, p))
}

// NormSquared returns the squared Euclidean length of p.
func NormSquared(p Vector) float64 {
	return Dot(p, p)
}

// Normalize returns p scaled to unit length. A zero-magnitude vector
// returns the zero vector rather than producing NaN (the "nz"/! idiom in
// the source material).
func Normalize(p Vector) Vector {
	n := Norm(p)
	if n == 0 {
		return Vector{}
	}
	return Scale(1/n, p)
}

// Perpendicular returns an arbitrary unit vector perpendicular to p (the
// zero vector when p is zero). It crosses p with the world X axis, or
// with the Z axis when |p.X| > 0.9*|p|, to avoid the numerically
// ill-conditioned cross product that results from crossing
// nearly-parallel vectors.
func Perpendicular(p Vector) Vector {
	axis := Vector{X: 1}
	if math.Abs(p.X) > 0.9*Norm(p) {
		axis = Vector{Z: 1}
	}
	return Normalize(Cross(p, axis))
}

// Equal reports whether p and q are equal within tol.
func Equal(p, q Vector, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

func minElem(a, b Vector) Vector {
	return Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxElem(a, b Vector) Vector {
	return Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func absElem(a Vector) Vector {
	return Vector{X: math.Abs(a.X), Y: math.Abs(a.Y), Z: math.Abs(a.Z)}
}
