package r3

import "github.com/age-series/libage-sub000/dual"

// DualVector is a 3D vector whose components are Duals of a shared
// truncation order.
type DualVector struct {
	X, Y, Z dual.Dual
}

// Size returns the shared truncation order of the components, or 0 if
// the components' sizes disagree (a malformed aggregate).
func (v DualVector) Size() int {
	n := v.X.Size()
	if v.Y.Size() != n || v.Z.Size() != n {
		return 0
	}
	return n
}

// ConstVector lifts a real Vector into a DualVector of the given size,
// with all derivative coefficients zero.
func ConstVector(v Vector, size int) DualVector {
	return DualVector{X: dual.Const(v.X, size), Y: dual.Const(v.Y, size), Z: dual.Const(v.Z, size)}
}

// Value returns the real (zeroth-coefficient) part of v.
func (v DualVector) Value() Vector {
	return Vector{X: v.X.Value(), Y: v.Y.Value(), Z: v.Z.Value()}
}

// Head returns v with the last k coefficients of each component dropped.
func (v DualVector) Head(k int) DualVector {
	return DualVector{X: dual.Head(v.X, k), Y: dual.Head(v.Y, k), Z: dual.Head(v.Z, k)}
}

// Tail returns v differentiated k times.
func (v DualVector) Tail(k int) DualVector {
	return DualVector{X: dual.Tail(v.X, k), Y: dual.Tail(v.Y, k), Z: dual.Tail(v.Z, k)}
}

// AddDual returns the componentwise sum of two DualVectors of matching
// size.
func AddDual(a, b DualVector) (DualVector, error) {
	x, err := dual.Add(a.X, b.X)
	if err != nil {
		return DualVector{}, err
	}
	y, err := dual.Add(a.Y, b.Y)
	if err != nil {
		return DualVector{}, err
	}
	z, err := dual.Add(a.Z, b.Z)
	if err != nil {
		return DualVector{}, err
	}
	return DualVector{X: x, Y: y, Z: z}, nil
}

// SubDual returns the componentwise difference a-b.
func SubDual(a, b DualVector) (DualVector, error) {
	x, err := dual.Sub(a.X, b.X)
	if err != nil {
		return DualVector{}, err
	}
	y, err := dual.Sub(a.Y, b.Y)
	if err != nil {
		return DualVector{}, err
	}
	z, err := dual.Sub(a.Z, b.Z)
	if err != nil {
		return DualVector{}, err
	}
	return DualVector{X: x, Y: y, Z: z}, nil
}

// ScaleDual returns v scaled by the real factor f.
func ScaleDual(f float64, v DualVector) DualVector {
	return DualVector{X: dual.MulReal(v.X, f), Y: dual.MulReal(v.Y, f), Z: dual.MulReal(v.Z, f)}
}

// CrossDual returns the Dual cross product of a and b.
func CrossDual(a, b DualVector) (DualVector, error) {
	ayz, err := dual.Mul(a.Y, b.Z)
	if err != nil {
		return DualVector{}, err
	}
	azy, err := dual.Mul(a.Z, b.Y)
	if err != nil {
		return DualVector{}, err
	}
	azx, err := dual.Mul(a.Z, b.X)
	if err != nil {
		return DualVector{}, err
	}
	axz, err := dual.Mul(a.X, b.Z)
	if err != nil {
		return DualVector{}, err
	}
	axy, err := dual.Mul(a.X, b.Y)
	if err != nil {
		return DualVector{}, err
	}
	ayx, err := dual.Mul(a.Y, b.X)
	if err != nil {
		return DualVector{}, err
	}
	x, err := dual.Sub(ayz, azy)
	if err != nil {
		return DualVector{}, err
	}
	y, err := dual.Sub(azx, axz)
	if err != nil {
		return DualVector{}, err
	}
	z, err := dual.Sub(axy, ayx)
	if err != nil {
		return DualVector{}, err
	}
	return DualVector{X: x, Y: y, Z: z}, nil
}
