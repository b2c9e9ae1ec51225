package r2

import "github.com/age-series/libage-sub000/dual"

// DualVector is a 2D vector whose components are Duals of a shared
// truncation order.
type DualVector struct {
	X, Y dual.Dual
}

// Size returns the shared truncation order of the components, or 0 if
// the components' sizes disagree (a malformed aggregate).
func (v DualVector) Size() int {
	if v.X.Size() != v.Y.Size() {
		return 0
	}
	return v.X.Size()
}

// ConstVector lifts a real Vector into a DualVector of the given size,
// with all derivative coefficients zero.
func ConstVector(v Vector, size int) DualVector {
	return DualVector{X: dual.Const(v.X, size), Y: dual.Const(v.Y, size)}
}

// Value returns the real (zeroth-coefficient) part of v.
func (v DualVector) Value() Vector {
	return Vector{X: v.X.Value(), Y: v.Y.Value()}
}

// Head returns v with the last k coefficients of each component dropped.
func (v DualVector) Head(k int) DualVector {
	return DualVector{X: dual.Head(v.X, k), Y: dual.Head(v.Y, k)}
}

// Tail returns v differentiated k times: the kth derivative channel of
// each component.
func (v DualVector) Tail(k int) DualVector {
	return DualVector{X: dual.Tail(v.X, k), Y: dual.Tail(v.Y, k)}
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
	return DualVector{X: x, Y: y}, nil
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
	return DualVector{X: x, Y: y}, nil
}

// ScaleDual returns v scaled by the real factor f.
func ScaleDual(f float64, v DualVector) DualVector {
	return DualVector{X: dual.MulReal(v.X, f), Y: dual.MulReal(v.Y, f)}
}
