package r3

import "github.com/age-series/libage-sub000/dual"

// DualMatrix is a column-major 3x3 matrix of Duals sharing a common
// truncation order.
type DualMatrix struct {
	col [3]DualVector
}

// NewDualMatrixFromColumns builds a DualMatrix from its three Dual column
// vectors.
func NewDualMatrixFromColumns(c0, c1, c2 DualVector) DualMatrix {
	return DualMatrix{col: [3]DualVector{c0, c1, c2}}
}

// ConstMatrix lifts a real Matrix into a DualMatrix of the given size,
// with all derivative coefficients zero.
func ConstMatrix(m Matrix, size int) DualMatrix {
	return DualMatrix{col: [3]DualVector{
		ConstVector(m.Col(0), size),
		ConstVector(m.Col(1), size),
		ConstVector(m.Col(2), size),
	}}
}

// Value returns the real (zeroth-coefficient) part of m.
func (m DualMatrix) Value() Matrix {
	return NewMatrixFromColumns(m.col[0].Value(), m.col[1].Value(), m.col[2].Value())
}

// Col returns the jth Dual column.
func (m DualMatrix) Col(j int) DualVector {
	return m.col[j]
}

// Head returns m with the last k coefficients of every component
// dropped.
func (m DualMatrix) Head(k int) DualMatrix {
	return DualMatrix{col: [3]DualVector{m.col[0].Head(k), m.col[1].Head(k), m.col[2].Head(k)}}
}

// Tail returns m differentiated k times.
func (m DualMatrix) Tail(k int) DualMatrix {
	return DualMatrix{col: [3]DualVector{m.col[0].Tail(k), m.col[1].Tail(k), m.col[2].Tail(k)}}
}

// MulVecDual returns the Dual matrix-vector product m*v.
func MulVecDual(m DualMatrix, v DualVector) (DualVector, error) {
	row := func(i int) (dual.Dual, error) {
		elems := [3]dual.Dual{elemDual(m.col[0], i), elemDual(m.col[1], i), elemDual(m.col[2], i)}
		vc := [3]dual.Dual{v.X, v.Y, v.Z}
		sum := dual.Const(0, v.Size())
		for j := 0; j < 3; j++ {
			term, err := dual.Mul(elems[j], vc[j])
			if err != nil {
				return dual.Dual{}, err
			}
			sum, err = dual.Add(sum, term)
			if err != nil {
				return dual.Dual{}, err
			}
		}
		return sum, nil
	}
	x, err := row(0)
	if err != nil {
		return DualVector{}, err
	}
	y, err := row(1)
	if err != nil {
		return DualVector{}, err
	}
	z, err := row(2)
	if err != nil {
		return DualVector{}, err
	}
	return DualVector{X: x, Y: y, Z: z}, nil
}

func elemDual(v DualVector, i int) dual.Dual {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("r3: row index out of range")
}
