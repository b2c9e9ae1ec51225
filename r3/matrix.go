package r3

import (
	"errors"
	"fmt"
	"math"

	"github.com/age-series/libage-sub000/internal/approx"
)

// ErrSingular is returned by Inverse when the determinant is too small
// to invert reliably.
var ErrSingular = errors.New("r3: matrix is singular")

// Matrix is a column-major 3x3 matrix of float64, stored as three column
// vectors. The zero value is the zero matrix.
type Matrix struct {
	col [3]Vector
}

// NewMatrixFromColumns builds a Matrix from its three column vectors.
func NewMatrixFromColumns(c0, c1, c2 Vector) Matrix {
	return Matrix{col: [3]Vector{c0, c1, c2}}
}

// NewMatrixFromRows builds a Matrix from a flat, row-major list of nine
// values.
func NewMatrixFromRows(m []float64) Matrix {
	if len(m) != 9 {
		panic("r3: NewMatrixFromRows requires 9 values")
	}
	return Matrix{col: [3]Vector{
		{X: m[0], Y: m[3], Z: m[6]},
		{X: m[1], Y: m[4], Z: m[7]},
		{X: m[2], Y: m[5], Z: m[8]},
	}}
}

// Identity3 is the 3x3 identity matrix.
var Identity3 = NewMatrixFromRows([]float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
})

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	switch j {
	case 0:
		return elem(m.col[0], i)
	case 1:
		return elem(m.col[1], i)
	case 2:
		return elem(m.col[2], i)
	}
	panic("r3: column index out of range")
}

func elem(v Vector, i int) float64 {
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

// Col returns the jth column.
func (m Matrix) Col(j int) Vector {
	return m.col[j]
}

// Row returns the ith row.
func (m Matrix) Row(i int) Vector {
	return Vector{X: elem(m.col[0], i), Y: elem(m.col[1], i), Z: elem(m.col[2], i)}
}

// MulScalar returns m scaled by f.
func MulScalar(f float64, m Matrix) Matrix {
	return Matrix{col: [3]Vector{Scale(f, m.col[0]), Scale(f, m.col[1]), Scale(f, m.col[2])}}
}

// MulMatrix returns the matrix product a*b.
func MulMatrix(a, b Matrix) Matrix {
	return Matrix{col: [3]Vector{
		a.MulVec(b.col[0]),
		a.MulVec(b.col[1]),
		a.MulVec(b.col[2]),
	}}
}

// MulVec returns the matrix-vector product m*v.
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return Matrix{col: [3]Vector{m.Row(0), m.Row(1), m.Row(2)}}
}

// Trace returns the sum of the diagonal elements of m.
func (m Matrix) Trace() float64 {
	return m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
}

// FrobeniusNormSquared returns the sum of the squares of all elements.
func (m Matrix) FrobeniusNormSquared() float64 {
	var sum float64
	for j := 0; j < 3; j++ {
		sum += NormSquared(m.col[j])
	}
	return sum
}

// FrobeniusNorm returns the square root of FrobeniusNormSquared.
func (m Matrix) FrobeniusNorm() float64 {
	return math.Sqrt(m.FrobeniusNormSquared())
}

// Det returns the determinant of m.
//
//	    [a b c]
//	m = [d e f]
//	    [g h i]
//	det(m) = a(ei-fh) - b(di-fg) + c(dh-eg)
func (m Matrix) Det() float64 {
	a, b, c := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	d, e, f := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	g, h, i := m.At(2, 0), m.At(2, 1), m.At(2, 2)
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m, computed as the adjugate divided by
// the determinant. Fails with ErrSingular when |det(m)| is below the
// geometry comparison epsilon.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Det()
	if math.Abs(det) < approx.CompareEpsilon {
		return Matrix{}, ErrSingular
	}
	a, b, c := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	d, e, f := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	g, h, i := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	adj := NewMatrixFromRows([]float64{
		e*i - f*h, c*h - b*i, b*f - c*e,
		f*g - d*i, a*i - c*g, c*d - a*f,
		d*h - e*g, b*g - a*h, a*e - b*d,
	})
	return MulScalar(1/det, adj), nil
}

// Skew returns the 3x3 skew-symmetric (cross-product) matrix of v, such
// that Skew(v).MulVec(u) == Cross(v, u).
func Skew(v Vector) Matrix {
	return NewMatrixFromRows([]float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

// ApproxEqual reports whether a and b are equal elementwise within tol.
func ApproxEqual(a, b Matrix, tol float64) bool {
	for j := 0; j < 3; j++ {
		if !Equal(a.col[j], b.col[j], tol) {
			return false
		}
	}
	return true
}

// IsOrthogonal reports whether m is orthogonal: m*m^T ~= I.
func (m Matrix) IsOrthogonal() bool {
	prod := MulMatrix(m, m.Transpose())
	return ApproxEqual(prod, Identity3, approx.CompareEpsilon) &&
		math.Abs(math.Abs(m.Det())-1) <= approx.CompareEpsilon
}

// IsSpecialOrthogonal reports whether m is a rotation matrix: orthogonal
// with determinant +1.
func (m Matrix) IsSpecialOrthogonal() bool {
	prod := MulMatrix(m, m.Transpose())
	return ApproxEqual(prod, Identity3, approx.CompareEpsilon) &&
		math.Abs(m.Det()-1) <= approx.CompareEpsilon
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2))
}
