package se3

import (
	"errors"

	"github.com/age-series/libage-sub000/r3"
)

// ErrSingular is returned when a Matrix4 inverse is requested but the
// matrix's determinant has magnitude below the geometry comparison
// epsilon.
var ErrSingular = errors.New("se3: matrix is singular")

// Matrix4 is a 4x4 homogeneous transform matrix, stored column-major.
type Matrix4 struct {
	col [4][4]float64
}

// Identity4 is the 4x4 identity matrix.
var Identity4 = Matrix4{col: [4][4]float64{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}}

// NewMatrix4FromRows builds a Matrix4 from 16 values in row-major order.
func NewMatrix4FromRows(v []float64) Matrix4 {
	if len(v) != 16 {
		panic("se3: NewMatrix4FromRows requires exactly 16 values")
	}
	var m Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.col[j][i] = v[i*4+j]
		}
	}
	return m
}

// NewMatrix4FromPose builds the homogeneous transform matrix
// corresponding to a rigid pose's rotation and translation.
func NewMatrix4FromPose(rot r3.Matrix, t r3.Vector) Matrix4 {
	var m Matrix4
	for j := 0; j < 3; j++ {
		c := rot.Col(j)
		m.col[j] = [4]float64{c.X, c.Y, c.Z, 0}
	}
	m.col[3] = [4]float64{t.X, t.Y, t.Z, 1}
	return m
}

// At returns the element at row i, column j.
func (m Matrix4) At(i, j int) float64 {
	return m.col[j][i]
}

// Col returns the jth column.
func (m Matrix4) Col(j int) [4]float64 {
	return m.col[j]
}

// MulMatrix4 returns the matrix product a*b.
func MulMatrix4(a, b Matrix4) Matrix4 {
	var out Matrix4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.col[j][i] = sum
		}
	}
	return out
}

// MulVec4 applies m to a homogeneous 4-vector.
func (m Matrix4) MulVec4(v [4]float64) [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		var sum float64
		for j := 0; j < 4; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}

// MulPoint applies m to a 3D point, implicitly appending w=1 and
// dropping it from the result.
func (m Matrix4) MulPoint(v r3.Vector) r3.Vector {
	out := m.MulVec4([4]float64{v.X, v.Y, v.Z, 1})
	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.col[j][i] = m.At(j, i)
		}
	}
	return out
}

// minor returns the determinant of the 3x3 matrix obtained by deleting
// row i and column j from m.
func (m Matrix4) minor(i, j int) float64 {
	var vals [9]float64
	k := 0
	for r := 0; r < 4; r++ {
		if r == i {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == j {
				continue
			}
			vals[k] = m.At(r, c)
			k++
		}
	}
	return vals[0]*(vals[4]*vals[8]-vals[5]*vals[7]) -
		vals[1]*(vals[3]*vals[8]-vals[5]*vals[6]) +
		vals[2]*(vals[3]*vals[7]-vals[4]*vals[6])
}

// cofactor returns the (i,j) cofactor of m.
func (m Matrix4) cofactor(i, j int) float64 {
	sign := 1.0
	if (i+j)%2 != 0 {
		sign = -1
	}
	return sign * m.minor(i, j)
}

// Det returns the determinant of m via cofactor expansion along the
// first row.
func (m Matrix4) Det() float64 {
	var sum float64
	for j := 0; j < 4; j++ {
		sum += m.At(0, j) * m.cofactor(0, j)
	}
	return sum
}

// Inverse returns the inverse of m via the adjugate, failing with
// ErrSingular when |det| is below the geometry comparison epsilon.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Det()
	if det < 0 {
		det = -det
	}
	if det < 1e-6 {
		return Matrix4{}, ErrSingular
	}
	d := m.Det()
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.col[j][i] = m.cofactor(j, i) / d
		}
	}
	return out, nil
}
