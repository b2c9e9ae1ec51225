package r3

import (
	"math"
	"testing"
)

func TestMatrixInverse(t *testing.T) {
	m := NewMatrixFromRows([]float64{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !ApproxEqual(MulMatrix(m, inv), Identity3, 1e-9) {
		t.Errorf("m*inv(m) != I: got %v", MulMatrix(m, inv))
	}
	if !ApproxEqual(MulMatrix(inv, m), Identity3, 1e-9) {
		t.Errorf("inv(m)*m != I: got %v", MulMatrix(inv, m))
	}
}

func TestMatrixSingular(t *testing.T) {
	m := NewMatrixFromRows([]float64{
		1, 2, 3,
		2, 4, 6,
		1, 1, 1,
	})
	if _, err := m.Inverse(); err != ErrSingular {
		t.Errorf("Inverse of singular matrix: got %v, want ErrSingular", err)
	}
}

func TestMatrixOrthogonality(t *testing.T) {
	r := ExpRotation(Vector{X: 0.3, Y: -0.2, Z: 0.9})
	m := r.ToMatrix()
	if !m.IsOrthogonal() {
		t.Errorf("rotation matrix %v not orthogonal", m)
	}
	if !m.IsSpecialOrthogonal() {
		t.Errorf("rotation matrix %v not special orthogonal", m)
	}
}

func TestSkewMatchesCross(t *testing.T) {
	v := Vector{X: 1, Y: -2, Z: 3}
	u := Vector{X: 4, Y: 5, Z: -1}
	got := Skew(v).MulVec(u)
	want := Cross(v, u)
	if !Equal(got, want, 1e-9) {
		t.Errorf("Skew(v)*u = %v, want Cross(v,u) = %v", got, want)
	}
}

func TestRotationExpLnRoundtrip(t *testing.T) {
	cases := []Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: math.Pi, Y: 0, Z: 0},
	}
	for _, w := range cases {
		r := ExpRotation(w)
		back := ExpRotation(r.Ln())
		m1, m2 := r.ToMatrix(), back.ToMatrix()
		if !ApproxEqual(m1, m2, 1e-6) {
			t.Errorf("exp(ln(r)) != r for w=%v: got %v want %v", w, m2, m1)
		}
	}
}

func TestRotationInverseIdentity(t *testing.T) {
	r := ExpRotation(Vector{X: 0.5, Y: -0.3, Z: 0.2})
	id := Mul(r, r.Inverse())
	if !ApproxEqual(id.ToMatrix(), Identity3, 1e-9) {
		t.Errorf("r*r^-1 != identity: got %v", id.ToMatrix())
	}
}

func TestRotationExpAxisZ(t *testing.T) {
	r := ExpRotation(Vector{X: math.Pi, Y: 0, Z: 0})
	got := r.Rotate(Vector{Z: 1})
	want := Vector{Z: -1}
	if !Equal(got, want, 1e-9) {
		t.Errorf("rotate unitZ by pi about X: got %v want %v", got, want)
	}
}

func TestMatrixRotationRoundtrip(t *testing.T) {
	r := ExpRotation(Vector{X: 0.4, Y: 0.1, Z: -0.6})
	m := r.ToMatrix()
	back := RotationFromMatrix(m)
	if !ApproxEqual(back.ToMatrix(), m, 1e-6) {
		t.Errorf("matrix roundtrip mismatch: got %v want %v", back.ToMatrix(), m)
	}
}
