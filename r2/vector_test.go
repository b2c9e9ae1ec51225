package r2

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	p := Vector{X: 1, Y: 2}
	q := Vector{X: 3, Y: -1}
	if got, want := Add(p, q), (Vector{X: 4, Y: 1}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := Sub(p, q), (Vector{X: -2, Y: 3}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := Dot(p, q), 1.0; got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
}

func TestNormalizeZero(t *testing.T) {
	got := Normalize(Vector{})
	if got != (Vector{}) {
		t.Errorf("Normalize(0) = %v, want zero vector (not NaN)", got)
	}
}

func TestBoxUnionIntersection(t *testing.T) {
	a := NewBox(0, 0, 2, 2)
	b := NewBox(1, 1, 3, 3)
	u := a.Union(b)
	if !u.Contains(a.Min) || !u.Contains(a.Max) || !u.Contains(b.Min) || !u.Contains(b.Max) {
		t.Errorf("union %v does not contain both boxes", u)
	}
	inter := a.Intersection(b)
	want := NewBox(1, 1, 2, 2)
	if inter != want {
		t.Errorf("Intersection: got %v, want %v", inter, want)
	}
	if self := a.Intersection(a); self.Canon() != a.Canon() {
		t.Errorf("A n A != A: got %v want %v", self, a)
	}
}

func TestRotationExpLnRoundtrip(t *testing.T) {
	for _, theta := range []float64{0, 0.3, 1.57, -2.1, 3.0} {
		r := Exp(theta)
		if !r.IsUnit() {
			t.Errorf("Exp(%v) not unit: %v", theta, r)
		}
		got := Exp(r.Ln())
		if !Equal(Vector{X: got.Re, Y: got.Im}, Vector{X: r.Re, Y: r.Im}, 1e-9) {
			t.Errorf("exp(ln(r)) != r at theta=%v: got %v want %v", theta, got, r)
		}
	}
}

func TestRotationInverse(t *testing.T) {
	r := Exp(0.9)
	id := Mul(r, r.Inverse())
	if !Equal(Vector{X: id.Re, Y: id.Im}, Vector{X: Identity.Re, Y: Identity.Im}, 1e-9) {
		t.Errorf("r*r^-1 != identity: got %v", id)
	}
}

func TestRotationRotateVector(t *testing.T) {
	r := Exp(math.Pi / 2)
	got := r.Rotate(Vector{X: 1, Y: 0})
	want := Vector{X: 0, Y: 1}
	if !Equal(got, want, 1e-9) {
		t.Errorf("rotate by pi/2: got %v want %v", got, want)
	}
}
