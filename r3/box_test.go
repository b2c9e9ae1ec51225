package r3

import "testing"

func TestBoxUnionIntersectionProperties(t *testing.T) {
	a := NewBox(0, 0, 0, 2, 2, 2)
	b := NewBox(1, 1, 1, 3, 3, 3)

	u := a.Union(b)
	for _, v := range append(a.Vertices()[:], b.Vertices()[:]...) {
		if !u.Contains(v) {
			t.Errorf("union %v does not contain %v", u, v)
		}
	}

	inter := a.Intersection(b)
	want := NewBox(1, 1, 1, 2, 2, 2)
	if inter != want {
		t.Errorf("seed scenario 5: A n B = %v, want %v", inter, want)
	}
	if got := a.EvaluateContainment(b); got != Intersected {
		t.Errorf("seed scenario 5: EvaluateContainment = %v, want Intersected", got)
	}

	if self := a.Intersection(a); self.Canon() != a.Canon() {
		t.Errorf("A n A != A: got %v want %v", self, a)
	}
	if self := a.Union(a); self.Canon() != a.Canon() {
		t.Errorf("A u A != A: got %v want %v", self, a)
	}
}

func TestRayIntersectBox(t *testing.T) {
	b := NewBox(0, 0, 0, 2, 2, 2)
	r := NewRayNormalized(Vector{X: -1, Y: 1, Z: 1}, Vector{X: 1})
	entry, exit, ok := r.IntersectBox(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if entry > exit {
		t.Errorf("entry %v > exit %v", entry, exit)
	}
	p := r.Evaluate(entry)
	if !b.Contains(p) && !pointOnSurface(p, b) {
		t.Errorf("entry point %v not on/inside box %v", p, b)
	}
}

func pointOnSurface(p Vector, b Box) bool {
	const tol = 1e-9
	onX := withinTol(p.X, b.Min.X, tol) || withinTol(p.X, b.Max.X, tol)
	onY := withinTol(p.Y, b.Min.Y, tol) || withinTol(p.Y, b.Max.Y, tol)
	onZ := withinTol(p.Z, b.Min.Z, tol) || withinTol(p.Z, b.Max.Z, tol)
	return onX || onY || onZ
}

func withinTol(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestRayMissesBoxBehindOrigin(t *testing.T) {
	b := NewBox(5, 5, 5, 6, 6, 6)
	r := NewRayNormalized(Vector{}, Vector{X: -1})
	if _, _, ok := r.IntersectBox(b); ok {
		t.Errorf("ray pointing away from box should not intersect")
	}
}

func TestRayNaNInputsNoSpuriousHit(t *testing.T) {
	b := NewBox(0, 0, 0, 1, 1, 1)
	nanRay := Ray{Origin: Vector{X: nanFloat()}, Direction: Vector{X: 1}}
	if _, _, ok := nanRay.IntersectBox(b); ok {
		t.Errorf("NaN ray origin should not intersect")
	}
}

func nanFloat() float64 {
	var x float64
	return x / x
}
