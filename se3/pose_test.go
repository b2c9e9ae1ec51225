package se3

import (
	"math"
	"testing"

	"github.com/age-series/libage-sub000/r3"
)

func TestExpLogRoundtrip(t *testing.T) {
	cases := []Twist{
		{Linear: r3.Vector{}, Angular: r3.Vector{}},
		{Linear: r3.Vector{X: 1, Y: 2, Z: 3}, Angular: r3.Vector{X: 0.1, Y: 0.2, Z: 0.3}},
		{Linear: r3.Vector{X: -1, Y: 0, Z: 2}, Angular: r3.Vector{X: math.Pi, Y: 0, Z: 0}},
		{Linear: r3.Vector{X: 1e-10}, Angular: r3.Vector{X: 1e-10}},
	}
	for _, tw := range cases {
		p := Exp(tw)
		back := Log(p)
		p2 := Exp(back)
		if !r3.Equal(p.Translation, p2.Translation, 1e-6) {
			t.Errorf("twist %+v: roundtrip translation %v != %v", tw, p2.Translation, p.Translation)
		}
		if !r3.ApproxEqual(p.Rotation.ToMatrix(), p2.Rotation.ToMatrix(), 1e-6) {
			t.Errorf("twist %+v: roundtrip rotation mismatch", tw)
		}
	}
}

func TestPoseInverseIdentity(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: -2, Z: 3}, r3.ExpRotation(r3.Vector{X: 0.3, Y: 0.4, Z: -0.1}))
	id := Mul(p, p.Inverse())
	if !r3.Equal(id.Translation, r3.Vector{}, 1e-9) {
		t.Errorf("p*p^-1 translation = %v, want zero", id.Translation)
	}
	if !r3.ApproxEqual(id.Rotation.ToMatrix(), r3.Identity3, 1e-9) {
		t.Errorf("p*p^-1 rotation = %v, want identity", id.Rotation.ToMatrix())
	}
}

func TestPoseApplyMatchesMatrix4(t *testing.T) {
	p := NewPose(r3.Vector{X: 2, Y: 0, Z: -1}, r3.ExpRotation(r3.Vector{Z: math.Pi / 2}))
	v := r3.Vector{X: 1, Y: 1, Z: 1}
	viaPose := p.Apply(v)
	viaMatrix := p.ToMatrix4().MulPoint(v)
	if !r3.Equal(viaPose, viaMatrix, 1e-9) {
		t.Errorf("pose apply %v != matrix4 apply %v", viaPose, viaMatrix)
	}
}

func TestPoseComposeAssociativity(t *testing.T) {
	a := NewPose(r3.Vector{X: 1}, r3.ExpRotation(r3.Vector{X: 0.3}))
	b := NewPose(r3.Vector{Y: 1}, r3.ExpRotation(r3.Vector{Y: -0.7}))
	c := NewPose(r3.Vector{X: -2, Y: 1}, r3.ExpRotation(r3.Vector{Z: 1.5}))
	left := Mul(Mul(a, b), c)
	right := Mul(a, Mul(b, c))
	if !r3.Equal(left.Translation, right.Translation, 1e-9) {
		t.Errorf("associativity broken: %v != %v", left.Translation, right.Translation)
	}
}

func TestDualPoseVelocityRoundtrip(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: -2, Z: 3}, r3.ExpRotation(r3.Vector{X: 0.3, Y: 0.4, Z: -0.1}))
	v := Velocity{
		Linear:  r3.Vector{X: 2, Y: -1, Z: 0.5},
		Angular: r3.Vector{X: 0.1, Y: -0.2, Z: 0.3},
	}
	dp := PoseWithVelocity(p, v)

	if !r3.Equal(dp.Value().Translation, p.Translation, 1e-9) {
		t.Errorf("DualPose.Value() translation = %v, want %v", dp.Value().Translation, p.Translation)
	}
	if !r3.ApproxEqual(dp.Value().Rotation.ToMatrix(), p.Rotation.ToMatrix(), 1e-9) {
		t.Errorf("DualPose.Value() rotation mismatch")
	}

	got := VelocityOf(dp)
	if !r3.Equal(got.Linear, v.Linear, 1e-9) {
		t.Errorf("VelocityOf linear = %v, want %v", got.Linear, v.Linear)
	}
	if !r3.Equal(got.Angular, v.Angular, 1e-9) {
		t.Errorf("VelocityOf angular = %v, want %v", got.Angular, v.Angular)
	}
}

func TestMatrix4Inverse(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, r3.ExpRotation(r3.Vector{X: 0.2, Y: -0.4, Z: 0.1}))
	m := p.ToMatrix4()
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	id := MulMatrix4(m, inv)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(id.At(i, j)-want) > 1e-6 {
				t.Errorf("m*inv(m)[%d][%d] = %v, want %v", i, j, id.At(i, j), want)
			}
		}
	}
}

func TestMatrix4Singular(t *testing.T) {
	m := NewMatrix4FromRows([]float64{
		1, 2, 3, 4,
		2, 4, 6, 8,
		1, 1, 1, 1,
		0, 0, 0, 1,
	})
	if _, err := m.Inverse(); err != ErrSingular {
		t.Errorf("singular Matrix4 Inverse: got %v, want ErrSingular", err)
	}
}
