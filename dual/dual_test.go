package dual

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func coeffs(d Dual) []float64 {
	out := make([]float64, d.Size())
	for i := range out {
		out[i] = d.Coeff(i)
	}
	return out
}

func dSin(x float64) float64  { return math.Cos(x) }
func dCos(x float64) float64  { return -math.Sin(x) }
func dExp(x float64) float64  { return math.Exp(x) }
func dLog(x float64) float64  { return 1 / x }
func dSqrt(x float64) float64 { return 0.5 / math.Sqrt(x) }

const tol = 1e-9

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestArithmeticIdentities(t *testing.T) {
	for _, x0 := range []float64{-3.2, -0.5, 0.1, 1.7, 4.0} {
		for _, c := range []float64{-2.5, 0.3, 5.0} {
			x := Variable(x0, 3)

			sum := AddReal(x, c)
			back, err := Sub(sum, Const(c, 3))
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(back, x, tol) {
				t.Errorf("(x+c)-c != x for x0=%v c=%v: got %v want %v", x0, c, back, x)
			}

			if c != 0 {
				prod := MulReal(x, c)
				quot, err := Div(prod, Const(c, 3))
				if err != nil {
					t.Fatal(err)
				}
				if !Equal(quot, x, tol) {
					t.Errorf("(x*c)/c != x for x0=%v c=%v: got %v want %v", x0, c, quot, x)
				}
			}
		}
	}
}

func TestSeedScenarioSinOrder3(t *testing.T) {
	x := Variable(3, 3)
	got := Sin(x)
	want := []float64{math.Sin(3), math.Cos(3), -math.Sin(3) / 2}
	for i, w := range want {
		if !within(got.Coeff(i), w, 1e-9) {
			t.Errorf("sin([3,1,0])[%d] = %v, want %v", i, got.Coeff(i), w)
		}
	}
}

func TestExpLogInverse(t *testing.T) {
	for _, x0 := range []float64{0.2, 1.0, 2.5, 10.0} {
		x := Variable(x0, 4)
		elog, err := Log(Exp(x))
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(elog, x, 1e-8) {
			t.Errorf("log(exp(x)) != x at x0=%v: got %v", x0, elog)
		}

		logx, err := Log(x)
		if err != nil {
			t.Fatal(err)
		}
		expLog := Exp(logx)
		if !Equal(expLog, x, 1e-8) {
			t.Errorf("exp(log(x)) != x at x0=%v: got %v", x0, expLog)
		}
	}
}

func TestSqrtSquare(t *testing.T) {
	for _, x0 := range []float64{0.5, 1.0, 9.0} {
		x := Variable(x0, 3)
		root, err := Sqrt(x)
		if err != nil {
			t.Fatal(err)
		}
		sq, err := PowN(root, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(sq, x, 1e-8) {
			t.Errorf("sqrt(x)^2 != x at x0=%v: got %v", x0, sq)
		}
	}
}

func TestSinCosPythagorean(t *testing.T) {
	for _, x0 := range []float64{-1.3, 0, 0.7, 2.2} {
		x := Variable(x0, 4)
		s, err := PowN(Sin(x), 2)
		if err != nil {
			t.Fatal(err)
		}
		c, err := PowN(Cos(x), 2)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := Add(s, c)
		if err != nil {
			t.Fatal(err)
		}
		one := Const(1, 4)
		if !Equal(sum, one, 1e-8) {
			t.Errorf("sin^2+cos^2 != 1 at x0=%v: got %v", x0, sum)
		}
	}
}

func TestDerivativesMatchClosedForm(t *testing.T) {
	derivs := []struct {
		name string
		f    func(Dual) Dual
		df   func(float64) float64
	}{
		{"sin", Sin, dSin},
		{"cos", Cos, dCos},
		{"exp", Exp, dExp},
	}
	for _, d := range derivs {
		x0 := 0.6
		x := Variable(x0, 2)
		y := d.f(x)
		got := Tail(y, 1).Value()
		want := d.df(x0)
		if !within(got, want, 1e-9) {
			t.Errorf("%s derivative at %v: got %v want %v", d.name, x0, got, want)
		}
	}

	x0 := 2.0
	x := Variable(x0, 2)
	y, err := Log(x)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Tail(y, 1).Value(), dLog(x0); !within(got, want, 1e-9) {
		t.Errorf("log derivative: got %v want %v", got, want)
	}

	y, err = Sqrt(x)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Tail(y, 1).Value(), dSqrt(x0); !within(got, want, 1e-9) {
		t.Errorf("sqrt derivative: got %v want %v", got, want)
	}
}

func TestSizeMismatch(t *testing.T) {
	a := Variable(1, 2)
	b := Variable(1, 3)
	if _, err := Add(a, b); err != ErrSizeMismatch {
		t.Errorf("Add: got %v, want ErrSizeMismatch", err)
	}
	if _, err := Mul(a, b); err != ErrSizeMismatch {
		t.Errorf("Mul: got %v, want ErrSizeMismatch", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	a := Variable(1, 2)
	z := Const(0, 2)
	if _, err := Div(a, z); err != ErrDivisionByZero {
		t.Errorf("Div by zero: got %v, want ErrDivisionByZero", err)
	}
}

func TestDomainErrors(t *testing.T) {
	neg := Variable(-1, 2)
	if _, err := Log(neg); err != ErrDomain {
		t.Errorf("Log(-1): got %v, want ErrDomain", err)
	}
	if _, err := Sqrt(neg); err != ErrDomain {
		t.Errorf("Sqrt(-1): got %v, want ErrDomain", err)
	}
	pole := Variable(math.Pi/2, 2)
	if _, err := Tan(pole); err != ErrDomain {
		t.Errorf("Tan(pi/2): got %v, want ErrDomain", err)
	}
}

func TestMulCoefficientsAgainstExpected(t *testing.T) {
	x := Variable(2, 3)
	y := Const(3, 3)
	prod, err := Mul(x, y)
	if err != nil {
		t.Fatal(err)
	}
	got := coeffs(prod)
	want := []float64{6, 3, 0}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Mul(x,y) coefficients mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadTail(t *testing.T) {
	x := FromCoeffs([]float64{1, 2, 3, 4})
	h := Head(x, 1)
	if h.Size() != 3 || h.Coeff(0) != 1 || h.Coeff(2) != 3 {
		t.Errorf("Head(1): got %v", h)
	}
	tl := Tail(x, 1)
	if tl.Size() != 3 || tl.Coeff(0) != 2 || tl.Coeff(2) != 4 {
		t.Errorf("Tail(1): got %v", tl)
	}
}
