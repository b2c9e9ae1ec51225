package dual

import "math"

// compose evaluates the analytic function whose Taylor coefficients about
// x.Value() are given by coeffs (coeffs[k] = f^(k)(a0)/k!) at the Dual x,
// by substituting x's non-constant part u = x - a0 (itself a truncated
// series) via Horner's rule over Dual multiplication. Because u has a
// zero constant term, u^size is truncated away entirely by the
// convolution in Mul, so this recovers exactly the chain-rule-truncated
// composition the package promises for any analytic f.
func compose(x Dual, coeffs []float64) Dual {
	n := x.Size()
	u := make([]float64, n)
	copy(u, x.a)
	u[0] = 0
	ud := Dual{a: u}

	result := broadcast(coeffs[n-1], n)
	for k := n - 2; k >= 0; k-- {
		result, _ = Mul(result, ud) // sizes always match: both size n
		result = AddReal(result, coeffs[k])
	}
	return result
}

func sinCosCoeffs(a0 float64, n int) (s, c []float64) {
	s = make([]float64, n)
	c = make([]float64, n)
	s[0] = math.Sin(a0)
	c[0] = math.Cos(a0)
	for k := 0; k+1 < n; k++ {
		s[k+1] = c[k] / float64(k+1)
		c[k+1] = -s[k] / float64(k+1)
	}
	return s, c
}

func sinhCoshCoeffs(a0 float64, n int) (s, c []float64) {
	s = make([]float64, n)
	c = make([]float64, n)
	s[0] = math.Sinh(a0)
	c[0] = math.Cosh(a0)
	for k := 0; k+1 < n; k++ {
		s[k+1] = c[k] / float64(k+1)
		c[k+1] = s[k] / float64(k+1)
	}
	return s, c
}

// Sin returns the sine of x.
func Sin(x Dual) Dual {
	s, _ := sinCosCoeffs(x.Value(), x.Size())
	return compose(x, s)
}

// Cos returns the cosine of x.
func Cos(x Dual) Dual {
	_, c := sinCosCoeffs(x.Value(), x.Size())
	return compose(x, c)
}

// Tan returns the tangent of x. Fails with ErrDomain when cos(x.Value())
// is zero within 1e-15 (a pole of tangent; math.Cos of the float64
// nearest pi/2 is about 6e-17, never exactly zero).
func Tan(x Dual) (Dual, error) {
	if math.Abs(math.Cos(x.Value())) < 1e-15 {
		return Dual{}, ErrDomain
	}
	d, err := Div(Sin(x), Cos(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Cot returns the cotangent of x. Fails with ErrDomain at sin(x.Value())
// == 0.
func Cot(x Dual) (Dual, error) {
	if math.Sin(x.Value()) == 0 {
		return Dual{}, ErrDomain
	}
	d, err := Div(Cos(x), Sin(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Sec returns the secant of x. Fails with ErrDomain at cos(x.Value()) ==
// 0.
func Sec(x Dual) (Dual, error) {
	if math.Cos(x.Value()) == 0 {
		return Dual{}, ErrDomain
	}
	d, err := Recip(Cos(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Csc returns the cosecant of x. Fails with ErrDomain at sin(x.Value())
// == 0.
func Csc(x Dual) (Dual, error) {
	if math.Sin(x.Value()) == 0 {
		return Dual{}, ErrDomain
	}
	d, err := Recip(Sin(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Dual) Dual {
	s, _ := sinhCoshCoeffs(x.Value(), x.Size())
	return compose(x, s)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Dual) Dual {
	_, c := sinhCoshCoeffs(x.Value(), x.Size())
	return compose(x, c)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Dual) (Dual, error) {
	d, err := Div(Sinh(x), Cosh(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Coth returns the hyperbolic cotangent of x. Fails with ErrDomain at
// sinh(x.Value()) == 0.
func Coth(x Dual) (Dual, error) {
	if math.Sinh(x.Value()) == 0 {
		return Dual{}, ErrDomain
	}
	d, err := Div(Cosh(x), Sinh(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Sech returns the hyperbolic secant of x.
func Sech(x Dual) (Dual, error) {
	d, err := Recip(Cosh(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Csch returns the hyperbolic cosecant of x. Fails with ErrDomain at
// sinh(x.Value()) == 0.
func Csch(x Dual) (Dual, error) {
	if math.Sinh(x.Value()) == 0 {
		return Dual{}, ErrDomain
	}
	d, err := Recip(Sinh(x))
	if err != nil {
		return Dual{}, ErrDomain
	}
	return d, nil
}

// Exp returns e**x.
func Exp(x Dual) Dual {
	n := x.Size()
	e := math.Exp(x.Value())
	coeffs := make([]float64, n)
	fact := 1.0
	for k := 0; k < n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		coeffs[k] = e / fact
	}
	return compose(x, coeffs)
}

// Log returns the natural logarithm of x. Fails with ErrDomain when
// x.Value() <= 0.
func Log(x Dual) (Dual, error) {
	a0 := x.Value()
	if a0 <= 0 {
		return Dual{}, ErrDomain
	}
	n := x.Size()
	coeffs := make([]float64, n)
	coeffs[0] = math.Log(a0)
	sign := 1.0
	pow := a0
	for k := 1; k < n; k++ {
		coeffs[k] = sign / (float64(k) * pow)
		sign = -sign
		pow *= a0
	}
	return compose(x, coeffs), nil
}

// powCoeffs builds the generalized binomial series coefficients of
// (a0+u)**r about u=0.
func powCoeffs(a0, r float64, n int) ([]float64, error) {
	isNonNegInt := r == math.Trunc(r) && r >= 0
	if a0 == 0 && !isNonNegInt {
		return nil, ErrDomain
	}
	if a0 < 0 && r != math.Trunc(r) {
		return nil, ErrDomain
	}
	out := make([]float64, n)
	binom := 1.0
	for k := 0; k < n; k++ {
		switch {
		case a0 == 0:
			if float64(k) == r {
				out[k] = binom
			} else {
				out[k] = 0
			}
		default:
			out[k] = math.Pow(a0, r-float64(k)) * binom
		}
		binom *= (r - float64(k)) / float64(k+1)
	}
	return out, nil
}

// Pow returns x raised to the real power r. Fails with ErrDomain when the
// base is zero and r is not a non-negative integer, or when the base is
// negative and r is not an integer.
func Pow(x Dual, r float64) (Dual, error) {
	coeffs, err := powCoeffs(x.Value(), r, x.Size())
	if err != nil {
		return Dual{}, err
	}
	return compose(x, coeffs), nil
}

// PowN returns x raised to the integer power n, computed by
// exponentiation by squaring so that it is exact for small integer
// exponents regardless of sign. Fails with ErrDivisionByZero for negative
// n when x.Value() == 0.
func PowN(x Dual, n int) (Dual, error) {
	if n == 0 {
		return broadcast(1, x.Size()), nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	size := x.Size()
	result := broadcast(1, size)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result, _ = Mul(result, base)
		}
		base, _ = Mul(base, base)
		n >>= 1
	}
	if neg {
		return Recip(result)
	}
	return result, nil
}

// Sqrt returns the square root of x. Fails with ErrDomain when x.Value()
// <= 0.
func Sqrt(x Dual) (Dual, error) {
	if x.Value() < 0 {
		return Dual{}, ErrDomain
	}
	return Pow(x, 0.5)
}
