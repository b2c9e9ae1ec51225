// Package dual provides a forward-mode automatic differentiation numeric
// type: a truncated Taylor series ("dual number" of configurable order)
// over float64, with arithmetic and elementary-function closure.
//
// A Dual of size n represents a0 + a1*eps + a2*eps^2 + ... + a(n-1)*eps^(n-1)
// truncated after n terms; arithmetic between two Duals requires matching
// size.
package dual

import "errors"

// Sentinel errors for recoverable arithmetic failures. Unlike the fixed-
// size linear algebra package, Dual arithmetic returns these rather than
// panicking: a caller evaluating an expression tree over user-controlled
// seeds routinely hits a zero denominator or an out-of-domain input and
// needs to recover, not crash.
var (
	ErrSizeMismatch   = errors.New("dual: size mismatch")
	ErrDivisionByZero = errors.New("dual: division by zero")
	ErrDomain         = errors.New("dual: input outside function domain")
)

// Dual is a truncated Taylor series of float64 coefficients.
type Dual struct {
	a []float64
}

// Size returns the truncation order (number of stored coefficients).
func (d Dual) Size() int { return len(d.a) }

// Value returns the zeroth coefficient, a0.
func (d Dual) Value() float64 {
	if len(d.a) == 0 {
		return 0
	}
	return d.a[0]
}

// Coeff returns the kth coefficient, or 0 if k is out of range.
func (d Dual) Coeff(k int) float64 {
	if k < 0 || k >= len(d.a) {
		return 0
	}
	return d.a[k]
}

// Variable returns the Dual of size n representing the independent
// variable x: [x, 1, 0, ..., 0].
func Variable(x float64, n int) Dual {
	if n < 1 {
		panic("dual: size must be at least 1")
	}
	a := make([]float64, n)
	a[0] = x
	if n > 1 {
		a[1] = 1
	}
	return Dual{a: a}
}

// Const returns the Dual of size n representing the constant x:
// [x, 0, ..., 0].
func Const(x float64, n int) Dual {
	if n < 1 {
		panic("dual: size must be at least 1")
	}
	a := make([]float64, n)
	a[0] = x
	return Dual{a: a}
}

// FromCoeffs returns the Dual with exactly the given coefficients. The
// slice is copied.
func FromCoeffs(a []float64) Dual {
	if len(a) < 1 {
		panic("dual: size must be at least 1")
	}
	cp := make([]float64, len(a))
	copy(cp, a)
	return Dual{a: cp}
}

// broadcast lifts a real constant c to a Dual of the given size without
// allocating a derivative chain beyond the zeroth coefficient.
func broadcast(c float64, size int) Dual {
	return Const(c, size)
}

func sameSize(x, y Dual) error {
	if x.Size() != y.Size() {
		return ErrSizeMismatch
	}
	return nil
}

// Add returns x+y. Adding a constant affects only the zeroth coefficient.
func Add(x, y Dual) (Dual, error) {
	if err := sameSize(x, y); err != nil {
		return Dual{}, err
	}
	out := make([]float64, x.Size())
	for i := range out {
		out[i] = x.a[i] + y.a[i]
	}
	return Dual{a: out}, nil
}

// Sub returns x-y.
func Sub(x, y Dual) (Dual, error) {
	if err := sameSize(x, y); err != nil {
		return Dual{}, err
	}
	out := make([]float64, x.Size())
	for i := range out {
		out[i] = x.a[i] - y.a[i]
	}
	return Dual{a: out}, nil
}

// Neg returns -x.
func Neg(x Dual) Dual {
	out := make([]float64, x.Size())
	for i, v := range x.a {
		out[i] = -v
	}
	return Dual{a: out}
}

// AddReal returns x+c for a real constant c, affecting only a0.
func AddReal(x Dual, c float64) Dual {
	out := make([]float64, x.Size())
	copy(out, x.a)
	out[0] += c
	return Dual{a: out}
}

// MulReal returns x scaled by the real constant c.
func MulReal(x Dual, c float64) Dual {
	out := make([]float64, x.Size())
	for i, v := range x.a {
		out[i] = v * c
	}
	return Dual{a: out}
}

// Mul returns the truncated product x*y, computed by discrete
// convolution: c_k = sum_{i=0..k} a_i * b_{k-i}.
func Mul(x, y Dual) (Dual, error) {
	if err := sameSize(x, y); err != nil {
		return Dual{}, err
	}
	n := x.Size()
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i <= k; i++ {
			sum += x.a[i] * y.a[k-i]
		}
		out[k] = sum
	}
	return Dual{a: out}, nil
}

// Div returns the truncated quotient x/y via the recurrence
// c_k = (a_k - sum_{i=1..k} b_i*c_{k-i}) / b0. Fails with
// ErrDivisionByZero when y's value (b0) is zero.
func Div(x, y Dual) (Dual, error) {
	if err := sameSize(x, y); err != nil {
		return Dual{}, err
	}
	if y.Value() == 0 {
		return Dual{}, ErrDivisionByZero
	}
	n := x.Size()
	c := make([]float64, n)
	b0 := y.a[0]
	for k := 0; k < n; k++ {
		sum := x.a[k]
		for i := 1; i <= k; i++ {
			sum -= y.a[i] * c[k-i]
		}
		c[k] = sum / b0
	}
	return Dual{a: c}, nil
}

// Recip returns 1/x.
func Recip(x Dual) (Dual, error) {
	return Div(broadcast(1, x.Size()), x)
}

// Head returns a copy of x with the last k coefficients dropped, i.e.
// truncated to order size-k.
func Head(x Dual, k int) Dual {
	n := x.Size() - k
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	copy(out, x.a)
	return Dual{a: out}
}

// Tail returns the Dual formed by dropping the first k coefficients and
// shifting the remainder down, which is the series obtained by
// differentiating k times: Tail(x,1).Coeff(0) is x's first derivative,
// Tail(x,1).Coeff(1) is half its second derivative (Taylor coefficients
// are derivatives divided by i!), and so on.
func Tail(x Dual, k int) Dual {
	n := x.Size() - k
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		if k+i < x.Size() {
			out[i] = x.a[k+i]
		}
	}
	return Dual{a: out}
}

// Equal reports whether x and y are approximately equal coefficientwise
// within tol.
func Equal(x, y Dual, tol float64) bool {
	if x.Size() != y.Size() {
		return false
	}
	for i := range x.a {
		if d := x.a[i] - y.a[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
