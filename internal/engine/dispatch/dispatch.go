// Released under an MIT license. See LICENSE.

// Package dispatch selects, per operation and per operand domain, the
// routine that carries it out.
//
// The governing domain of an operation is the widest domain among its
// operands, ordered fraction < real < complex. Uncertain measurements
// are orthogonal: they wrap a real nominal value and delegate to the
// propagate package once the nominal result is known.
//
// Dispatch is total. Every reachable (operator, domain) pair either
// computes a quantity or throws a specific fault; there is no silent
// fallback to an arbitrary domain.
package dispatch

import (
	"math"
	"math/cmplx"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/flt"
	"github.com/uncalc/uncalc/internal/common/type/frac"
	"github.com/uncalc/uncalc/internal/common/type/meas"
)

type domain int

const (
	fractions domain = iota
	reals
	complexes
)

func domainOf(q quantity.I) domain {
	switch {
	case frac.Is(q):
		return fractions
	case flt.Is(q):
		return reals
	case cpx.Is(q):
		return complexes
	}

	fault.Throw(fault.Domain, "%s is not a number", q.Name())

	return reals // Unreachable.
}

func governing(a, b quantity.I) domain {
	d := domainOf(a)
	if o := domainOf(b); o > d {
		d = o
	}

	return d
}

// toFloat demotes a fraction, real, or measurement nominal to a float64.
func toFloat(q quantity.I) float64 {
	switch {
	case frac.Is(q):
		return frac.To(q).Float()
	case flt.Is(q):
		return flt.To(q).Value()
	case meas.Is(q):
		return meas.To(q).Nominal()
	}

	fault.Throw(fault.Domain, "%s cannot be used as a real", q.Name())

	return 0 // Unreachable.
}

// toComplex widens a fraction, real, or complex to a complex128.
func toComplex(q quantity.I) complex128 {
	if cpx.Is(q) {
		return cpx.To(q).Complex()
	}

	return complex(toFloat(q), 0)
}

// Unary applies the unary operator op to the quantity a.
func Unary(op string, a quantity.I) quantity.I {
	switch op {
	case "+":
		// Identity. The only operation that preserves a measurement's
		// correlation tag.
		return a
	case "-":
		return negate(a)
	}

	fault.Throw(fault.UnknownOperation, "unknown unary operator %q", op)

	return nil // Unreachable.
}

func negate(a quantity.I) quantity.I {
	switch {
	case frac.Is(a):
		return frac.To(a).Neg()
	case flt.Is(a):
		return flt.New(-flt.To(a).Value())
	case cpx.Is(a):
		return cpx.New(-cpx.To(a).Complex())
	case meas.Is(a):
		m := meas.To(a)

		return meas.New(-m.Nominal(), m.Sigma())
	}

	fault.Throw(fault.Domain, "%s is not a number", a.Name())

	return nil // Unreachable.
}

// Binary applies the binary operator op to the quantities a and b.
func Binary(op string, a, b quantity.I) quantity.I {
	if meas.Is(a) || meas.Is(b) {
		return measBinary(op, a, b)
	}

	f := binary[opKey{op, governing(a, b)}]
	if f == nil {
		fault.Throw(fault.UnknownOperation, "unknown operator %q", op)
	}

	return f(a, b)
}

type opKey struct {
	op  string
	dom domain
}

//nolint:gochecknoglobals
var binary = map[opKey]func(a, b quantity.I) quantity.I{
	{"+", fractions}: func(a, b quantity.I) quantity.I {
		return frac.To(a).Add(frac.To(b))
	},
	{"-", fractions}: func(a, b quantity.I) quantity.I {
		return frac.To(a).Sub(frac.To(b))
	},
	{"*", fractions}: func(a, b quantity.I) quantity.I {
		return frac.To(a).Mul(frac.To(b))
	},
	{"/", fractions}: func(a, b quantity.I) quantity.I {
		return frac.To(a).Div(frac.To(b))
	},
	{"%", fractions}: func(a, b quantity.I) quantity.I {
		x, y := frac.To(a), frac.To(b)
		if !x.IsInt() || !y.IsInt() {
			fault.Throw(fault.Domain, "mod requires integral operands")
		}

		if y.Num() == 0 {
			fault.Throw(fault.DivisionByZero, "mod by zero")
		}

		return frac.Int(x.Num() % y.Num())
	},
	{"**", fractions}: func(a, b quantity.I) quantity.I {
		x, y := frac.To(a), frac.To(b)
		if y.IsInt() {
			// Closed over the rationals for integer exponents.
			return x.Pow(y.Num())
		}

		return power(x.Float(), y.Float())
	},

	{"+", reals}: func(a, b quantity.I) quantity.I {
		return flt.New(toFloat(a) + toFloat(b))
	},
	{"-", reals}: func(a, b quantity.I) quantity.I {
		return flt.New(toFloat(a) - toFloat(b))
	},
	{"*", reals}: func(a, b quantity.I) quantity.I {
		return flt.New(toFloat(a) * toFloat(b))
	},
	{"/", reals}: func(a, b quantity.I) quantity.I {
		d := toFloat(b)
		if d == 0 {
			fault.Throw(fault.DivisionByZero, "real division by zero")
		}

		return flt.New(toFloat(a) / d)
	},
	{"%", reals}: func(a, b quantity.I) quantity.I {
		x, y := toFloat(a), toFloat(b)
		if x != math.Trunc(x) || y != math.Trunc(y) {
			fault.Throw(fault.Domain, "mod requires integral operands")
		}

		if y == 0 {
			fault.Throw(fault.DivisionByZero, "mod by zero")
		}

		return flt.New(math.Mod(x, y))
	},
	{"**", reals}: func(a, b quantity.I) quantity.I {
		return power(toFloat(a), toFloat(b))
	},

	{"+", complexes}: func(a, b quantity.I) quantity.I {
		return cpx.New(toComplex(a) + toComplex(b))
	},
	{"-", complexes}: func(a, b quantity.I) quantity.I {
		return cpx.New(toComplex(a) - toComplex(b))
	},
	{"*", complexes}: func(a, b quantity.I) quantity.I {
		return cpx.New(toComplex(a) * toComplex(b))
	},
	{"/", complexes}: func(a, b quantity.I) quantity.I {
		d := toComplex(b)
		if d == 0 {
			fault.Throw(fault.DivisionByZero, "complex division by zero")
		}

		return cpx.New(toComplex(a) / d)
	},
	{"%", complexes}: func(a, b quantity.I) quantity.I {
		fault.Throw(fault.Domain, "mod is not defined for complex")

		return nil // Unreachable.
	},
	{"**", complexes}: func(a, b quantity.I) quantity.I {
		x, y := toComplex(a), toComplex(b)
		if x == 0 && real(y) < 0 {
			fault.Throw(fault.DivisionByZero, "zero to a negative power")
		}

		return cpx.New(cmplx.Pow(x, y))
	},
}

// power raises the real x to the real power y, promoting to complex
// when a negative base meets a non-integer exponent.
func power(x, y float64) quantity.I {
	if x == 0 && y < 0 {
		fault.Throw(fault.DivisionByZero, "zero to a negative power")
	}

	if x < 0 && y != math.Trunc(y) {
		return cpx.New(cmplx.Pow(complex(x, 0), complex(y, 0)))
	}

	return flt.New(math.Pow(x, y))
}
