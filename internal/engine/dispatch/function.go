// Released under an MIT license. See LICENSE.

package dispatch

import (
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/flt"
	"github.com/uncalc/uncalc/internal/common/type/meas"
	"github.com/uncalc/uncalc/internal/engine/propagate"
)

// fn describes one named function for every domain it can govern.
//
// real is the routine over float64 arguments. realOK reports whether
// the real routine is defined at those arguments; when it is not, real
// arguments re-execute through cmplx (if non-nil) instead. cmplx also
// serves arguments already in the complex domain. reject marks
// arguments the function is not defined at in any domain. deriv holds
// one analytic partial derivative per argument, evaluated at the
// nominal point, for uncertainty propagation; a nil deriv makes the
// function a domain error for uncertain arguments.
type fn struct {
	arity  int
	real   func(xs []float64) float64
	realOK func(xs []float64) bool
	reject func(xs []float64) (bool, string)
	cmplx  func(zs []complex128) complex128
	deriv  []func(xs []float64) float64
}

// Call applies the named function to args.
func Call(name string, args []quantity.I) quantity.I {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}

	if b, ok := builtins[name]; ok {
		return b(name, args)
	}

	f, ok := functions[name]
	if !ok {
		fault.Throw(fault.UnknownOperation, "unknown function %q", name)
	}

	if len(args) != f.arity {
		fault.Throw(fault.UnknownOperation, "%s: expected %d argument(s), passed %d",
			name, f.arity, len(args))
	}

	uncertain := false
	wide := false

	for _, a := range args {
		switch {
		case meas.Is(a):
			uncertain = true
		case cpx.Is(a):
			wide = true
		}
	}

	if uncertain && wide {
		fault.Throw(fault.Domain, "uncertainty is not defined over complex")
	}

	if wide {
		if f.cmplx == nil {
			fault.Throw(fault.Domain, "%s is not defined for complex", name)
		}

		zs := make([]complex128, len(args))
		for i, a := range args {
			zs[i] = toComplex(a)
		}

		return cpx.New(f.cmplx(zs))
	}

	xs := make([]float64, len(args))
	for i, a := range args {
		xs[i] = toFloat(a)
	}

	if f.reject != nil {
		if bad, msg := f.reject(xs); bad {
			fault.Throw(fault.Domain, "%s: %s", name, msg)
		}
	}

	if uncertain {
		return callUncertain(name, f, args, xs)
	}

	if f.realOK != nil && !f.realOK(xs) {
		if f.cmplx == nil {
			fault.Throw(fault.Domain, "%s is not defined at this argument", name)
		}

		// Undefined over the reals; re-execute promoted to complex.
		zs := make([]complex128, len(xs))
		for i, x := range xs {
			zs[i] = complex(x, 0)
		}

		return cpx.New(f.cmplx(zs))
	}

	return flt.New(f.real(xs))
}

func callUncertain(name string, f fn, args []quantity.I, xs []float64) quantity.I {
	if f.realOK != nil && !f.realOK(xs) {
		fault.Throw(fault.Domain, "%s is not defined at this argument", name)
	}

	if f.deriv == nil {
		fault.Throw(fault.Domain, "%s is not differentiable", name)
	}

	terms := make([]propagate.Term, 0, len(args))

	for i, a := range args {
		if !meas.Is(a) {
			continue
		}

		m := meas.To(a)
		if m.Sigma() == 0 {
			continue
		}

		terms = append(terms, propagate.Term{
			Partial: f.deriv[i](xs),
			Sigma:   m.Sigma(),
			ID:      m.Tag(),
		})
	}

	return meas.New(f.real(xs), propagate.Sigma(terms...))
}

// Known returns true if name is a defined function.
func Known(name string) bool {
	if _, ok := aliases[name]; ok {
		return true
	}

	if _, ok := builtins[name]; ok {
		return true
	}

	_, ok := functions[name]

	return ok
}

// Complete returns the defined function names with the given prefix.
func Complete(prefix string) []string {
	names := make([]string, 0, len(functions)+len(builtins)+len(aliases))

	for n := range functions {
		names = append(names, n)
	}

	for n := range builtins {
		names = append(names, n)
	}

	for n := range aliases {
		names = append(names, n)
	}

	matches := names[:0]

	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			matches = append(matches, n)
		}
	}

	sort.Strings(matches)

	return matches
}

//nolint:gochecknoglobals
var aliases = map[string]string{
	"deg":  "degrees",
	"fabs": "abs",
	"fact": "factorial",
	"lg":   "log10",
	"ln":   "log",
	"rad":  "radians",
}

//nolint:gochecknoglobals,funlen
var functions = map[string]fn{
	"sin": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Sin(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Sin(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Cos(xs[0]) },
		},
	},
	"cos": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Cos(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Cos(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return -math.Sin(xs[0]) },
		},
	},
	"tan": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Tan(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Tan(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { t := math.Tan(xs[0]); return 1 + t*t },
		},
	},
	"asin": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Asin(xs[0]) },
		realOK: func(xs []float64) bool { return math.Abs(xs[0]) <= 1 },
		cmplx:  func(zs []complex128) complex128 { return cmplx.Asin(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / math.Sqrt(1-xs[0]*xs[0]) },
		},
	},
	"acos": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Acos(xs[0]) },
		realOK: func(xs []float64) bool { return math.Abs(xs[0]) <= 1 },
		cmplx:  func(zs []complex128) complex128 { return cmplx.Acos(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return -1 / math.Sqrt(1-xs[0]*xs[0]) },
		},
	},
	"atan": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Atan(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Atan(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / (1 + xs[0]*xs[0]) },
		},
	},
	"atan2": {
		arity: 2,
		real:  func(xs []float64) float64 { return math.Atan2(xs[0], xs[1]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { y, x := xs[0], xs[1]; return x / (x*x + y*y) },
			func(xs []float64) float64 { y, x := xs[0], xs[1]; return -y / (x*x + y*y) },
		},
	},
	"sinh": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Sinh(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Sinh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Cosh(xs[0]) },
		},
	},
	"cosh": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Cosh(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Cosh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Sinh(xs[0]) },
		},
	},
	"tanh": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Tanh(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Tanh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { t := math.Tanh(xs[0]); return 1 - t*t },
		},
	},
	"asinh": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Asinh(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Asinh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / math.Sqrt(1+xs[0]*xs[0]) },
		},
	},
	"acosh": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Acosh(xs[0]) },
		realOK: func(xs []float64) bool { return xs[0] >= 1 },
		cmplx:  func(zs []complex128) complex128 { return cmplx.Acosh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / math.Sqrt(xs[0]*xs[0]-1) },
		},
	},
	"atanh": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Atanh(xs[0]) },
		realOK: func(xs []float64) bool { return math.Abs(xs[0]) < 1 },
		cmplx:  func(zs []complex128) complex128 { return cmplx.Atanh(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / (1 - xs[0]*xs[0]) },
		},
	},
	"exp": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Exp(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Exp(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Exp(xs[0]) },
		},
	},
	"expm1": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Expm1(xs[0]) },
		cmplx: func(zs []complex128) complex128 { return cmplx.Exp(zs[0]) - 1 },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Exp(xs[0]) },
		},
	},
	"log": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Log(xs[0]) },
		realOK: func(xs []float64) bool { return xs[0] > 0 },
		reject: rejectLogZero,
		cmplx:  func(zs []complex128) complex128 { return cmplx.Log(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / xs[0] },
		},
	},
	"log10": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Log10(xs[0]) },
		realOK: func(xs []float64) bool { return xs[0] > 0 },
		reject: rejectLogZero,
		cmplx:  func(zs []complex128) complex128 { return cmplx.Log10(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / (xs[0] * math.Ln10) },
		},
	},
	"log2": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Log2(xs[0]) },
		realOK: func(xs []float64) bool { return xs[0] > 0 },
		reject: rejectLogZero,
		cmplx:  func(zs []complex128) complex128 { return cmplx.Log(zs[0]) / complex(math.Ln2, 0) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 1 / (xs[0] * math.Ln2) },
		},
	},
	"sqrt": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Sqrt(xs[0]) },
		realOK: func(xs []float64) bool { return xs[0] >= 0 },
		cmplx:  func(zs []complex128) complex128 { return cmplx.Sqrt(zs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 0.5 / math.Sqrt(xs[0]) },
		},
	},
	"hypot": {
		arity: 2,
		real:  func(xs []float64) float64 { return math.Hypot(xs[0], xs[1]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return xs[0] / math.Hypot(xs[0], xs[1]) },
			func(xs []float64) float64 { return xs[1] / math.Hypot(xs[0], xs[1]) },
		},
	},
	"copysign": {
		arity: 2,
		real:  func(xs []float64) float64 { return math.Copysign(xs[0], xs[1]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 {
				if xs[0] >= 0 {
					return math.Copysign(1, xs[1])
				}

				return -math.Copysign(1, xs[1])
			},
			func(xs []float64) float64 { return 0 },
		},
	},
	"degrees": {
		arity: 1,
		real:  func(xs []float64) float64 { return xs[0] * 180 / math.Pi },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return 180 / math.Pi },
		},
	},
	"radians": {
		arity: 1,
		real:  func(xs []float64) float64 { return xs[0] * math.Pi / 180 },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Pi / 180 },
		},
	},
	"erf": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Erf(xs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return erfCoef * math.Exp(-xs[0]*xs[0]) },
		},
	},
	"erfc": {
		arity: 1,
		real:  func(xs []float64) float64 { return math.Erfc(xs[0]) },
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return -erfCoef * math.Exp(-xs[0]*xs[0]) },
		},
	},
	"gamma": {
		arity:  1,
		real:   func(xs []float64) float64 { return math.Gamma(xs[0]) },
		reject: rejectGammaPole,
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return math.Gamma(xs[0]) * psi(xs[0]) },
		},
	},
	"lgamma": {
		arity:  1,
		real:   func(xs []float64) float64 { v, _ := math.Lgamma(xs[0]); return v },
		reject: rejectGammaPole,
		deriv: []func(xs []float64) float64{
			func(xs []float64) float64 { return psi(xs[0]) },
		},
	},
}

// erfCoef is erf'(0): 2 / sqrt(pi).
const erfCoef = 2 / 1.7724538509055160273

func rejectLogZero(xs []float64) (bool, string) {
	return xs[0] == 0, "log of zero"
}

func rejectGammaPole(xs []float64) (bool, string) {
	return xs[0] <= 0 && xs[0] == math.Trunc(xs[0]), "pole at non-positive integer"
}

// psi is the digamma function, the logarithmic derivative of gamma.
// The asymptotic series is accurate for large arguments; smaller ones
// are shifted up with psi(x) = psi(x+1) - 1/x first.
func psi(x float64) float64 {
	var shift float64

	for x < 6 {
		shift -= 1 / x
		x++
	}

	x2 := x * x

	return shift + math.Log(x) - 1/(2*x) -
		1/(12*x2) + 1/(120*x2*x2) - 1/(252*x2*x2*x2)
}
