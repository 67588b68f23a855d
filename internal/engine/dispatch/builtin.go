// Released under an MIT license. See LICENSE.

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
	"github.com/uncalc/uncalc/internal/common/validate"
)

// builtins are the functions whose behavior is particular to one
// domain and does not fit the generic real/complex/uncertain template.
//
//nolint:gochecknoglobals
var builtins = map[string]func(name string, args []quantity.I) quantity.I{
	"abs":       absQuantity,
	"conj":      conj,
	"denom":     denom,
	"factorial": factorial,
	"float":     toReal,
	"frac":      construct,
	"gcd":       gcdFn,
	"im":        imPart,
	"lcm":       lcmFn,
	"nominal":   nominal,
	"numer":     numer,
	"phase":     phase,
	"re":        rePart,
	"rect":      rect,
	"stddev":    stddev,
	"unc":       uncertain,
}

// integral returns q as an int64, or faults if q is not integral.
func integral(name string, q quantity.I) int64 {
	if frac.Is(q) {
		f := frac.To(q)
		if f.IsInt() {
			return f.Num()
		}

		fault.Throw(fault.Domain, "%s: argument is not an integer", name)
	}

	if flt.Is(q) {
		v := flt.To(q).Value()
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v)
		}

		fault.Throw(fault.Domain, "%s: argument is not an integer", name)
	}

	fault.Throw(fault.Domain, "%s is not defined for %s", name, q.Name())

	return 0 // Unreachable.
}

func absQuantity(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	switch a := args[0]; {
	case frac.Is(a):
		return frac.To(a).Abs()
	case flt.Is(a):
		return flt.New(math.Abs(flt.To(a).Value()))
	case cpx.Is(a):
		return flt.New(cmplx.Abs(cpx.To(a).Complex()))
	case meas.Is(a):
		m := meas.To(a)

		return meas.New(math.Abs(m.Nominal()), m.Sigma())
	}

	fault.Throw(fault.Domain, "%s is not a number", args[0].Name())

	return nil // Unreachable.
}

func conj(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if cpx.Is(args[0]) {
		return cpx.New(cmplx.Conj(cpx.To(args[0]).Complex()))
	}

	return flt.New(exactFloat(name, args[0]))
}

// exactFloat is toFloat restricted to fractions and reals.
func exactFloat(name string, q quantity.I) float64 {
	if meas.Is(q) {
		fault.Throw(fault.Domain, "%s is not defined for %s", name, q.Name())
	}

	return toFloat(q)
}

func construct(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 2, 2)

	return frac.New(integral(name, args[0]), integral(name, args[1]))
}

func denom(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if !frac.Is(args[0]) {
		fault.Throw(fault.Domain, "%s is only defined for fractions", name)
	}

	return frac.Int(frac.To(args[0]).Den())
}

func factorial(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	n := integral(name, args[0])
	if n < 0 {
		fault.Throw(fault.Domain, "%s: argument is negative", name)
	}

	r := frac.Int(1)
	for i := int64(2); i <= n; i++ {
		r = r.Mul(frac.Int(i))
	}

	if flt.Is(args[0]) {
		return flt.New(r.Float())
	}

	return r
}

func gcdFn(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 2, 2)

	x := integral(name, args[0])
	y := integral(name, args[1])

	if x == 0 || y == 0 {
		fault.Throw(fault.Domain, "%s of zero", name)
	}

	for y != 0 {
		x, y = y, x%y
	}

	if x < 0 {
		x = -x
	}

	return frac.Int(x)
}

func imPart(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if cpx.Is(args[0]) {
		return flt.New(cpx.To(args[0]).Imag())
	}

	exactFloat(name, args[0])

	return flt.New(0)
}

func lcmFn(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 2, 2)

	x := integral(name, args[0])
	y := integral(name, args[1])

	if x == 0 || y == 0 {
		fault.Throw(fault.Domain, "%s of zero", name)
	}

	g := frac.To(gcdFn("gcd", args)).Num()

	r := frac.Int(x).Div(frac.Int(g)).Mul(frac.Int(y))

	return r.Abs()
}

func nominal(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if meas.Is(args[0]) {
		return flt.New(meas.To(args[0]).Nominal())
	}

	return flt.New(toFloat(args[0]))
}

func numer(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if !frac.Is(args[0]) {
		fault.Throw(fault.Domain, "%s is only defined for fractions", name)
	}

	return frac.Int(frac.To(args[0]).Num())
}

func phase(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if cpx.Is(args[0]) {
		return flt.New(cmplx.Phase(cpx.To(args[0]).Complex()))
	}

	return flt.New(math.Atan2(0, exactFloat(name, args[0])))
}

func rePart(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if cpx.Is(args[0]) {
		return flt.New(cpx.To(args[0]).Real())
	}

	return flt.New(exactFloat(name, args[0]))
}

func rect(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 2, 2)

	return cpx.New(cmplx.Rect(exactFloat(name, args[0]), exactFloat(name, args[1])))
}

func stddev(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if meas.Is(args[0]) {
		return flt.New(meas.To(args[0]).Sigma())
	}

	// Exact values have no spread.
	exactFloat(name, args[0])

	return flt.New(0)
}

func toReal(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 1, 1)

	if cpx.Is(args[0]) || meas.Is(args[0]) {
		fault.Throw(fault.Domain, "%s is not defined for %s", name, args[0].Name())
	}

	return flt.New(toFloat(args[0]))
}

func uncertain(name string, args []quantity.I) quantity.I {
	validate.Fixed(name, args, 2, 2)

	for _, a := range args {
		if cpx.Is(a) || meas.Is(a) {
			fault.Throw(fault.Domain, "%s takes real arguments", name)
		}
	}

	return meas.New(toFloat(args[0]), toFloat(args[1]))
}
