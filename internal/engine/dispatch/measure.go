// Released under an MIT license. See LICENSE.

package dispatch

import (
	"math"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/struct/tag"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/meas"
	"github.com/uncalc/uncalc/internal/engine/propagate"
)

// operand is a binary operand reduced to its nominal value. Exact
// quantities carry a zero sigma and the shared tag.None.
type operand struct {
	nominal float64
	sigma   float64
	id      tag.T
}

func asOperand(q quantity.I) operand {
	if cpx.Is(q) {
		fault.Throw(fault.Domain, "uncertainty is not defined over complex")
	}

	if meas.Is(q) {
		m := meas.To(q)

		return operand{nominal: m.Nominal(), sigma: m.Sigma(), id: m.Tag()}
	}

	return operand{nominal: toFloat(q), id: tag.None}
}

// measBinary computes op for at least one uncertain operand: the
// nominal result on the nominal values, then the propagated sigma from
// the operator's analytic partial derivatives.
func measBinary(op string, a, b quantity.I) quantity.I {
	x, y := asOperand(a), asOperand(b)

	var nominal, dx, dy float64

	switch op {
	case "+":
		nominal, dx, dy = x.nominal+y.nominal, 1, 1
	case "-":
		nominal, dx, dy = x.nominal-y.nominal, 1, -1
	case "*":
		nominal, dx, dy = x.nominal*y.nominal, y.nominal, x.nominal
	case "/":
		if y.nominal == 0 {
			fault.Throw(fault.DivisionByZero, "real division by zero")
		}

		nominal = x.nominal / y.nominal
		dx = 1 / y.nominal
		dy = -x.nominal / (y.nominal * y.nominal)
	case "**":
		return measPower(x, y)
	case "%":
		fault.Throw(fault.Domain, "mod is not defined for uncertain values")
	default:
		fault.Throw(fault.UnknownOperation, "unknown operator %q", op)
	}

	sigma := propagate.Sigma(
		propagate.Term{Partial: dx, Sigma: x.sigma, ID: x.id},
		propagate.Term{Partial: dy, Sigma: y.sigma, ID: y.id},
	)

	return meas.New(nominal, sigma)
}

func measPower(x, y operand) quantity.I {
	if x.nominal == 0 && y.nominal < 0 {
		fault.Throw(fault.DivisionByZero, "zero to a negative power")
	}

	if x.nominal < 0 && y.nominal != math.Trunc(y.nominal) {
		// The nominal result would be complex; there is no
		// uncertainty propagation out of the reals.
		fault.Throw(fault.Domain, "uncertain power of a negative base is complex")
	}

	nominal := math.Pow(x.nominal, y.nominal)

	terms := make([]propagate.Term, 0, 2)

	if x.sigma > 0 {
		dx := y.nominal * math.Pow(x.nominal, y.nominal-1)
		terms = append(terms, propagate.Term{Partial: dx, Sigma: x.sigma, ID: x.id})
	}

	if y.sigma > 0 {
		if x.nominal <= 0 {
			fault.Throw(fault.Domain, "uncertain exponent requires a positive base")
		}

		dy := nominal * math.Log(x.nominal)
		terms = append(terms, propagate.Term{Partial: dy, Sigma: y.sigma, ID: y.id})
	}

	return meas.New(nominal, propagate.Sigma(terms...))
}
