// Released under an MIT license. See LICENSE.

package dispatch

import (
	"math"
	"testing"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/type/cpx"
	"github.com/uncalc/uncalc/internal/common/type/flt"
	"github.com/uncalc/uncalc/internal/common/type/frac"
	"github.com/uncalc/uncalc/internal/common/type/meas"
)

func TestGoverningDomain(t *testing.T) {
	// fraction + real governs real, fraction + complex governs complex.
	if q := Binary("+", frac.New(1, 2), flt.New(0.25)); flt.To(q).Value() != 0.75 {
		t.Errorf("1/2 + 0.25 = %v", q)
	}

	if q := Binary("*", frac.Int(2), cpx.Rect(0, 1)); !q.Equal(cpx.Rect(0, 2)) {
		t.Errorf("2 * 1i = %v", q)
	}

	// Two fractions stay exact.
	if q := Binary("/", frac.Int(1), frac.Int(3)); !q.Equal(frac.New(1, 3)) {
		t.Errorf("1 / 3 = %v", q)
	}
}

func TestPowerPromotion(t *testing.T) {
	q := Binary("**", flt.New(-1), flt.New(0.5))

	c := cpx.To(q)
	if math.Abs(c.Imag()-1) > 1e-15 || math.Abs(c.Real()) > 1e-15 {
		t.Errorf("(-1)**0.5 = %v", q)
	}

	// A negative base with an integer exponent stays real.
	if q := Binary("**", flt.New(-2), flt.New(2)); flt.To(q).Value() != 4 {
		t.Errorf("(-2)**2 = %v", q)
	}

	// An integer exponent on a fraction stays exact.
	if q := Binary("**", frac.New(2, 3), frac.Int(2)); !q.Equal(frac.New(4, 9)) {
		t.Errorf("(2/3)**2 = %v", q)
	}

	kind(t, fault.DivisionByZero, func() { Binary("**", flt.New(0), flt.New(-1)) })
}

func TestModRequiresIntegers(t *testing.T) {
	if q := Binary("%", frac.Int(7), frac.Int(3)); !q.Equal(frac.Int(1)) {
		t.Errorf("7 %% 3 = %v", q)
	}

	kind(t, fault.Domain, func() { Binary("%", frac.New(1, 2), frac.Int(3)) })
	kind(t, fault.Domain, func() { Binary("%", flt.New(2.5), flt.New(1)) })
	kind(t, fault.Domain, func() { Binary("%", cpx.Rect(1, 1), frac.Int(2)) })
	kind(t, fault.DivisionByZero, func() { Binary("%", frac.Int(7), frac.Int(0)) })
}

func TestUncertainArithmetic(t *testing.T) {
	a := meas.New(3, 0.1)
	b := meas.New(4, 0.2)

	sum := meas.To(Binary("+", a, b))
	if sum.Nominal() != 7 || !close(sum.Sigma(), math.Sqrt(0.05)) {
		t.Errorf("(3 ± 0.1) + (4 ± 0.2) = %v", sum)
	}

	// Same measurement on both sides: fully correlated.
	diff := meas.To(Binary("-", a, a))
	if diff.Nominal() != 0 || diff.Sigma() != 0 {
		t.Errorf("x - x = %v", diff)
	}

	sq := meas.To(Binary("*", a, a))
	if !close(sq.Sigma(), 0.6) {
		t.Errorf("sigma of x*x = %v, expected 0.6", sq.Sigma())
	}

	// A derived result is a new measurement, not the old one.
	if sum.Tag() == a.Tag() || sum.Tag() == b.Tag() {
		t.Error("derived measurement reuses an operand tag")
	}

	// Unary identity is the one tag-preserving operation.
	if meas.To(Unary("+", a)).Tag() != a.Tag() {
		t.Error("unary + should preserve the tag")
	}

	if meas.To(Unary("-", a)).Tag() == a.Tag() {
		t.Error("unary - should mint a fresh tag")
	}
}

func TestUncertainComplexRejected(t *testing.T) {
	kind(t, fault.Domain, func() { Binary("+", meas.New(1, 0.1), cpx.Rect(0, 1)) })
	kind(t, fault.Domain, func() { Call("hypot", args(meas.New(1, 0.1), cpx.Rect(0, 1))) })
}

func TestCallPromotion(t *testing.T) {
	// sqrt of a negative real promotes to complex.
	q := Call("sqrt", args(flt.New(-4)))

	c := cpx.To(q)
	if c.Real() != 0 || c.Imag() != 2 {
		t.Errorf("sqrt(-4) = %v", q)
	}

	// sqrt of a negative measurement is a domain error instead.
	kind(t, fault.Domain, func() { Call("sqrt", args(meas.New(-4, 0.1))) })

	// log of zero is rejected in every domain.
	kind(t, fault.Domain, func() { Call("log", args(flt.New(0))) })
}

func TestCallUncertain(t *testing.T) {
	m := meas.To(Call("sin", args(meas.New(2, 0.1))))

	if m.Nominal() != math.Sin(2) || !close(m.Sigma(), math.Abs(math.Cos(2))*0.1) {
		t.Errorf("sin(2 ± 0.1) = %v", m)
	}

	// copysign of a measurement has a defined derivative.
	c := meas.To(Call("copysign", args(meas.New(2, 0.1), flt.New(-1))))
	if c.Nominal() != -2 || !close(c.Sigma(), 0.1) {
		t.Errorf("copysign(2 ± 0.1, -1) = %v", c)
	}
}

func TestCallFaults(t *testing.T) {
	kind(t, fault.UnknownOperation, func() { Call("undefined_fn", args(flt.New(1))) })
	kind(t, fault.UnknownOperation, func() { Call("sin", args(flt.New(1), flt.New(2))) })
	kind(t, fault.Domain, func() { Call("gamma", args(flt.New(-2))) })
}

func TestAliases(t *testing.T) {
	a := Call("ln", args(flt.New(math.E)))
	b := Call("log", args(flt.New(math.E)))

	if !a.Equal(b) {
		t.Errorf("ln and log disagree: %v, %v", a, b)
	}

	if !Known("fact") || !Known("factorial") || Known("undefined_fn") {
		t.Error("Known misclassifies")
	}
}

func TestBuiltins(t *testing.T) {
	if q := Call("factorial", args(frac.Int(5))); !q.Equal(frac.Int(120)) {
		t.Errorf("factorial(5) = %v", q)
	}

	kind(t, fault.Domain, func() { Call("factorial", args(flt.New(2.5))) })
	kind(t, fault.Domain, func() { Call("factorial", args(frac.Int(-1))) })

	if q := Call("gcd", args(frac.Int(12), frac.Int(18))); !q.Equal(frac.Int(6)) {
		t.Errorf("gcd(12, 18) = %v", q)
	}

	if q := Call("lcm", args(frac.Int(4), frac.Int(6))); !q.Equal(frac.Int(12)) {
		t.Errorf("lcm(4, 6) = %v", q)
	}

	if q := Call("abs", args(cpx.Rect(3, 4))); !q.Equal(flt.New(5)) {
		t.Errorf("abs(3+4i) = %v", q)
	}

	m := meas.To(Call("abs", args(meas.New(-2, 0.1))))
	if m.Nominal() != 2 || m.Sigma() != 0.1 {
		t.Errorf("abs(-2 ± 0.1) = %v", m)
	}

	if q := Call("frac", args(frac.Int(3), frac.Int(4))); !q.Equal(frac.New(3, 4)) {
		t.Errorf("frac(3, 4) = %v", q)
	}

	u := meas.To(Call("unc", args(flt.New(9.81), flt.New(0.02))))
	if u.Nominal() != 9.81 || u.Sigma() != 0.02 {
		t.Errorf("unc(9.81, 0.02) = %v", u)
	}

	if q := Call("stddev", args(u)); !q.Equal(flt.New(0.02)) {
		t.Errorf("stddev = %v", q)
	}

	if q := Call("nominal", args(u)); !q.Equal(flt.New(9.81)) {
		t.Errorf("nominal = %v", q)
	}

	if q := Call("im", args(cpx.Rect(3, 4))); !q.Equal(flt.New(4)) {
		t.Errorf("im(3+4i) = %v", q)
	}

	// float refuses anything that would lose information.
	kind(t, fault.Domain, func() { Call("float", args(cpx.Rect(1, 1))) })
	kind(t, fault.Domain, func() { Call("float", args(u)) })
}

func args(qs ...quantity.I) []quantity.I {
	return qs
}

func close(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func kind(t *testing.T, k fault.Kind, op func()) {
	t.Helper()

	defer func() {
		f, ok := recover().(*fault.T)
		if !ok {
			t.Fatal("expected a fault")
		}

		if f.Kind() != k {
			t.Fatalf("expected %s, got %s", k, f)
		}
	}()

	op()
}
