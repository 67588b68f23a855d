// Released under an MIT license. See LICENSE.

// Package frac provides uncalc's exact rational type.
package frac

import (
	"math"
	"strconv"

	"github.com/uncalc/uncalc/internal/common"
	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

const name = "fraction"

// T (frac) is a rational in lowest terms with a positive denominator.
// The sign is carried by the numerator.
type T struct {
	num int64
	den int64
}

type frac = T

// New creates a new frac, normalizing num/den.
// A zero denominator is a division by zero.
func New(num, den int64) *T {
	if den == 0 {
		fault.Throw(fault.DivisionByZero, "fraction with zero denominator")
	}

	if den < 0 {
		num, den = neg(num), neg(den)
	}

	g := gcd(num, den)

	return &frac{num: num / g, den: den / g}
}

// Int creates a frac from the integer n.
func Int(n int64) *T {
	return &frac{num: n, den: 1}
}

// Is returns true if q is a frac.
func Is(q quantity.I) bool {
	_, ok := q.(*frac)

	return ok
}

// To returns a frac if q is a frac; Otherwise it panics.
func To(q quantity.I) *frac {
	if f, ok := q.(*frac); ok {
		return f
	}

	panic("not a " + name)
}

// Num returns the numerator of the frac f.
func (f *frac) Num() int64 {
	return f.num
}

// Den returns the denominator of the frac f.
func (f *frac) Den() int64 {
	return f.den
}

// Equal returns true if q is the same rational as the frac f.
func (f *frac) Equal(q quantity.I) bool {
	return Is(q) && f.num == To(q).num && f.den == To(q).den
}

// Name returns the type name for the frac f.
func (f *frac) Name() string {
	return name
}

// String returns the text of the frac f.
func (f *frac) String() string {
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}

// Float converts the frac f to a float64. The conversion is exact up
// to float64 rounding.
func (f *frac) Float() float64 {
	return float64(f.num) / float64(f.den)
}

// IsInt returns true if the frac f is integral.
func (f *frac) IsInt() bool {
	return f.den == 1
}

// Add returns the sum of the fracs f and o.
func (f *frac) Add(o *frac) *T {
	return New(add(mul(f.num, o.den), mul(f.den, o.num)), mul(f.den, o.den))
}

// Sub returns the difference of the fracs f and o.
func (f *frac) Sub(o *frac) *T {
	return New(sub(mul(f.num, o.den), mul(f.den, o.num)), mul(f.den, o.den))
}

// Mul returns the product of the fracs f and o.
func (f *frac) Mul(o *frac) *T {
	return New(mul(f.num, o.num), mul(f.den, o.den))
}

// Div returns the quotient of the fracs f and o.
func (f *frac) Div(o *frac) *T {
	if o.num == 0 {
		fault.Throw(fault.DivisionByZero, "fraction division by zero")
	}

	return New(mul(f.num, o.den), mul(f.den, o.num))
}

// Neg returns the negation of the frac f.
func (f *frac) Neg() *T {
	return &frac{num: neg(f.num), den: f.den}
}

// Abs returns the absolute value of the frac f.
func (f *frac) Abs() *T {
	if f.num < 0 {
		return f.Neg()
	}

	return f
}

// Pow returns the frac f raised to the integer power n.
func (f *frac) Pow(n int64) *T {
	if n < 0 {
		if f.num == 0 {
			fault.Throw(fault.DivisionByZero, "zero to a negative power")
		}

		return Int(1).Div(f).Pow(neg(n))
	}

	num, den := int64(1), int64(1)
	for b := f; n > 0; n >>= 1 {
		if n&1 == 1 {
			num, den = mul(num, b.num), mul(den, b.den)
		}

		if n > 1 {
			b = &frac{num: mul(b.num, b.num), den: mul(b.den, b.den)}
		}
	}

	// Already in lowest terms; New just rechecks.
	return New(num, den)
}

// Checked int64 arithmetic. Anything outside the representable range
// is an overflow fault rather than a silent wraparound.

func add(a, b int64) int64 {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		fault.Throw(fault.Overflow, "fraction component out of range")
	}

	return a + b
}

func sub(a, b int64) int64 {
	if b == math.MinInt64 {
		return add(add(a, math.MaxInt64), 1)
	}

	return add(a, -b)
}

func mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}

	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 || b == 1 {
			return math.MinInt64
		}

		fault.Throw(fault.Overflow, "fraction component out of range")
	}

	c := a * b
	if c/b != a {
		fault.Throw(fault.Overflow, "fraction component out of range")
	}

	return c
}

func neg(a int64) int64 {
	if a == math.MinInt64 {
		fault.Throw(fault.Overflow, "fraction component out of range")
	}

	return -a
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		a = neg(a)
	}

	return a
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t frac

	// The frac type is a quantity.
	_ = quantity.I(&t)

	// The frac type is a stringer.
	_ = common.Stringer(&t)
}
