// Released under an MIT license. See LICENSE.

// Package cpx provides uncalc's complex type.
//
// Once an evaluation promotes to the complex domain it stays there: a
// cpx with a zero imaginary part is not demoted back to a real.
package cpx

import (
	"math"
	"strconv"

	"github.com/uncalc/uncalc/internal/common"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

const name = "complex"

// T (cpx) wraps Go's complex128 type.
type T complex128

type cpx = T

// New creates a new cpx from the complex128 v.
func New(v complex128) *T {
	c := cpx(v)

	return &c
}

// Rect creates a new cpx from real and imaginary parts.
func Rect(re, im float64) *T {
	return New(complex(re, im))
}

// Is returns true if q is a cpx.
func Is(q quantity.I) bool {
	_, ok := q.(*cpx)

	return ok
}

// To returns a cpx if q is a cpx; Otherwise it panics.
func To(q quantity.I) *cpx {
	if c, ok := q.(*cpx); ok {
		return c
	}

	panic("not a " + name)
}

// Equal returns true if q is the same number as the cpx c.
func (c *cpx) Equal(q quantity.I) bool {
	return Is(q) && *c == *To(q)
}

// Name returns the type name for the cpx c.
func (c *cpx) Name() string {
	return name
}

// String returns the text of the cpx c in a+bi form.
func (c *cpx) String() string {
	re := strconv.FormatFloat(real(complex128(*c)), 'g', -1, 64)

	im := imag(complex128(*c))
	sign := "+"

	if math.Signbit(im) {
		sign = "-"
		im = -im
	}

	return re + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}

// Complex returns the value of the cpx c as a complex128.
func (c *cpx) Complex() complex128 {
	return complex128(*c)
}

// Real returns the real part of the cpx c.
func (c *cpx) Real() float64 {
	return real(complex128(*c))
}

// Imag returns the imaginary part of the cpx c.
func (c *cpx) Imag() float64 {
	return imag(complex128(*c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cpx

	// The cpx type is a quantity.
	_ = quantity.I(&t)

	// The cpx type is a stringer.
	_ = common.Stringer(&t)
}
