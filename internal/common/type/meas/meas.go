// Released under an MIT license. See LICENSE.

// Package meas provides uncalc's uncertain measurement type.
//
// A meas is a real nominal value with a standard deviation and a
// correlation tag. Two meas values sharing a tag are the same
// underlying measurement reused, not independent observations.
package meas

import (
	"math"
	"strconv"

	"github.com/uncalc/uncalc/internal/common"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
	"github.com/uncalc/uncalc/internal/common/struct/tag"
)

const name = "measurement"

// T (meas) is an uncertain quantity.
type T struct {
	nominal float64
	sigma   float64
	id      tag.T
}

type meas = T

// New creates a new meas with a fresh correlation tag.
func New(nominal, sigma float64) *T {
	return With(nominal, sigma, tag.Next())
}

// With creates a new meas carrying the existing tag id. Only an
// identity or copy of a measurement may reuse its tag.
func With(nominal, sigma float64, id tag.T) *T {
	return &meas{nominal: nominal, sigma: math.Abs(sigma), id: id}
}

// Is returns true if q is a meas.
func Is(q quantity.I) bool {
	_, ok := q.(*meas)

	return ok
}

// To returns a meas if q is a meas; Otherwise it panics.
func To(q quantity.I) *meas {
	if m, ok := q.(*meas); ok {
		return m
	}

	panic("not a " + name)
}

// Nominal returns the nominal value of the meas m.
func (m *meas) Nominal() float64 {
	return m.nominal
}

// Sigma returns the standard deviation of the meas m.
func (m *meas) Sigma() float64 {
	return m.sigma
}

// Tag returns the correlation tag of the meas m.
func (m *meas) Tag() tag.T {
	return m.id
}

// Equal returns true if q is a meas with the same nominal value and
// standard deviation as the meas m. Tags do not take part in equality.
func (m *meas) Equal(q quantity.I) bool {
	return Is(q) && m.nominal == To(q).nominal && m.sigma == To(q).sigma
}

// Name returns the type name for the meas m.
func (m *meas) Name() string {
	return name
}

// String returns the text of the meas m as "nominal ± sigma", with the
// standard deviation rounded to its leading significant digit and the
// nominal value rounded to match.
func (m *meas) String() string {
	if m.sigma == 0 || math.IsInf(m.sigma, 0) || math.IsNaN(m.sigma) {
		n := strconv.FormatFloat(m.nominal, 'g', -1, 64)
		s := strconv.FormatFloat(m.sigma, 'g', -1, 64)

		return n + " ± " + s
	}

	e := int(math.Floor(math.Log10(m.sigma)))
	s := roundTo(m.sigma, e)

	// Rounding up can gain a digit: 0.96 rounds to 1.
	if e2 := int(math.Floor(math.Log10(s))); e2 != e {
		e = e2
		s = roundTo(m.sigma, e)
	}

	n := roundTo(m.nominal, e)

	digits := 0
	if e < 0 {
		digits = -e
	}

	return strconv.FormatFloat(n, 'f', digits, 64) +
		" ± " + strconv.FormatFloat(s, 'f', digits, 64)
}

// roundTo rounds v to the decimal place 10^e.
func roundTo(v float64, e int) float64 {
	p := math.Pow(10, float64(-e))

	return math.Round(v*p) / p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t meas

	// The meas type is a quantity.
	_ = quantity.I(&t)

	// The meas type is a stringer.
	_ = common.Stringer(&t)
}
