// Released under an MIT license. See LICENSE.

// Package flt provides uncalc's floating point type.
package flt

import (
	"strconv"

	"github.com/uncalc/uncalc/internal/common"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

const name = "real"

// T (real) wraps Go's float64 type.
type T float64

type flt = T

// New creates a new real from the float64 v.
func New(v float64) *T {
	f := flt(v)

	return &f
}

// Is returns true if q is a real.
func Is(q quantity.I) bool {
	_, ok := q.(*flt)

	return ok
}

// To returns a real if q is a real; Otherwise it panics.
func To(q quantity.I) *flt {
	if r, ok := q.(*flt); ok {
		return r
	}

	panic("not a " + name)
}

// Equal returns true if q is the same number as the real f.
func (f *flt) Equal(q quantity.I) bool {
	return Is(q) && *f == *To(q)
}

// Name returns the type name for the real f.
func (f *flt) Name() string {
	return name
}

// String returns the shortest decimal text that round-trips to the real f.
func (f *flt) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 64)
}

// Value returns the value of the real f as a float64.
func (f *flt) Value() float64 {
	return float64(*f)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t flt

	// The flt type is a quantity.
	_ = quantity.I(&t)

	// The flt type is a stringer.
	_ = common.Stringer(&t)
}
