// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

type Stringer = fmt.Stringer

// String returns the display text for a quantity, if possible.
func String(q quantity.I) string {
	s, ok := q.(Stringer)
	if !ok {
		panic(q.Name() + " cannot be displayed")
	}

	return s.String()
}
