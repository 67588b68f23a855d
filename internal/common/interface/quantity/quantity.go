// Released under an MIT license. See LICENSE.

// Package quantity defines the interface for all uncalc numeric types.
package quantity

// I (quantity) is a value in one of the calculator's numeric domains.
type I interface {
	Equal(q I) bool
	Name() string
}
