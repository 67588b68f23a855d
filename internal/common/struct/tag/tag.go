// Released under an MIT license. See LICENSE.

// Package tag provides correlation tags for uncertain quantities.
//
// Two uncertain quantities with the same tag trace back to the same
// underlying measurement and are treated as fully correlated.
package tag

import "sync/atomic"

// T (tag) identifies the measurement an uncertain quantity came from.
type T uint64

//nolint:gochecknoglobals
var counter uint64

// None is the tag carried by exact values. They contribute no
// uncertainty, so sharing it is harmless.
const None T = 0

// Next mints a fresh tag.
func Next() T {
	return T(atomic.AddUint64(&counter, 1))
}
