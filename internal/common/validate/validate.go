// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/common/interface/quantity"
)

// Fixed faults unless between min and max arguments were passed to name.
func Fixed(name string, args []quantity.I, min, max int) {
	if len(args) >= min && len(args) <= max {
		return
	}

	want := Count(max, "argument", "s")
	if min != max {
		want = fmt.Sprintf("%d to %s", min, want)
	}

	fault.Throw(fault.UnknownOperation,
		"%s: expected %s, passed %d", name, want, len(args))
}

// Count formats n with the label's plural suffix p when needed.
func Count(n int, label, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
