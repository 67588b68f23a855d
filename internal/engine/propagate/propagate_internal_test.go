// Released under an MIT license. See LICENSE.

package propagate

import (
	"math"
	"testing"

	"github.com/uncalc/uncalc/internal/common/struct/tag"
)

func TestIndependentQuadrature(t *testing.T) {
	// (3 ± 0.1) + (4 ± 0.2): sqrt(0.01 + 0.04).
	s := Sigma(
		Term{Partial: 1, Sigma: 0.1, ID: tag.Next()},
		Term{Partial: 1, Sigma: 0.2, ID: tag.Next()},
	)

	if !close(s, math.Sqrt(0.05)) {
		t.Errorf("sigma = %v, expected %v", s, math.Sqrt(0.05))
	}
}

func TestCorrelatedCancellation(t *testing.T) {
	// x - x for the same measurement has no uncertainty at all.
	id := tag.Next()

	s := Sigma(
		Term{Partial: 1, Sigma: 0.1, ID: id},
		Term{Partial: -1, Sigma: 0.1, ID: id},
	)

	if s != 0 {
		t.Errorf("sigma = %v, expected 0", s)
	}
}

func TestCorrelatedReinforcement(t *testing.T) {
	// x * x at x = 3 ± 0.1: the partials sum to 2x before squaring.
	id := tag.Next()

	s := Sigma(
		Term{Partial: 3, Sigma: 0.1, ID: id},
		Term{Partial: 3, Sigma: 0.1, ID: id},
	)

	if !close(s, 0.6) {
		t.Errorf("sigma = %v, expected 0.6", s)
	}
}

func TestExactTermsIgnored(t *testing.T) {
	s := Sigma(
		Term{Partial: math.Inf(1), Sigma: 0, ID: tag.Next()},
		Term{Partial: 2, Sigma: 0.5, ID: tag.Next()},
	)

	if !close(s, 1) {
		t.Errorf("sigma = %v, expected 1", s)
	}
}

func close(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}
