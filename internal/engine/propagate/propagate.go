// Released under an MIT license. See LICENSE.

// Package propagate computes first-order (linear) uncertainty
// propagation with correlation tracking.
//
// For f(x1, ..., xn) the propagated variance is
//
//	sigma² = Σ_t (Σ_{i: tag(xi)=t} ∂f/∂xi)² · sigma_t²
//
// Operands sharing a correlation tag are the same measurement reused,
// so their partial derivatives combine linearly before squaring.
// Distinct tags are independent and combine in quadrature.
package propagate

import (
	"math"

	"github.com/uncalc/uncalc/internal/common/struct/tag"
)

// Term is one operand's contribution to a propagation.
type Term struct {
	Partial float64 // ∂f/∂x at the nominal point.
	Sigma   float64
	ID      tag.T
}

// Sigma combines the terms into a propagated standard deviation.
func Sigma(terms ...Term) float64 {
	type group struct {
		dfdx  float64
		sigma float64
	}

	groups := map[tag.T]*group{}

	for _, t := range terms {
		if t.Sigma == 0 {
			// An exact operand contributes nothing. Skipping it also
			// keeps an undefined partial from poisoning the sum.
			continue
		}

		g := groups[t.ID]
		if g == nil {
			g = &group{}
			groups[t.ID] = g
		}

		g.dfdx += t.Partial
		g.sigma = t.Sigma
	}

	var variance float64

	for _, g := range groups {
		c := g.dfdx * g.sigma
		variance += c * c
	}

	return math.Sqrt(variance)
}
