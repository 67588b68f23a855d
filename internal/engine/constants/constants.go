// Released under an MIT license. See LICENSE.

// Package constants provides the mathematical and physical constants
// preloaded into a fresh session environment.
package constants

import (
	"math"

	"github.com/uncalc/uncalc/internal/common/struct/hash"
	"github.com/uncalc/uncalc/internal/common/type/flt"
)

// CODATA 2018 values. The elementary charge is bound as qe so that e
// stays Euler's number.
//
//nolint:gochecknoglobals
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,

	"c":     299792458.0,             // Speed of light (exact)             m/s
	"g":     6.67430e-11,             // Newton's gravitational constant    m³/(kg·s²)
	"h":     6.62607015e-34,          // Planck's constant (exact)          Js
	"hb":    1.0545718176461565e-34,  // h bar = h / 2 pi                   Js
	"qe":    1.602176634e-19,         // Elementary charge (exact)          As
	"mu0":   1.25663706212e-6,        // Vacuum magnetic permeability       Vs/Am
	"ep0":   8.8541878128e-12,        // Vacuum electric permittivity       As/Vm
	"alpha": 7.2973525693e-3,         // Fine structure constant
	"mu":    1.66053906660e-27,       // Atomic mass constant               kg
	"me":    9.1093837015e-31,        // Electron mass                      kg
	"mp":    1.67262192369e-27,       // Proton mass                        kg
	"mn":    1.6749274980437807e-27,  // Neutron mass                       kg
	"kb":    1.380649e-23,            // Boltzmann's constant (exact)       J/K
	"na":    6.02214076e23,           // Avogadro's constant (exact)        1/mol
	"fc":    96485.33212,             // Faraday's constant                 C/mol
	"rc":    8.31446261815324,        // Molar gas constant                 J/(mol·K)
	"vm":    22.41396954e-3,          // Molar volume of an ideal gas       m³/mol
	"si":    5.670374419e-8,          // Stefan-Boltzmann constant          W/(m²·K⁴)
}

// Define binds every constant in the hash h.
func Define(h *hash.T) {
	for k, v := range constants {
		h.Set(k, flt.New(v))
	}
}

// Is returns true if name is a predefined constant.
func Is(name string) bool {
	_, ok := constants[name]

	return ok
}

// Names returns the constant names, unsorted.
func Names() []string {
	names := make([]string, 0, len(constants))
	for k := range constants {
		names = append(names, k)
	}

	return names
}
