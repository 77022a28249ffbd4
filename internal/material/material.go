// Package material defines conductor properties and the registry of
// reference materials used by the comparison pipeline.
package material

import (
	"fmt"
	"math"
	"strings"

	"github.com/vitor-souza-ime/foucault/internal/field"
)

// Mu0 is the vacuum permeability in H/m.
const Mu0 = 4 * math.Pi * 1e-7

// Properties describes a linear, isotropic conductor. Sigma is the
// electrical conductivity in S/m, MuR the relative permeability. Color
// carries the hex color used consistently across plots and terminal
// output for this material.
type Properties struct {
	Name  string
	Sigma float64
	MuR   float64
	Color string
}

// Mu returns the absolute magnetic permeability Mu0*MuR in H/m.
func (p Properties) Mu() float64 {
	return Mu0 * p.MuR
}

// Validate rejects non-physical material parameters. Zero conductivity
// would make the diffusivity 1/(mu*sigma) undefined.
func (p Properties) Validate() error {
	if p.Sigma <= 0 || math.IsNaN(p.Sigma) || math.IsInf(p.Sigma, 0) {
		return &field.InvalidParameterError{
			Name:   "sigma",
			Value:  p.Sigma,
			Reason: "conductivity must be a positive, finite value in S/m",
		}
	}
	if p.MuR < 1 || math.IsNaN(p.MuR) || math.IsInf(p.MuR, 0) {
		return &field.InvalidParameterError{
			Name:   "mu_r",
			Value:  p.MuR,
			Reason: "relative permeability must be a finite value of at least 1",
		}
	}
	return nil
}

// reference conductors, in canonical comparison order
var registry = []Properties{
	{Name: "aluminum", Sigma: 3.5e7, MuR: 1, Color: "#3498db"},
	{Name: "copper", Sigma: 5.8e7, MuR: 1, Color: "#e67e22"},
	{Name: "iron", Sigma: 1.0e7, MuR: 1000, Color: "#e74c3c"},
}

// Registry returns the reference materials in canonical order
// (aluminum, copper, iron). The slice is a fresh copy; callers may
// modify it freely.
func Registry() []Properties {
	out := make([]Properties, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered material names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

// ByName looks up a reference material, case-insensitively.
func ByName(name string) (Properties, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range registry {
		if p.Name == want {
			return p, nil
		}
	}
	return Properties{}, fmt.Errorf("unknown material %q (have %s)", name, strings.Join(Names(), ", "))
}
