package diffusion

import (
	"math"
	"math/cmplx"

	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

// Model is the diffusion problem for one material under one sinusoidal
// excitation. Construction validates all parameters, so a non-nil Model
// always has positive diffusivity and skin depth.
type Model struct {
	Material   material.Properties
	Excitation field.Excitation

	mu    float64 // absolute permeability, H/m
	alpha float64 // magnetic diffusivity 1/(mu*sigma), m^2/s
	delta float64 // skin depth, m
}

// NewModel validates the material and excitation and precomputes the
// derived constants. Invalid inputs are rejected here, before any
// numeric work.
func NewModel(mat material.Properties, exc field.Excitation) (*Model, error) {
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if err := exc.Validate(); err != nil {
		return nil, err
	}
	mu := mat.Mu()
	return &Model{
		Material:   mat,
		Excitation: exc,
		mu:         mu,
		alpha:      1 / (mu * mat.Sigma),
		delta:      math.Sqrt(2 / (exc.Omega() * mu * mat.Sigma)),
	}, nil
}

// SkinDepth returns delta = sqrt(2/(w*mu*sigma)) in meters.
func (m *Model) SkinDepth() float64 {
	return m.delta
}

// Alpha returns the magnetic diffusivity 1/(mu*sigma) in m^2/s.
func (m *Model) Alpha() float64 {
	return m.alpha
}

// Mu returns the absolute permeability in H/m.
func (m *Model) Mu() float64 {
	return m.mu
}

// SurfaceField evaluates the applied excitation at time t.
func (m *Model) SurfaceField(t float64) float64 {
	return m.Excitation.Surface(t)
}

// FieldAt evaluates the steady-state field at depth x and time t.
func (m *Model) FieldAt(x, t float64) float64 {
	s := x / m.delta
	return m.Excitation.Amplitude * math.Exp(-s) * math.Sin(m.Excitation.Omega()*t-s)
}

// PhaseLagAt returns the phase delay x/delta in radians by which the
// field at depth x trails the surface.
func (m *Model) PhaseLagAt(x float64) float64 {
	return x / m.delta
}

// EnvelopeAt returns the oscillation amplitude B0*exp(-x/delta) at
// depth x.
func (m *Model) EnvelopeAt(x float64) float64 {
	return m.Excitation.Amplitude * math.Exp(-x/m.delta)
}

// Envelope evaluates EnvelopeAt over a grid.
func (m *Model) Envelope(x []float64) []float64 {
	env := make([]float64, len(x))
	for i, xi := range x {
		env[i] = m.EnvelopeAt(xi)
	}
	return env
}

// PhasorAt returns the complex amplitude B0*exp(-(1+i)*x/delta). Its
// magnitude is the envelope and its argument the (negative) phase lag.
func (m *Model) PhasorAt(x float64) complex128 {
	s := x / m.delta
	return complex(m.Excitation.Amplitude, 0) * cmplx.Exp(complex(-s, -s))
}

// Phasor evaluates PhasorAt over a grid.
func (m *Model) Phasor(x []float64) []complex128 {
	ph := make([]complex128, len(x))
	for i, xi := range x {
		ph[i] = m.PhasorAt(xi)
	}
	return ph
}

// StabilityLimit returns the largest stable explicit time step for a
// grid spacing dx: dt_max = dx^2*mu*sigma/2 = dx^2/(2*alpha).
func (m *Model) StabilityLimit(dx float64) float64 {
	return dx * dx / (2 * m.alpha)
}
