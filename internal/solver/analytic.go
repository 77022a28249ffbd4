package solver

import (
	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

// Analytic samples the closed-form steady-state solution over one
// excitation period. Envelope and phasor are exact; the only
// approximation is the grid itself.
type Analytic struct {
	// SamplesPerPeriod sets the time resolution of the captured
	// snapshots. Zero means DefaultSamplesPerPeriod.
	SamplesPerPeriod int
}

// Name implements Solver.
func (a *Analytic) Name() string { return "analytic" }

// Solve implements Solver.
func (a *Analytic) Solve(mat material.Properties, exc field.Excitation, dom field.Domain) (*field.Profile, error) {
	model, err := diffusion.NewModel(mat, exc)
	if err != nil {
		return nil, err
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	n := a.SamplesPerPeriod
	if n <= 0 {
		n = DefaultSamplesPerPeriod
	}

	x := dom.Grid()
	period := exc.Period()
	times := make([]float64, n)
	snapshots := make([][]float64, n)
	for ti := range times {
		t := period * float64(ti) / float64(n)
		times[ti] = t
		row := make([]float64, len(x))
		for xi, xv := range x {
			row[xi] = model.FieldAt(xv, t)
		}
		snapshots[ti] = row
	}

	return &field.Profile{
		X:        x,
		Times:    times,
		B:        snapshots,
		Envelope: model.Envelope(x),
		Phasor:   model.Phasor(x),
		Period:   period,
	}, nil
}
