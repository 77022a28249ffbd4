package solver

import (
	"math"

	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

// FTCS integrates the diffusion equation with the forward-time
// centered-space explicit scheme. The slab starts field-free, the
// surface node follows the excitation, the far edge is clamped to zero.
// After SettlePeriods periods of burn-in it captures one full period:
// spatial snapshots at SamplesPerPeriod instants, and the oscillation
// envelope accumulated at every raw step.
type FTCS struct {
	// CFL is the fraction of the stability limit used to derive the
	// time step when Dt is zero. Zero means DefaultCFL.
	CFL float64

	// Dt is an explicit time step in seconds. When set it is validated
	// against the stability limit; values above it are rejected.
	Dt float64

	// SettlePeriods is the number of burn-in periods before capture.
	// Zero means DefaultSettlePeriods.
	SettlePeriods int

	// SamplesPerPeriod sets the snapshot count over the captured
	// period. Zero means DefaultSamplesPerPeriod.
	SamplesPerPeriod int
}

// Name implements Solver.
func (f *FTCS) Name() string { return "ftcs" }

// Solve implements Solver.
func (f *FTCS) Solve(mat material.Properties, exc field.Excitation, dom field.Domain) (*field.Profile, error) {
	model, err := diffusion.NewModel(mat, exc)
	if err != nil {
		return nil, err
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	dt := f.Dt
	if dt <= 0 {
		cfl := f.CFL
		if cfl < 0 {
			return nil, &field.InvalidParameterError{
				Name:   "cfl",
				Value:  cfl,
				Reason: "stability fraction must lie in (0, 1]",
			}
		}
		if cfl == 0 {
			cfl = DefaultCFL
		}
		dt = cfl * model.StabilityLimit(dom.Spacing())
	}
	sim, err := NewSim(mat, exc, dom, dt)
	if err != nil {
		return nil, err
	}

	period := exc.Period()
	settle := f.SettlePeriods
	if settle <= 0 {
		settle = DefaultSettlePeriods
	}
	sim.Step(int(math.Ceil(float64(settle) * period / sim.Dt())))

	n := f.SamplesPerPeriod
	if n <= 0 {
		n = DefaultSamplesPerPeriod
	}
	captureSteps := int(math.Ceil(period / sim.Dt()))
	if n > captureSteps {
		n = captureSteps
	}

	x := sim.Grid()
	captureStart := sim.Time()
	times := make([]float64, 0, n)
	snapshots := make([][]float64, 0, n)
	maxB := make([]float64, len(x))
	minB := make([]float64, len(x))
	copy(maxB, sim.b)
	copy(minB, sim.b)

	record := func() {
		times = append(times, sim.Time())
		snapshots = append(snapshots, sim.Field())
	}
	record()

	next := 1
	for k := 1; k <= captureSteps; k++ {
		sim.Step(1)
		for i, v := range sim.b {
			if v > maxB[i] {
				maxB[i] = v
			}
			if v < minB[i] {
				minB[i] = v
			}
		}
		if next < n && sim.Time() >= captureStart+period*float64(next)/float64(n) {
			record()
			next++
		}
	}

	envelope := make([]float64, len(x))
	for i := range envelope {
		envelope[i] = (maxB[i] - minB[i]) / 2
	}

	return &field.Profile{
		X:        x,
		Times:    times,
		B:        snapshots,
		Envelope: envelope,
		Period:   period,
	}, nil
}

// Sim is the explicit march in progressible form: one state vector
// advanced step by step. FTCS.Solve drives it to completion; the live
// terminal view advances it a few steps per frame.
type Sim struct {
	model *diffusion.Model

	x       []float64
	b       []float64
	scratch []float64

	r    float64 // alpha*dt/dx^2
	dt   float64
	t    float64
	step int
}

// NewSim validates the inputs and the time step, then returns a
// simulation at t=0 with a field-free slab. A non-positive dt derives
// the step from DefaultCFL; a dt above the stability limit is rejected
// with UnstableDiscretizationError before any allocation of history.
func NewSim(mat material.Properties, exc field.Excitation, dom field.Domain, dt float64) (*Sim, error) {
	model, err := diffusion.NewModel(mat, exc)
	if err != nil {
		return nil, err
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	dx := dom.Spacing()
	limit := model.StabilityLimit(dx)
	if dt <= 0 {
		dt = DefaultCFL * limit
	}
	if dt > limit*(1+1e-12) {
		return nil, &UnstableDiscretizationError{Dt: dt, Limit: limit}
	}

	x := dom.Grid()
	return &Sim{
		model:   model,
		x:       x,
		b:       make([]float64, len(x)),
		scratch: make([]float64, len(x)),
		r:       model.Alpha() * dt / (dx * dx),
		dt:      dt,
	}, nil
}

// Step advances the march by n raw steps.
func (s *Sim) Step(n int) {
	last := len(s.b) - 1
	for k := 0; k < n; k++ {
		for i := 1; i < last; i++ {
			s.scratch[i] = s.b[i] + s.r*(s.b[i+1]-2*s.b[i]+s.b[i-1])
		}
		s.step++
		s.t = float64(s.step) * s.dt
		s.scratch[0] = s.model.SurfaceField(s.t)
		s.scratch[last] = 0
		s.b, s.scratch = s.scratch, s.b
	}
}

// Field returns a copy of the current field state.
func (s *Sim) Field() []float64 {
	out := make([]float64, len(s.b))
	copy(out, s.b)
	return out
}

// Grid returns a copy of the spatial grid.
func (s *Sim) Grid() []float64 {
	out := make([]float64, len(s.x))
	copy(out, s.x)
	return out
}

// Time returns the current simulation time in seconds.
func (s *Sim) Time() float64 { return s.t }

// Dt returns the resolved time step in seconds.
func (s *Sim) Dt() float64 { return s.dt }

// SkinDepth returns the analytic skin depth of the underlying model,
// for overlaying references on live output.
func (s *Sim) SkinDepth() float64 { return s.model.SkinDepth() }
