package compare

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vitor-souza-ime/foucault/internal/analysis"
	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/eddy"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
	"github.com/vitor-souza-ime/foucault/internal/solver"
)

// DefaultReferenceFraction places the phase-lag probe at a quarter of
// the slab depth.
const DefaultReferenceFraction = 0.25

// Row is the per-material outcome of a comparison run. Scalar
// summaries sit next to the profiles they came from, so renderers and
// exporters never recompute anything.
type Row struct {
	Material material.Properties

	SkinDepth       float64 // analytic delta, m
	FittedSkinDepth float64 // recovered from the envelope, m

	ReferenceDepth float64 // where the lag was measured, m
	PhaseLag       float64 // radians, [0, 2*pi)
	PhaseDelay     float64 // seconds, PhaseLag/omega

	PeakCurrent   float64 // max |J| over depth, A/m^2
	MeanCurrent   float64 // spatial mean of |J|, A/m^2
	PeakMeanRatio float64

	PeakPowerDensity float64 // max |J|^2/sigma, W/m^3
	MeanPowerDensity float64 // spatial mean of |J|^2/(2*sigma), W/m^3
	TotalPower       float64 // depth integral of |J|^2/(2*sigma), W/m^2
	TotalPeakPower   float64 // depth integral of |J|^2/sigma, W/m^2

	Profile *field.Profile
	Current []float64 // |J|(x), A/m^2
	Power   []float64 // peak dissipation density p(x), W/m^3
}

// Table is a completed comparison: shared inputs plus one row per
// material that succeeded, in registry order.
type Table struct {
	Excitation field.Excitation
	Domain     field.Domain
	Solver     string
	Rows       []Row
}

// Comparator runs the pipeline over a set of materials.
type Comparator struct {
	solver    solver.Solver
	refFrac   float64
	parallel  bool
	logger    *zap.Logger
	materials []material.Properties
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithSolver selects the solver; the default is the analytic one.
func WithSolver(s solver.Solver) Option {
	return func(c *Comparator) { c.solver = s }
}

// WithReferenceDepth sets the phase-lag probe position as a fraction
// of the domain length. Non-positive fractions keep the default.
func WithReferenceDepth(frac float64) Option {
	return func(c *Comparator) {
		if frac > 0 {
			c.refFrac = frac
		}
	}
}

// WithParallel dispatches one goroutine per material. Rows are merged
// back in registry order, so results are identical to a sequential run.
func WithParallel(on bool) Option {
	return func(c *Comparator) { c.parallel = on }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Comparator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaterials replaces the default registry set.
func WithMaterials(mats ...material.Properties) Option {
	return func(c *Comparator) { c.materials = mats }
}

// New builds a Comparator over the reference materials with the
// analytic solver.
func New(opts ...Option) *Comparator {
	c := &Comparator{
		solver:    &solver.Analytic{},
		refFrac:   DefaultReferenceFraction,
		logger:    zap.NewNop(),
		materials: material.Registry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare solves every material under the shared excitation and
// domain. Shared inputs are validated once up front; per-material
// failures do not abort the run. When at least one material fails the
// returned table holds the completed rows and the error is a
// *PartialResultError naming the rest. The context is consulted
// between materials; cancellation abandons the run with ctx.Err().
func (c *Comparator) Compare(ctx context.Context, exc field.Excitation, dom field.Domain) (*Table, error) {
	if err := exc.Validate(); err != nil {
		return nil, err
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	c.logger.Info("starting comparison",
		zap.String("solver", c.solver.Name()),
		zap.Int("materials", len(c.materials)),
		zap.Float64("frequency_hz", exc.Frequency),
		zap.Float64("length_m", dom.Length),
		zap.Int("points", dom.Points),
	)

	rows := make([]*Row, len(c.materials))
	errs := make([]error, len(c.materials))

	if c.parallel {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var wg sync.WaitGroup
		for i, mat := range c.materials {
			wg.Add(1)
			go func(i int, mat material.Properties) {
				defer wg.Done()
				rows[i], errs[i] = c.evaluate(mat, exc, dom)
			}(i, mat)
		}
		wg.Wait()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		for i, mat := range c.materials {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rows[i], errs[i] = c.evaluate(mat, exc, dom)
		}
	}

	table := &Table{
		Excitation: exc,
		Domain:     dom,
		Solver:     c.solver.Name(),
	}
	failed := make(map[string]error)
	for i, row := range rows {
		if errs[i] != nil {
			name := c.materials[i].Name
			failed[name] = errs[i]
			c.logger.Warn("material failed",
				zap.String("material", name),
				zap.Error(errs[i]),
			)
			continue
		}
		table.Rows = append(table.Rows, *row)
	}

	if len(failed) > 0 {
		return table, &PartialResultError{Rows: table.Rows, Failed: failed}
	}
	return table, nil
}

// evaluate runs the full per-material pipeline: solve, differentiate,
// integrate, fit, correlate.
func (c *Comparator) evaluate(mat material.Properties, exc field.Excitation, dom field.Domain) (*Row, error) {
	model, err := diffusion.NewModel(mat, exc)
	if err != nil {
		return nil, err
	}
	profile, err := c.solver.Solve(mat, exc, dom)
	if err != nil {
		return nil, err
	}

	current, err := eddy.CurrentDensity(profile, mat.Mu())
	if err != nil {
		return nil, err
	}
	peakDensity, err := eddy.PowerDensity(current, mat.Sigma)
	if err != nil {
		return nil, err
	}
	meanDensity, err := eddy.MeanPowerDensity(current, mat.Sigma)
	if err != nil {
		return nil, err
	}
	totalMean, err := eddy.TotalPower(profile.X, meanDensity)
	if err != nil {
		return nil, err
	}
	totalPeak, err := eddy.TotalPower(profile.X, peakDensity)
	if err != nil {
		return nil, err
	}
	ratio, err := eddy.PeakMeanRatio(current)
	if err != nil {
		return nil, err
	}
	fitted, err := analysis.FitSkinDepth(profile.X, profile.Envelope, 0)
	if err != nil {
		return nil, err
	}

	xi := profile.NearestIndex(c.refFrac * dom.Length)
	lag, err := analysis.PhaseLag(profile.Waveform(0), profile.Waveform(xi))
	if err != nil {
		return nil, err
	}

	row := &Row{
		Material:         mat,
		SkinDepth:        model.SkinDepth(),
		FittedSkinDepth:  fitted,
		ReferenceDepth:   profile.X[xi],
		PhaseLag:         lag,
		PhaseDelay:       lag / exc.Omega(),
		PeakCurrent:      floats.Max(current),
		MeanCurrent:      stat.Mean(current, nil),
		PeakMeanRatio:    ratio,
		PeakPowerDensity: floats.Max(peakDensity),
		MeanPowerDensity: stat.Mean(meanDensity, nil),
		TotalPower:       totalMean,
		TotalPeakPower:   totalPeak,
		Profile:          profile,
		Current:          current,
		Power:            peakDensity,
	}

	c.logger.Debug("material solved",
		zap.String("material", mat.Name),
		zap.Float64("skin_depth_mm", row.SkinDepth*1e3),
		zap.Float64("fitted_depth_mm", row.FittedSkinDepth*1e3),
		zap.Float64("phase_lag_rad", row.PhaseLag),
		zap.Float64("total_power_w_m2", row.TotalPower),
	)
	return row, nil
}
