package eddy

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/vitor-souza-ime/foucault/internal/field"
)

// CurrentDensity returns the peak induced current density magnitude
// |J| at each depth, in A/m^2. Profiles carrying a phasor are
// differentiated in complex form; numeric profiles are differentiated
// snapshot by snapshot and reduced to the per-depth peak.
func CurrentDensity(p *field.Profile, mu float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if mu <= 0 || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, &field.InvalidParameterError{
			Name:   "mu",
			Value:  mu,
			Reason: "permeability must be a positive, finite value in H/m",
		}
	}
	if p.Phasor != nil {
		return phasorCurrent(p, mu), nil
	}
	return snapshotCurrent(p, mu)
}

func phasorCurrent(p *field.Profile, mu float64) []float64 {
	g := make([]complex128, len(p.X))
	gradientComplex(g, p.Phasor, p.X)

	j := make([]float64, len(g))
	for i, v := range g {
		j[i] = cmplx.Abs(v) / mu
	}
	return j
}

func snapshotCurrent(p *field.Profile, mu float64) ([]float64, error) {
	if len(p.B) == 0 {
		return nil, &field.InvalidParameterError{
			Name:   "snapshots",
			Value:  0,
			Reason: "profile has no captured snapshots to differentiate",
		}
	}

	peak := make([]float64, len(p.X))
	g := make([]float64, len(p.X))
	for _, row := range p.B {
		gradient(g, row, p.X)
		for i, v := range g {
			if a := math.Abs(v); a > peak[i] {
				peak[i] = a
			}
		}
	}
	floats.Scale(1/mu, peak)
	return peak, nil
}

// CurrentDensityAt returns the signed current density J(x) at one
// recorded instant, in A/m^2. Unlike CurrentDensity it keeps the sign,
// so opposing current sheets show as zero crossings.
func CurrentDensityAt(p *field.Profile, ti int, mu float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if mu <= 0 || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, &field.InvalidParameterError{
			Name:   "mu",
			Value:  mu,
			Reason: "permeability must be a positive, finite value in H/m",
		}
	}
	if ti < 0 || ti >= len(p.B) {
		return nil, &field.InvalidParameterError{
			Name:   "instant",
			Value:  float64(ti),
			Reason: "snapshot index outside the captured window",
		}
	}

	j := make([]float64, len(p.X))
	gradient(j, p.B[ti], p.X)
	floats.Scale(1/mu, j)
	return j, nil
}

// gradient fills dst with centered differences of f over x, one-sided
// at the edges. dst, f and x share a length of at least 2.
func gradient(dst, f, x []float64) {
	n := len(f)
	dst[0] = (f[1] - f[0]) / (x[1] - x[0])
	for i := 1; i < n-1; i++ {
		dst[i] = (f[i+1] - f[i-1]) / (x[i+1] - x[i-1])
	}
	dst[n-1] = (f[n-1] - f[n-2]) / (x[n-1] - x[n-2])
}

func gradientComplex(dst []complex128, f []complex128, x []float64) {
	n := len(f)
	dst[0] = (f[1] - f[0]) / complex(x[1]-x[0], 0)
	for i := 1; i < n-1; i++ {
		dst[i] = (f[i+1] - f[i-1]) / complex(x[i+1]-x[i-1], 0)
	}
	dst[n-1] = (f[n-1] - f[n-2]) / complex(x[n-1]-x[n-2], 0)
}

// PowerDensity returns the peak volumetric dissipation |J|^2/sigma at
// each depth, in W/m^3.
func PowerDensity(j []float64, sigma float64) ([]float64, error) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, &field.InvalidParameterError{
			Name:   "sigma",
			Value:  sigma,
			Reason: "conductivity must be a positive, finite value in S/m",
		}
	}
	pd := make([]float64, len(j))
	for i, v := range j {
		pd[i] = v * v / sigma
	}
	return pd, nil
}

// MeanPowerDensity returns the time-averaged dissipation |J|^2/(2*sigma)
// of the sinusoidal current, in W/m^3.
func MeanPowerDensity(j []float64, sigma float64) ([]float64, error) {
	pd, err := PowerDensity(j, sigma)
	if err != nil {
		return nil, err
	}
	floats.Scale(0.5, pd)
	return pd, nil
}

// TotalPower integrates a dissipation density profile over depth with
// the trapezoidal rule, giving power per unit surface area in W/m^2.
func TotalPower(x, pd []float64) (float64, error) {
	if len(x) < 2 {
		return 0, &field.DegenerateProfileError{Samples: len(x)}
	}
	if len(x) != len(pd) {
		return 0, &field.InvalidParameterError{
			Name:   "power_density",
			Value:  float64(len(pd)),
			Reason: "density length must match the spatial grid",
		}
	}
	return integrate.Trapezoidal(x, pd), nil
}

// PeakMeanRatio returns max(v)/mean(v), the concentration factor of a
// profile. A zero-mean profile has no meaningful ratio.
func PeakMeanRatio(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, &field.DegenerateProfileError{Samples: 0}
	}
	mean := stat.Mean(v, nil)
	if mean == 0 {
		return 0, &field.InvalidParameterError{
			Name:   "mean",
			Value:  0,
			Reason: "profile mean is zero, ratio undefined",
		}
	}
	return floats.Max(v) / mean, nil
}
