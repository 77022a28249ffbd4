package field

import "math"

// Excitation is the sinusoidal field applied at the slab surface,
// B(0,t) = Amplitude * sin(2*pi*Frequency*t). The same excitation is
// shared by every material in a comparison run.
type Excitation struct {
	Frequency float64 // Hz
	Amplitude float64 // Tesla, peak surface value
}

// Omega returns the angular frequency 2*pi*f in rad/s.
func (e Excitation) Omega() float64 {
	return 2 * math.Pi * e.Frequency
}

// Period returns the excitation period 1/f in seconds.
func (e Excitation) Period() float64 {
	return 1 / e.Frequency
}

// Surface evaluates the applied field at time t.
func (e Excitation) Surface(t float64) float64 {
	return e.Amplitude * math.Sin(e.Omega()*t)
}

// Validate rejects excitations that make the diffusion problem
// ill-posed: frequency and amplitude must both be strictly positive.
func (e Excitation) Validate() error {
	if e.Frequency <= 0 || math.IsNaN(e.Frequency) || math.IsInf(e.Frequency, 0) {
		return &InvalidParameterError{
			Name:   "frequency",
			Value:  e.Frequency,
			Reason: "must be a positive, finite number of hertz",
		}
	}
	if e.Amplitude <= 0 || math.IsNaN(e.Amplitude) || math.IsInf(e.Amplitude, 0) {
		return &InvalidParameterError{
			Name:   "amplitude",
			Value:  e.Amplitude,
			Reason: "must be a positive, finite peak field in tesla",
		}
	}
	return nil
}

// Domain is a uniformly discretized depth range [0, Length] into the
// conductor, sampled at Points positions with x[0] = 0 and
// x[Points-1] = Length.
type Domain struct {
	Length float64 // m
	Points int
}

// Spacing returns the grid step Length/(Points-1).
func (d Domain) Spacing() float64 {
	return d.Length / float64(d.Points-1)
}

// Grid materializes the sample positions. The endpoints are exact: the
// last entry is set to Length rather than accumulated, so boundary
// conditions land on the true surface and far edge.
func (d Domain) Grid() []float64 {
	x := make([]float64, d.Points)
	dx := d.Spacing()
	for i := range x {
		x[i] = float64(i) * dx
	}
	x[len(x)-1] = d.Length
	return x
}

// Validate rejects non-physical or degenerate domains. A non-positive
// length is an invalid parameter; fewer than two points leaves
// differentiation and integration undefined.
func (d Domain) Validate() error {
	if d.Length <= 0 || math.IsNaN(d.Length) || math.IsInf(d.Length, 0) {
		return &InvalidParameterError{
			Name:   "length",
			Value:  d.Length,
			Reason: "slab depth must be a positive, finite length in meters",
		}
	}
	if d.Points < 2 {
		return &DegenerateProfileError{Samples: d.Points}
	}
	return nil
}

// Profile is the solved internal field for one material over one
// domain. B is indexed as B[ti][xi]: one spatial snapshot per captured
// time instant. Envelope holds the per-depth oscillation amplitude
// (max-min)/2 over the capture window. Phasor is populated only by
// closed-form solves; numeric solves leave it nil.
type Profile struct {
	X        []float64    // depth positions, m
	Times    []float64    // captured instants, s
	B        [][]float64  // B[ti][xi], tesla
	Envelope []float64    // per-depth amplitude, tesla
	Phasor   []complex128 // complex amplitude per depth, or nil
	Period   float64      // excitation period backing Times, s
}

// Depths returns the number of spatial samples.
func (p *Profile) Depths() int {
	return len(p.X)
}

// Waveform extracts the time series at depth index xi across all
// captured instants.
func (p *Profile) Waveform(xi int) []float64 {
	w := make([]float64, len(p.B))
	for ti := range p.B {
		w[ti] = p.B[ti][xi]
	}
	return w
}

// NearestIndex returns the index of the grid position closest to x,
// clamped to the domain.
func (p *Profile) NearestIndex(x float64) int {
	if len(p.X) == 0 {
		return 0
	}
	best, dist := 0, math.Abs(p.X[0]-x)
	for i := 1; i < len(p.X); i++ {
		if d := math.Abs(p.X[i] - x); d < dist {
			best, dist = i, d
		}
	}
	return best
}

// Validate checks the profile is usable by downstream stages: at least
// two spatial samples and internally consistent slice lengths.
func (p *Profile) Validate() error {
	if len(p.X) < 2 {
		return &DegenerateProfileError{Samples: len(p.X)}
	}
	if len(p.Envelope) != len(p.X) {
		return &InvalidParameterError{
			Name:   "envelope",
			Value:  float64(len(p.Envelope)),
			Reason: "envelope length must match the spatial grid",
		}
	}
	for ti := range p.B {
		if len(p.B[ti]) != len(p.X) {
			return &InvalidParameterError{
				Name:   "snapshot",
				Value:  float64(ti),
				Reason: "snapshot width must match the spatial grid",
			}
		}
	}
	return nil
}
