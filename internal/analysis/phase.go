package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/vitor-souza-ime/foucault/internal/field"
)

// PhaseLag estimates how far inner trails surface, in radians within
// [0, 2*pi). Both waveforms must sample the same single period
// uniformly, one value per instant. The lag is located as the peak of
// the circular cross-correlation, computed in the frequency domain,
// then refined to sub-sample precision with a parabolic fit through
// the peak and its circular neighbors.
func PhaseLag(surface, inner []float64) (float64, error) {
	n := len(surface)
	if n < 4 {
		return 0, &field.DegenerateProfileError{Samples: n}
	}
	if len(inner) != n {
		return 0, &field.InvalidParameterError{
			Name:   "inner",
			Value:  float64(len(inner)),
			Reason: "waveforms must have equal sample counts",
		}
	}
	if isFlat(surface) || isFlat(inner) {
		return 0, &field.InvalidParameterError{
			Name:   "amplitude",
			Value:  0,
			Reason: "waveform carries no oscillation to correlate",
		}
	}

	s := fft.FFTReal(surface)
	g := fft.FFTReal(inner)
	cross := make([]complex128, n)
	for k := range cross {
		cross[k] = cmplx.Conj(s[k]) * g[k]
	}
	r := fft.IFFT(cross)

	best, bestVal := 0, real(r[0])
	for i := 1; i < n; i++ {
		if v := real(r[i]); v > bestVal {
			best, bestVal = i, v
		}
	}

	// parabolic refinement through the circular neighbors of the peak
	prev := real(r[(best-1+n)%n])
	next := real(r[(best+1)%n])
	shift := float64(best)
	if denom := prev - 2*bestVal + next; denom != 0 {
		shift += 0.5 * (prev - next) / denom
	}

	lag := 2 * math.Pi * shift / float64(n)
	lag = math.Mod(lag, 2*math.Pi)
	if lag < 0 {
		lag += 2 * math.Pi
	}
	return lag, nil
}

func isFlat(w []float64) bool {
	for _, v := range w {
		if v != w[0] {
			return false
		}
	}
	return true
}
