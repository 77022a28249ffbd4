package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vitor-souza-ime/foucault/internal/field"
)

// DefaultEnvelopeFloor is the fraction of the surface amplitude below
// which envelope samples are discarded before fitting: deep samples sit
// at the numeric noise floor and would drag the regression.
const DefaultEnvelopeFloor = 0.01

// FitSkinDepth recovers the decay length of an attenuation envelope by
// regressing ln(envelope) against depth and returning -1/slope. Only
// samples above floor*envelope[0] participate; a non-positive floor
// selects DefaultEnvelopeFloor.
func FitSkinDepth(x, envelope []float64, floor float64) (float64, error) {
	if len(x) < 2 {
		return 0, &field.DegenerateProfileError{Samples: len(x)}
	}
	if len(envelope) != len(x) {
		return 0, &field.InvalidParameterError{
			Name:   "envelope",
			Value:  float64(len(envelope)),
			Reason: "envelope length must match the spatial grid",
		}
	}
	if envelope[0] <= 0 {
		return 0, &field.InvalidParameterError{
			Name:   "envelope",
			Value:  envelope[0],
			Reason: "surface amplitude must be positive to normalize the fit",
		}
	}
	if floor <= 0 {
		floor = DefaultEnvelopeFloor
	}

	cut := floor * envelope[0]
	xs := make([]float64, 0, len(x))
	logs := make([]float64, 0, len(x))
	for i, e := range envelope {
		if e > cut {
			xs = append(xs, x[i])
			logs = append(logs, math.Log(e))
		}
	}
	if len(xs) < 2 {
		return 0, &field.DegenerateProfileError{Samples: len(xs)}
	}

	_, slope := stat.LinearRegression(xs, logs, nil, false)
	if slope >= 0 || math.IsNaN(slope) {
		return 0, &field.InvalidParameterError{
			Name:   "slope",
			Value:  slope,
			Reason: "envelope does not decay with depth",
		}
	}
	return -1 / slope, nil
}
