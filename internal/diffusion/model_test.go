package diffusion

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

var exc60 = field.Excitation{Frequency: 60, Amplitude: 0.1}

func mustModel(t *testing.T, name string) *Model {
	t.Helper()
	mat, err := material.ByName(name)
	if err != nil {
		t.Fatalf("ByName(%q): %v", name, err)
	}
	m, err := NewModel(mat, exc60)
	if err != nil {
		t.Fatalf("NewModel(%s): %v", name, err)
	}
	return m
}

func TestSkinDepthReferences(t *testing.T) {
	// textbook values at 60 Hz
	tests := []struct {
		material string
		wantMM   float64
	}{
		{"aluminum", 10.98},
		{"copper", 8.53},
		{"iron", 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.material, func(t *testing.T) {
			m := mustModel(t, tt.material)
			gotMM := m.SkinDepth() * 1e3
			if rel := math.Abs(gotMM-tt.wantMM) / tt.wantMM; rel > 0.01 {
				t.Errorf("SkinDepth() = %.4f mm, want %.2f mm within 1%%", gotMM, tt.wantMM)
			}
		})
	}
}

func TestSkinDepthOrdering(t *testing.T) {
	al := mustModel(t, "aluminum").SkinDepth()
	cu := mustModel(t, "copper").SkinDepth()
	fe := mustModel(t, "iron").SkinDepth()

	if !(fe < cu && cu < al) {
		t.Errorf("skin depth ordering violated: iron=%g copper=%g aluminum=%g, want iron < copper < aluminum", fe, cu, al)
	}
}

func TestSkinDepthFrequencyScaling(t *testing.T) {
	mat, _ := material.ByName("copper")
	lo, err := NewModel(mat, field.Excitation{Frequency: 60, Amplitude: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	hi, err := NewModel(mat, field.Excitation{Frequency: 240, Amplitude: 0.1})
	if err != nil {
		t.Fatal(err)
	}

	// delta ~ 1/sqrt(f): quadrupling f halves delta
	want := lo.SkinDepth() / 2
	if got := hi.SkinDepth(); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("SkinDepth at 4f = %g, want %g", got, want)
	}
}

func TestNewModelRejectsInvalid(t *testing.T) {
	good, _ := material.ByName("copper")

	bad := good
	bad.Sigma = 0
	if _, err := NewModel(bad, exc60); err == nil {
		t.Error("NewModel with sigma=0 = nil error, want error")
	}

	if _, err := NewModel(good, field.Excitation{Frequency: -1, Amplitude: 0.1}); err == nil {
		t.Error("NewModel with negative frequency = nil error, want error")
	}
}

func TestFieldAtSurface(t *testing.T) {
	m := mustModel(t, "aluminum")
	for _, tt := range []float64{0, 0.001, 0.004, 0.0083} {
		want := m.SurfaceField(tt)
		if got := m.FieldAt(0, tt); math.Abs(got-want) > 1e-15 {
			t.Errorf("FieldAt(0, %v) = %v, want surface value %v", tt, got, want)
		}
	}
}

func TestEnvelopeDecay(t *testing.T) {
	m := mustModel(t, "copper")
	delta := m.SkinDepth()

	// amplitude drops to B0/e at one skin depth
	want := exc60.Amplitude / math.E
	if got := m.EnvelopeAt(delta); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("EnvelopeAt(delta) = %g, want B0/e = %g", got, want)
	}

	env := m.Envelope([]float64{0, delta, 2 * delta})
	if env[0] != exc60.Amplitude {
		t.Errorf("Envelope[0] = %g, want B0 = %g", env[0], exc60.Amplitude)
	}
	for i := 1; i < len(env); i++ {
		if env[i] >= env[i-1] {
			t.Errorf("envelope not strictly decaying at %d: %g >= %g", i, env[i], env[i-1])
		}
	}
}

func TestPhaseLag(t *testing.T) {
	m := mustModel(t, "iron")
	delta := m.SkinDepth()

	if got := m.PhaseLagAt(delta); math.Abs(got-1) > 1e-12 {
		t.Errorf("PhaseLagAt(delta) = %v rad, want 1", got)
	}
	if got := m.PhaseLagAt(0); got != 0 {
		t.Errorf("PhaseLagAt(0) = %v, want 0", got)
	}
}

func TestPhasorMatchesEnvelopeAndLag(t *testing.T) {
	m := mustModel(t, "aluminum")
	delta := m.SkinDepth()

	// depths within the principal phase branch (x/delta < pi), where
	// arg equals -x/delta without unwrapping
	for _, x := range []float64{0, delta / 2, delta, 3 * delta} {
		ph := m.PhasorAt(x)
		if gotMag, want := cmplx.Abs(ph), m.EnvelopeAt(x); math.Abs(gotMag-want)/want > 1e-12 {
			t.Errorf("|PhasorAt(%g)| = %g, want %g", x, gotMag, want)
		}
		if gotArg, want := cmplx.Phase(ph), -m.PhaseLagAt(x); math.Abs(gotArg-want) > 1e-9 {
			t.Errorf("arg PhasorAt(%g) = %g, want %g", x, gotArg, want)
		}
	}
}

func TestTimeSeriesLagsSurface(t *testing.T) {
	m := mustModel(t, "copper")
	delta := m.SkinDepth()
	w := m.Excitation.Omega()

	// at depth delta the wave is the surface wave delayed by 1/w and
	// attenuated by 1/e
	for _, tt := range []float64{0.003, 0.007, 0.012} {
		want := exc60.Amplitude / math.E * math.Sin(w*tt-1)
		if got := m.FieldAt(delta, tt); math.Abs(got-want) > 1e-15 {
			t.Errorf("FieldAt(delta, %v) = %v, want %v", tt, got, want)
		}
	}
}

func TestStabilityLimit(t *testing.T) {
	m := mustModel(t, "iron")
	dx := 0.005 / 499

	want := dx * dx * m.Mu() * m.Material.Sigma / 2
	if got := m.StabilityLimit(dx); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("StabilityLimit(%g) = %g, want %g", dx, got, want)
	}
	// identical via diffusivity form
	alt := dx * dx / (2 * m.Alpha())
	if math.Abs(m.StabilityLimit(dx)-alt)/alt > 1e-12 {
		t.Errorf("StabilityLimit disagrees with dx^2/(2*alpha)")
	}
}
