package solver

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

var (
	testExc = field.Excitation{Frequency: 60, Amplitude: 0.1}
	testDom = field.Domain{Length: 0.15, Points: 100}
)

func TestAnalyticSurfaceWaveform(t *testing.T) {
	mat, _ := material.ByName("aluminum")
	s := &Analytic{}

	p, err := s.Solve(mat, testExc, testDom)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	w := testExc.Omega()
	for ti, tv := range p.Times {
		want := testExc.Amplitude * math.Sin(w*tv)
		if got := p.B[ti][0]; math.Abs(got-want) > 1e-12 {
			t.Fatalf("surface B at t=%g: got %g, want %g", tv, got, want)
		}
	}
}

func TestAnalyticEnvelopeExact(t *testing.T) {
	mat, _ := material.ByName("copper")
	s := &Analytic{}

	p, err := s.Solve(mat, testExc, testDom)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	model, err := diffusion.NewModel(mat, testExc)
	if err != nil {
		t.Fatal(err)
	}
	for i, xv := range p.X {
		want := model.EnvelopeAt(xv)
		if math.Abs(p.Envelope[i]-want) > 1e-15 {
			t.Fatalf("Envelope[%d] = %g, want exact %g", i, p.Envelope[i], want)
		}
	}
}

func TestAnalyticEnvelopeMonotonic(t *testing.T) {
	mat, _ := material.ByName("iron")
	s := &Analytic{}

	p, err := s.Solve(mat, testExc, field.Domain{Length: 0.005, Points: 200})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i := 1; i < len(p.Envelope); i++ {
		if p.Envelope[i] >= p.Envelope[i-1] {
			t.Fatalf("envelope not strictly decreasing at %d: %g >= %g", i, p.Envelope[i], p.Envelope[i-1])
		}
	}
}

func TestAnalyticIronShielding(t *testing.T) {
	mat, _ := material.ByName("iron")
	exc := field.Excitation{Frequency: 60, Amplitude: 1}
	dom := field.Domain{Length: 0.005, Points: 500}

	p, err := (&Analytic{}).Solve(mat, exc, dom)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	model, err := diffusion.NewModel(mat, exc)
	if err != nil {
		t.Fatal(err)
	}
	if deltaMM := model.SkinDepth() * 1e3; math.Abs(deltaMM-0.65) > 0.01 {
		t.Errorf("iron skin depth = %.4f mm, want 0.65 mm", deltaMM)
	}

	// two millimeters of iron screen the drive to under 5%
	for i, x := range p.X {
		if x > 0.002 && p.Envelope[i] >= 0.05*exc.Amplitude {
			t.Fatalf("envelope at x=%.3f mm is %.4f T, want < 5%% of B0", x*1e3, p.Envelope[i])
		}
	}
}

func TestAnalyticPhasor(t *testing.T) {
	mat, _ := material.ByName("aluminum")
	s := &Analytic{}

	p, err := s.Solve(mat, testExc, testDom)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if p.Phasor == nil {
		t.Fatal("analytic profile has nil Phasor")
	}
	for i := range p.X {
		if got, want := cmplx.Abs(p.Phasor[i]), p.Envelope[i]; math.Abs(got-want) > 1e-15 {
			t.Fatalf("|Phasor[%d]| = %g, want envelope %g", i, got, want)
		}
	}
}

func TestAnalyticSampleCounts(t *testing.T) {
	mat, _ := material.ByName("copper")

	tests := []struct {
		name    string
		samples int
		want    int
	}{
		{"default", 0, DefaultSamplesPerPeriod},
		{"custom", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Analytic{SamplesPerPeriod: tt.samples}
			p, err := s.Solve(mat, testExc, testDom)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if len(p.Times) != tt.want {
				t.Errorf("len(Times) = %d, want %d", len(p.Times), tt.want)
			}
			if len(p.B) != tt.want {
				t.Errorf("len(B) = %d, want %d", len(p.B), tt.want)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("profile invalid: %v", err)
			}
		})
	}
}

func TestAnalyticRejectsInvalid(t *testing.T) {
	good, _ := material.ByName("copper")
	s := &Analytic{}

	bad := good
	bad.Sigma = 0
	if _, err := s.Solve(bad, testExc, testDom); err == nil {
		t.Error("Solve with sigma=0: nil error, want error")
	}

	if _, err := s.Solve(good, testExc, field.Domain{Length: 0.15, Points: 1}); err == nil {
		t.Error("Solve with 1-point domain: nil error, want error")
	}

	if _, err := s.Solve(good, field.Excitation{Frequency: 0, Amplitude: 0.1}, testDom); err == nil {
		t.Error("Solve with zero frequency: nil error, want error")
	}
}

func TestRegistry(t *testing.T) {
	tests := []struct {
		request string
		want    string
	}{
		{"analytic", "analytic"},
		{"ftcs", "ftcs"},
		{"FTCS", "ftcs"},
		{"", "analytic"},
	}
	for _, tt := range tests {
		s, err := New(tt.request)
		if err != nil {
			t.Errorf("New(%q): %v", tt.request, err)
			continue
		}
		if s.Name() != tt.want {
			t.Errorf("New(%q).Name() = %q, want %q", tt.request, s.Name(), tt.want)
		}
	}

	if _, err := New("spectral"); err == nil {
		t.Error("New(spectral): nil error, want error")
	}

	names := Names()
	if len(names) != 2 || names[0] != "analytic" || names[1] != "ftcs" {
		t.Errorf("Names() = %v, want [analytic ftcs]", names)
	}
}
