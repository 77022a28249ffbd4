package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vitor-souza-ime/foucault/internal/solver"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Frequency != 60 {
		t.Errorf("expected frequency 60, got %g", cfg.Frequency)
	}
	if cfg.Amplitude != 0.1 {
		t.Errorf("expected amplitude 0.1, got %g", cfg.Amplitude)
	}
	if cfg.Length != 0.15 {
		t.Errorf("expected length 0.15, got %g", cfg.Length)
	}
	if cfg.Points != 100 {
		t.Errorf("expected 100 points, got %d", cfg.Points)
	}
	if cfg.Solver != "analytic" {
		t.Errorf("expected analytic solver, got %s", cfg.Solver)
	}
	if cfg.ReferenceDepth != 0.25 {
		t.Errorf("expected reference depth 0.25, got %g", cfg.ReferenceDepth)
	}
}

func TestAccessors(t *testing.T) {
	cfg := DefaultConfig()

	exc := cfg.Excitation()
	if exc.Frequency != cfg.Frequency || exc.Amplitude != cfg.Amplitude {
		t.Errorf("Excitation() = %+v, want frequency %g amplitude %g", exc, cfg.Frequency, cfg.Amplitude)
	}

	dom := cfg.Domain()
	if dom.Length != cfg.Length || dom.Points != cfg.Points {
		t.Errorf("Domain() = %+v, want length %g points %d", dom, cfg.Length, cfg.Points)
	}
}

func TestNewSolver(t *testing.T) {
	cfg := DefaultConfig()
	s, err := cfg.NewSolver()
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if s.Name() != "analytic" {
		t.Errorf("solver name = %s, want analytic", s.Name())
	}

	cfg.Solver = "ftcs"
	cfg.CFL = 0.4
	cfg.SettlePeriods = 3
	s, err = cfg.NewSolver()
	if err != nil {
		t.Fatalf("NewSolver(ftcs): %v", err)
	}
	ftcs, ok := s.(*solver.FTCS)
	if !ok {
		t.Fatalf("solver type = %T, want *solver.FTCS", s)
	}
	if ftcs.CFL != 0.4 || ftcs.SettlePeriods != 3 {
		t.Errorf("tuning not applied: %+v", ftcs)
	}

	cfg.Solver = "spectral"
	if _, err := cfg.NewSolver(); err == nil {
		t.Error("unknown solver: nil error, want error")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Frequency = 50
	cfg.Points = 250
	cfg.Solver = "ftcs"
	cfg.Materials = []string{"copper", "iron"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Frequency != 50 || loaded.Points != 250 || loaded.Solver != "ftcs" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if len(loaded.Materials) != 2 || loaded.Materials[0] != "copper" {
		t.Errorf("materials lost: %v", loaded.Materials)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("frequency: 400\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frequency != 400 {
		t.Errorf("frequency = %g, want 400", cfg.Frequency)
	}
	if cfg.Points != DefaultPoints {
		t.Errorf("points = %d, want default %d", cfg.Points, DefaultPoints)
	}
	if cfg.Solver != DefaultSolver {
		t.Errorf("solver = %s, want default %s", cfg.Solver, DefaultSolver)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("iron-fine")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Points != 500 || cfg.Length != 0.005 {
		t.Errorf("iron-fine preset = %+v", cfg)
	}
	if len(cfg.Materials) != 1 || cfg.Materials[0] != "iron" {
		t.Errorf("iron-fine materials = %v", cfg.Materials)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"standard", "iron-fine", "ftcs-demo"} {
		if !seen[want] {
			t.Errorf("preset %s missing from %v", want, names)
		}
	}
}
