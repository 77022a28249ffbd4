package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/solver"
)

const (
	DefaultFrequency      = 60.0
	DefaultAmplitude      = 0.1
	DefaultLength         = 0.15
	DefaultPoints         = 100
	DefaultSolver         = "analytic"
	DefaultReferenceDepth = 0.25
)

type Config struct {
	Frequency      float64  `yaml:"frequency"`       // Hz
	Amplitude      float64  `yaml:"amplitude"`       // T, peak surface field
	Length         float64  `yaml:"length"`          // m, slab depth
	Points         int      `yaml:"points"`          // spatial samples
	Solver         string   `yaml:"solver"`          // analytic | ftcs
	ReferenceDepth float64  `yaml:"reference_depth"` // fraction of length
	Parallel       bool     `yaml:"parallel"`
	Materials      []string `yaml:"materials,omitempty"` // empty selects all

	// explicit-scheme knobs, ignored by the analytic solver
	CFL              float64 `yaml:"cfl,omitempty"`
	TimeStep         float64 `yaml:"time_step,omitempty"` // s, overrides cfl
	SettlePeriods    int     `yaml:"settle_periods,omitempty"`
	SamplesPerPeriod int     `yaml:"samples_per_period,omitempty"`

	OutputDir string `yaml:"output_dir,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Frequency:      DefaultFrequency,
		Amplitude:      DefaultAmplitude,
		Length:         DefaultLength,
		Points:         DefaultPoints,
		Solver:         DefaultSolver,
		ReferenceDepth: DefaultReferenceDepth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Excitation maps the drive parameters to their domain type.
func (c *Config) Excitation() field.Excitation {
	return field.Excitation{Frequency: c.Frequency, Amplitude: c.Amplitude}
}

// Domain maps the grid parameters to their domain type.
func (c *Config) Domain() field.Domain {
	return field.Domain{Length: c.Length, Points: c.Points}
}

// NewSolver builds the configured solver with its tuning applied.
func (c *Config) NewSolver() (solver.Solver, error) {
	s, err := solver.New(c.Solver)
	if err != nil {
		return nil, err
	}
	switch v := s.(type) {
	case *solver.Analytic:
		v.SamplesPerPeriod = c.SamplesPerPeriod
	case *solver.FTCS:
		v.CFL = c.CFL
		v.Dt = c.TimeStep
		v.SettlePeriods = c.SettlePeriods
		v.SamplesPerPeriod = c.SamplesPerPeriod
	}
	return s, nil
}
