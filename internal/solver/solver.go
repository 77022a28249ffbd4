package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
)

// Capture and stepping defaults shared by both solvers.
const (
	// DefaultSamplesPerPeriod is the number of spatial snapshots
	// captured over the final excitation period.
	DefaultSamplesPerPeriod = 256

	// DefaultCFL is the fraction of the explicit stability limit used
	// when no time step is given.
	DefaultCFL = 0.5

	// DefaultSettlePeriods is how many excitation periods the explicit
	// scheme runs before capture, letting the start-up transient decay.
	DefaultSettlePeriods = 2
)

// Solver computes the internal field of one material under one
// excitation over a discretized domain. Implementations validate their
// inputs and never return a profile alongside an error.
type Solver interface {
	Name() string
	Solve(mat material.Properties, exc field.Excitation, dom field.Domain) (*field.Profile, error)
}

var registry = map[string]func() Solver{
	"analytic": func() Solver { return &Analytic{} },
	"ftcs":     func() Solver { return &FTCS{} },
}

// New returns a fresh solver registered under name. The empty string
// selects the analytic solver.
func New(name string) (Solver, error) {
	if name == "" {
		name = "analytic"
	}
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown solver %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Names lists the registered solver names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
