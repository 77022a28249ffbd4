package solver

import "fmt"

// UnstableDiscretizationError reports an explicit time step above the
// FTCS stability limit dx^2*mu*sigma/2. It is returned before any
// stepping happens; the scheme never runs in an unstable regime.
type UnstableDiscretizationError struct {
	Dt    float64 // requested step, s
	Limit float64 // largest stable step for the grid, s
}

func (e *UnstableDiscretizationError) Error() string {
	return fmt.Sprintf("time step %g s exceeds explicit stability limit %g s", e.Dt, e.Limit)
}
