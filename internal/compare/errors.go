package compare

import (
	"fmt"
	"sort"
	"strings"
)

// PartialResultError reports materials that failed during a comparison
// run. Rows holds every row that completed, in registry order, so the
// partial result survives even when the table itself is discarded;
// Failed maps each failing material name to its cause.
type PartialResultError struct {
	Rows   []Row
	Failed map[string]error
}

func (e *PartialResultError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for name := range e.Failed {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %v", name, e.Failed[name])
	}
	return fmt.Sprintf("comparison incomplete, %d material(s) failed: %s",
		len(names), strings.Join(parts, "; "))
}

// Unwrap exposes the per-material causes to errors.Is and errors.As.
func (e *PartialResultError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}
