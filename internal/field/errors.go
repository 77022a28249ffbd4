package field

import "fmt"

// InvalidParameterError reports a physical parameter outside its valid
// range, detected before any numeric work starts. Name identifies the
// offending parameter, Value the rejected input.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// DegenerateProfileError reports a field profile (or domain) with too
// few samples for differentiation and integration to be defined.
type DegenerateProfileError struct {
	Samples int
}

func (e *DegenerateProfileError) Error() string {
	return fmt.Sprintf("degenerate profile: %d samples, need at least 2", e.Samples)
}
