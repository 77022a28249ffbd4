// Package field defines the shared data model for eddy-current simulation.
//
// The package holds the types every pipeline stage exchanges:
//
//   - [Excitation]: sinusoidal external drive (frequency, surface amplitude)
//   - [Domain]: discretized slab depth range [0, L]
//   - [Profile]: solved internal field B(x,t) with its oscillation envelope
//
// It also defines the error types reported by precondition checks
// ([InvalidParameterError], [DegenerateProfileError]). Non-physical inputs
// are rejected before any numeric work; no stage inspects results for
// NaN/Inf after the fact.
//
// # Ownership
//
// All values are plain data. A Profile belongs to the solve that produced
// it and is never shared mutably between materials.
package field
