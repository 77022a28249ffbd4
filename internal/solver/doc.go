// Package solver produces field profiles for a material/excitation/domain
// triple.
//
// Two interchangeable implementations are registered:
//
//   - [Analytic]: samples the closed-form steady-state solution; exact
//     envelope and phasor, no discretization error.
//   - [FTCS]: forward-time centered-space explicit scheme on the same
//     grid; validates its time step against the stability limit before
//     stepping and reports [UnstableDiscretizationError] otherwise.
//
// Both return profiles covering exactly one excitation period, so
// downstream analysis treats them identically. [Sim] exposes the raw
// explicit march one step at a time for interactive use.
package solver
