// Package compare orchestrates the full pipeline across materials: one
// solve per material under a shared excitation and domain, derived
// quantities and measured summaries per row, assembled into a table in
// registry order.
//
// Materials are independent, so rows never share state and the run can
// be dispatched across goroutines without changing results. A failing
// material does not abort the run: the remaining rows complete and the
// failures come back in a [PartialResultError] keyed by material name.
package compare
