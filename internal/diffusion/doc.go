// Package diffusion implements the 1D magnetic diffusion model for a
// conducting half-space driven by a sinusoidal surface field.
//
// Inside a linear conductor the field obeys
//
//	dB/dt = alpha * d2B/dx2,  alpha = 1/(mu*sigma)
//
// and the steady-state response to B(0,t) = B0*sin(w*t) is the damped
// traveling wave
//
//	B(x,t) = B0 * exp(-x/delta) * sin(w*t - x/delta)
//
// with skin depth delta = sqrt(2/(w*mu*sigma)). [Model] packages one
// material under one excitation and exposes the closed-form solution,
// its complex phasor form, and the explicit-scheme stability limit.
package diffusion
