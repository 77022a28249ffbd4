// Package analysis extracts summary quantities from solved profiles:
// the phase lag between interior and surface waveforms, and the
// effective decay length of a simulated envelope.
//
// Phase lag is measured rather than read off the closed form, so it
// applies equally to numeric profiles: circular cross-correlation of
// the two waveforms via FFT, with parabolic sub-sample refinement of
// the correlation peak. Decay length comes from linear regression of
// the log-envelope against depth.
package analysis
