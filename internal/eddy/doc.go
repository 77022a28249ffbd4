// Package eddy derives induced-current quantities from solved field
// profiles: the peak current density magnitude |J|(x), volumetric
// dissipation densities, and the per-area total power.
//
// Current density comes from Ampere's law in the 1D slab geometry,
// J = (1/mu) dB/dx, evaluated with centered differences (one-sided at
// the edges). Closed-form profiles differentiate the complex phasor,
// which carries the sqrt(2) peak factor of the traveling wave; numeric
// profiles take the peak over the captured snapshots.
package eddy
