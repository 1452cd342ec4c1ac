// Package ammonia implements the forward spectral model for the NH3
// (1,1) and (2,2) inversion transitions.
//
// A model spectrum is the superposition of N velocity components, each
// described by five parameters: velocity offset (km/s), rotational
// temperature (K), excitation temperature (K), log10 column density
// (cm^-2), and velocity dispersion (km/s). Parameter vectors are grouped
// by kind, not interleaved: all offsets first, then all rotational
// temperatures, and so on.
//
// The per-component pipeline evaluates the para-NH3 rotational partition
// function, converts column density to a main-line optical depth, spreads
// that depth over the transition's fixed hyperfine sub-lines as Doppler
// broadened Gaussians, and converts the summed opacity per channel to a
// brightness temperature against the cosmic microwave background.
//
// Predict is deterministic and allocation-free apart from its scratch
// slice; it is intended to run inside a sampler's innermost loop.
package ammonia
