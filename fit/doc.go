// Package fit evaluates Gaussian log-likelihoods of ammonia spectral
// models against observed spectra and composes them into the callback
// contract required by an external nested-sampling engine.
//
// A Spectrum owns one transition's observed data, its noise level, and a
// reusable prediction buffer. A Runner pairs the (1,1) and (2,2) spectra
// with a prior.Transformer: each sampler iteration transforms the
// unit-cube vector in place into physical parameters, predicts both
// transitions into their buffers, and returns the summed log-likelihood.
//
// A Runner is not safe for concurrent callback invocation because the
// prediction buffers are reused across calls; give each concurrent
// sampler worker its own Runner via Clone. The observed data, prior
// tables, and transition constants are immutable and shared.
package fit
