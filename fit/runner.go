package fit

import (
	"fmt"

	"github.com/cwbudde/algo-specfit/ammonia"
	"github.com/cwbudde/algo-specfit/prior"
)

// LogLikeFunc is the likelihood callback shape a nested-sampling engine
// invokes once per iteration. The engine owns utheta: on entry it holds
// a unit-cube sample of length nparams, and the callee overwrites it in
// place with the physical parameters so the engine can record them next
// to the returned log-likelihood.
type LogLikeFunc func(utheta []float64, ndim, nparams int) float64

// DumpFunc receives intermediate sampler output (live points, posterior
// samples, evidence estimates) for recording. Its layout is owned by the
// sampling engine; this package only passes it through.
type DumpFunc func(physLive, posterior []float64, logZ, logZErr, maxLogLike float64)

// Runner composes the (1,1) and (2,2) spectra with a prior transformer
// into a single sampler callback for a fixed number of velocity
// components. Construct one Runner per fit; it is invoked once per
// sampler iteration for the lifetime of the run.
type Runner struct {
	s11     *Spectrum
	s22     *Spectrum
	utrans  *prior.Transformer
	ncomp   int
	nparams int
	nullZ   float64
}

// NewRunner builds a Runner for ncomp velocity components.
func NewRunner(s11, s22 *Spectrum, utrans *prior.Transformer, ncomp int) (*Runner, error) {
	if s11 == nil || s22 == nil {
		return nil, fmt.Errorf("fit: runner requires both spectra")
	}
	if utrans == nil {
		return nil, fmt.Errorf("fit: runner requires a prior transformer")
	}
	if ncomp < 1 {
		return nil, fmt.Errorf("fit: component count must be >= 1: %d", ncomp)
	}

	return &Runner{
		s11:     s11,
		s22:     s22,
		utrans:  utrans,
		ncomp:   ncomp,
		nparams: ammonia.ParamsPerComponent * ncomp,
		nullZ:   s11.nullLogL + s22.nullLogL,
	}, nil
}

// ComponentCount returns the number of velocity components being fit.
func (r *Runner) ComponentCount() int { return r.ncomp }

// Ndim returns the sampled dimensionality, equal to NParams.
func (r *Runner) Ndim() int { return r.nparams }

// NParams returns the parameter vector length, 5 per component.
func (r *Runner) NParams() int { return r.nparams }

// NullLogZ returns the combined null evidence of both spectra.
func (r *Runner) NullLogZ() float64 { return r.nullZ }

// OneOne returns the (1,1) spectrum.
func (r *Runner) OneOne() *Spectrum { return r.s11 }

// TwoTwo returns the (2,2) spectrum.
func (r *Runner) TwoTwo() *Spectrum { return r.s22 }

// LogLikelihood satisfies LogLikeFunc. It transforms utheta in place
// from unit-cube values to physical parameters, predicts both
// transitions into their buffers, and returns the summed Gaussian
// log-likelihood. Precondition (unchecked, hot path): utheta holds at
// least NParams entries in [0, 1). The mutated utheta is a deliberate
// side effect the sampling engine relies on.
func (r *Runner) LogLikelihood(utheta []float64, ndim, nparams int) float64 {
	_ = ndim
	_ = nparams

	params := utheta[:r.nparams]
	r.utrans.Transform(params, r.ncomp)
	r.s11.predict(params)
	r.s22.predict(params)

	return r.s11.LogLikelihood() + r.s22.LogLikelihood()
}

// Clone returns a Runner with fresh prediction buffers that shares the
// immutable observed data, prior tables, and transition constants.
// Parallel sampling hosts should give each worker its own clone;
// concurrent LogLikelihood calls on a single Runner race on the
// prediction buffers.
func (r *Runner) Clone() *Runner {
	dup := *r
	dup.s11 = r.s11.clone()
	dup.s22 = r.s22.clone()
	return &dup
}
