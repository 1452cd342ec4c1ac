package fit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-specfit/ammonia"
	"github.com/cwbudde/algo-specfit/buffer"
)

// Spectrum pairs one transition's observed spectrum with its noise level
// and a reusable prediction buffer. The buffer is overwritten on every
// predict call, so a Spectrum must not be shared between concurrent
// likelihood evaluations.
type Spectrum struct {
	transition *ammonia.Transition
	freqs      []float64
	data       []float64
	noise      float64
	prefactor  float64
	nullLogL   float64
	pred       *buffer.Buffer
	scratch    *buffer.Buffer
}

// NewSpectrum wraps an observed spectrum: an ascending frequency axis in
// Hz, brightness temperatures in K, and the RMS noise in K. The slices
// are copied. The null log-likelihood (data against an all-zero model)
// is computed once here for model-comparison use.
func NewSpectrum(t *ammonia.Transition, freqs, data []float64, noise float64) (*Spectrum, error) {
	if t == nil {
		return nil, fmt.Errorf("fit: transition must not be nil")
	}
	if noise <= 0 || math.IsNaN(noise) || math.IsInf(noise, 0) {
		return nil, fmt.Errorf("fit: noise must be positive and finite: %g", noise)
	}
	if len(freqs) != len(data) {
		return nil, fmt.Errorf("fit: frequency axis length %d does not match data length %d",
			len(freqs), len(data))
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("fit: spectrum must not be empty")
	}

	m := len(freqs)
	s := &Spectrum{
		transition: t,
		freqs:      append([]float64(nil), freqs...),
		data:       append([]float64(nil), data...),
		noise:      noise,
		prefactor:  -float64(m) / 2 * math.Log(2*math.Pi*noise*noise),
		pred:       buffer.New(m),
		scratch:    buffer.New(m),
	}

	// The prediction buffer starts out all zero, so this is the
	// likelihood of the null model.
	s.nullLogL = s.LogLikelihood()

	return s, nil
}

// Transition returns the modeled inversion transition.
func (s *Spectrum) Transition() *ammonia.Transition { return s.transition }

// Size returns the channel count.
func (s *Spectrum) Size() int { return len(s.freqs) }

// Noise returns the RMS noise in K.
func (s *Spectrum) Noise() float64 { return s.noise }

// NullLogLikelihood returns the log-likelihood of the observed data
// against an all-zero model, the Bayesian model-comparison baseline.
func (s *Spectrum) NullLogLikelihood() float64 { return s.nullLogL }

// Predicted returns the current contents of the prediction buffer. The
// slice aliases internal state and is overwritten by the next predict.
func (s *Spectrum) Predicted() []float64 { return s.pred.Samples() }

// Predict overwrites the prediction buffer with the model spectrum for
// the grouped parameter vector params, validating the caller contract.
func (s *Spectrum) Predict(params []float64) error {
	if len(params) == 0 || len(params)%ammonia.ParamsPerComponent != 0 {
		return fmt.Errorf("fit: parameter vector length %d is not a positive multiple of %d",
			len(params), ammonia.ParamsPerComponent)
	}

	s.predict(params)

	return nil
}

// predict is the unchecked hot path used once per sampler iteration.
func (s *Spectrum) predict(params []float64) {
	s.pred.Zero()
	s.transition.Accumulate(s.freqs, s.pred.Samples(), s.scratch.Samples(), params)
}

// LogLikelihood returns the Gaussian log-likelihood of the observed data
// against the current prediction buffer contents.
func (s *Spectrum) LogLikelihood() float64 {
	pred := s.pred.Samples()

	var sum float64
	for i, d := range s.data {
		r := d - pred[i]
		sum += r * r
	}

	return s.prefactor - sum/(2*s.noise*s.noise)
}

// clone shares the immutable observed data but allocates fresh
// prediction and scratch buffers.
func (s *Spectrum) clone() *Spectrum {
	dup := *s
	dup.pred = buffer.New(len(s.freqs))
	dup.scratch = buffer.New(len(s.freqs))
	return &dup
}
