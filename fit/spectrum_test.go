package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-specfit/ammonia"
	"github.com/cwbudde/algo-specfit/fit"
	"github.com/cwbudde/algo-specfit/synth"
)

func TestNewSpectrumValidation(t *testing.T) {
	freqs := ammonia.TransitionOneOne.FrequencyAxis(10, 0.5)
	data := make([]float64, len(freqs))

	_, err := fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data, 0)
	assert.Error(t, err, "zero noise must be rejected")

	_, err = fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data, -0.5)
	assert.Error(t, err, "negative noise must be rejected")

	_, err = fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data[:len(data)-1], 0.1)
	assert.Error(t, err, "length mismatch must be rejected")

	_, err = fit.NewSpectrum(ammonia.TransitionOneOne, nil, nil, 0.1)
	assert.Error(t, err, "empty spectrum must be rejected")

	_, err = fit.NewSpectrum(nil, freqs, data, 0.1)
	assert.Error(t, err, "nil transition must be rejected")

	s, err := fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data, 0.1)
	require.NoError(t, err)
	assert.Equal(t, len(freqs), s.Size())
	assert.Equal(t, 0.1, s.Noise())
}

func TestNullLogLikelihood(t *testing.T) {
	const m = 10
	freqs := ammonia.TransitionOneOne.FrequencyAxis(10, 0.5)[:m]
	data := make([]float64, m)

	s, err := fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data, 1.0)
	require.NoError(t, err)

	want := -float64(m) / 2 * math.Log(2*math.Pi)
	assert.Equal(t, want, s.NullLogLikelihood(),
		"null log-likelihood of all-zero data at unit noise")

	// The prediction buffer is all zero right after construction, so
	// the live likelihood must equal the null value exactly.
	assert.Equal(t, s.NullLogLikelihood(), s.LogLikelihood())
}

func TestSpectrumPredictValidation(t *testing.T) {
	freqs := ammonia.TransitionOneOne.FrequencyAxis(10, 0.5)
	data := make([]float64, len(freqs))

	s, err := fit.NewSpectrum(ammonia.TransitionOneOne, freqs, data, 0.1)
	require.NoError(t, err)

	assert.Error(t, s.Predict([]float64{1, 2, 3}))
	assert.Error(t, s.Predict(nil))
	assert.NoError(t, s.Predict([]float64{0, 20, 5, 14.5, 0.3}))
}

func TestLogLikelihoodOfExactModel(t *testing.T) {
	gen := synth.NewGenerator(synth.WithVelocityResolution(0.2))
	syn, err := gen.Generate(ammonia.TransitionOneOne, []float64{0, 20, 5, 14.5, 0.3}, 0)
	require.NoError(t, err)

	s, err := fit.NewSpectrum(ammonia.TransitionOneOne, syn.Freqs, syn.Data, 0.1)
	require.NoError(t, err)
	require.NoError(t, s.Predict(syn.Params))

	// Noise-free data predicted with the generating parameters leaves
	// zero residual, so the likelihood saturates at the prefactor and
	// must exceed the null value.
	null := s.NullLogLikelihood()
	logL := s.LogLikelihood()
	assert.Greater(t, logL, null)

	res := s.Residuals()
	for i, r := range res {
		require.Zerof(t, r, "residual at channel %d", i)
	}
}

func TestResidualStatistics(t *testing.T) {
	stats, err := fit.ResidualStatistics([]float64{1, -1, 1, -1})
	require.NoError(t, err)

	assert.InDelta(t, 0, stats.Mean, 1e-12)
	assert.InDelta(t, 0, stats.Median, 1e-12)
	assert.InDelta(t, 1, stats.RMS, 1e-12)
	assert.InDelta(t, 1, stats.StdDev, 1e-12)
	assert.Equal(t, -1.0, stats.Min)
	assert.Equal(t, 1.0, stats.Max)

	_, err = fit.ResidualStatistics(nil)
	assert.Error(t, err)
}

func TestResidualPowerSpectrum(t *testing.T) {
	// Alternating residual: all power lands in the Nyquist bin.
	power, err := fit.ResidualPowerSpectrum([]float64{1, -1, 1, -1})
	require.NoError(t, err)
	require.Len(t, power, 3)

	assert.InDelta(t, 0, power[0], 1e-9)
	assert.InDelta(t, 0, power[1], 1e-9)
	assert.InDelta(t, 16, power[2], 1e-9)

	_, err = fit.ResidualPowerSpectrum(nil)
	assert.Error(t, err)
}

func TestInformationCriteria(t *testing.T) {
	c := fit.InformationCriteria(-100, 5, 100)

	assert.InDelta(t, 210, c.AIC, 1e-12)
	assert.InDelta(t, 210+60.0/94.0, c.AICc, 1e-12)
	assert.InDelta(t, 5*math.Log(100)+200, c.BIC, 1e-12)

	// Degenerate sample size: the small-sample correction is skipped.
	c = fit.InformationCriteria(-100, 5, 6)
	assert.Equal(t, c.AIC, c.AICc)
}
