package fit

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
)

// ResidualStats summarizes the residuals of a fit. For a good fit the
// residuals should look like the channel noise: near-zero mean, RMS
// close to the noise level, no gross outliers.
type ResidualStats struct {
	Mean   float64
	Median float64
	StdDev float64
	RMS    float64
	Min    float64
	Max    float64
}

// Residuals returns data minus the current prediction buffer contents.
func (s *Spectrum) Residuals() []float64 {
	pred := s.pred.Samples()
	out := make([]float64, len(s.data))
	for i, d := range s.data {
		out[i] = d - pred[i]
	}
	return out
}

// ResidualStatistics computes summary statistics of a residual vector.
func ResidualStatistics(residuals []float64) (ResidualStats, error) {
	if len(residuals) == 0 {
		return ResidualStats{}, fmt.Errorf("fit: residual vector must not be empty")
	}

	mean, err := stats.Mean(residuals)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("fit: residual mean: %w", err)
	}
	median, err := stats.Median(residuals)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("fit: residual median: %w", err)
	}
	stdev, err := stats.StandardDeviation(residuals)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("fit: residual stdev: %w", err)
	}
	minVal, err := stats.Min(residuals)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("fit: residual min: %w", err)
	}
	maxVal, err := stats.Max(residuals)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("fit: residual max: %w", err)
	}

	var sumSq float64
	for _, r := range residuals {
		sumSq += r * r
	}

	return ResidualStats{
		Mean:   mean,
		Median: median,
		StdDev: stdev,
		RMS:    math.Sqrt(sumSq / float64(len(residuals))),
		Min:    minVal,
		Max:    maxVal,
	}, nil
}

// ResidualPowerSpectrum returns the one-sided power spectrum of a
// residual vector, zero-padded to the next power of two. White residuals
// give a flat spectrum; structure indicates unmodeled components.
func ResidualPowerSpectrum(residuals []float64) ([]float64, error) {
	if len(residuals) == 0 {
		return nil, fmt.Errorf("fit: residual vector must not be empty")
	}

	fftSize := nextPowerOf2(len(residuals))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fit: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range residuals {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("fit: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)

	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
