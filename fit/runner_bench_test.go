package fit_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-specfit/ammonia"
	"github.com/cwbudde/algo-specfit/fit"
	"github.com/cwbudde/algo-specfit/prior"
	"github.com/cwbudde/algo-specfit/synth"
)

func BenchmarkRunnerLogLikelihood(b *testing.B) {
	const noise = 0.3
	gen := synth.NewGenerator(synth.WithVelocityResolution(0.158), synth.WithSeed(42))
	params := []float64{-1.0, 10, 4, 14.5, 0.3}

	syn11, err := gen.Generate(ammonia.TransitionOneOne, params, noise)
	if err != nil {
		b.Fatal(err)
	}
	syn22, err := gen.Generate(ammonia.TransitionTwoTwo, params, noise)
	if err != nil {
		b.Fatal(err)
	}

	s11, err := fit.NewSpectrum(ammonia.TransitionOneOne, syn11.Freqs, syn11.Data, noise)
	if err != nil {
		b.Fatal(err)
	}
	s22, err := fit.NewSpectrum(ammonia.TransitionTwoTwo, syn22.Freqs, syn22.Data, noise)
	if err != nil {
		b.Fatal(err)
	}

	cases := []struct {
		name  string
		ncomp int
	}{
		{"1comp", 1},
		{"2comp", 2},
		{"3comp", 3},
	}

	for _, tc := range cases {
		ncomp := tc.ncomp
		b.Run(tc.name, func(b *testing.B) {
			r, err := fit.NewRunner(s11, s22, prior.New(100, 0), ncomp)
			if err != nil {
				b.Fatal(err)
			}

			rng := rand.New(rand.NewPCG(1, 1))
			template := make([]float64, r.NParams())
			for i := range template {
				template[i] = rng.Float64()
			}
			utheta := make([]float64, len(template))

			b.ResetTimer()

			for range b.N {
				copy(utheta, template)
				_ = r.LogLikelihood(utheta, r.Ndim(), r.NParams())
			}
		})
	}
}
