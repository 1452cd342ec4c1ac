package ammonia_test

import (
	"fmt"

	"github.com/cwbudde/algo-specfit/ammonia"
)

func ExampleTransition() {
	for _, t := range []*ammonia.Transition{ammonia.TransitionOneOne, ammonia.TransitionTwoTwo} {
		fmt.Printf("%s %d lines at %.4f GHz\n", t.Name(), t.HyperfineCount(), t.RestFreq()/1e9)
	}

	// Output:
	// (1,1) 18 lines at 23.6945 GHz
	// (2,2) 21 lines at 23.7226 GHz
}

func ExampleTransition_Predict() {
	freqs := ammonia.TransitionOneOne.FrequencyAxis(30, 0.05)
	out := make([]float64, len(freqs))

	// One component: voff, trot, tex, ntot, sigm.
	params := []float64{0, 20, 5, 14.5, 0.3}
	if err := ammonia.TransitionOneOne.Predict(freqs, out, params); err != nil {
		fmt.Println(err)
		return
	}

	var peak float64
	for _, v := range out {
		if v > peak {
			peak = v
		}
	}
	fmt.Println(peak > 0)

	// Output:
	// true
}
