package prior

import (
	"math"
	"math/rand/v2"
	"testing"
)

// ramp returns a linear anchor table 0..n-1.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestPriorEndpoints(t *testing.T) {
	p := NewPrior(ramp(100))

	block := []float64{0}
	p.Interp(block)
	if block[0] != 0 {
		t.Fatalf("u=0 got %v, want the first anchor", block[0])
	}

	// Last valid grid step resolves to the final anchor without
	// reading past the table.
	block = []float64{99.0 / 100.0}
	p.Interp(block)
	if math.Abs(block[0]-99) > 1e-9 {
		t.Fatalf("u=(S-1)/S got %v, want the last anchor 99", block[0])
	}
}

func TestPriorInterpolatesBetweenAnchors(t *testing.T) {
	p := NewPrior(ramp(100))

	block := []float64{0.5}
	p.Interp(block)
	if math.Abs(block[0]-50) > 1e-9 {
		t.Fatalf("u=0.5 got %v, want 50", block[0])
	}
}

func TestPriorNoOverrunNearOne(t *testing.T) {
	p := NewPrior(ramp(100))

	for _, u := range []float64{0.991, 0.999, 0.999999} {
		block := []float64{u}
		p.Interp(block)
		if math.IsNaN(block[0]) || math.IsInf(block[0], 0) {
			t.Fatalf("u=%v produced non-finite value %v", u, block[0])
		}
	}
}

func TestOrderedPriorNonDecreasing(t *testing.T) {
	p := NewOrderedPrior(VelocityOffsetTable(100, 0))
	rng := rand.New(rand.NewPCG(7, 7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + trial%5
		block := make([]float64, n)
		for i := range block {
			block[i] = rng.Float64()
		}

		p.Interp(block)

		for i := 1; i < n; i++ {
			if block[i] < block[i-1] {
				t.Fatalf("trial %d: offsets decrease at %d: %v then %v",
					trial, i, block[i-1], block[i])
			}
		}
	}
}

func TestSpacedPriorStrictlyIncreasing(t *testing.T) {
	p := NewSpacedPrior(
		NewPrior(VelocityOffsetTable(100, 0)),
		NewPrior(VelocitySeparationTable(100)),
	)
	rng := rand.New(rand.NewPCG(11, 11))

	for trial := 0; trial < 200; trial++ {
		block := make([]float64, 4)
		for i := range block {
			block[i] = rng.Float64()
		}

		p.Interp(block)

		for i := 1; i < len(block); i++ {
			// Separations are bounded below by 0.7 km/s.
			if block[i]-block[i-1] < 0.7-1e-9 {
				t.Fatalf("trial %d: separation %v below prior floor",
					trial, block[i]-block[i-1])
			}
		}
	}
}

func TestPriorAccessors(t *testing.T) {
	data := ramp(10)
	p := NewPrior(data)

	if p.Size() != 10 {
		t.Fatalf("size got %d want 10", p.Size())
	}

	anchors := p.Anchors()
	anchors[0] = 1e9
	if got := p.Anchors()[0]; got != 0 {
		t.Fatalf("Anchors must return a copy, table mutated to %v", got)
	}

	data[1] = 1e9
	block := []float64{0.0}
	p.Interp(block)
	if block[0] != 0 {
		t.Fatalf("NewPrior must copy its input table")
	}
}
