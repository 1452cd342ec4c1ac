package ammonia

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ParamsPerComponent is the number of model parameters per velocity
// component: offset, trot, tex, ntot, sigm.
const ParamsPerComponent = 5

// gaussCutoff is the dimensionless squared-offset threshold beyond which
// a hyperfine sub-line contributes less than exp(-20) of its peak depth
// to a channel and is skipped.
const gaussCutoff = 20.0

// Transition holds the fixed atomic data of one NH3 inversion transition.
// The two instances, TransitionOneOne and TransitionTwoTwo, are immutable
// and safe to share across goroutines.
type Transition struct {
	name        string
	restFreq    float64 // Hz
	einsteinA   float64 // 1/s
	statWeight  float64 // upper-state degeneracy
	upperEnergy float64 // upper-state rotational energy / h, Hz
	voff        []float64
	weights     []float64
}

var (
	// TransitionOneOne is the NH3 (1,1) transition with 18 hyperfine sub-lines.
	TransitionOneOne = &Transition{
		name:        "(1,1)",
		restFreq:    restFreq11,
		einsteinA:   einsteinA11,
		statWeight:  3,
		upperEnergy: rotEnergy(1),
		voff:        voff11,
		weights:     weights11,
	}

	// TransitionTwoTwo is the NH3 (2,2) transition with 21 hyperfine sub-lines.
	TransitionTwoTwo = &Transition{
		name:        "(2,2)",
		restFreq:    restFreq22,
		einsteinA:   einsteinA22,
		statWeight:  5,
		upperEnergy: rotEnergy(2),
		voff:        voff22,
		weights:     weights22,
	}
)

// Name returns the transition label, e.g. "(1,1)".
func (t *Transition) Name() string { return t.name }

// RestFreq returns the transition rest frequency in Hz.
func (t *Transition) RestFreq() float64 { return t.restFreq }

// EinsteinA returns the Einstein-A coefficient in 1/s.
func (t *Transition) EinsteinA() float64 { return t.einsteinA }

// HyperfineCount returns the number of hyperfine sub-lines.
func (t *Transition) HyperfineCount() int { return len(t.voff) }

// HyperfineOffsets returns a copy of the sub-line velocity offsets in km/s.
func (t *Transition) HyperfineOffsets() []float64 {
	out := make([]float64, len(t.voff))
	copy(out, t.voff)
	return out
}

// HyperfineWeights returns a copy of the normalized sub-line weights.
func (t *Transition) HyperfineWeights() []float64 {
	out := make([]float64, len(t.weights))
	copy(out, t.weights)
	return out
}

// Predict overwrites out with the model brightness-temperature spectrum
// (K) evaluated on the frequency axis freqs (Hz) for the grouped
// parameter vector params. It validates the caller contract and is the
// entry point for standalone use, e.g. plotting.
func (t *Transition) Predict(freqs, out, params []float64) error {
	if len(out) != len(freqs) {
		return fmt.Errorf("ammonia: output length %d does not match frequency axis length %d",
			len(out), len(freqs))
	}
	if len(params) == 0 || len(params)%ParamsPerComponent != 0 {
		return fmt.Errorf("ammonia: parameter vector length %d is not a positive multiple of %d",
			len(params), ParamsPerComponent)
	}

	for i := range out {
		out[i] = 0
	}

	scratch := make([]float64, len(freqs))
	t.Accumulate(freqs, out, scratch, params)

	return nil
}

// Accumulate adds the model spectrum for params on top of out, using
// scratch as per-component working space. It performs no validation:
// freqs, out, and scratch must have equal length and len(params) must be
// a positive multiple of ParamsPerComponent. This is the unchecked hot
// path used once per likelihood evaluation; scratch contents are
// overwritten.
func (t *Transition) Accumulate(freqs, out, scratch, params []float64) {
	ncomp := len(params) / ParamsPerComponent
	for c := 0; c < ncomp; c++ {
		t.componentInto(freqs, scratch,
			params[c],
			params[ncomp+c],
			params[2*ncomp+c],
			params[3*ncomp+c],
			params[4*ncomp+c],
		)
		vecmath.AddBlockInPlace(out, scratch)
	}
}

// componentInto overwrites dst with the brightness contribution of a
// single velocity component.
func (t *Transition) componentInto(freqs, dst []float64, voff, trot, tex, ntot, sigm float64) {
	// Thermal population of the upper inversion doublet relative to the
	// para partition function.
	pop := math.Pow(10, ntot) * t.statWeight *
		math.Exp(-planckH*t.upperEnergy/(boltzmannK*trot)) / PartitionFunction(trot)

	// Main-line optical depth: stimulated-emission correction,
	// absorption cross-section, and Doppler width normalization.
	hnukt := planckH * t.restFreq / (boltzmannK * tex)
	expTerm := (1 - math.Exp(-hnukt)) / (1 + math.Exp(-hnukt))
	fracTerm := speedCcms * speedCcms * t.einsteinA /
		(8 * math.Pi * t.restFreq * t.restFreq)
	widthTerm := speedCkms / (sigm * t.restFreq * math.Sqrt(2*math.Pi))
	tauMain := pop * fracTerm * expTerm * widthTerm

	var (
		hfFreq   [maxHyperfine]float64
		hfWidth  [maxHyperfine]float64
		hfOffset [maxHyperfine]float64
		hfTau    [maxHyperfine]float64
	)

	n := len(t.voff)
	for i := 0; i < n; i++ {
		nu := t.restFreq * (1 - t.voff[i]/speedCkms)
		hfFreq[i] = nu
		hfWidth[i] = nu * sigm / speedCkms
		hfOffset[i] = nu * voff / speedCkms
		hfTau[i] = tauMain * t.weights[i]
	}

	for j, nu := range freqs {
		var tauSum float64
		for i := 0; i < n; i++ {
			d := nu - hfFreq[i] + hfOffset[i]
			arg := d * d / (2 * hfWidth[i] * hfWidth[i])
			if arg < gaussCutoff {
				tauSum += hfTau[i] * math.Exp(-arg)
			}
		}

		t0 := planckH * nu / boltzmannK
		dst[j] = (t0/(math.Exp(t0/tex)-1) - t0/(math.Exp(t0/TCMB)-1)) *
			(1 - math.Exp(-tauSum))
	}
}
