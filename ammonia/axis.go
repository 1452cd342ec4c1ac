package ammonia

// FrequencyAxis returns an ascending frequency axis in Hz spanning
// velocities of +/- extent km/s around the transition rest frequency at
// a channel spacing of res km/s. Positive velocities map to lower
// frequencies, so the first channel corresponds to +extent.
func (t *Transition) FrequencyAxis(extent, res float64) []float64 {
	if extent <= 0 || res <= 0 {
		return nil
	}

	n := int(2*extent/res) + 1
	out := make([]float64, n)
	for i := range out {
		v := extent - float64(i)*res
		out[i] = t.restFreq * (1 - v/speedCkms)
	}

	return out
}

// VelocityAt converts a frequency in Hz to the equivalent radio velocity
// in km/s relative to the transition rest frequency.
func (t *Transition) VelocityAt(freq float64) float64 {
	return (1 - freq/t.restFreq) * speedCkms
}
