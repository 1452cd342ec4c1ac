package prior

// BlockPrior transforms one block of unit-cube values in place into
// physical parameter values. Implementations must not retain the slice.
type BlockPrior interface {
	Interp(block []float64)
}

// Prior interpolates physical values from a cached inverse-CDF table.
// Anchors sit at evenly spaced quantiles k/size for k in [0, size); the
// table is immutable after construction.
type Prior struct {
	data []float64
	size int
}

// NewPrior wraps a table of inverse-CDF anchor values. The slice is
// copied; it must contain at least two anchors.
func NewPrior(data []float64) *Prior {
	vals := make([]float64, len(data))
	copy(vals, data)
	return &Prior{data: vals, size: len(vals)}
}

// Size returns the number of cached anchors.
func (p *Prior) Size() int { return p.size }

// Anchors returns a copy of the cached anchor values.
func (p *Prior) Anchors() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)
	return out
}

// interpOne maps a unit value onto the anchor table with a two-point
// linear blend. The lower index is clamped so a value at the final grid
// step resolves to the last anchor instead of reading past the table.
func (p *Prior) interpOne(u float64) float64 {
	s := float64(p.size)
	iLo := int(u * (s - 1))
	if iLo > p.size-2 {
		iLo = p.size - 2
	}
	if iLo < 0 {
		iLo = 0
	}

	lo := p.data[iLo]
	return lo + (p.data[iLo+1]-lo)*(u-float64(iLo)/s)*s
}

// Interp transforms block in place, each entry independently.
func (p *Prior) Interp(block []float64) {
	for i, u := range block {
		block[i] = p.interpOne(u)
	}
}

// OrderedPrior transforms a block so resolved values are non-decreasing
// in index. Entry i is interpreted as a fraction of the unit interval
// remaining above entry i-1's resolved position:
//
//	umin      umax
//	 |--x---------|
//	    |----x----|
//	         |--x-|
//
// This pins each component to a fixed rank and removes the permutation
// multimodality of multi-component posteriors.
type OrderedPrior struct {
	*Prior
}

// NewOrderedPrior wraps a table with ordered-block semantics.
func NewOrderedPrior(data []float64) *OrderedPrior {
	return &OrderedPrior{Prior: NewPrior(data)}
}

// Interp transforms block in place, enforcing the left-to-right ordering.
func (p *OrderedPrior) Interp(block []float64) {
	var umin float64
	for i, u := range block {
		u = umin + (1-umin)*u
		umin = u
		block[i] = p.interpOne(u)
	}
}

// SpacedPrior places the first component from an independent position
// prior and each subsequent component at the previous position plus a
// positive separation drawn from a second prior. Like OrderedPrior the
// resolved values are ordered, but the spacing between components is
// controlled directly.
type SpacedPrior struct {
	position   *Prior
	separation *Prior
}

// NewSpacedPrior combines a position prior with a separation prior.
func NewSpacedPrior(position, separation *Prior) *SpacedPrior {
	return &SpacedPrior{position: position, separation: separation}
}

// Interp transforms block in place.
func (p *SpacedPrior) Interp(block []float64) {
	if len(block) == 0 {
		return
	}

	block[0] = p.position.interpOne(block[0])
	for i := 1; i < len(block); i++ {
		block[i] = block[i-1] + p.separation.interpOne(block[i])
	}
}
