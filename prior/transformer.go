package prior

// Transformer converts unit-hypercube vectors into physical parameter
// vectors, one cached prior per parameter block. Construction evaluates
// every inverse CDF once; Transform itself only interpolates.
type Transformer struct {
	voff BlockPrior
	trot *Prior
	tex  *Prior
	ntot *Prior
	sigm *Prior
	size int
}

// Option configures a Transformer.
type Option func(*builder)

type builder struct {
	spaced bool
}

// WithSpacedOffsets replaces the default ordered velocity-offset prior
// with a SpacedPrior driven by the component-separation distribution.
func WithSpacedOffsets() Option {
	return func(b *builder) {
		b.spaced = true
	}
}

// New builds a Transformer with size anchors per table (DefaultSize if
// size < 2) and velocity-offset priors centered on the systemic velocity
// vsys in km/s.
func New(size int, vsys float64, opts ...Option) *Transformer {
	if size < 2 {
		size = DefaultSize
	}

	var b builder
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	var voff BlockPrior
	if b.spaced {
		voff = NewSpacedPrior(
			NewPrior(VelocityOffsetTable(size, vsys)),
			NewPrior(VelocitySeparationTable(size)),
		)
	} else {
		voff = NewOrderedPrior(VelocityOffsetTable(size, vsys))
	}

	return &Transformer{
		voff: voff,
		trot: NewPrior(RotationTemperatureTable(size)),
		tex:  NewPrior(ExcitationTemperatureTable(size)),
		ntot: NewPrior(ColumnDensityTable(size)),
		sigm: NewPrior(LineWidthTable(size)),
		size: size,
	}
}

// Size returns the anchor count per table.
func (t *Transformer) Size() int { return t.size }

// Transform mutates utheta in place from unit-cube values into physical
// parameters for ncomp velocity components. The vector is grouped by
// kind: offsets in [0, ncomp), rotational temperatures in [ncomp,
// 2*ncomp), then excitation temperatures, log column densities, and
// line widths. Precondition (unchecked, hot path): len(utheta) is
// 5*ncomp and every entry lies in [0, 1).
func (t *Transformer) Transform(utheta []float64, ncomp int) {
	t.voff.Interp(utheta[:ncomp])
	t.trot.Interp(utheta[ncomp : 2*ncomp])
	t.tex.Interp(utheta[2*ncomp : 3*ncomp])
	t.ntot.Interp(utheta[3*ncomp : 4*ncomp])
	t.sigm.Interp(utheta[4*ncomp : 5*ncomp])
}
