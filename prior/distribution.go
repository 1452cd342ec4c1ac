package prior

import "gonum.org/v1/gonum/stat/distuv"

// DefaultSize is the default number of inverse-CDF anchors per table.
const DefaultSize = 100

// quantiles evaluates icdf at the anchor quantiles k/size for k in
// [0, size). The final quantile is (size-1)/size, so distributions with
// an unbounded upper tail (Gamma) are never evaluated at 1.
func quantiles(size int, icdf func(p float64) float64) []float64 {
	vals := make([]float64, size)
	for k := range vals {
		vals[k] = icdf(float64(k) / float64(size))
	}
	return vals
}

// Anchor tables for the five model parameter kinds plus the component
// separation used by SpacedPrior. Shapes and physical ranges follow the
// infrared-dark-cloud survey priors:
//
//	voff  Beta(5, 5)               -> [-4, 4] km/s about vsys
//	vdep  Beta(1.5, 3.5)           -> [0.7, 3.7] km/s separation
//	trot  Gamma(4.4, scale 0.070)  -> 7 + 23 q K
//	tex   Beta(1, 2.5)             -> [2.74, 12.0] K
//	ntot  Beta(16, 14)             -> [12, 17] log10(cm^-2)
//	sigm  Gamma(1.5, scale 0.2)    -> 2 (0.03 + q) km/s

// VelocityOffsetTable returns the voff anchor table centered on the
// systemic velocity vsys (km/s).
func VelocityOffsetTable(size int, vsys float64) []float64 {
	d := distuv.Beta{Alpha: 5, Beta: 5}
	return quantiles(size, func(p float64) float64 {
		return 8*d.Quantile(p) - 4 + vsys
	})
}

// VelocitySeparationTable returns the component-separation anchor table
// in km/s.
func VelocitySeparationTable(size int) []float64 {
	d := distuv.Beta{Alpha: 1.5, Beta: 3.5}
	return quantiles(size, func(p float64) float64 {
		return 3*d.Quantile(p) + 0.70
	})
}

// RotationTemperatureTable returns the trot anchor table in K.
func RotationTemperatureTable(size int) []float64 {
	d := distuv.Gamma{Alpha: 4.4, Beta: 1 / 0.070}
	return quantiles(size, func(p float64) float64 {
		return 23*d.Quantile(p) + 7
	})
}

// ExcitationTemperatureTable returns the tex anchor table in K.
func ExcitationTemperatureTable(size int) []float64 {
	d := distuv.Beta{Alpha: 1, Beta: 2.5}
	return quantiles(size, func(p float64) float64 {
		return 9.26*d.Quantile(p) + 2.74
	})
}

// ColumnDensityTable returns the ntot anchor table in log10(cm^-2).
func ColumnDensityTable(size int) []float64 {
	d := distuv.Beta{Alpha: 16, Beta: 14}
	return quantiles(size, func(p float64) float64 {
		return 5*d.Quantile(p) + 12
	})
}

// LineWidthTable returns the sigm anchor table in km/s.
func LineWidthTable(size int) []float64 {
	d := distuv.Gamma{Alpha: 1.5, Beta: 1 / 0.2}
	return quantiles(size, func(p float64) float64 {
		return 2 * (0.03 + d.Quantile(p))
	})
}
