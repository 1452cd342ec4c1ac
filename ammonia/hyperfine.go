package ammonia

// Hyperfine sub-line tables. Velocity offsets are relative to the
// transition rest frequency in km/s; weights are relative line
// intensities normalized at init time so each table sums to one.

var voff11 = []float64{
	19.8513, 19.3159, 7.88669, 7.46967, 7.35132,
	0.460409, 0.322042, -0.0751680, -0.213003, 0.311034,
	0.192266, -0.132382, -0.250923, -7.23349, -7.37280,
	-7.81526, -19.4117, -19.5500,
}

var weights11 = []float64{
	0.0740740, 0.148148, 0.0925930, 0.166667, 0.0185190,
	0.0370370, 0.0185190, 0.0185190, 0.0925930, 0.0333330,
	0.300000, 0.466667, 0.0333330, 0.0925930, 0.0185190,
	0.166667, 0.0740740, 0.148148,
}

var voff22 = []float64{
	26.5263, 26.0111, 25.9505, 16.3917, 16.3793,
	15.8642, 0.562503, 0.528408, 0.523745, 0.0132820,
	-0.00379100, 0.0112680, -0.533871, -0.531340, -0.589080,
	-15.8547, -16.3698, -16.3822, -25.9505, -26.0111,
	-26.5263,
}

var weights22 = []float64{
	0.0026900, 0.0169100, 0.0206700, 0.0264600, 0.0322400,
	0.0116900, 0.0817500, 0.2607200, 0.3085600, 0.0452800,
	0.0339200, 0.0452800, 0.3085600, 0.2607200, 0.0817500,
	0.0116900, 0.0322400, 0.0264600, 0.0206700, 0.0169100,
	0.0026900,
}

// maxHyperfine bounds the per-component scratch arrays in the predict
// hot path; it must cover the largest table.
const maxHyperfine = 21

func normalize(weights []float64) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
}

func init() {
	normalize(weights11)
	normalize(weights22)
}
