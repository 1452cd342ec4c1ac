package ammonia

import "math"

// Physical constants in CGS units.
const (
	planckH    = 6.62607004e-27 // erg s
	boltzmannK = 1.38064852e-16 // erg/K
	speedCkms  = 2.99792458e5   // km/s
	speedCcms  = 2.99792458e10  // cm/s

	// TCMB is the cosmic microwave background temperature in K used as
	// the background term in the radiative transfer.
	TCMB = 2.7315
)

// Rotation constants of the NH3 rigid rotor in Hz.
const (
	rotB = 298117.06e6
	rotC = 186726.36e6
)

// Rest frequencies of the inversion transitions in Hz.
const (
	restFreq11 = 23.6944955e9
	restFreq22 = 23.7226336e9
)

// Einstein-A coefficients in 1/s.
var (
	einsteinA11 = math.Pow(10, -8.44854)
	einsteinA22 = math.Pow(10, -7.92336)
)

// jPara lists the rotational quantum numbers of the para-NH3 states
// (J not a multiple of 3, J <= 50) summed in the partition function.
var jPara = [34]float64{
	1, 2, 4, 5, 7, 8, 10, 11, 13, 14,
	16, 17, 19, 20, 22, 23, 25, 26, 28, 29,
	31, 32, 34, 35, 37, 38, 40, 41, 43, 44,
	46, 47, 49, 50,
}

// rotEnergy returns the rigid-rotor rotational energy of level J
// expressed as a frequency in Hz: B*J*(J+1) + (C-B)*J^2.
func rotEnergy(j float64) float64 {
	return rotB*j*(j+1) + (rotC-rotB)*j*j
}

// PartitionFunction sums the thermal population weights of the para-NH3
// rotational levels at rotational temperature trot (K).
func PartitionFunction(trot float64) float64 {
	var q float64
	for _, j := range jPara {
		q += (2*j + 1) * math.Exp(-planckH*rotEnergy(j)/(boltzmannK*trot))
	}

	return q
}
