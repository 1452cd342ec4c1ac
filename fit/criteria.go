package fit

import "math"

// Criteria holds information-criterion values for comparing fitted
// models of different component counts.
type Criteria struct {
	AIC  float64
	AICc float64
	BIC  float64
}

// InformationCriteria computes AIC, AICc, and BIC from the maximum
// log-likelihood of a fit with k free parameters over n data points.
// AICc is left as AIC when n <= k+1, where the small-sample correction
// diverges.
func InformationCriteria(maxLogLike float64, k, n int) Criteria {
	kf := float64(k)
	nf := float64(n)

	aic := 2*kf - 2*maxLogLike
	aicc := aic
	if n > k+1 {
		aicc += 2 * kf * (kf + 1) / (nf - kf - 1)
	}
	bic := kf*math.Log(nf) - 2*maxLogLike

	return Criteria{AIC: aic, AICc: aicc, BIC: bic}
}
