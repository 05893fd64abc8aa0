package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ACF calculates the autocorrelation function of a sequence of draws.
// Returns ACF values for lags 0 to maxLag.
func ACF(xs []float64, maxLag int) ([]float64, error) {
	n := len(xs)
	if n < 2 {
		return nil, fmt.Errorf("acf needs at least two draws, got %d: %w", n, ErrInvalidArgument)
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("acf lag must be non-negative, got %d: %w", maxLag, ErrInvalidArgument)
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := stat.Mean(xs, nil)
	variance := 0.0
	for _, v := range xs {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil, fmt.Errorf("acf of a constant sequence: %w", ErrNotComputable)
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (xs[i] - mean) * (xs[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// SpectralVariance estimates the asymptotic variance of the sample mean of an
// autocorrelated sequence: the spectral density at zero frequency, computed as
// the Newey-West long-run variance with Bartlett weights over a lag window of
// floor(4*(n/100)^0.25). For independent draws it reduces to the (biased)
// sample variance. A plain sample variance understates the variance of the
// mean for positively autocorrelated chains, which is why the diagnostics in
// this package use this estimator.
func SpectralVariance(xs []float64) (float64, error) {
	n := len(xs)
	if n < 2 {
		return 0, fmt.Errorf("spectral variance needs at least two draws, got %d: %w", n, ErrInvalidArgument)
	}

	mean := stat.Mean(xs, nil)
	gamma0 := 0.0
	for _, v := range xs {
		d := v - mean
		gamma0 += d * d
	}
	gamma0 /= float64(n)

	nlags := int(math.Floor(4 * math.Pow(float64(n)/100, 0.25)))
	if nlags >= n {
		nlags = n - 1
	}

	s := gamma0
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += (xs[i] - mean) * (xs[i-l] - mean)
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s += 2 * weight * cov
	}
	// The Bartlett kernel keeps the estimate non-negative, but floating-point
	// cancellation can still leave a tiny negative residue.
	if s < 0 {
		s = 0
	}
	return s, nil
}
