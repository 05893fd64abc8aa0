package diagnostics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomcmc/chain"
)

// ESSResult represents the effective sample size of one chain.
type ESSResult struct {
	ESS      float64 // Effective number of independent draws
	ACT      float64 // Integrated autocorrelation time (N / ESS)
	Lags     int     // Number of autocorrelation lags summed before truncation
	ChainLen int
}

// EffectiveSampleSize estimates how many independent draws a chain is worth:
// N / (1 + 2*sum rho_k), with the sum truncated at the first lag pair whose
// autocorrelations sum to a non-positive value (Geyer's initial positive
// sequence). Heavily autocorrelated chains yield an ESS far below N.
func EffectiveSampleSize(c *chain.Chain) (*ESSResult, error) {
	if c == nil || c.Len() < 2 {
		return nil, fmt.Errorf("effective sample size needs at least two draws: %w", ErrInvalidArgument)
	}
	n := c.Len()

	mean := stat.Mean(c.Values, nil)
	gamma0 := 0.0
	for _, v := range c.Values {
		d := v - mean
		gamma0 += d * d
	}
	gamma0 /= float64(n)
	if gamma0 == 0 {
		return nil, fmt.Errorf("effective sample size of a constant chain: %w", ErrNotComputable)
	}

	// tau = 1 + 2*sum rho_k over consecutive lag pairs while the pair sum
	// stays positive.
	tau := 1.0
	lags := 0
	for k := 1; k+1 < n; k += 2 {
		pair := autocorr(c.Values, mean, gamma0, k) + autocorr(c.Values, mean, gamma0, k+1)
		if pair <= 0 {
			break
		}
		tau += 2 * pair
		lags = k + 1
	}

	return &ESSResult{
		ESS:      float64(n) / tau,
		ACT:      tau,
		Lags:     lags,
		ChainLen: n,
	}, nil
}

func autocorr(xs []float64, mean, gamma0 float64, k int) float64 {
	sum := 0.0
	for i := k; i < len(xs); i++ {
		sum += (xs[i] - mean) * (xs[i-k] - mean)
	}
	return sum / (float64(len(xs)) * gamma0)
}

// AcceptanceRate estimates the acceptance rate of a Metropolis-style chain as
// the fraction of successive draws that differ. Rejected proposals repeat the
// previous draw, so repeats count as rejections.
func AcceptanceRate(c *chain.Chain) (float64, error) {
	if c == nil || c.Len() < 2 {
		return 0, fmt.Errorf("acceptance rate needs at least two draws: %w", ErrInvalidArgument)
	}
	accepted := 0
	for i := 1; i < c.Len(); i++ {
		if c.Values[i] != c.Values[i-1] {
			accepted++
		}
	}
	return float64(accepted) / float64(c.Len()-1), nil
}
