package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomcmc/chain"
)

// GelmanRubinResult represents the result of the Gelman-Rubin diagnostic for
// one scalar parameter.
type GelmanRubinResult struct {
	PSRF            float64 // Potential scale reduction factor (Rhat)
	WithinVariance  float64
	BetweenVariance float64
	PooledVariance  float64
	NumChains       int
	ChainLen        int
}

// GelmanRubin computes the potential scale reduction factor for an ensemble
// of at least two chains of the same scalar parameter:
//
//	W    = mean over chains of each chain's sample variance
//	B    = N/(M-1) * sum_j (mean_j - grand mean)^2
//	Vhat = (1 - 1/N)*W + B/N
//	Rhat = sqrt(Vhat / W)
//
// Values well above 1 indicate the chains have not mixed. The diagnostic is
// invariant to chain order and has no side effects.
func GelmanRubin(ens *chain.Ensemble) (*GelmanRubinResult, error) {
	if ens == nil || ens.Size() < 2 {
		return nil, fmt.Errorf("gelman-rubin needs at least two chains: %w", ErrInvalidArgument)
	}
	m := ens.Size()
	n := ens.ChainLen()
	if n < 2 {
		return nil, fmt.Errorf("gelman-rubin needs at least two draws per chain, got %d: %w",
			n, ErrInvalidArgument)
	}

	means := make([]float64, m)
	w := 0.0
	for j, c := range ens.Chains() {
		means[j] = stat.Mean(c.Values, nil)
		w += stat.Variance(c.Values, nil)
	}
	w /= float64(m)
	if w == 0 {
		return nil, fmt.Errorf("zero within-chain variance: %w", ErrNotComputable)
	}

	grand := stat.Mean(means, nil)
	b := 0.0
	for _, mu := range means {
		d := mu - grand
		b += d * d
	}
	b *= float64(n) / float64(m-1)

	nf := float64(n)
	vhat := (1-1/nf)*w + b/nf

	return &GelmanRubinResult{
		PSRF:            math.Sqrt(vhat / w),
		WithinVariance:  w,
		BetweenVariance: b,
		PooledVariance:  vhat,
		NumChains:       m,
		ChainLen:        n,
	}, nil
}

// GelmanRubinComponents applies the Gelman-Rubin diagnostic to each component
// ensemble of a vector-valued parameter, as produced by
// chain.EnsembleFromVectorDraws, and returns one result per component.
func GelmanRubinComponents(ensembles []*chain.Ensemble) ([]*GelmanRubinResult, error) {
	if len(ensembles) == 0 {
		return nil, fmt.Errorf("no component ensembles: %w", ErrInvalidArgument)
	}
	results := make([]*GelmanRubinResult, len(ensembles))
	for k, ens := range ensembles {
		r, err := GelmanRubin(ens)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", k, err)
		}
		results[k] = r
	}
	return results, nil
}
