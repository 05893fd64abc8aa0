package diagnostics

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomcmc/chain"
)

// SummaryResult represents a posterior summary of one chain.
type SummaryResult struct {
	Name    string
	N       int
	Mean    float64
	StdDev  float64
	MCError float64 // Monte Carlo standard error of the mean
	Median  float64
	Q25     float64
	Q75     float64
	Lower95 float64 // 2.5% quantile
	Upper95 float64 // 97.5% quantile
}

// Summary computes posterior summary statistics for one chain. The Monte
// Carlo error is sqrt(SpectralVariance/N), so it widens for autocorrelated
// chains rather than assuming independent draws.
func Summary(c *chain.Chain) (*SummaryResult, error) {
	if c == nil || c.Len() < 2 {
		return nil, fmt.Errorf("summary needs at least two draws: %w", ErrInvalidArgument)
	}

	sv, err := SpectralVariance(c.Values)
	if err != nil {
		return nil, err
	}

	median, err := stats.Median(c.Values)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	q25, err := stats.Percentile(c.Values, 25)
	if err != nil {
		return nil, fmt.Errorf("quantile 25%%: %w", err)
	}
	q75, err := stats.Percentile(c.Values, 75)
	if err != nil {
		return nil, fmt.Errorf("quantile 75%%: %w", err)
	}
	lower, err := stats.Percentile(c.Values, 2.5)
	if err != nil {
		return nil, fmt.Errorf("quantile 2.5%%: %w", err)
	}
	upper, err := stats.Percentile(c.Values, 97.5)
	if err != nil {
		return nil, fmt.Errorf("quantile 97.5%%: %w", err)
	}

	return &SummaryResult{
		Name:    c.Name,
		N:       c.Len(),
		Mean:    stat.Mean(c.Values, nil),
		StdDev:  math.Sqrt(stat.Variance(c.Values, nil)),
		MCError: math.Sqrt(sv / float64(c.Len())),
		Median:  median,
		Q25:     q25,
		Q75:     q75,
		Lower95: lower,
		Upper95: upper,
	}, nil
}
