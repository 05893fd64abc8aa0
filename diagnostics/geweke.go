package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gomcmc/chain"
)

// GewekeScore is the z-score for one late-chain segment, with the index of
// the segment's first draw and a two-sided normal p-value.
type GewekeScore struct {
	Start  int
	Z      float64
	PValue float64
}

// GewekeResult represents the result of the Geweke stationarity diagnostic
// for one chain.
type GewekeResult struct {
	Scores    []GewekeScore
	First     float64
	Last      float64
	Intervals int
}

// Geweke compares the mean of an early chain window against the means of
// equal segments of a late window. The early window is the first
// floor(first*N) draws; the late region is the final floor(last*N)-sized tail
// starting at floor((1-last)*N), split into `intervals` equal contiguous
// segments. For each segment s,
//
//	z_s = (mean(early) - mean(segment_s)) / sqrt(S_e/|early| + S_s/|segment_s|)
//
// where S is the spectral variance of the window (see SpectralVariance).
// Scores are returned in segment order. A chain that has reached its
// stationary distribution yields approximately standard normal scores;
// |z| > 2 across many segments suggests non-stationarity. That interpretation
// is left to the caller.
func Geweke(c *chain.Chain, first, last float64, intervals int) (*GewekeResult, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("geweke needs a non-empty chain: %w", ErrInvalidArgument)
	}
	if first <= 0 || first >= 1 {
		return nil, fmt.Errorf("first fraction %v outside (0,1): %w", first, ErrInvalidArgument)
	}
	if last <= 0 || last >= 1 {
		return nil, fmt.Errorf("last fraction %v outside (0,1): %w", last, ErrInvalidArgument)
	}
	if intervals < 1 {
		return nil, fmt.Errorf("intervals must be at least 1, got %d: %w", intervals, ErrInvalidArgument)
	}

	n := c.Len()
	earlyEnd := int(math.Floor(first * float64(n)))
	lateStart := int(math.Floor((1 - last) * float64(n)))
	if earlyEnd >= lateStart {
		return nil, fmt.Errorf("early window (ends at %d) reaches into late region (starts at %d): %w",
			earlyEnd, lateStart, ErrInvalidArgument)
	}
	if earlyEnd < 2 {
		return nil, fmt.Errorf("early window of %d draws is too short: %w", earlyEnd, ErrInvalidArgument)
	}

	lateLen := n - lateStart
	if lateLen < intervals || lateLen%intervals != 0 {
		return nil, fmt.Errorf("late region of %d draws does not split into %d equal segments: %w",
			lateLen, intervals, ErrInvalidArgument)
	}
	segLen := lateLen / intervals
	if segLen < 2 {
		return nil, fmt.Errorf("segments of %d draws are too short: %w", segLen, ErrInvalidArgument)
	}

	early := c.Values[:earlyEnd]
	earlyMean := stat.Mean(early, nil)
	earlyVar, err := SpectralVariance(early)
	if err != nil {
		return nil, err
	}

	scores := make([]GewekeScore, intervals)
	for s := 0; s < intervals; s++ {
		start := lateStart + s*segLen
		segment := c.Values[start : start+segLen]
		segMean := stat.Mean(segment, nil)
		segVar, err := SpectralVariance(segment)
		if err != nil {
			return nil, err
		}

		se := math.Sqrt(earlyVar/float64(earlyEnd) + segVar/float64(segLen))
		if se == 0 {
			return nil, fmt.Errorf("segment starting at %d: zero variance in both windows: %w",
				start, ErrNotComputable)
		}
		z := (earlyMean - segMean) / se
		scores[s] = GewekeScore{
			Start:  start,
			Z:      z,
			PValue: 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z))),
		}
	}

	return &GewekeResult{
		Scores:    scores,
		First:     first,
		Last:      last,
		Intervals: intervals,
	}, nil
}
