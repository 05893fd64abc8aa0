package chain

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Chain is an ordered sequence of MCMC draws for one scalar parameter.
// The draws are copied on construction and must not be mutated afterwards;
// every operation returns a new chain.
type Chain struct {
	Values []float64
	Name   string
}

// New creates a new chain from a slice of draws.
func New(values []float64) *Chain {
	v := make([]float64, len(values))
	copy(v, values)
	return &Chain{Values: v}
}

// Named creates a new chain with a parameter name attached.
func Named(name string, values []float64) *Chain {
	c := New(values)
	c.Name = name
	return c
}

// Len returns the number of draws in the chain.
func (c *Chain) Len() int {
	return len(c.Values)
}

// Mean returns the arithmetic mean of the draws.
func (c *Chain) Mean() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	return stat.Mean(c.Values, nil)
}

// Variance returns the sample variance (n-1 denominator) of the draws.
func (c *Chain) Variance() float64 {
	if len(c.Values) < 2 {
		return math.NaN()
	}
	return stat.Variance(c.Values, nil)
}

// Std returns the sample standard deviation of the draws.
func (c *Chain) Std() float64 {
	return math.Sqrt(c.Variance())
}

// Min returns the smallest draw.
func (c *Chain) Min() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(c.Values)
}

// Max returns the largest draw.
func (c *Chain) Max() float64 {
	if len(c.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(c.Values)
}

// Median returns the median draw.
func (c *Chain) Median() float64 {
	m, err := stats.Median(c.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Quantile returns the p-th quantile of the draws, with p in (0, 1).
func (c *Chain) Quantile(p float64) float64 {
	if p <= 0 || p >= 1 {
		return math.NaN()
	}
	q, err := stats.Percentile(c.Values, p*100)
	if err != nil {
		return math.NaN()
	}
	return q
}

// Window returns the contiguous sub-chain [start, end). Indices are clamped
// to the chain bounds; an inverted window yields an empty chain.
func (c *Chain) Window(start, end int) *Chain {
	if start < 0 {
		start = 0
	}
	if end > len(c.Values) {
		end = len(c.Values)
	}
	if start >= end {
		return &Chain{Name: c.Name}
	}
	return Named(c.Name, c.Values[start:end])
}

// Burn discards the first n draws (the burn-in period).
func (c *Chain) Burn(n int) *Chain {
	if n <= 0 {
		return c.Copy()
	}
	return c.Window(n, len(c.Values))
}

// Thin keeps every k-th draw, starting from the first.
func (c *Chain) Thin(k int) *Chain {
	if k <= 1 {
		return c.Copy()
	}
	thinned := make([]float64, 0, (len(c.Values)+k-1)/k)
	for i := 0; i < len(c.Values); i += k {
		thinned = append(thinned, c.Values[i])
	}
	return Named(c.Name, thinned)
}

// Copy creates a deep copy of the chain.
func (c *Chain) Copy() *Chain {
	return Named(c.Name, c.Values)
}
