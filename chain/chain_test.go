package chain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesDraws(t *testing.T) {
	draws := []float64{1, 2, 3}
	c := New(draws)

	draws[0] = 99
	assert.Equal(t, 1.0, c.Values[0], "chain must not alias the caller's slice")
}

func TestChainMoments(t *testing.T) {
	c := Named("mu", []float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, c.Len())
	assert.InDelta(t, 5.0, c.Mean(), 1e-12)
	assert.InDelta(t, 32.0/7.0, c.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), c.Std(), 1e-12)
	assert.Equal(t, 2.0, c.Min())
	assert.Equal(t, 9.0, c.Max())
	assert.InDelta(t, 4.5, c.Median(), 1e-12)
}

func TestChainMomentsDegenerate(t *testing.T) {
	empty := New(nil)
	assert.True(t, math.IsNaN(empty.Mean()))
	assert.True(t, math.IsNaN(empty.Min()))
	assert.True(t, math.IsNaN(empty.Median()))

	single := New([]float64{1})
	assert.True(t, math.IsNaN(single.Variance()))
}

func TestChainQuantile(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	c := New(values)

	assert.InDelta(t, 50.0, c.Quantile(0.5), 1e-12)
	assert.Less(t, c.Quantile(0.25), c.Quantile(0.75))
	assert.True(t, math.IsNaN(c.Quantile(0)))
	assert.True(t, math.IsNaN(c.Quantile(1)))
}

func TestChainWindow(t *testing.T) {
	c := Named("mu", []float64{1, 2, 3, 4, 5})

	w := c.Window(1, 4)
	assert.Equal(t, []float64{2, 3, 4}, w.Values)
	assert.Equal(t, "mu", w.Name)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, c.Window(-3, 99).Values)
	assert.Equal(t, 0, c.Window(4, 2).Len())
}

func TestChainBurn(t *testing.T) {
	c := New([]float64{1, 2, 3, 4, 5})

	assert.Equal(t, []float64{4, 5}, c.Burn(3).Values)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, c.Burn(0).Values)
	assert.Equal(t, 0, c.Burn(10).Len())
}

func TestChainThin(t *testing.T) {
	c := New([]float64{1, 2, 3, 4, 5, 6, 7})

	assert.Equal(t, []float64{1, 3, 5, 7}, c.Thin(2).Values)
	assert.Equal(t, []float64{1, 4, 7}, c.Thin(3).Values)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, c.Thin(1).Values)
}

func TestChainCopyIsIndependent(t *testing.T) {
	c := Named("mu", []float64{1, 2, 3})
	cp := c.Copy()
	require.Equal(t, c.Values, cp.Values)

	cp.Values[0] = 99
	assert.Equal(t, 1.0, c.Values[0])
}
