package diagnostics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"
)

func ar1(rng *rand.Rand, n int, phi float64) []float64 {
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + rng.NormFloat64()
	}
	return values
}

func TestACF(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := ar1(rng, 2000, 0.8)

	acf, err := ACF(values, 10)
	require.NoError(t, err)
	require.Len(t, acf, 11)

	assert.InDelta(t, 1.0, acf[0], 1e-12)
	assert.Greater(t, acf[1], 0.5, "AR(1) with phi=0.8 is strongly correlated at lag 1")
	assert.Greater(t, acf[1], acf[5], "autocorrelation of AR(1) decays with lag")
}

func TestACFClampsLag(t *testing.T) {
	acf, err := ACF([]float64{1, 2, 3}, 10)
	require.NoError(t, err)
	assert.Len(t, acf, 3)
}

func TestACFRejectsBadInput(t *testing.T) {
	_, err := ACF([]float64{1}, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ACF([]float64{1, 2, 3}, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ACF([]float64{2, 2, 2}, 2)
	assert.ErrorIs(t, err, ErrNotComputable)
}

func TestSpectralVarianceIndependentDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	values := make([]float64, 2000)
	for i := range values {
		values[i] = rng.NormFloat64()
	}

	sv, err := SpectralVariance(values)
	require.NoError(t, err)

	// For independent draws the long-run variance is the plain variance.
	assert.InDelta(t, 1.0, sv, 0.3)
}

func TestSpectralVarianceAutocorrelatedDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	values := ar1(rng, 5000, 0.9)

	sv, err := SpectralVariance(values)
	require.NoError(t, err)

	// Positive autocorrelation inflates the variance of the mean well past
	// the marginal variance; plain sample variance would miss this.
	marginal := stat.Variance(values, nil)
	assert.Greater(t, sv, 2*marginal)
}

func TestSpectralVarianceConstant(t *testing.T) {
	sv, err := SpectralVariance([]float64{3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sv)
}

func TestSpectralVarianceRejectsShortInput(t *testing.T) {
	_, err := SpectralVariance([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSpectralVarianceNonNegative(t *testing.T) {
	// Alternating draws are maximally negatively correlated; the Bartlett
	// window must still keep the estimate non-negative.
	values := make([]float64, 200)
	for i := range values {
		values[i] = float64(1 - 2*(i%2))
	}

	sv, err := SpectralVariance(values)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sv, 0.0)
}
