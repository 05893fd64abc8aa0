package diagnostics

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gomcmc/chain"
)

func simulatedEnsemble(t *testing.T, rng *rand.Rand, name string, chains, n int) *chain.Ensemble {
	t.Helper()
	members := make([]*chain.Chain, chains)
	for j := range members {
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.NormFloat64()
		}
		members[j] = chain.Named(name, values)
	}
	ens, err := chain.NewEnsemble(members...)
	require.NoError(t, err)
	return ens
}

func TestReportEnsembles(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	ensembles := []*chain.Ensemble{
		simulatedEnsemble(t, rng, "mu", 2, 1000),
		simulatedEnsemble(t, rng, "sigma", 2, 1000),
	}

	reports, err := ReportEnsembles(context.Background(), ensembles, DefaultReportOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Input order is preserved regardless of goroutine completion order.
	assert.Equal(t, "mu", reports[0].Name)
	assert.Equal(t, "sigma", reports[1].Name)

	for _, r := range reports {
		require.NoError(t, r.Err)
		require.NotNil(t, r.GelmanRubin)
		require.NotNil(t, r.Geweke)
		require.NotNil(t, r.ESS)
		assert.Len(t, r.Geweke.Scores, 20)
		assert.InDelta(t, 1.0, r.GelmanRubin.PSRF, 0.2)
	}
}

func TestReportEnsemblesIsolatesFailures(t *testing.T) {
	rng := rand.New(rand.NewSource(57))
	constant, err := chain.NewEnsemble(
		chain.Named("stuck", make([]float64, 1000)),
		chain.Named("stuck", make([]float64, 1000)),
	)
	require.NoError(t, err)

	ensembles := []*chain.Ensemble{
		constant,
		simulatedEnsemble(t, rng, "mu", 2, 1000),
	}

	reports, err := ReportEnsembles(context.Background(), ensembles, DefaultReportOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Error(t, reports[0].Err)
	assert.Nil(t, reports[0].GelmanRubin)
	assert.NoError(t, reports[1].Err)
	assert.NotNil(t, reports[1].GelmanRubin)
}

func TestReportEnsemblesSingleChain(t *testing.T) {
	rng := rand.New(rand.NewSource(59))
	ens := simulatedEnsemble(t, rng, "mu", 1, 1000)

	reports, err := ReportEnsembles(context.Background(), []*chain.Ensemble{ens}, DefaultReportOptions())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	// Gelman-Rubin needs parallel runs; single-chain diagnostics still run.
	assert.Nil(t, reports[0].GelmanRubin)
	assert.NoError(t, reports[0].Err)
	assert.NotNil(t, reports[0].Geweke)
	assert.NotNil(t, reports[0].ESS)
}

func TestReportEnsemblesCancelledContext(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	ens := simulatedEnsemble(t, rng, "mu", 2, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReportEnsembles(ctx, []*chain.Ensemble{ens}, DefaultReportOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportEnsemblesRejectsEmptyInput(t *testing.T) {
	_, err := ReportEnsembles(context.Background(), nil, DefaultReportOptions())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
