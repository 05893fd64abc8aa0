package diagnostics

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gomcmc/chain"
)

// ReportOptions configures the per-parameter diagnostics of a convergence
// report.
type ReportOptions struct {
	GewekeFirst     float64
	GewekeLast      float64
	GewekeIntervals int
}

// DefaultReportOptions returns the conventional Geweke windowing: first 10%
// of the chain against 20 segments of the last 50%.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		GewekeFirst:     0.1,
		GewekeLast:      0.5,
		GewekeIntervals: 20,
	}
}

// ParameterReport holds the diagnostics of one parameter. A diagnostic that
// failed for this parameter leaves its result nil and records the failure in
// Err; other parameters are unaffected.
type ParameterReport struct {
	Name        string
	GelmanRubin *GelmanRubinResult
	Geweke      *GewekeResult
	ESS         *ESSResult
	Err         error
}

// ReportEnsembles diagnoses many parameters concurrently. Each ensemble gets
// a Gelman-Rubin result across its chains, a Geweke result and an effective
// sample size for its first chain. The diagnostics are independent pure
// computations, so they fan out across parameters; results are returned in
// input order regardless of completion order. The returned error is non-nil
// only when ctx is cancelled.
func ReportEnsembles(ctx context.Context, ensembles []*chain.Ensemble, opts ReportOptions) ([]*ParameterReport, error) {
	if len(ensembles) == 0 {
		return nil, fmt.Errorf("no ensembles to diagnose: %w", ErrInvalidArgument)
	}

	reports := make([]*ParameterReport, len(ensembles))
	g, ctx := errgroup.WithContext(ctx)
	for i, ens := range ensembles {
		i, ens := i, ens
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = reportOne(i, ens, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func reportOne(i int, ens *chain.Ensemble, opts ReportOptions) *ParameterReport {
	r := &ParameterReport{Name: ens.Name()}
	if r.Name == "" {
		r.Name = fmt.Sprintf("param_%d", i)
	}

	var errs []error
	if ens.Size() >= 2 {
		gr, err := GelmanRubin(ens)
		if err != nil {
			errs = append(errs, fmt.Errorf("gelman-rubin: %w", err))
		}
		r.GelmanRubin = gr
	}

	first := ens.Chain(0)
	gw, err := Geweke(first, opts.GewekeFirst, opts.GewekeLast, opts.GewekeIntervals)
	if err != nil {
		errs = append(errs, fmt.Errorf("geweke: %w", err))
	}
	r.Geweke = gw

	ess, err := EffectiveSampleSize(first)
	if err != nil {
		errs = append(errs, fmt.Errorf("effective sample size: %w", err))
	}
	r.ESS = ess

	r.Err = errors.Join(errs...)
	return r
}
