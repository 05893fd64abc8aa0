package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gomcmc/chain"
	"github.com/sartorproj/gomcmc/diagnostics"
)

func newRhatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rhat <trace.csv> <trace.csv> [trace.csv...]",
		Short: "Gelman-Rubin potential scale reduction across sampler runs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ensembles, err := loadEnsembles(args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tRHAT\tWITHIN-VAR\tBETWEEN-VAR")
			var failed bool
			for _, ens := range ensembles {
				gr, err := diagnostics.GelmanRubin(ens)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\n", ens.Name(), err)
					failed = true
					continue
				}
				fmt.Fprintf(w, "%s\t%.4f\t%.4g\t%.4g\n",
					ens.Name(), gr.PSRF, gr.WithinVariance, gr.BetweenVariance)
			}
			w.Flush()
			if failed {
				return fmt.Errorf("one or more parameters could not be diagnosed")
			}
			return nil
		},
	}
}

func newGewekeCmd() *cobra.Command {
	var (
		first     float64
		last      float64
		intervals int
	)
	cmd := &cobra.Command{
		Use:   "geweke <trace.csv>",
		Short: "Geweke stationarity z-scores for every parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chains, err := loadTrace(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tSEGMENT START\tZ\tP-VALUE")
			var failed bool
			for _, c := range chains {
				gw, err := diagnostics.Geweke(c, first, last, intervals)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\n", c.Name, err)
					failed = true
					continue
				}
				for _, s := range gw.Scores {
					fmt.Fprintf(w, "%s\t%d\t%.3f\t%.4f\n", c.Name, s.Start, s.Z, s.PValue)
				}
			}
			w.Flush()
			if failed {
				return fmt.Errorf("one or more parameters could not be diagnosed")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&first, "first", 0.1, "early window fraction")
	cmd.Flags().Float64Var(&last, "last", 0.5, "late window fraction")
	cmd.Flags().IntVar(&intervals, "intervals", 20, "number of late-window segments")
	return cmd
}

func newESSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ess <trace.csv>",
		Short: "Effective sample size and acceptance rate for every parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chains, err := loadTrace(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tN\tESS\tACT\tACCEPT-RATE")
			var failed bool
			for _, c := range chains {
				ess, err := diagnostics.EffectiveSampleSize(c)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", c.Name, err)
					failed = true
					continue
				}
				rate, err := diagnostics.AcceptanceRate(c)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", c.Name, err)
					failed = true
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%.2f\t%.3f\n", c.Name, ess.ChainLen, ess.ESS, ess.ACT, rate)
			}
			w.Flush()
			if failed {
				return fmt.Errorf("one or more parameters could not be diagnosed")
			}
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <trace.csv>",
		Short: "Posterior summaries for every parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chains, err := loadTrace(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tMEAN\tSD\tMC-ERROR\t2.5%\tMEDIAN\t97.5%")
			var failed bool
			for _, c := range chains {
				s, err := diagnostics.Summary(c)
				if err != nil {
					fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\t\n", c.Name, err)
					failed = true
					continue
				}
				fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
					s.Name, s.Mean, s.StdDev, s.MCError, s.Lower95, s.Median, s.Upper95)
			}
			w.Flush()
			if failed {
				return fmt.Errorf("one or more parameters could not be diagnosed")
			}
			return nil
		},
	}
}

// loadEnsembles loads one trace file per sampler run and groups the runs into
// one ensemble per parameter, matching columns by position.
func loadEnsembles(paths []string) ([]*chain.Ensemble, error) {
	var runs [][]*chain.Chain
	for _, path := range paths {
		chains, err := loadTrace(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(runs) > 0 && len(chains) != len(runs[0]) {
			return nil, fmt.Errorf("%s has %d parameters, want %d: %w",
				path, len(chains), len(runs[0]), chain.ErrInvalidArgument)
		}
		runs = append(runs, chains)
	}

	ensembles := make([]*chain.Ensemble, len(runs[0]))
	for p := range runs[0] {
		members := make([]*chain.Chain, len(runs))
		for r := range runs {
			members[r] = runs[r][p]
		}
		ens, err := chain.NewEnsemble(members...)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", members[0].Name, err)
		}
		ensembles[p] = ens
	}
	return ensembles, nil
}
