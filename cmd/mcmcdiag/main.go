// Command mcmcdiag runs MCMC convergence diagnostics over trace CSV files.
//
// A trace file holds one sampler run: one column per parameter, one row per
// draw, with a header row naming the parameters.
//
//	mcmcdiag rhat run1.csv run2.csv run3.csv
//	mcmcdiag geweke run1.csv --first 0.1 --last 0.5 --intervals 20
//	mcmcdiag ess run1.csv
//	mcmcdiag summary run1.csv --burn 500 --thin 2
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gomcmc/chain"
)

var (
	flagBurn int
	flagThin int
)

var rootCmd = &cobra.Command{
	Use:           "mcmcdiag",
	Short:         "Convergence diagnostics for MCMC trace files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().IntVar(&flagBurn, "burn", 0, "draws to discard from the start of every chain")
	rootCmd.PersistentFlags().IntVar(&flagThin, "thin", 1, "keep every k-th draw")

	rootCmd.AddCommand(newRhatCmd(), newGewekeCmd(), newESSCmd(), newSummaryCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("diagnosis failed", "error", err)
		os.Exit(1)
	}
}

// loadTrace loads one trace file and applies the shared burn-in and thinning
// flags to every chain.
func loadTrace(path string) ([]*chain.Chain, error) {
	chains, err := chain.LoadCSV(path, nil)
	if err != nil {
		return nil, err
	}
	for i, c := range chains {
		chains[i] = c.Burn(flagBurn).Thin(flagThin)
	}
	return chains, nil
}
