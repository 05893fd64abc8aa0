// Package chain provides data structures for MCMC chains and chain ensembles.
//
// A Chain holds the ordered draws of one scalar parameter from a single
// sampler run. An Ensemble groups equal-length chains for the same parameter
// from independent runs, as required by between-chain diagnostics.
//
// # Building chains
//
// Wrap sampler output directly:
//
//	c := chain.Named("mu", draws)
//	c = c.Burn(500).Thin(2)
//
// Group independent runs for Gelman-Rubin:
//
//	ens, err := chain.NewEnsemble(run1, run2, run3)
//
// Vector-valued parameters are split into one ensemble per component:
//
//	ensembles, err := chain.EnsembleFromVectorDraws(draws)
//
// # Trace files
//
// Chains can be loaded from and saved to CSV trace files with one column per
// parameter:
//
//	chains, err := chain.LoadCSV("trace.csv", nil)
//	err = chain.SaveCSV("trace.csv", chains...)
package chain
