// Package gomcmc provides convergence diagnostics for Markov Chain Monte Carlo output.
//
// GoMCMC is a Go package for diagnosing whether the chains produced by an MCMC
// sampler have converged to their stationary distribution. It operates on
// already-produced draws: any sampler that can hand over its output as plain
// float64 slices can be diagnosed, and no sampler, distribution, or plotting
// code is included.
//
// # Features
//
//   - Gelman-Rubin potential scale reduction factor across parallel chains
//   - Geweke stationarity z-scores between early and late chain windows
//   - Effective sample size and integrated autocorrelation time
//   - Metropolis acceptance-rate estimation
//   - Posterior summaries with autocorrelation-aware Monte Carlo error
//   - CSV trace file loading and saving
//
// # Quick Start
//
// Diagnose a pair of sampler runs:
//
//	ens, _ := chain.NewEnsemble(chain.New(run1), chain.New(run2))
//	gr, _ := diagnostics.GelmanRubin(ens)
//	fmt.Printf("Rhat = %.4f\n", gr.PSRF)
//
// Test a single chain for stationarity:
//
//	gw, _ := diagnostics.Geweke(chain.New(draws), 0.1, 0.5, 20)
//	for _, s := range gw.Scores {
//	    fmt.Printf("draw %d: z = %.2f\n", s.Start, s.Z)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - chain: chain and ensemble data structures, trace CSV I/O
//   - diagnostics: convergence diagnostics and posterior summaries
//   - cmd/mcmcdiag: command-line diagnostics over trace CSV files
//
// # References
//
//   - Gelman, A., & Rubin, D. B. (1992). Inference from Iterative Simulation
//     Using Multiple Sequences
//   - Geweke, J. (1992). Evaluating the Accuracy of Sampling-Based Approaches
//     to the Calculation of Posterior Moments
package gomcmc
