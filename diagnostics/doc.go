// Package diagnostics provides convergence diagnostics for MCMC chains.
//
// All diagnostics are stateless pure functions over finished chains: they take
// their inputs explicitly, return a result struct or an error, and may be
// invoked concurrently across parameters without coordination.
//
// # Between-chain convergence
//
// The Gelman-Rubin potential scale reduction factor compares within-chain and
// between-chain variance across independent sampler runs:
//
//	gr, err := diagnostics.GelmanRubin(ens)
//	// gr.PSRF near 1: chains have mixed; well above 1: keep sampling
//
// # Within-chain stationarity
//
// The Geweke diagnostic z-scores the difference between an early window mean
// and the means of late-chain segments:
//
//	gw, err := diagnostics.Geweke(c, 0.1, 0.5, 20)
//	// many |z| > 2: the chain is still drifting
//
// # Autocorrelation
//
//	acf, err := diagnostics.ACF(c.Values, 50)
//	ess, err := diagnostics.EffectiveSampleSize(c)
//	rate, err := diagnostics.AcceptanceRate(c)
//
// # Errors
//
// Precondition violations are reported as ErrInvalidArgument, statistics that
// are undefined on the given data as ErrNotComputable. Both are wrapped with
// context and detectable with errors.Is; no diagnostic ever returns a silent
// NaN or a partial result.
package diagnostics
