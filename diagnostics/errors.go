package diagnostics

import "errors"

var (
	// ErrInvalidArgument reports a diagnostic invoked with inputs that
	// violate a precondition (too few chains or draws, fractions outside
	// (0,1), a segment count that does not divide the late region).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotComputable reports inputs that pass the preconditions but make
	// the statistic undefined, such as zero within-chain variance. It is
	// returned instead of a silent NaN.
	ErrNotComputable = errors.New("not computable")
)
