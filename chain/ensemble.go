package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports chain or ensemble construction with inputs that
// violate a precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// Ensemble is a collection of equal-length chains for the same parameter,
// typically from independent sampler runs.
type Ensemble struct {
	chains []*Chain
}

// NewEnsemble creates an ensemble from one or more chains. All chains must be
// non-empty and share the same length.
func NewEnsemble(chains ...*Chain) (*Ensemble, error) {
	if len(chains) == 0 {
		return nil, fmt.Errorf("ensemble needs at least one chain: %w", ErrInvalidArgument)
	}
	n := chains[0].Len()
	if n == 0 {
		return nil, fmt.Errorf("ensemble chains must be non-empty: %w", ErrInvalidArgument)
	}
	for i, c := range chains {
		if c == nil {
			return nil, fmt.Errorf("ensemble chain %d is nil: %w", i, ErrInvalidArgument)
		}
		if c.Len() != n {
			return nil, fmt.Errorf("ensemble chain %d has %d draws, want %d: %w",
				i, c.Len(), n, ErrInvalidArgument)
		}
	}
	return &Ensemble{chains: chains}, nil
}

// Size returns the number of chains in the ensemble.
func (e *Ensemble) Size() int {
	return len(e.chains)
}

// ChainLen returns the common length of the ensemble's chains.
func (e *Ensemble) ChainLen() int {
	return e.chains[0].Len()
}

// Chains returns the ensemble's chains in their original order.
func (e *Ensemble) Chains() []*Chain {
	return e.chains
}

// Chain returns the i-th chain of the ensemble.
func (e *Ensemble) Chain(i int) *Chain {
	return e.chains[i]
}

// Name returns the name of the ensemble's parameter, taken from the first
// named chain.
func (e *Ensemble) Name() string {
	for _, c := range e.chains {
		if c.Name != "" {
			return c.Name
		}
	}
	return ""
}

// EnsembleFromVectorDraws builds one ensemble per parameter component from
// vector-valued draws, where draws[m][t] is the t-th draw of chain m. Scalar
// diagnostics then apply to each component independently.
func EnsembleFromVectorDraws(draws [][][]float64) ([]*Ensemble, error) {
	if len(draws) == 0 || len(draws[0]) == 0 {
		return nil, fmt.Errorf("vector draws must contain at least one chain with one draw: %w", ErrInvalidArgument)
	}
	n := len(draws[0])
	dim := len(draws[0][0])
	if dim == 0 {
		return nil, fmt.Errorf("vector draws must have at least one component: %w", ErrInvalidArgument)
	}

	components := make([][]*Chain, dim)
	for k := range components {
		components[k] = make([]*Chain, len(draws))
	}
	for m, run := range draws {
		if len(run) != n {
			return nil, fmt.Errorf("chain %d has %d draws, want %d: %w", m, len(run), n, ErrInvalidArgument)
		}
		values := make([][]float64, dim)
		for k := range values {
			values[k] = make([]float64, n)
		}
		for t, draw := range run {
			if len(draw) != dim {
				return nil, fmt.Errorf("chain %d draw %d has %d components, want %d: %w",
					m, t, len(draw), dim, ErrInvalidArgument)
			}
			for k, v := range draw {
				values[k][t] = v
			}
		}
		for k := range values {
			components[k][m] = Named(fmt.Sprintf("component_%d", k), values[k])
		}
	}

	ensembles := make([]*Ensemble, dim)
	for k := range components {
		ens, err := NewEnsemble(components[k]...)
		if err != nil {
			return nil, err
		}
		ensembles[k] = ens
	}
	return ensembles, nil
}
