package solve

import "context"

// Algorithm selects which tour solver Solve dispatches to.
type Algorithm int

const (
	// Default resolves to the exact Branch-and-Bound solver; the
	// Supervisor already guarantees a Nearest-Neighbour fallback on
	// budget breach, so Default need not itself be a heuristic.
	Default Algorithm = iota
	// BranchAndBound runs the exact matrix-reduction solver.
	BranchAndBound
	// NearestNeighbour runs the multi-start greedy solver.
	NearestNeighbour
	// Genetic runs the ordered-crossover genetic solver.
	Genetic
)

// Options configures a Solve call. The zero value behaves like
// DefaultOptions: Default algorithm, seed 0, and a nil Context treated as
// context.Background().
type Options struct {
	// Algorithm selects the solver. Default: Default (Branch-and-Bound).
	Algorithm Algorithm

	// Seed controls every randomized component (BnB's seed-node tie-break
	// is deterministic and ignores Seed; NN is deterministic and ignores
	// Seed; GA's population initialization, crossover cut point, and
	// mutation all consume Seed). Default: 0 (fixed seed).
	Seed int64

	// Context allows cooperative cancellation of Branch-and-Bound's tree
	// search and the Genetic Algorithm's generation loop, checked once per
	// tree-node expansion / generation. NN does not check it and always
	// runs to completion. A nil Context is treated as context.Background().
	Context context.Context
}

// DefaultOptions returns an Options selecting the exact solver with a
// fixed deterministic seed and no cancellation.
func DefaultOptions() Options {
	return Options{Algorithm: Default, Seed: 0, Context: context.Background()}
}

// Result is a solver's output: the tour as an ordered list of
// access-point indices (one per node, start first, end last) and its
// total cost.
type Result struct {
	Path []int
	Cost int
}

func (o Options) context() context.Context {
	if o.Context == nil {
		return context.Background()
	}

	return o.Context
}
