package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/triplex-216/warehouse/costgraph"
	"github.com/triplex-216/warehouse/directions"
	"github.com/triplex-216/warehouse/item"
	"github.com/triplex-216/warehouse/solve"
)

// workResult carries one solver's outcome across the one-shot result
// channel from worker goroutine to supervisor loop.
type workResult struct {
	tour solve.Result
	err  error
}

// Run solves one request under opts' wall-clock and memory budget.
// The primary solver executes in its own goroutine; this loop polls for a
// result, a timeout, or a memory-ceiling breach, favoring a result that
// arrives before either trigger fires — ties favour success. On breach,
// the worker's context is cancelled and the request is re-solved
// synchronously with Nearest-Neighbour, which always completes.
func Run(ctx context.Context, arena *item.Arena, cm *costgraph.CostMatrixResult, numNodes int, opts Options) (Result, error) {
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	resultCh := make(chan workResult, 1)
	go func() {
		tour, err := solve.Solve(solve.Options{Algorithm: opts.Algorithm, Seed: opts.Seed, Context: workerCtx}, cm, numNodes)
		resultCh <- workResult{tour: tour, err: err}
	}()

	var deadline <-chan time.Time
	if opts.Timeout >= 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(opts.pollInterval())
	defer ticker.Stop()

	for {
		// Check for a finished result first, non-blocking: a result that
		// is already sitting on the channel must win even if the timeout
		// or a memory tick is also ready this instant.
		select {
		case wr := <-resultCh:
			return finish(arena, wr, false)
		default:
		}

		select {
		case wr := <-resultCh:
			return finish(arena, wr, false)

		case <-deadline:
			cancelWorker()

			return fallback(arena, cm, numNodes, opts)

		case <-ticker.C:
			pct, err := memoryPercentFunc()
			if err == nil && pct >= opts.memPercent() {
				cancelWorker()

				return fallback(arena, cm, numNodes, opts)
			}

		case <-ctx.Done():
			cancelWorker()

			return Result{}, ctx.Err()
		}
	}
}

// fallback synchronously re-solves the request with Nearest-Neighbour,
// which never times out and never checks the memory ceiling, so it is
// guaranteed to complete for any feasible input.
func fallback(arena *item.Arena, cm *costgraph.CostMatrixResult, numNodes int, opts Options) (Result, error) {
	tour, err := solve.Solve(solve.Options{Algorithm: solve.NearestNeighbour, Seed: opts.Seed, Context: context.Background()}, cm, numNodes)

	return finish(arena, workResult{tour: tour, err: err}, true)
}

// finish formats a solver's tour into a Route, or propagates a genuine
// solver error (infeasible input, say) unchanged.
func finish(arena *item.Arena, wr workResult, timeoutTriggered bool) (Result, error) {
	if wr.err != nil {
		return Result{}, fmt.Errorf("supervisor: solver failed: %w", wr.err)
	}

	route, err := directions.Format(arena, wr.tour.Path)
	if err != nil {
		return Result{}, err
	}

	return Result{Route: route, TotalCost: wr.tour.Cost, TimeoutTriggered: timeoutTriggered}, nil
}
