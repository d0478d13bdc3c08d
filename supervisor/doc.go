// Package supervisor runs a tour solver under a wall-clock and memory
// budget, cancelling it on breach and substituting a guaranteed
// Nearest-Neighbour fallback.
//
// What:
//
//   - Run launches the chosen solver in its own goroutine, polls a
//     timeout and a global memory ceiling at a fixed interval, and
//     cancels the goroutine's context the moment either is breached.
//   - On cancellation, Run synchronously re-solves the same request with
//     Nearest-Neighbour in-process and no timeout — guaranteed to
//     complete for any feasible input — and sets TimeoutTriggered.
//
// Why:
//
//   - Go has no portable "kill this goroutine" primitive, so cancellation
//     is cooperative: the worker's context is cancelled, and the solver
//     package checks ctx.Err() at coarse points (each Branch-and-Bound
//     tree-node expansion, each Genetic Algorithm generation) rather than
//     relying on OS-level process termination.
//
// Complexity:
//
//   - Dominated by the chosen solver; the poll loop itself is O(1) per
//     tick.
//
// Errors:
//
//   - Propagates faults.ErrInfeasible and faults.ErrConfig from the
//     solver/formatter unchanged — only a timeout or memory breach is
//     ever silently replaced by the fallback.
package supervisor
