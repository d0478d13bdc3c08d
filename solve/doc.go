// Package solve implements the three interchangeable tour solvers that run
// over a populated cost graph: an exact Branch-and-Bound with a
// reduced-cost matrix lower bound, a multi-start Nearest-Neighbour
// heuristic, and a Genetic Algorithm with ordered crossover and swap
// mutation.
//
// What:
//
//   - Solve dispatches to one of BnB, NN, or GA per Options.Algorithm and
//     returns the ordered access-point tour and its total cost.
//   - Branch-and-Bound and the Genetic Algorithm honour Options.Context for
//     cooperative cancellation, checked at coarse, well-defined points
//     (never mid-reduction). Nearest-Neighbour does not check it and always
//     runs to completion.
//
// Why:
//
//   - All three share the same cost-graph's start/end boundary overlay,
//     so a single Options/Result shape and a single dispatch point keep
//     the Supervisor's fallback substitution mechanical.
//
// Errors:
//
//   - Wraps faults.ErrConfig when Options.Algorithm is not one of the
//     known tags.
//   - Wraps faults.ErrInfeasible when no Hamiltonian tour can close.
//   - Wraps faults.ErrBudget when ctx is cancelled before a tour completes.
package solve
