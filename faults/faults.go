// Package faults defines the error-kind sentinels shared across the
// warehouse routing engine: Infeasible, Config, Budget, and Internal.
//
// Packages that detect one of these conditions wrap the matching sentinel
// with fmt.Errorf("...: %w", faults.ErrX) at the point of detection, so
// callers can still match with errors.Is(err, faults.ErrX) regardless of
// which package raised it.
package faults

import "errors"

var (
	// ErrInfeasible indicates no path exists between two required access
	// points (e.g. a requested item has no free adjacent cell), or no
	// Hamiltonian tour can close the requested route.
	ErrInfeasible = errors.New("faults: infeasible request")

	// ErrConfig indicates a malformed request: an unknown algorithm tag,
	// or a start/end coordinate that is not a free cell.
	ErrConfig = errors.New("faults: invalid configuration")

	// ErrBudget indicates a wall-clock timeout or memory ceiling was
	// reached before a solver produced a result.
	ErrBudget = errors.New("faults: resource budget exceeded")

	// ErrInternal indicates a data-model invariant was violated. It
	// should never occur for a correctly built request; its presence
	// signals a bug, not bad input.
	ErrInternal = errors.New("faults: internal invariant violation")
)
