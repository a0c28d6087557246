// Package weakham: sentinel errors shared across the engine.
package weakham

import (
	"errors"
	"fmt"
)

// Sentinel errors for contraction executions. All are fatal: the engine
// never retries, and nothing is emitted once one of them surfaces.
var (
	// ErrNilEnvironment indicates NewEngine received a nil environment.
	ErrNilEnvironment = errors.New("weakham: environment must not be nil")
	// ErrNilWriter indicates NewEngine received a nil result writer.
	ErrNilWriter = errors.New("weakham: result writer must not be nil")
	// ErrBadWorkers indicates a non-positive worker count option.
	ErrBadWorkers = errors.New("weakham: worker count must be >= 1")
	// ErrUnresolvedInput indicates a named propagator input is unknown or
	// bound to a different representation than requested.
	ErrUnresolvedInput = errors.New("weakham: cannot resolve input to requested kind")
	// ErrDimensionMismatch indicates input fields or the lattice disagree
	// in shape (extents, or more directions than the algebra provides).
	ErrDimensionMismatch = errors.New("weakham: lattice shapes disagree")
	// ErrAllocation indicates the scratch pool limit is exhausted.
	ErrAllocation = errors.New("weakham: scratch field allocation exhausted")
	// ErrProjection indicates a degenerate configuration with zero
	// spacetime directions; summing nothing would silently yield an
	// all-zero correlator, so the engine fails instead.
	ErrProjection = errors.New("weakham: no spacetime directions to sum")
	// ErrBadSinkTime indicates tSnk outside the temporal extent.
	ErrBadSinkTime = errors.New("weakham: sink time outside temporal extent")
)

// execErrorf wraps an underlying error with engine method context,
// preserving the sentinel for errors.Is.
func execErrorf(op string, err error) error {
	return fmt.Errorf("Engine.%s: %w", op, err)
}
