// Package weakham: in-memory Environment implementation.
package weakham

import (
	"fmt"

	"github.com/nelsonlachini/hadron/lattice"
)

// MemEnvironment is an in-memory Environment: named propagators are
// registered up front and resolved by kind. A name registered as one
// representation does not resolve as the other — kind mismatches surface
// as ErrUnresolvedInput, exactly like unknown names.
//
// MemEnvironment is not safe for concurrent registration; register all
// inputs before handing it to an engine. Concurrent resolution is safe.
type MemEnvironment struct {
	geom   *lattice.Geometry
	sliced map[string]*lattice.SlicedPropagator
	fields map[string]*lattice.PropagatorField
}

// NewMemEnvironment creates an empty environment over geom.
// Stage 1 (Validate): geometry must be non-nil.
// Complexity: O(1).
func NewMemEnvironment(geom *lattice.Geometry) (*MemEnvironment, error) {
	if geom == nil {
		return nil, lattice.ErrBadGeometry
	}

	return &MemEnvironment{
		geom:   geom,
		sliced: make(map[string]*lattice.SlicedPropagator),
		fields: make(map[string]*lattice.PropagatorField),
	}, nil
}

// AddSliced registers a sink-smeared propagator under name. The
// propagator's geometry must match the environment's.
// Complexity: O(D).
func (e *MemEnvironment) AddSliced(name string, p *lattice.SlicedPropagator) error {
	if p == nil || !e.geom.Equal(p.Geometry()) {
		return lattice.ErrGeometryMismatch
	}
	e.sliced[name] = p

	return nil
}

// AddField registers a full-volume propagator field under name.
// Complexity: O(D).
func (e *MemEnvironment) AddField(name string, f *lattice.PropagatorField) error {
	if f == nil || !e.geom.Equal(f.Geometry()) {
		return lattice.ErrGeometryMismatch
	}
	e.fields[name] = f

	return nil
}

// SlicedPropagator resolves name to a sink-smeared propagator, failing
// with ErrUnresolvedInput when the name is unknown or bound to a
// full-volume field instead.
// Complexity: O(1).
func (e *MemEnvironment) SlicedPropagator(name string) (*lattice.SlicedPropagator, error) {
	p, ok := e.sliced[name]
	if !ok {
		return nil, fmt.Errorf("%q as sliced propagator: %w", name, ErrUnresolvedInput)
	}

	return p, nil
}

// PropagatorField resolves name to a full-volume propagator field,
// failing with ErrUnresolvedInput when the name is unknown or bound to a
// sliced propagator instead.
// Complexity: O(1).
func (e *MemEnvironment) PropagatorField(name string) (*lattice.PropagatorField, error) {
	f, ok := e.fields[name]
	if !ok {
		return nil, fmt.Errorf("%q as propagator field: %w", name, ErrUnresolvedInput)
	}

	return f, nil
}

// Geometry reports the lattice the environment's fields live on.
// Complexity: O(1).
func (e *MemEnvironment) Geometry() *lattice.Geometry {
	return e.geom
}
