// Package weakham: execution-scoped scratch field pool.
package weakham

import (
	"github.com/nelsonlachini/hadron/lattice"
)

// scratchPool hands out zeroed scratch fields for the duration of one
// execution, reusing released fields of the same shape and element type.
// A pool is private to a single Execute call and dropped with it, so no
// buffer ever carries values between executions or between concurrently
// running engines.
//
// The optional limit caps the total number of fields (of both element
// types) ever allocated by this pool; acquiring past it fails with
// ErrAllocation. Zero means unlimited.
type scratchPool struct {
	geom  *lattice.Geometry
	limit int

	allocated int // total fields allocated so far

	freeProps []*lattice.PropagatorField
	freeCplx  []*lattice.ComplexField
}

// newScratchPool creates an empty pool over geom.
func newScratchPool(geom *lattice.Geometry, limit int) *scratchPool {
	return &scratchPool{geom: geom, limit: limit}
}

// propagator returns a zeroed full-volume SpinColorMatrix field, reusing
// a released one when available.
// Complexity: O(V·Dim²) for the zeroing pass.
func (p *scratchPool) propagator() (*lattice.PropagatorField, error) {
	if n := len(p.freeProps); n > 0 {
		f := p.freeProps[n-1]
		p.freeProps = p.freeProps[:n-1]
		f.Zero()

		return f, nil
	}
	if p.limit > 0 && p.allocated >= p.limit {
		return nil, ErrAllocation
	}
	f, err := lattice.NewPropagatorField(p.geom)
	if err != nil {
		return nil, err
	}
	p.allocated++

	return f, nil
}

// complexField returns a zeroed full-volume complex field, reusing a
// released one when available.
// Complexity: O(V) for the zeroing pass.
func (p *scratchPool) complexField() (*lattice.ComplexField, error) {
	if n := len(p.freeCplx); n > 0 {
		f := p.freeCplx[n-1]
		p.freeCplx = p.freeCplx[:n-1]
		f.Zero()

		return f, nil
	}
	if p.limit > 0 && p.allocated >= p.limit {
		return nil, ErrAllocation
	}
	f, err := lattice.NewComplexField(p.geom)
	if err != nil {
		return nil, err
	}
	p.allocated++

	return f, nil
}

// releasePropagator returns a field to the pool for reuse within the
// same execution. The field's contents are treated as garbage.
func (p *scratchPool) releasePropagator(f *lattice.PropagatorField) {
	if f != nil {
		p.freeProps = append(p.freeProps, f)
	}
}

// releaseComplex returns a complex field to the pool for reuse.
func (p *scratchPool) releaseComplex(f *lattice.ComplexField) {
	if f != nil {
		p.freeCplx = append(p.freeCplx, f)
	}
}
