// Package lattice: full-volume and time-sliced field containers.
//
// Fields are flat-slice containers over a Geometry, one allocation per
// field. At(site) hands out a pointer into the backing slice so kernels
// mutate elements in place without copying 12×12 matrices around.
package lattice

// PropagatorField maps every lattice site to a SpinColorMatrix. The
// backing slice is time-major (see Geometry), freshly zeroed on creation.
type PropagatorField struct {
	geom *Geometry
	data []SpinColorMatrix
}

// NewPropagatorField allocates a zeroed full-volume propagator field.
// Stage 1 (Validate): geometry must be non-nil.
// Stage 2 (Prepare): allocate Volume() matrices.
// Complexity: O(V·Dim²) memory.
func NewPropagatorField(geom *Geometry) (*PropagatorField, error) {
	if geom == nil {
		return nil, ErrBadGeometry
	}

	return &PropagatorField{
		geom: geom,
		data: make([]SpinColorMatrix, geom.Volume()),
	}, nil
}

// Geometry returns the field's geometry.
// Complexity: O(1).
func (f *PropagatorField) Geometry() *Geometry {
	return f.geom
}

// At returns a pointer to the matrix at the flat site index. The index is
// trusted: engine loops range over [0, Volume()) obtained from the same
// geometry. Use Site for checked access.
// Complexity: O(1).
func (f *PropagatorField) At(site int) *SpinColorMatrix {
	return &f.data[site]
}

// Site returns a pointer to the matrix at site with bounds checking.
// Complexity: O(1).
func (f *PropagatorField) Site(site int) (*SpinColorMatrix, error) {
	if site < 0 || site >= len(f.data) {
		return nil, ErrSiteOutOfRange
	}

	return &f.data[site], nil
}

// Fill overwrites every site with a copy of m.
// Complexity: O(V·Dim²).
func (f *PropagatorField) Fill(m *SpinColorMatrix) {
	for i := range f.data {
		f.data[i] = *m
	}
}

// Zero clears every site in place.
// Complexity: O(V·Dim²).
func (f *PropagatorField) Zero() {
	for i := range f.data {
		f.data[i].SetZero()
	}
}

// Scale multiplies every site by s in place.
// Complexity: O(V·Dim²).
func (f *PropagatorField) Scale(s complex128) {
	for i := range f.data {
		f.data[i].Scale(s)
	}
}

// ComplexField maps every lattice site to one complex scalar, with the
// same time-major layout as PropagatorField.
type ComplexField struct {
	geom *Geometry
	data []complex128
}

// NewComplexField allocates a zeroed full-volume complex field.
// Complexity: O(V) memory.
func NewComplexField(geom *Geometry) (*ComplexField, error) {
	if geom == nil {
		return nil, ErrBadGeometry
	}

	return &ComplexField{
		geom: geom,
		data: make([]complex128, geom.Volume()),
	}, nil
}

// Geometry returns the field's geometry.
// Complexity: O(1).
func (f *ComplexField) Geometry() *Geometry {
	return f.geom
}

// At returns the value at the flat site index (trusted, see
// PropagatorField.At).
// Complexity: O(1).
func (f *ComplexField) At(site int) complex128 {
	return f.data[site]
}

// Set assigns v at the flat site index (trusted).
// Complexity: O(1).
func (f *ComplexField) Set(site int, v complex128) {
	f.data[site] = v
}

// Add accumulates v at the flat site index (trusted).
// Complexity: O(1).
func (f *ComplexField) Add(site int, v complex128) {
	f.data[site] += v
}

// Zero clears every site in place.
// Complexity: O(V).
func (f *ComplexField) Zero() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// AddInto accumulates other into f elementwise.
// Stage 1 (Validate): geometries must match.
// Stage 2 (Execute): elementwise add in ascending site order.
// Complexity: O(V).
func (f *ComplexField) AddInto(other *ComplexField) error {
	if !f.geom.Equal(other.geom) {
		return ErrGeometryMismatch
	}
	for i := range f.data {
		f.data[i] += other.data[i]
	}

	return nil
}

// SlicedPropagator maps each time coordinate to one SpinColorMatrix that
// is constant over the spatial subvolume at that time. This is the shape
// of a sink-smeared propagator: the spatial sum has already been taken
// when the object is produced, so only the time dependence remains.
type SlicedPropagator struct {
	geom   *Geometry
	slices []SpinColorMatrix
}

// NewSlicedPropagator allocates a zeroed sliced propagator with one
// matrix per time slice of geom.
// Complexity: O(T·Dim²) memory.
func NewSlicedPropagator(geom *Geometry) (*SlicedPropagator, error) {
	if geom == nil {
		return nil, ErrBadGeometry
	}

	return &SlicedPropagator{
		geom:   geom,
		slices: make([]SpinColorMatrix, geom.TemporalExtent()),
	}, nil
}

// Geometry returns the propagator's geometry.
// Complexity: O(1).
func (p *SlicedPropagator) Geometry() *Geometry {
	return p.geom
}

// Slice returns a pointer to the matrix at time t, or ErrTimeOutOfRange.
// Complexity: O(1).
func (p *SlicedPropagator) Slice(t int) (*SpinColorMatrix, error) {
	if t < 0 || t >= len(p.slices) {
		return nil, ErrTimeOutOfRange
	}

	return &p.slices[t], nil
}
