package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelsonlachini/hadron/lattice"
)

// TestFields_NilGeometry verifies constructors reject a nil geometry.
func TestFields_NilGeometry(t *testing.T) {
	_, err := lattice.NewPropagatorField(nil)
	assert.ErrorIs(t, err, lattice.ErrBadGeometry)

	_, err = lattice.NewComplexField(nil)
	assert.ErrorIs(t, err, lattice.ErrBadGeometry)

	_, err = lattice.NewSlicedPropagator(nil)
	assert.ErrorIs(t, err, lattice.ErrBadGeometry)
}

// TestPropagatorField_FillZeroScale verifies the bulk mutators.
func TestPropagatorField_FillZeroScale(t *testing.T) {
	geom, err := lattice.NewGeometry(2, 2, 2, 3)
	require.NoError(t, err)
	f, err := lattice.NewPropagatorField(geom)
	require.NoError(t, err)

	var id lattice.SpinColorMatrix
	id.SetIdentity()
	f.Fill(&id)

	f.Scale(2i)
	for site := 0; site < geom.Volume(); site++ {
		tr := f.At(site).Trace()
		assert.InDelta(t, 0, real(tr), eps)
		assert.InDelta(t, 2*float64(lattice.Dim), imag(tr), eps)
	}

	f.Zero()
	for site := 0; site < geom.Volume(); site++ {
		assert.InDelta(t, 0, real(f.At(site).Trace()), eps)
	}
}

// TestPropagatorField_SiteBounds verifies the checked accessor.
func TestPropagatorField_SiteBounds(t *testing.T) {
	geom, err := lattice.NewGeometry(2, 2, 2, 2)
	require.NoError(t, err)
	f, err := lattice.NewPropagatorField(geom)
	require.NoError(t, err)

	_, err = f.Site(-1)
	assert.ErrorIs(t, err, lattice.ErrSiteOutOfRange)
	_, err = f.Site(geom.Volume())
	assert.ErrorIs(t, err, lattice.ErrSiteOutOfRange)

	m, err := f.Site(0)
	require.NoError(t, err)
	m.Set(0, 0, 7)
	assert.Equal(t, complex128(7), f.At(0).At(0, 0), "Site must alias the backing storage")
}

// TestComplexField_AddInto verifies elementwise accumulation and the
// geometry-mismatch guard.
func TestComplexField_AddInto(t *testing.T) {
	geomA, err := lattice.NewGeometry(2, 2, 2, 2)
	require.NoError(t, err)
	geomB, err := lattice.NewGeometry(2, 2, 2, 4)
	require.NoError(t, err)

	a, err := lattice.NewComplexField(geomA)
	require.NoError(t, err)
	b, err := lattice.NewComplexField(geomA)
	require.NoError(t, err)
	c, err := lattice.NewComplexField(geomB)
	require.NoError(t, err)

	for site := 0; site < geomA.Volume(); site++ {
		a.Set(site, complex(float64(site), 0))
		b.Set(site, 1i)
	}
	require.NoError(t, a.AddInto(b))
	for site := 0; site < geomA.Volume(); site++ {
		assert.InDelta(t, float64(site), real(a.At(site)), eps)
		assert.InDelta(t, 1, imag(a.At(site)), eps)
	}

	assert.ErrorIs(t, a.AddInto(c), lattice.ErrGeometryMismatch)
}

// TestSlicedPropagator_SliceBounds verifies per-time access.
func TestSlicedPropagator_SliceBounds(t *testing.T) {
	geom, err := lattice.NewGeometry(2, 2, 2, 3)
	require.NoError(t, err)
	p, err := lattice.NewSlicedPropagator(geom)
	require.NoError(t, err)

	_, err = p.Slice(-1)
	assert.ErrorIs(t, err, lattice.ErrTimeOutOfRange)
	_, err = p.Slice(3)
	assert.ErrorIs(t, err, lattice.ErrTimeOutOfRange)

	m, err := p.Slice(1)
	require.NoError(t, err)
	m.SetIdentity()
	again, err := p.Slice(1)
	require.NoError(t, err)
	assert.InDelta(t, float64(lattice.Dim), real(again.Trace()), eps,
		"Slice must alias the backing storage")
}

// TestSliceSum_HandBuilt verifies the zero-momentum projection against a
// hand-built field: value t+1 at every site of slice t.
func TestSliceSum_HandBuilt(t *testing.T) {
	geom, err := lattice.NewGeometry(2, 3, 2, 4)
	require.NoError(t, err)
	f, err := lattice.NewComplexField(geom)
	require.NoError(t, err)

	for site := 0; site < geom.Volume(); site++ {
		tc, err := geom.TimeOf(site)
		require.NoError(t, err)
		f.Set(site, complex(float64(tc+1), float64(tc)))
	}

	sums := lattice.SliceSum(f)
	require.Len(t, sums, geom.TemporalExtent())
	sv := float64(geom.SpatialVolume())
	for tc, got := range sums {
		assert.InDelta(t, sv*float64(tc+1), real(got), eps)
		assert.InDelta(t, sv*float64(tc), imag(got), eps)
	}

	total := lattice.VolumeSum(f)
	assert.InDelta(t, sv*(1+2+3+4), real(total), eps)
	assert.InDelta(t, sv*(0+1+2+3), imag(total), eps)
}
