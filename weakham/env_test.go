package weakham_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelsonlachini/hadron/lattice"
	"github.com/nelsonlachini/hadron/weakham"
)

// TestMemEnvironment_Registration verifies geometry checking on Add.
func TestMemEnvironment_Registration(t *testing.T) {
	geom := testGeometry(t)
	other, err := lattice.NewGeometry(2, 2, 2, 8)
	require.NoError(t, err)

	_, err = weakham.NewMemEnvironment(nil)
	assert.ErrorIs(t, err, lattice.ErrBadGeometry)

	env, err := weakham.NewMemEnvironment(geom)
	require.NoError(t, err)
	assert.True(t, geom.Equal(env.Geometry()))

	assert.ErrorIs(t, env.AddSliced("q1", nil), lattice.ErrGeometryMismatch)
	assert.ErrorIs(t, env.AddField("q2", nil), lattice.ErrGeometryMismatch)

	pOther, err := lattice.NewSlicedPropagator(other)
	require.NoError(t, err)
	assert.ErrorIs(t, env.AddSliced("q1", pOther), lattice.ErrGeometryMismatch)

	fOther, err := lattice.NewPropagatorField(other)
	require.NoError(t, err)
	assert.ErrorIs(t, env.AddField("q2", fOther), lattice.ErrGeometryMismatch)
}

// TestMemEnvironment_TypedResolution verifies names resolve only to the
// kind they were registered as.
func TestMemEnvironment_TypedResolution(t *testing.T) {
	geom := testGeometry(t)
	env, err := weakham.NewMemEnvironment(geom)
	require.NoError(t, err)

	p, err := lattice.NewSlicedPropagator(geom)
	require.NoError(t, err)
	require.NoError(t, env.AddSliced("smeared", p))
	f, err := lattice.NewPropagatorField(geom)
	require.NoError(t, err)
	require.NoError(t, env.AddField("full", f))

	got, err := env.SlicedPropagator("smeared")
	require.NoError(t, err)
	assert.Same(t, p, got)

	gotF, err := env.PropagatorField("full")
	require.NoError(t, err)
	assert.Same(t, f, gotF)

	// Unknown names fail.
	_, err = env.SlicedPropagator("nope")
	assert.ErrorIs(t, err, weakham.ErrUnresolvedInput)
	_, err = env.PropagatorField("nope")
	assert.ErrorIs(t, err, weakham.ErrUnresolvedInput)

	// Kind mismatches fail identically.
	_, err = env.SlicedPropagator("full")
	assert.ErrorIs(t, err, weakham.ErrUnresolvedInput)
	_, err = env.PropagatorField("smeared")
	assert.ErrorIs(t, err, weakham.ErrUnresolvedInput)
}
