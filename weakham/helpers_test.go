package weakham_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nelsonlachini/hadron/lattice"
	"github.com/nelsonlachini/hadron/weakham"
)

// Shared fixtures for engine tests: small lattices keep the full
// contraction under a millisecond while still exercising every index.

// captureWriter records Write calls for emission assertions.
type captureWriter struct {
	mu      sync.Mutex
	calls   int
	path    string
	key     string
	results []weakham.Result
}

func (w *captureWriter) Write(path, key string, results []weakham.Result) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	w.path = path
	w.key = key
	w.results = results

	return nil
}

// failWriter always fails, for partial-emission tests.
type failWriter struct{ err error }

func (w failWriter) Write(string, string, []weakham.Result) error {
	return w.err
}

// stubEnv is a hand-rolled Environment for shape-mismatch scenarios the
// checked MemEnvironment cannot represent.
type stubEnv struct {
	geom   *lattice.Geometry
	sliced *lattice.SlicedPropagator
	field  *lattice.PropagatorField
}

func (s stubEnv) SlicedPropagator(string) (*lattice.SlicedPropagator, error) {
	return s.sliced, nil
}

func (s stubEnv) PropagatorField(string) (*lattice.PropagatorField, error) {
	return s.field, nil
}

func (s stubEnv) Geometry() *lattice.Geometry {
	return s.geom
}

// testGeometry builds the standard 2×2×2×4 test lattice (T=4, D=4).
func testGeometry(t *testing.T) *lattice.Geometry {
	t.Helper()
	geom, err := lattice.NewGeometry(2, 2, 2, 4)
	require.NoError(t, err)

	return geom
}

// randomField fills a fresh propagator field with seeded pseudo-random
// values.
func randomField(t *testing.T, geom *lattice.Geometry, rng *rand.Rand) *lattice.PropagatorField {
	t.Helper()
	f, err := lattice.NewPropagatorField(geom)
	require.NoError(t, err)
	for site := 0; site < geom.Volume(); site++ {
		m := f.At(site)
		for k := range m {
			m[k] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}

	return f
}

// randomSliced fills a fresh sliced propagator with seeded pseudo-random
// values per time slice.
func randomSliced(t *testing.T, geom *lattice.Geometry, rng *rand.Rand) *lattice.SlicedPropagator {
	t.Helper()
	p, err := lattice.NewSlicedPropagator(geom)
	require.NoError(t, err)
	for tc := 0; tc < geom.TemporalExtent(); tc++ {
		m, err := p.Slice(tc)
		require.NoError(t, err)
		for k := range m {
			m[k] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}

	return p
}

// identityEnv registers q1 as a sliced identity propagator and q2–q4 as
// identity fields.
func identityEnv(t *testing.T, geom *lattice.Geometry) *weakham.MemEnvironment {
	t.Helper()
	env, err := weakham.NewMemEnvironment(geom)
	require.NoError(t, err)

	var id lattice.SpinColorMatrix
	id.SetIdentity()

	q1, err := lattice.NewSlicedPropagator(geom)
	require.NoError(t, err)
	for tc := 0; tc < geom.TemporalExtent(); tc++ {
		m, err := q1.Slice(tc)
		require.NoError(t, err)
		*m = id
	}
	require.NoError(t, env.AddSliced("q1", q1))

	for _, name := range []string{"q2", "q3", "q4"} {
		f, err := lattice.NewPropagatorField(geom)
		require.NoError(t, err)
		f.Fill(&id)
		require.NoError(t, env.AddField(name, f))
	}

	return env
}

// randomEnv registers seeded pseudo-random q1–q4, returning the env and
// the q4 field for linearity tests.
func randomEnv(t *testing.T, geom *lattice.Geometry, seed int64) (*weakham.MemEnvironment, *lattice.PropagatorField) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	env, err := weakham.NewMemEnvironment(geom)
	require.NoError(t, err)

	require.NoError(t, env.AddSliced("q1", randomSliced(t, geom, rng)))
	require.NoError(t, env.AddField("q2", randomField(t, geom, rng)))
	require.NoError(t, env.AddField("q3", randomField(t, geom, rng)))
	q4 := randomField(t, geom, rng)
	require.NoError(t, env.AddField("q4", q4))

	return env, q4
}

// testParams is the standard parameter set over the fixtures above.
func testParams() weakham.Params {
	return weakham.Params{Q1: "q1", Q2: "q2", Q3: "q3", Q4: "q4", TSnk: 0, Output: "eye"}
}

// assertComplexClose asserts |want−got| ≤ tol·(1+|want|) componentwise.
func assertComplexClose(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	scale := 1 + abs(real(want)) + abs(imag(want))
	require.InDelta(t, real(want), real(got), tol*scale, msgAndArgs...)
	require.InDelta(t, imag(want), imag(got), tol*scale, msgAndArgs...)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
