// Package weakham: the contraction engine.
package weakham

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nelsonlachini/hadron/dirac"
	"github.com/nelsonlachini/hadron/lattice"
)

// Engine computes both Eye-class diagrams for one quark set per Execute
// call. An Engine holds no per-execution state: scratch lives in a pool
// created and dropped inside Execute, so one Engine may serve concurrent
// executions over the same environment.
type Engine struct {
	env    Environment
	writer ResultWriter

	log          *zap.Logger
	workers      int
	projector    dirac.Projector
	scratchLimit int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger injects a structured logger. The default is a no-op logger;
// the engine logs one line per execution plus per-diagram debug lines,
// never inside kernels.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithWorkers caps the number of goroutines used for the per-direction
// builds and the per-slice reductions. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithProjector selects the chirality of the vertex insertion Γμ = 2·P·γμ.
// The default is dirac.Left, the physical-basis convention.
func WithProjector(p dirac.Projector) Option {
	return func(e *Engine) { e.projector = p }
}

// WithScratchLimit caps the number of scratch fields one execution may
// allocate; exceeding it fails the execution with ErrAllocation. Zero
// (the default) means unlimited.
func WithScratchLimit(n int) Option {
	return func(e *Engine) { e.scratchLimit = n }
}

// NewEngine builds an Engine over an environment and a result writer.
// Stage 1 (Validate): collaborators must be non-nil.
// Stage 2 (Prepare): apply options over defaults.
// Stage 3 (Validate): worker count and projector must be sane.
// Complexity: O(1).
func NewEngine(env Environment, writer ResultWriter, opts ...Option) (*Engine, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if writer == nil {
		return nil, ErrNilWriter
	}

	e := &Engine{
		env:       env,
		writer:    writer,
		log:       zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
		projector: dirac.Left,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.workers < 1 {
		return nil, ErrBadWorkers
	}
	if _, err := dirac.Project(e.projector); err != nil {
		return nil, err
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}

	return e, nil
}

// Execute runs both contractions for one quark set and hands the two
// results to the writer under the OutputKey. Either both diagrams
// complete and are emitted in one Write call, or the first error is
// returned and nothing is emitted.
//
// Stage 1 (Resolve): typed resolution of all four inputs up front.
// Stage 2 (Validate): geometry agreement, direction count, sink time.
// Stage 3 (Build): per-direction Saucer body/loop fields, fanned out
// over an errgroup bounded by the worker count.
// Stage 4 (Reduce): Saucer direction sum and zero-momentum projection.
// Stage 5 (Recycle): Eye body/loop as traces of the Saucer fields, same
// reduction.
// Stage 6 (Emit): package both correlators and write.
//
// Complexity: O(D·V·Dim³) time, O(D·V·Dim²) scratch memory.
func (e *Engine) Execute(ctx context.Context, par Params) ([]Result, error) {
	const op = "Execute"

	runID := uuid.NewString()
	log := e.log.With(zap.String("runID", runID))
	log.Info("computing weak Hamiltonian Eye-type contractions",
		zap.String("q1", par.Q1), zap.String("q2", par.Q2),
		zap.String("q3", par.Q3), zap.String("q4", par.Q4),
		zap.Int("tSnk", par.TSnk), zap.String("output", par.Output))

	// Resolve every input before touching any field.
	q1, err := e.env.SlicedPropagator(par.Q1)
	if err != nil {
		return nil, execErrorf(op, err)
	}
	q2, err := e.env.PropagatorField(par.Q2)
	if err != nil {
		return nil, execErrorf(op, err)
	}
	q3, err := e.env.PropagatorField(par.Q3)
	if err != nil {
		return nil, execErrorf(op, err)
	}
	q4, err := e.env.PropagatorField(par.Q4)
	if err != nil {
		return nil, execErrorf(op, err)
	}

	geom := e.env.Geometry()
	if geom == nil {
		return nil, execErrorf(op, ErrDimensionMismatch)
	}
	for _, g := range []*lattice.Geometry{q1.Geometry(), q2.Geometry(), q3.Geometry(), q4.Geometry()} {
		if !geom.Equal(g) {
			return nil, execErrorf(op, ErrDimensionMismatch)
		}
	}

	nd := geom.Dims()
	if nd == 0 {
		return nil, execErrorf(op, ErrProjection)
	}
	if nd > dirac.NumDirections {
		return nil, execErrorf(op, ErrDimensionMismatch)
	}
	if par.TSnk < 0 || par.TSnk >= geom.TemporalExtent() {
		return nil, execErrorf(op, ErrBadSinkTime)
	}
	q1Snk, err := q1.Slice(par.TSnk)
	if err != nil {
		return nil, execErrorf(op, err)
	}

	// Scratch for both topologies: D matrix fields per sub-diagram for
	// the Saucer, D scalar fields per sub-diagram for the Eye, one
	// shared expression buffer.
	pool := newScratchPool(geom, e.scratchLimit)
	sBody := make([]*lattice.PropagatorField, nd)
	sLoop := make([]*lattice.PropagatorField, nd)
	eBody := make([]*lattice.ComplexField, nd)
	eLoop := make([]*lattice.ComplexField, nd)
	for mu := 0; mu < nd; mu++ {
		if sBody[mu], err = pool.propagator(); err != nil {
			return nil, execErrorf(op, err)
		}
		if sLoop[mu], err = pool.propagator(); err != nil {
			return nil, execErrorf(op, err)
		}
		if eBody[mu], err = pool.complexField(); err != nil {
			return nil, execErrorf(op, err)
		}
		if eLoop[mu], err = pool.complexField(); err != nil {
			return nil, execErrorf(op, err)
		}
	}
	expbuf, err := pool.complexField()
	if err != nil {
		return nil, execErrorf(op, err)
	}
	defer func() {
		for mu := 0; mu < nd; mu++ {
			pool.releasePropagator(sBody[mu])
			pool.releasePropagator(sLoop[mu])
			pool.releaseComplex(eBody[mu])
			pool.releaseComplex(eLoop[mu])
		}
		pool.releaseComplex(expbuf)
	}()

	// Build the Saucer sub-expressions, one direction per task.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for mu := 0; mu < nd; mu++ {
		mu := mu
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ins, err := dirac.Insertion(e.projector, dirac.Direction(mu))
			if err != nil {
				return err
			}
			buildBody(sBody[mu], q1Snk, q2, q3, ins)
			buildLoop(sLoop[mu], q4, ins)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, execErrorf(op, err)
	}

	// Saucer: direction sum and projection.
	if err = e.forEachSlice(ctx, geom, func(t int) {
		sumSaucerSlice(expbuf, sBody, sLoop, t)
	}); err != nil {
		return nil, execErrorf(op, err)
	}
	corrS := Correlator(lattice.SliceSum(expbuf))
	log.Debug("Saucer diagram reduced", zap.Int("directions", nd), zap.Int("nt", len(corrS)))

	// Eye: recycle the Saucer fields — per-site traces, never a rebuild
	// of the four-propagator product.
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for mu := 0; mu < nd; mu++ {
		mu := mu
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			traceField(eBody[mu], sBody[mu])
			traceField(eLoop[mu], sLoop[mu])

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, execErrorf(op, err)
	}

	if err = e.forEachSlice(ctx, geom, func(t int) {
		sumEyeSlice(expbuf, eBody, eLoop, t)
	}); err != nil {
		return nil, execErrorf(op, err)
	}
	corrE := Correlator(lattice.SliceSum(expbuf))
	log.Debug("Eye diagram reduced", zap.Int("directions", nd), zap.Int("nt", len(corrE)))

	// Emit both diagrams in order, in a single hand-off.
	inputs := Inputs{Q1: par.Q1, Q2: par.Q2, Q3: par.Q3, Q4: par.Q4}
	results := []Result{
		{Label: SaucerLabel, Correlator: corrS, Inputs: inputs, SinkTime: par.TSnk, RunID: runID},
		{Label: EyeLabel, Correlator: corrE, Inputs: inputs, SinkTime: par.TSnk, RunID: runID},
	}
	if err = e.writer.Write(par.Output, OutputKey, results); err != nil {
		return nil, execErrorf(op, err)
	}

	return results, nil
}

// forEachSlice runs fn over every time slice, at most workers at a time.
// Slices touch disjoint site ranges, so tasks never race; each slice is
// processed by exactly one goroutine in a fixed internal order, which
// keeps the reduction reproducible for any worker count.
func (e *Engine) forEachSlice(ctx context.Context, geom *lattice.Geometry, fn func(t int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for t := 0; t < geom.TemporalExtent(); t++ {
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(t)

			return nil
		})
	}

	return g.Wait()
}
