// Test-bridge (white-box) for the diagram builders.
//
// Exposes the unexported per-direction builders to the weakham_test
// package so the sub-expression recycling guarantee can be verified
// field-by-field without widening the production API.
package weakham

import (
	"github.com/nelsonlachini/hadron/dirac"
	"github.com/nelsonlachini/hadron/lattice"
)

// BuildBodyTestOnly is a thin pass-through to buildBody.
func BuildBodyTestOnly(dst *lattice.PropagatorField, q1snk *lattice.SpinColorMatrix,
	q2, q3 *lattice.PropagatorField, ins dirac.Matrix) {
	buildBody(dst, q1snk, q2, q3, ins)
}

// BuildLoopTestOnly is a thin pass-through to buildLoop.
func BuildLoopTestOnly(dst, q4 *lattice.PropagatorField, ins dirac.Matrix) {
	buildLoop(dst, q4, ins)
}

// TraceFieldTestOnly is a thin pass-through to traceField.
func TraceFieldTestOnly(dst *lattice.ComplexField, src *lattice.PropagatorField) {
	traceField(dst, src)
}

// SumSaucerSliceTestOnly is a thin pass-through to sumSaucerSlice.
func SumSaucerSliceTestOnly(dst *lattice.ComplexField, body, loop []*lattice.PropagatorField, t int) {
	sumSaucerSlice(dst, body, loop, t)
}
