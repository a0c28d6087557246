// Package weakham: per-direction diagram sub-expression builders.
//
// Both diagram topologies share the same primitives: the Saucer body and
// loop fields are built once per direction, and the Eye body/loop are
// their per-site traces. Builders write into caller-supplied scratch and
// never allocate per site.
package weakham

import (
	"github.com/nelsonlachini/hadron/dirac"
	"github.com/nelsonlachini/hadron/lattice"
)

// buildBody writes the Saucer body for one direction into dst:
//
//	dst[x] = q3[x] · γ5 · q1snk · adj(q2[x]) · γ5 · Γμ
//
// q1snk is the sink-time slice of the sink-smeared q1, constant over the
// spatial subvolume and broadcast to every site. The two site-independent
// factors are hoisted out of the loop: A = γ5·q1snk is one spin⊗color
// matrix, and γ5·Γμ is a pure spin factor applied with the one-sided
// kernel. Per site that leaves one adjoint, two 12×12 products, and one
// spin-side product.
// Complexity: O(V·Dim³).
func buildBody(dst *lattice.PropagatorField, q1snk *lattice.SpinColorMatrix,
	q2, q3 *lattice.PropagatorField, ins dirac.Matrix) {
	var a lattice.SpinColorMatrix
	lattice.SpinLeftMul(&a, dirac.Gamma5(), q1snk)
	tail := dirac.Mul(dirac.Gamma5(), ins)

	var t1, t2, adj lattice.SpinColorMatrix
	for site := 0; site < dst.Geometry().Volume(); site++ {
		lattice.Mul(&t1, q3.At(site), &a)
		lattice.Adjoint(&adj, q2.At(site))
		lattice.Mul(&t2, &t1, &adj)
		lattice.SpinRightMul(dst.At(site), &t2, tail)
	}
}

// buildLoop writes the Saucer loop for one direction into dst:
//
//	dst[x] = q4[x] · Γμ
//
// Complexity: O(V·Ns²·Nc·Dim).
func buildLoop(dst *lattice.PropagatorField, q4 *lattice.PropagatorField, ins dirac.Matrix) {
	for site := 0; site < dst.Geometry().Volume(); site++ {
		lattice.SpinRightMul(dst.At(site), q4.At(site), ins)
	}
}

// traceField writes the per-site full trace of src into dst. This is how
// the Eye body/loop recycle the Saucer fields instead of rebuilding the
// four-propagator product.
// Complexity: O(V·Dim).
func traceField(dst *lattice.ComplexField, src *lattice.PropagatorField) {
	for site := 0; site < dst.Geometry().Volume(); site++ {
		dst.Set(site, src.At(site).Trace())
	}
}

// sumSaucerSlice accumulates the Saucer direction sum over one time
// slice of dst:
//
//	dst[x] = Σ_μ trace(body_μ[x] · loop_μ[x])
//
// The fused TraceMul never forms the body·loop product. Directions are
// summed in ascending μ and sites in ascending index, the fixed order
// that makes repeated runs bit-reproducible.
// Complexity: O(SV·D·Dim²) per slice.
func sumSaucerSlice(dst *lattice.ComplexField, body, loop []*lattice.PropagatorField, t int) {
	sv := dst.Geometry().SpatialVolume()
	base := t * sv
	for x := 0; x < sv; x++ {
		site := base + x
		var acc complex128
		for mu := range body {
			acc += lattice.TraceMul(body[mu].At(site), loop[mu].At(site))
		}
		dst.Set(site, acc)
	}
}

// sumEyeSlice accumulates the Eye direction sum over one time slice of
// dst from the already-traced scalar fields:
//
//	dst[x] = Σ_μ body_μ[x] · loop_μ[x]
//
// Complexity: O(SV·D) per slice.
func sumEyeSlice(dst *lattice.ComplexField, body, loop []*lattice.ComplexField, t int) {
	sv := dst.Geometry().SpatialVolume()
	base := t * sv
	for x := 0; x < sv; x++ {
		site := base + x
		var acc complex128
		for mu := range body {
			acc += body[mu].At(site) * loop[mu].At(site)
		}
		dst.Set(site, acc)
	}
}
