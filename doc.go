// Package hadron computes weak-Hamiltonian four-quark contractions from
// lattice QCD propagator data.
//
// 🚀 What is hadron?
//
//	A library for turning numerically generated quark propagators into
//	physical two-point correlators:
//		• Dirac algebra: Euclidean γ-matrices, γ5, chiral projectors and
//		  left/right-handed vertex insertions (package dirac)
//		• Lattice fields: periodic D-dimensional geometry, spin⊗color
//		  matrix fields, sink-smeared propagators, time-slice reductions
//		  (package lattice)
//		• Contraction engine: Eye- and Saucer-type weak-Hamiltonian
//		  diagram contractions with shared sub-expressions, zero-momentum
//		  projection and YAML result emission (package weakham)
//
// ✨ Why choose hadron?
//
//   - Deterministic – fixed reduction order per partition, reproducible
//     correlators run to run
//   - Parallel – per-direction fan-out over a worker group, data-parallel
//     site kernels
//   - Explicit – typed input resolution, sentinel errors, scoped scratch
//     buffers; no global mutable state
//
// The contraction semantics follow the current-current operators of the
// weak effective Hamiltonian in the physical basis (see e.g. Fig. 3 of
// arXiv:1507.03094):
//
//	S: Σ_μ trace(q3·γ5·q1snk·adj(q2)·γ5·Γμ · q4·Γμ)
//	E: Σ_μ trace(q3·γ5·q1snk·adj(q2)·γ5·Γμ) · trace(q4·Γμ)
//
// with Γμ = 2·P·γμ a chirally projected insertion and q1 a sink-smeared
// propagator evaluated at a fixed sink time.
//
// Dive into the per-package doc.go files and example_test.go files for
// runnable walkthroughs.
//
//	go get github.com/nelsonlachini/hadron/weakham
package hadron
