// Package lattice provides the field containers and reductions the
// contraction engine operates on: a periodic D-dimensional geometry,
// per-site spin⊗color matrices, full-volume propagator and complex-scalar
// fields, time-sliced (sink-smeared) propagators, and time-slice sums.
//
// 🚀 Layout
//
//	A Geometry fixes the lattice extents with the temporal direction
//	last (Grid convention). Sites are enumerated time-major: slice t
//	occupies the contiguous index range [t·SpatialVolume, (t+1)·SpatialVolume),
//	so every time-slice reduction is a linear scan over adjacent memory.
//
// ✨ Value types
//
//   - SpinColorMatrix — a 12×12 complex matrix (3 colors × 4 spins per
//     side, index i = spin·Nc + color), stored flat row-major. Supports
//     matrix product, Hermitian adjoint, full trace, the fused
//     TraceMul(a,b) = trace(a·b), and one-sided application of a 4×4 spin
//     matrix (γ ⊗ I_color) without forming the 12×12 embedding.
//   - PropagatorField / ComplexField — per-site containers over the full
//     volume, backed by flat slices (one allocation per field).
//   - SlicedPropagator — one SpinColorMatrix per time slice; the spatial
//     dependence has already been summed away by sink smearing.
//
// Reductions (reduce.go) are deterministic: sites are accumulated in
// ascending index order, so identical inputs reproduce identical sums.
//
// ⚙️ Usage:
//
//	geom, err := lattice.NewGeometry(4, 4, 4, 8) // 4³ spatial × 8 time
//	q, err := lattice.NewPropagatorField(geom)
//	q.At(site).SetIdentity()
//	corr := lattice.SliceSum(field)              // one complex per t
//
// Complexity notes accompany each kernel; the dominant cost anywhere in
// this package is the O(Dim³) 12×12 matrix product.
package lattice
