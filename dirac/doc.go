// Package dirac implements the Euclidean Dirac algebra on a 4-component
// spin space: the four generators γx, γy, γz, γt, the chirality matrix γ5,
// the chiral projectors P± = (1±γ5)/2, and the chirally projected vertex
// insertion Γμ = 2·P·γμ used by weak-Hamiltonian contractions.
//
// 🚀 What is the Dirac algebra?
//
//	The generators of the Clifford algebra {γμ, γν} = 2δμν acting on the
//	spin index of a quark field.  Every bilinear vertex in a lattice
//	contraction is one of these fixed matrices (or a product of them), so
//	the whole package is a small table of constant 4×4 complex matrices
//	plus exact matrix arithmetic on them.
//
// ✨ Key properties (all enforced by tests):
//   - {γμ, γν} = 2δμν·I for all μ, ν
//   - γ5 = γx·γy·γz·γt = diag(1, 1, −1, −1), γ5² = I
//   - every generator is Hermitian
//   - P± are idempotent, mutually orthogonal, and sum to the identity
//   - Insertion(p, μ) = 2·Project(p)·γμ exactly
//
// Basis convention: the chiral (Weyl) basis of the Grid physics library;
// see gamma.go for the explicit matrix table. Callers that need a
// different phase convention must conjugate at the boundary — this package
// never guesses normalization.
//
// ⚙️ Usage:
//
//	import "github.com/nelsonlachini/hadron/dirac"
//
//	g, err := dirac.Gamma(dirac.DirT)       // γt
//	ins, err := dirac.Insertion(dirac.Left, dirac.DirX) // (1−γ5)·γx
//
// All values are immutable; functions return fresh matrices and never
// share backing storage with the internal tables.
//
// Complexity: every operation is O(1) on fixed 4×4 storage.
package dirac
