// Package dirac: domain types and sentinel errors for the spin algebra.
package dirac

import "errors"

// Sentinel errors for dirac operations.
var (
	// ErrBadDirection indicates a direction index outside [0, NumDirections).
	ErrBadDirection = errors.New("dirac: direction index out of range")
	// ErrBadProjector indicates a Projector value other than Left or Right.
	ErrBadProjector = errors.New("dirac: unknown chiral projector")
)

// SpinDim is the number of spin components a generator acts on.
const SpinDim = 4

// NumDirections is the number of spacetime directions the algebra covers.
// Exactly one generator exists per direction; there is no γμ beyond DirT.
const NumDirections = 4

// Direction indexes a spacetime direction. The temporal direction is last,
// matching the lattice package's time-major geometry convention.
type Direction int

const (
	// DirX is the first spatial direction.
	DirX Direction = iota
	// DirY is the second spatial direction.
	DirY
	// DirZ is the third spatial direction.
	DirZ
	// DirT is the temporal direction.
	DirT
)

// Projector selects a chirality: Left keeps the left-handed components
// via P₋ = (1−γ5)/2, Right keeps the right-handed ones via P₊ = (1+γ5)/2.
type Projector int

const (
	// Left selects the left-handed projector (1−γ5)/2.
	Left Projector = iota
	// Right selects the right-handed projector (1+γ5)/2.
	Right
)

// Matrix is a 4×4 complex spin matrix stored flat in row-major order.
// It is a plain value type: assignment copies, and the zero value is the
// zero matrix.
type Matrix [SpinDim * SpinDim]complex128

// At returns the element at (row, col). Indices are trusted: this type is
// only ever indexed by loop variables in [0, SpinDim).
// Complexity: O(1).
func (m *Matrix) At(row, col int) complex128 {
	return m[row*SpinDim+col]
}

// Set assigns v at (row, col). Same trust model as At.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v complex128) {
	m[row*SpinDim+col] = v
}
