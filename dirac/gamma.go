// Package dirac: the generator table and algebra kernels.
//
// The table below is the chiral (Weyl) basis used by the Grid physics
// library. γ5 = γx·γy·γz·γt = diag(1, 1, −1, −1) in this basis.
package dirac

// gammaTable holds the four Euclidean generators, indexed by Direction.
// Row-major, i = row*SpinDim + col.
var gammaTable = [NumDirections]Matrix{
	// γx
	{
		0, 0, 0, 1i,
		0, 0, 1i, 0,
		0, -1i, 0, 0,
		-1i, 0, 0, 0,
	},
	// γy
	{
		0, 0, 0, -1,
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
	},
	// γz
	{
		0, 0, 1i, 0,
		0, 0, 0, -1i,
		-1i, 0, 0, 0,
		0, 1i, 0, 0,
	},
	// γt
	{
		0, 0, 1, 0,
		0, 0, 0, 1,
		1, 0, 0, 0,
		0, 1, 0, 0,
	},
}

// gamma5Table is γ5 = γx·γy·γz·γt.
var gamma5Table = Matrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, -1, 0,
	0, 0, 0, -1,
}

// Gamma returns the Euclidean generator γμ for direction mu.
// Stage 1 (Validate): mu must lie in [0, NumDirections).
// Stage 2 (Finalize): return a copy of the table entry (callers may not
// alias internal storage).
// Complexity: O(1).
func Gamma(mu Direction) (Matrix, error) {
	if mu < 0 || mu >= NumDirections {
		return Matrix{}, ErrBadDirection
	}

	return gammaTable[mu], nil
}

// Gamma5 returns the chirality matrix γ5.
// Complexity: O(1).
func Gamma5() Matrix {
	return gamma5Table
}

// Identity returns the 4×4 identity matrix.
// Complexity: O(1).
func Identity() Matrix {
	var m Matrix
	for s := 0; s < SpinDim; s++ {
		m.Set(s, s, 1)
	}

	return m
}

// Zero returns the 4×4 zero matrix.
// Complexity: O(1).
func Zero() Matrix {
	return Matrix{}
}

// Project returns the chiral projector P₋ = (1−γ5)/2 for Left or
// P₊ = (1+γ5)/2 for Right.
// Stage 1 (Validate): p must be Left or Right.
// Stage 2 (Execute): form (I ± γ5)/2 elementwise.
// Complexity: O(1).
func Project(p Projector) (Matrix, error) {
	var sign complex128
	switch p {
	case Left:
		sign = -1
	case Right:
		sign = +1
	default:
		return Matrix{}, ErrBadProjector
	}

	m := Identity()
	for k := range m {
		m[k] = (m[k] + sign*gamma5Table[k]) / 2
	}

	return m, nil
}

// Insertion returns the chirally projected vertex operator
// Γμ = 2·P·γμ, i.e. (1−γ5)·γμ for Left and (1+γ5)·γμ for Right.
// This is the per-direction insertion appearing at each weak-Hamiltonian
// vertex; the factor 2 cancels the 1/2 of the projector so the operator
// carries unit normalization per chirality.
// Stage 1 (Validate): delegate direction/projector checks to Gamma/Project.
// Stage 2 (Execute): multiply and scale.
// Complexity: O(1).
func Insertion(p Projector, mu Direction) (Matrix, error) {
	g, err := Gamma(mu)
	if err != nil {
		return Matrix{}, err
	}
	proj, err := Project(p)
	if err != nil {
		return Matrix{}, err
	}

	m := Mul(proj, g)
	for k := range m {
		m[k] *= 2
	}

	return m, nil
}

// Mul returns the matrix product a·b.
// Complexity: O(SpinDim³) on fixed 4×4 storage.
func Mul(a, b Matrix) Matrix {
	var out Matrix
	var sum complex128
	for r := 0; r < SpinDim; r++ {
		for c := 0; c < SpinDim; c++ {
			sum = 0
			for k := 0; k < SpinDim; k++ {
				sum += a.At(r, k) * b.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}

	return out
}

// Add returns the elementwise sum a + b.
// Complexity: O(SpinDim²).
func Add(a, b Matrix) Matrix {
	for k := range a {
		a[k] += b[k]
	}

	return a
}

// Sub returns the elementwise difference a − b.
// Complexity: O(SpinDim²).
func Sub(a, b Matrix) Matrix {
	for k := range a {
		a[k] -= b[k]
	}

	return a
}

// Scale returns s·a.
// Complexity: O(SpinDim²).
func Scale(a Matrix, s complex128) Matrix {
	for k := range a {
		a[k] *= s
	}

	return a
}

// Adjoint returns the Hermitian conjugate a†.
// Complexity: O(SpinDim²).
func Adjoint(a Matrix) Matrix {
	var out Matrix
	for r := 0; r < SpinDim; r++ {
		for c := 0; c < SpinDim; c++ {
			v := a.At(r, c)
			out.Set(c, r, complex(real(v), -imag(v)))
		}
	}

	return out
}

// Trace returns the sum of diagonal elements.
// Complexity: O(SpinDim).
func Trace(a Matrix) complex128 {
	var sum complex128
	for s := 0; s < SpinDim; s++ {
		sum += a.At(s, s)
	}

	return sum
}

// Equal reports whether a and b agree elementwise within tolerance eps
// on both real and imaginary parts.
// Complexity: O(SpinDim²).
func Equal(a, b Matrix, eps float64) bool {
	for k := range a {
		d := a[k] - b[k]
		if real(d) > eps || real(d) < -eps || imag(d) > eps || imag(d) < -eps {
			return false
		}
	}

	return true
}
