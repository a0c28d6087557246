// Package lattice: the per-site spin⊗color matrix value and its kernels.
//
// Kernels live as package functions over pointer arguments so hot loops
// never copy the 12×12 backing array; value returns are reserved for the
// small derived quantities (traces).
package lattice

import "github.com/nelsonlachini/hadron/dirac"

// SpinColorMatrix is a Dim×Dim complex matrix stored flat row-major.
// The per-side index combines spin and color as i = spin·Nc + color, so a
// 4×4 spin matrix acts on contiguous Nc-blocks. Indices are trusted: the
// type is only ever indexed by loop variables in [0, Dim).
type SpinColorMatrix [Dim * Dim]complex128

// At returns the element at (row, col).
// Complexity: O(1).
func (m *SpinColorMatrix) At(row, col int) complex128 {
	return m[row*Dim+col]
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *SpinColorMatrix) Set(row, col int, v complex128) {
	m[row*Dim+col] = v
}

// SetZero clears every element in place.
// Complexity: O(Dim²).
func (m *SpinColorMatrix) SetZero() {
	for k := range m {
		m[k] = 0
	}
}

// SetIdentity overwrites m with the identity matrix.
// Complexity: O(Dim²).
func (m *SpinColorMatrix) SetIdentity() {
	m.SetZero()
	for i := 0; i < Dim; i++ {
		m.Set(i, i, 1)
	}
}

// Scale multiplies every element by s in place.
// Complexity: O(Dim²).
func (m *SpinColorMatrix) Scale(s complex128) {
	for k := range m {
		m[k] *= s
	}
}

// AddScaled accumulates s·other into m in place.
// Complexity: O(Dim²).
func (m *SpinColorMatrix) AddScaled(other *SpinColorMatrix, s complex128) {
	for k := range m {
		m[k] += s * other[k]
	}
}

// Trace returns the sum of diagonal elements (full spin⊗color trace).
// Complexity: O(Dim).
func (m *SpinColorMatrix) Trace() complex128 {
	var sum complex128
	for i := 0; i < Dim; i++ {
		sum += m.At(i, i)
	}

	return sum
}

// Equal reports elementwise agreement within tolerance eps on both the
// real and imaginary parts.
// Complexity: O(Dim²).
func (m *SpinColorMatrix) Equal(other *SpinColorMatrix, eps float64) bool {
	for k := range m {
		d := m[k] - other[k]
		if real(d) > eps || real(d) < -eps || imag(d) > eps || imag(d) < -eps {
			return false
		}
	}

	return true
}

// Mul writes the matrix product a·b into dst. dst must not alias a or b.
// Complexity: O(Dim³).
func Mul(dst, a, b *SpinColorMatrix) {
	var sum complex128
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sum = 0
			for k := 0; k < Dim; k++ {
				sum += a.At(r, k) * b.At(k, c)
			}
			dst.Set(r, c, sum)
		}
	}
}

// Adjoint writes the Hermitian conjugate a† into dst. dst must not alias a.
// Complexity: O(Dim²).
func Adjoint(dst, a *SpinColorMatrix) {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			v := a.At(r, c)
			dst.Set(c, r, complex(real(v), -imag(v)))
		}
	}
}

// TraceMul returns trace(a·b) without forming the product: only the
// diagonal of a·b is accumulated.
// Complexity: O(Dim²) versus O(Dim³) for Mul followed by Trace.
func TraceMul(a, b *SpinColorMatrix) complex128 {
	var sum complex128
	for r := 0; r < Dim; r++ {
		for k := 0; k < Dim; k++ {
			sum += a.At(r, k) * b.At(k, r)
		}
	}

	return sum
}

// SpinLeftMul writes (g ⊗ I_color)·a into dst, applying the 4×4 spin
// matrix g on the left without embedding it into a 12×12 matrix.
// dst must not alias a.
// Complexity: O(Ns²·Nc·Dim).
func SpinLeftMul(dst *SpinColorMatrix, g dirac.Matrix, a *SpinColorMatrix) {
	var sum complex128
	for s := 0; s < Ns; s++ {
		for c := 0; c < Nc; c++ {
			row := s*Nc + c
			for col := 0; col < Dim; col++ {
				sum = 0
				for u := 0; u < Ns; u++ {
					sum += g.At(s, u) * a.At(u*Nc+c, col)
				}
				dst.Set(row, col, sum)
			}
		}
	}
}

// SpinRightMul writes a·(g ⊗ I_color) into dst, applying the 4×4 spin
// matrix g on the right. dst must not alias a.
// Complexity: O(Ns²·Nc·Dim).
func SpinRightMul(dst *SpinColorMatrix, a *SpinColorMatrix, g dirac.Matrix) {
	var sum complex128
	for row := 0; row < Dim; row++ {
		for s := 0; s < Ns; s++ {
			for c := 0; c < Nc; c++ {
				col := s*Nc + c
				sum = 0
				for u := 0; u < Ns; u++ {
					sum += a.At(row, u*Nc+c) * g.At(u, s)
				}
				dst.Set(row, col, sum)
			}
		}
	}
}

// EmbedSpin writes g ⊗ I_color into dst: the spin matrix acting as the
// identity on color. Useful for constructing reference inputs in tests
// and for broadcasting constant insertions.
// Complexity: O(Dim²).
func EmbedSpin(dst *SpinColorMatrix, g dirac.Matrix) {
	dst.SetZero()
	for s := 0; s < Ns; s++ {
		for u := 0; u < Ns; u++ {
			v := g.At(s, u)
			if v == 0 {
				continue
			}
			for c := 0; c < Nc; c++ {
				dst.Set(s*Nc+c, u*Nc+c, v)
			}
		}
	}
}
