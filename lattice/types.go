// Package lattice: sentinel errors and shared constants.
package lattice

import (
	"errors"

	"github.com/nelsonlachini/hadron/dirac"
)

// Sentinel errors for lattice operations.
var (
	// ErrBadGeometry indicates non-positive extents or zero dimensions.
	ErrBadGeometry = errors.New("lattice: geometry extents must be positive and non-empty")
	// ErrSiteOutOfRange indicates a site index or coordinate outside the volume.
	ErrSiteOutOfRange = errors.New("lattice: site out of range")
	// ErrTimeOutOfRange indicates a time coordinate outside [0, T).
	ErrTimeOutOfRange = errors.New("lattice: time coordinate out of range")
	// ErrGeometryMismatch indicates two fields defined on different geometries.
	ErrGeometryMismatch = errors.New("lattice: geometries do not match")
	// ErrIndexOutOfBounds indicates a matrix row/column index outside [0, Dim).
	ErrIndexOutOfBounds = errors.New("lattice: matrix index out of bounds")
)

// Spin⊗color dimensions. The per-side index is i = spin·Nc + color.
const (
	// Nc is the number of colors.
	Nc = 3
	// Ns is the number of spin components, matching dirac.SpinDim.
	Ns = dirac.SpinDim
	// Dim is the combined per-side dimension of a SpinColorMatrix.
	Dim = Nc * Ns
)
