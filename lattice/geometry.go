// Package lattice: periodic lattice geometry and site indexing.
package lattice

// Geometry describes a periodic integer lattice with fixed extents per
// dimension. The temporal direction is the LAST dimension, and sites are
// enumerated time-major: for extents (Lx, Ly, Lz, Lt) the flat index is
// ((t·Lz + z)·Ly + y)·Lx + x, so each time slice is a contiguous run of
// SpatialVolume() sites. Immutable once built.
type Geometry struct {
	extents    []int // per-dimension extents, time last
	volume     int   // product of all extents
	spatialVol int   // product of all extents but the last
}

// NewGeometry builds a Geometry from per-dimension extents (time last).
// Stage 1 (Validate): at least one dimension, every extent ≥ 1.
// Stage 2 (Prepare): precompute volume and spatial volume.
// Stage 3 (Finalize): return the immutable Geometry or ErrBadGeometry.
// Complexity: O(D).
func NewGeometry(extents ...int) (*Geometry, error) {
	// Validate dimension count
	if len(extents) == 0 {
		return nil, ErrBadGeometry
	}
	// Validate every extent and accumulate the volume
	vol := 1
	for _, l := range extents {
		if l < 1 {
			return nil, ErrBadGeometry
		}
		vol *= l
	}

	// Copy extents so callers cannot mutate the geometry afterwards
	own := make([]int, len(extents))
	copy(own, extents)

	return &Geometry{
		extents:    own,
		volume:     vol,
		spatialVol: vol / own[len(own)-1],
	}, nil
}

// Dims returns the number of spacetime dimensions.
// Complexity: O(1).
func (g *Geometry) Dims() int {
	return len(g.extents)
}

// Extent returns the extent of dimension d, or ErrSiteOutOfRange when d
// is not a valid dimension index.
// Complexity: O(1).
func (g *Geometry) Extent(d int) (int, error) {
	if d < 0 || d >= len(g.extents) {
		return 0, ErrSiteOutOfRange
	}

	return g.extents[d], nil
}

// TemporalExtent returns the extent of the last (temporal) dimension.
// The zero value of Geometry is a degenerate zero-dimensional lattice
// with no sites and temporal extent 0; NewGeometry never produces it,
// but downstream guards must be able to observe it without panicking.
// Complexity: O(1).
func (g *Geometry) TemporalExtent() int {
	if len(g.extents) == 0 {
		return 0
	}

	return g.extents[len(g.extents)-1]
}

// Volume returns the total number of lattice sites.
// Complexity: O(1).
func (g *Geometry) Volume() int {
	return g.volume
}

// SpatialVolume returns the number of sites in one time slice.
// Complexity: O(1).
func (g *Geometry) SpatialVolume() int {
	return g.spatialVol
}

// SiteIndex converts per-dimension coordinates (time last) to the flat
// time-major site index.
// Stage 1 (Validate): coordinate count and per-dimension bounds.
// Stage 2 (Execute): Horner-style fold from the slowest dimension down.
// Complexity: O(D).
func (g *Geometry) SiteIndex(coords ...int) (int, error) {
	if len(coords) != len(g.extents) {
		return 0, ErrSiteOutOfRange
	}
	idx := 0
	for d := len(coords) - 1; d >= 0; d-- {
		if coords[d] < 0 || coords[d] >= g.extents[d] {
			return 0, ErrSiteOutOfRange
		}
		idx = idx*g.extents[d] + coords[d]
	}

	return idx, nil
}

// SiteCoords converts a flat site index back to per-dimension coordinates
// (time last). Inverse of SiteIndex.
// Complexity: O(D).
func (g *Geometry) SiteCoords(site int) ([]int, error) {
	if site < 0 || site >= g.volume {
		return nil, ErrSiteOutOfRange
	}
	coords := make([]int, len(g.extents))
	for d := 0; d < len(g.extents); d++ {
		coords[d] = site % g.extents[d]
		site /= g.extents[d]
	}

	return coords, nil
}

// TimeOf returns the time coordinate of a flat site index. With the
// time-major layout this is a single division.
// Complexity: O(1).
func (g *Geometry) TimeOf(site int) (int, error) {
	if site < 0 || site >= g.volume {
		return 0, ErrSiteOutOfRange
	}

	return site / g.spatialVol, nil
}

// Equal reports whether two geometries have identical extents.
// Complexity: O(D).
func (g *Geometry) Equal(other *Geometry) bool {
	if other == nil || len(g.extents) != len(other.extents) {
		return false
	}
	for d, l := range g.extents {
		if other.extents[d] != l {
			return false
		}
	}

	return true
}
