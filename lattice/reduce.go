// Package lattice: deterministic reductions over complex fields.
package lattice

// SliceSum sums a complex field over the spatial subvolume of each time
// slice, returning one complex number per time coordinate. This is the
// zero-momentum projection primitive: with the time-major layout each
// slice is one contiguous range, accumulated in ascending site order so
// repeated runs over the same input reproduce identical values.
// Complexity: O(V) time, O(T) memory.
func SliceSum(f *ComplexField) []complex128 {
	geom := f.Geometry()
	nt := geom.TemporalExtent()
	sv := geom.SpatialVolume()

	sums := make([]complex128, nt)
	for t := 0; t < nt; t++ {
		var acc complex128
		base := t * sv
		for x := 0; x < sv; x++ {
			acc += f.At(base + x)
		}
		sums[t] = acc
	}

	return sums
}

// VolumeSum sums a complex field over the full lattice volume, again in
// ascending site order.
// Complexity: O(V).
func VolumeSum(f *ComplexField) complex128 {
	var acc complex128
	for site := 0; site < f.Geometry().Volume(); site++ {
		acc += f.At(site)
	}

	return acc
}
