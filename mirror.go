package voxelprops

// MirrorX reflects the authoritative left half of the grid onto the
// right half, in place. For every nonzero voxel at x < size/2 the
// value is copied to size-1-x at the same y,z, unconditionally
// overwriting the destination. Empty cells copy nothing, so this is a
// one-directional sparse overlay rather than a reconciliation: any
// pre-existing content opposite an empty cell is left untouched.
//
// This is the one mutating stage of the pipeline; Hollow and
// GenerateMesh produce new values instead. Callers must not read or
// write the grid concurrently with MirrorX.
func MirrorX(g *Grid) {
	half := g.size / 2
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < half; x++ {
				if v := g.Get(x, y, z); v != 0 {
					g.Set(g.size-1-x, y, z, v)
				}
			}
		}
	}
}
