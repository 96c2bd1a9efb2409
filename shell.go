package voxelprops

// ShellStats summarizes one Hollow pass.
type ShellStats struct {
	Removed int
	Kept    int
	// Ratio is Kept/(Kept+Removed), or 0 for an all-empty grid.
	Ratio float64
}

// Hollow returns a new grid of identical size containing only the
// boundary (non-interior) voxels of g, plus removal statistics. The
// input grid is not modified. Classification of each cell depends
// only on the input, never on scan order, and a second pass over the
// output removes nothing further.
func Hollow(g *Grid) (*Grid, ShellStats) {
	out := New(g.size)
	out.symmetric = g.symmetric
	var stats ShellStats
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < g.size; x++ {
				v := g.Get(x, y, z)
				if v == 0 {
					continue
				}
				if g.IsInterior(x, y, z) {
					stats.Removed++
					continue
				}
				out.Set(x, y, z, v)
				stats.Kept++
			}
		}
	}
	if total := stats.Kept + stats.Removed; total > 0 {
		stats.Ratio = float64(stats.Kept) / float64(total)
	}
	return out, stats
}
