// Package voxelprops renders sparse voxel volumes as shaded 2D raster
// images on the CPU. A Grid of material ids is optionally hollowed
// (interior voxels removed) and mirrored (bilateral symmetry), meshed
// into exposed-face quads, and handed to the render package which
// transforms, culls, lights, depth-sorts and paints the triangles
// through a caller-supplied painter.
package voxelprops

// Grid is a dense cubic volume of material ids stored in a single
// contiguous arena sized at creation. A material id of 0 means empty;
// any nonzero id is solid and doubles as the color-palette key.
type Grid struct {
	size      int
	symmetric bool
	cells     []byte
}

// New allocates a zero-filled size³ grid.
// It panics if size < 1.
func New(size int) *Grid {
	if size < 1 {
		panic("voxelprops: grid size must be at least 1")
	}
	return &Grid{
		size:  size,
		cells: make([]byte, size*size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Symmetric reports whether only the left half (x < size/2) of the
// grid is authoritative.
func (g *Grid) Symmetric() bool { return g.symmetric }

// SetSymmetric marks or unmarks the grid as bilaterally symmetric
// about the x midplane.
func (g *Grid) SetSymmetric(symmetric bool) { g.symmetric = symmetric }

func (g *Grid) inRange(x, y, z int) bool {
	return x >= 0 && x < g.size &&
		y >= 0 && y < g.size &&
		z >= 0 && z < g.size
}

// Get returns the material id at (x,y,z). Out-of-range coordinates
// read as empty.
func (g *Grid) Get(x, y, z int) byte {
	if !g.inRange(x, y, z) {
		return 0
	}
	return g.cells[(z*g.size+y)*g.size+x]
}

// Set writes the material id at (x,y,z). Out-of-range writes are
// silently ignored.
func (g *Grid) Set(x, y, z int, v byte) {
	if !g.inRange(x, y, z) {
		return
	}
	g.cells[(z*g.size+y)*g.size+x] = v
}

// IsInterior reports whether the voxel at (x,y,z) is solid and fully
// enclosed by its 6 axis-adjacent neighbors. Neighbors outside the
// grid read as empty, so every voxel touching the grid boundary is
// non-interior.
func (g *Grid) IsInterior(x, y, z int) bool {
	return g.Get(x, y, z) != 0 &&
		g.Get(x+1, y, z) != 0 && g.Get(x-1, y, z) != 0 &&
		g.Get(x, y+1, z) != 0 && g.Get(x, y-1, z) != 0 &&
		g.Get(x, y, z+1) != 0 && g.Get(x, y, z-1) != 0
}
