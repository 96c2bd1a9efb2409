package voxelprops

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MushroomFleet/voxelprops/internal/d3"
)

// Mesh is the immutable triangle-soup surface of a grid. Each exposed
// voxel face contributes 4 fresh vertices and 2 triangles; vertices
// are never shared across faces and the 4 vertices of one face always
// carry the same material id, so shading may read a triangle's color
// from its first vertex index alone.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
	// Colors holds one material id per vertex, aligned with Vertices.
	Colors []byte

	// Size and Symmetric are carried from the source grid.
	Size      int
	Symmetric bool
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
// The zero box is returned for an empty mesh.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = d3.MinElem(min, v)
		max = d3.MaxElem(max, v)
	}
	return r3.Box{Min: min, Max: max}
}

// faces lists the 6 axis directions. Corner offsets are ordered
// counterclockwise as seen from outside the voxel, so the cross
// product of a face's first two edges is its outward normal and the
// two triangles cut on the 0-2 diagonal inherit that winding.
var faces = [6]struct {
	dx, dy, dz int
	corner     [4]r3.Vec
}{
	{1, 0, 0, [4]r3.Vec{{X: 1}, {X: 1, Y: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Z: 1}}},
	{-1, 0, 0, [4]r3.Vec{{}, {Z: 1}, {Y: 1, Z: 1}, {Y: 1}}},
	{0, 1, 0, [4]r3.Vec{{Y: 1}, {Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1}}},
	{0, -1, 0, [4]r3.Vec{{}, {X: 1}, {X: 1, Z: 1}, {Z: 1}}},
	{0, 0, 1, [4]r3.Vec{{Z: 1}, {X: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {Y: 1, Z: 1}}},
	{0, 0, -1, [4]r3.Vec{{}, {Y: 1}, {X: 1, Y: 1}, {X: 1}}},
}

// GenerateMesh extracts the exposed-face surface of g as a new Mesh.
// A face is exposed when its voxel is solid and the neighbor in the
// face direction is empty or outside the grid.
//
// When useSymmetry is true and the grid is flagged symmetric, only
// the half extent x < ⌈size/2⌉ is scanned and the resulting geometry
// is mirrored across the x = size boundary plane: every vertex is
// duplicated at size-x (the boundary reflection, distinct from the
// voxel-center size-1-x used by MirrorX, so the halves tile without a
// seam) and every triangle is duplicated on the new indices with
// reversed winding. All original faces precede all mirrored faces.
func GenerateMesh(g *Grid, useSymmetry bool) *Mesh {
	mirrored := useSymmetry && g.symmetric
	xmax := g.size
	if mirrored {
		xmax = (g.size + 1) / 2
	}
	m := &Mesh{Size: g.size, Symmetric: g.symmetric}
	for z := 0; z < g.size; z++ {
		for y := 0; y < g.size; y++ {
			for x := 0; x < xmax; x++ {
				v := g.Get(x, y, z)
				if v == 0 {
					continue
				}
				for _, f := range faces {
					if g.Get(x+f.dx, y+f.dy, z+f.dz) != 0 {
						continue
					}
					m.addFace(x, y, z, f.corner, v)
				}
			}
		}
	}
	if mirrored {
		m.mirrorX()
	}
	return m
}

func (m *Mesh) addFace(x, y, z int, corner [4]r3.Vec, id byte) {
	base := len(m.Vertices)
	for _, c := range corner {
		m.Vertices = append(m.Vertices, r3.Vec{
			X: float64(x) + c.X,
			Y: float64(y) + c.Y,
			Z: float64(z) + c.Z,
		})
		m.Colors = append(m.Colors, id)
	}
	m.Triangles = append(m.Triangles,
		[3]int{base, base + 1, base + 2},
		[3]int{base, base + 2, base + 3})
}

// mirrorX duplicates the half-extent geometry across x = Size.
// Reflection flips handedness, so the mirrored triangles swap their
// second and third indices to keep facing outward.
func (m *Mesh) mirrorX() {
	nv := len(m.Vertices)
	size := float64(m.Size)
	for i := 0; i < nv; i++ {
		v := m.Vertices[i]
		m.Vertices = append(m.Vertices, r3.Vec{X: size - v.X, Y: v.Y, Z: v.Z})
		m.Colors = append(m.Colors, m.Colors[i])
	}
	nt := len(m.Triangles)
	for i := 0; i < nt; i++ {
		t := m.Triangles[i]
		m.Triangles = append(m.Triangles, [3]int{t[0] + nv, t[2] + nv, t[1] + nv})
	}
}
