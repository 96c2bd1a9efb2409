package model

import "github.com/MushroomFleet/voxelprops"

// Material ids, shared with the palette tables.
const (
	matSkin   = 1
	matCloth  = 2
	matTrim   = 3
	matMetal  = 4
	matGlass  = 5
	matLeaves = 6
	matWood   = 7
	matWall   = 8
	matRoof   = 9
)

// fillBox writes id into the half-open box [x0,x1)×[y0,y1)×[z0,z1).
// Out-of-range cells are dropped by the grid itself.
func fillBox(g *voxelprops.Grid, x0, y0, z0, x1, y1, z1 int, id byte) {
	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				g.Set(x, y, z, id)
			}
		}
	}
}

// at maps a fraction of the grid side to a cell coordinate.
func at(g *voxelprops.Grid, f float64) int {
	return int(f*float64(g.Size()) + 0.5)
}

// half is the authoring extent for symmetric models: x < half is
// written, the mirror fills the rest.
func half(g *voxelprops.Grid) int { return (g.Size() + 1) / 2 }

func buildHuman(g *voxelprops.Grid) {
	h := half(g)
	// legs
	fillBox(g, at(g, 0.30), 0, at(g, 0.38), at(g, 0.46), at(g, 0.40), at(g, 0.62), matTrim)
	// torso
	fillBox(g, at(g, 0.28), at(g, 0.40), at(g, 0.35), h, at(g, 0.72), at(g, 0.65), matCloth)
	// arm
	fillBox(g, at(g, 0.12), at(g, 0.42), at(g, 0.40), at(g, 0.28), at(g, 0.70), at(g, 0.60), matCloth)
	// hand
	fillBox(g, at(g, 0.12), at(g, 0.34), at(g, 0.40), at(g, 0.28), at(g, 0.42), at(g, 0.60), matSkin)
	// head
	fillBox(g, at(g, 0.34), at(g, 0.72), at(g, 0.38), h, at(g, 0.95), at(g, 0.62), matSkin)
}

func buildRobot(g *voxelprops.Grid) {
	h := half(g)
	// tracks
	fillBox(g, at(g, 0.26), 0, at(g, 0.34), at(g, 0.48), at(g, 0.32), at(g, 0.66), matTrim)
	// torso
	fillBox(g, at(g, 0.22), at(g, 0.32), at(g, 0.30), h, at(g, 0.68), at(g, 0.70), matMetal)
	// chest panel, overwrites the front slab of the torso
	fillBox(g, at(g, 0.34), at(g, 0.42), at(g, 0.62), h, at(g, 0.58), at(g, 0.70), matGlass)
	// arm
	fillBox(g, at(g, 0.08), at(g, 0.36), at(g, 0.40), at(g, 0.22), at(g, 0.66), at(g, 0.60), matTrim)
	// head
	fillBox(g, at(g, 0.32), at(g, 0.68), at(g, 0.36), h, at(g, 0.92), at(g, 0.64), matMetal)
	// visor, overwrites the front slab of the head
	fillBox(g, at(g, 0.36), at(g, 0.74), at(g, 0.58), h, at(g, 0.84), at(g, 0.64), matGlass)
	// antenna
	fillBox(g, at(g, 0.46), at(g, 0.92), at(g, 0.46), h, at(g, 1.0), at(g, 0.54), matTrim)
}

func buildCar(g *voxelprops.Grid) {
	h := half(g)
	// body, long axis along z
	fillBox(g, at(g, 0.14), at(g, 0.18), at(g, 0.04), h, at(g, 0.42), at(g, 0.96), matRoof)
	// cabin
	fillBox(g, at(g, 0.22), at(g, 0.42), at(g, 0.28), h, at(g, 0.62), at(g, 0.72), matGlass)
	// wheels
	fillBox(g, at(g, 0.12), 0, at(g, 0.10), at(g, 0.26), at(g, 0.18), at(g, 0.28), matTrim)
	fillBox(g, at(g, 0.12), 0, at(g, 0.72), at(g, 0.26), at(g, 0.18), at(g, 0.90), matTrim)
}

func buildTree(g *voxelprops.Grid) {
	h := half(g)
	// trunk
	fillBox(g, at(g, 0.44), 0, at(g, 0.44), h, at(g, 0.48), at(g, 0.56), matWood)
	// canopy
	fillBox(g, at(g, 0.22), at(g, 0.42), at(g, 0.22), h, at(g, 0.82), at(g, 0.78), matLeaves)
	// crown
	fillBox(g, at(g, 0.34), at(g, 0.82), at(g, 0.34), h, at(g, 0.96), at(g, 0.66), matLeaves)
}

func buildHouse(g *voxelprops.Grid) {
	h := half(g)
	// walls
	fillBox(g, at(g, 0.08), 0, at(g, 0.14), h, at(g, 0.54), at(g, 0.86), matWall)
	// door, overwrites the front wall slab
	fillBox(g, at(g, 0.40), 0, at(g, 0.80), h, at(g, 0.30), at(g, 0.86), matWood)
	// window
	fillBox(g, at(g, 0.14), at(g, 0.28), at(g, 0.80), at(g, 0.30), at(g, 0.44), at(g, 0.86), matGlass)
	// roof: stepped layers shrinking toward the ridge
	x0, z0, z1 := at(g, 0.04), at(g, 0.10), at(g, 0.90)
	for y := at(g, 0.54); y < g.Size() && x0 < h && z0 < z1; y++ {
		fillBox(g, x0, y, z0, h, y+1, z1, matRoof)
		x0++
		z0++
		z1--
	}
}

func buildCube(g *voxelprops.Grid) {
	m := at(g, 0.12)
	fillBox(g, m, m, m, g.Size()-m, g.Size()-m, g.Size()-m, matCloth)
}

func buildSphere(g *voxelprops.Grid) {
	s := g.Size()
	c := float64(s-1) / 2
	r := 0.46 * float64(s)
	r2 := r * r
	for z := 0; z < s; z++ {
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				dx, dy, dz := float64(x)-c, float64(y)-c, float64(z)-c
				if dx*dx+dy*dy+dz*dz <= r2 {
					g.Set(x, y, z, matMetal)
				}
			}
		}
	}
}
