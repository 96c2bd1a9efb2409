// Package render rasterizes voxel meshes on the CPU. It transforms,
// backface-culls, lights and depth-sorts a mesh's triangles, then
// issues fill and stroke calls to a caller-supplied Painter. There is
// no z-buffer: ordering is the painter's algorithm over average
// triangle depth, accepted by design for the convex, axis-aligned
// geometry voxel meshes produce.
package render

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MushroomFleet/voxelprops"
	"github.com/MushroomFleet/voxelprops/palette"
)

// Painter is the 2D drawing surface the rasterizer paints into.
// Background clearing and frame scheduling are the host's business.
type Painter interface {
	FillTriangle(p0, p1, p2 r2.Vec, c color.RGBA)
	StrokeLine(p0, p1 r2.Vec, c color.RGBA, width float64)
}

// Options configures one Render pass.
type Options struct {
	Width, Height int

	Fill      bool
	Wireframe bool

	// Palette maps material ids to tri-tone ramps. Missing ids fall
	// back to id 1 and then to a built-in gray ramp.
	Palette palette.Palette

	// Light is the direction toward the light source in object space.
	// Callers normalize it; lighting uses it as given.
	Light r3.Vec
	// Ambient is the base light level in [0,1].
	Ambient float64

	// LineColor and LineWidth style the wireframe pass. Zero values
	// select near-black and width 1.
	LineColor color.RGBA
	LineWidth float64
}

// tri is one surviving triangle queued for painting.
type tri struct {
	p         [3]r2.Vec
	idx       [3]int
	depth     float64
	intensity float64
	id        byte
}

// Render draws mesh through p using the combined transform t. It
// holds no state between calls; the same mesh may be rendered
// concurrently with different transforms. An empty mesh is a no-op.
func Render(p Painter, mesh *voxelprops.Mesh, t voxelprops.Transform, o Options) {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return
	}
	if o.LineWidth == 0 {
		o.LineWidth = 1
	}
	if o.LineColor == (color.RGBA{}) {
		o.LineColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	}

	// Transform every vertex and map to pixel space. Transformed z is
	// retained as the depth sort key.
	halfW := float64(o.Width) / 2
	halfH := float64(o.Height) / 2
	screen := make([]r2.Vec, len(mesh.Vertices))
	depth := make([]float64, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		q := t.Apply(v)
		screen[i] = r2.Vec{X: (q.X + 1) * halfW, Y: (1 - q.Y) * halfH}
		depth[i] = q.Z
	}

	visible := make([]tri, 0, len(mesh.Triangles)/2)
	for _, tr := range mesh.Triangles {
		p0, p1, p2 := screen[tr[0]], screen[tr[1]], screen[tr[2]]
		// Cull on screen-space signed area before any lighting work.
		// Zero-area triangles are culled too.
		area := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
		if area <= 0 {
			continue
		}
		// Face normal from the untransformed object-space edges. A
		// zero-length cross stays the zero vector and contributes no
		// directional light.
		a, b, c := mesh.Vertices[tr[0]], mesh.Vertices[tr[1]], mesh.Vertices[tr[2]]
		n := r3.Cross(b.Sub(a), c.Sub(a))
		if nn := r3.Norm(n); nn != 0 {
			n = r3.Scale(1/nn, n)
		}
		intensity := o.Ambient + (1-o.Ambient)*math.Max(0, r3.Dot(n, o.Light))
		visible = append(visible, tri{
			p:         [3]r2.Vec{p0, p1, p2},
			idx:       tr,
			depth:     (depth[tr[0]] + depth[tr[1]] + depth[tr[2]]) / 3,
			intensity: intensity,
			id:        mesh.Colors[tr[0]],
		})
	}

	// Painter's algorithm: farthest first.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	if o.Fill {
		for _, v := range visible {
			c := Shade(o.Palette.Lookup(v.id), v.intensity)
			p.FillTriangle(v.p[0], v.p[1], v.p[2], c)
		}
	}
	if o.Wireframe {
		// One stroke per unique undirected edge across the whole
		// mesh, keyed by sorted index pair.
		seen := make(map[[2]int]struct{}, 3*len(visible))
		for _, v := range visible {
			for k := 0; k < 3; k++ {
				i0, i1 := v.idx[k], v.idx[(k+1)%3]
				if i0 > i1 {
					i0, i1 = i1, i0
				}
				key := [2]int{i0, i1}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				p.StrokeLine(screen[i0], screen[i1], o.LineColor, o.LineWidth)
			}
		}
	}
}

// Shade maps a lighting intensity onto an entry's two-segment ramp:
// shadow→base over intensity < 0.5, base→highlight above.
func Shade(e palette.Entry, intensity float64) color.RGBA {
	if intensity < 0.5 {
		return lerp(e.Shadow, e.Base, intensity*2)
	}
	return lerp(e.Base, e.Highlight, (intensity-0.5)*2)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: 0xff,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
