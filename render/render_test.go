package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"

	"github.com/MushroomFleet/voxelprops"
	"github.com/MushroomFleet/voxelprops/model"
	"github.com/MushroomFleet/voxelprops/palette"
	"github.com/MushroomFleet/voxelprops/render"
)

type fillCall struct {
	P0, P1, P2 r2.Vec
	C          color.RGBA
}

type strokeCall struct {
	P0, P1 r2.Vec
	C      color.RGBA
	W      float64
}

// recorder captures draw calls in issue order.
type recorder struct {
	fills   []fillCall
	strokes []strokeCall
}

func (r *recorder) FillTriangle(p0, p1, p2 r2.Vec, c color.RGBA) {
	r.fills = append(r.fills, fillCall{p0, p1, p2, c})
}

func (r *recorder) StrokeLine(p0, p1 r2.Vec, c color.RGBA, width float64) {
	r.strokes = append(r.strokes, strokeCall{p0, p1, c, width})
}

// frontTriangle appends a triangle at depth z facing the default
// viewport (positive screen-space signed area under the y-flipping
// pixel map).
func frontTriangle(m *voxelprops.Mesh, z float64, id byte) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices,
		r3.Vec{X: -0.5, Y: -0.5, Z: z},
		r3.Vec{X: 0, Y: 0.5, Z: z},
		r3.Vec{X: 0.5, Y: -0.5, Z: z},
	)
	m.Colors = append(m.Colors, id, id, id)
	m.Triangles = append(m.Triangles, [3]int{base, base + 1, base + 2})
}

var testPalette = palette.Palette{
	1: {Base: color.RGBA{R: 128, A: 255}, Highlight: color.RGBA{R: 255, A: 255}, Shadow: color.RGBA{R: 64, A: 255}},
	2: {Base: color.RGBA{G: 128, A: 255}, Highlight: color.RGBA{G: 255, A: 255}, Shadow: color.RGBA{G: 64, A: 255}},
	3: {Base: color.RGBA{B: 128, A: 255}, Highlight: color.RGBA{B: 255, A: 255}, Shadow: color.RGBA{B: 64, A: 255}},
}

func baseOptions() render.Options {
	return render.Options{
		Width:   100,
		Height:  100,
		Fill:    true,
		Palette: testPalette,
		Light:   r3.Vec{Z: -1},
		Ambient: 0,
	}
}

func TestRenderEmptyMeshIsNoOp(t *testing.T) {
	var rec recorder
	render.Render(&rec, &voxelprops.Mesh{Size: 4}, voxelprops.Identity(), baseOptions())
	render.Render(&rec, nil, voxelprops.Identity(), baseOptions())
	if len(rec.fills) != 0 || len(rec.strokes) != 0 {
		t.Fatalf("empty mesh issued %d fills, %d strokes", len(rec.fills), len(rec.strokes))
	}
}

func TestRenderPaintsFarthestFirst(t *testing.T) {
	m := &voxelprops.Mesh{Size: 4}
	frontTriangle(m, 1.0, 1)
	frontTriangle(m, 5.0, 2)
	frontTriangle(m, 3.0, 3)

	var rec recorder
	o := baseOptions()
	o.Ambient = 1 // intensity 1 everywhere: fills are pure highlight colors
	render.Render(&rec, m, voxelprops.Identity(), o)

	if len(rec.fills) != 3 {
		t.Fatalf("fills = %d, want 3", len(rec.fills))
	}
	want := []color.RGBA{
		testPalette[2].Highlight, // z = 5.0
		testPalette[3].Highlight, // z = 3.0
		testPalette[1].Highlight, // z = 1.0
	}
	for i, f := range rec.fills {
		if f.C != want[i] {
			t.Errorf("fill %d color = %v, want %v", i, f.C, want[i])
		}
	}
}

func TestRenderCullsBackAndZeroAreaFaces(t *testing.T) {
	m := &voxelprops.Mesh{Size: 4}
	// Back-facing: the front winding reversed.
	m.Vertices = append(m.Vertices,
		r3.Vec{X: -0.5, Y: -0.5}, r3.Vec{X: 0.5, Y: -0.5}, r3.Vec{X: 0, Y: 0.5})
	m.Colors = append(m.Colors, 1, 1, 1)
	m.Triangles = append(m.Triangles, [3]int{0, 1, 2})
	// Zero screen-space area: colinear points. The boundary is <= 0.
	m.Vertices = append(m.Vertices,
		r3.Vec{X: -0.5, Y: -0.5}, r3.Vec{}, r3.Vec{X: 0.5, Y: 0.5})
	m.Colors = append(m.Colors, 1, 1, 1)
	m.Triangles = append(m.Triangles, [3]int{3, 4, 5})

	var rec recorder
	render.Render(&rec, m, voxelprops.Identity(), baseOptions())
	if len(rec.fills) != 0 {
		t.Fatalf("culled faces were painted: %d fills", len(rec.fills))
	}
}

func TestRenderLighting(t *testing.T) {
	// The front triangle's object-space normal is (0,0,-1).
	m := &voxelprops.Mesh{Size: 4}
	frontTriangle(m, 0, 1)

	cases := []struct {
		name    string
		light   r3.Vec
		ambient float64
		want    color.RGBA
	}{
		{"full", r3.Vec{Z: -1}, 0, testPalette[1].Highlight},     // intensity 1
		{"ambient mid", r3.Vec{X: 1}, 0.5, testPalette[1].Base},  // dot 0, intensity 0.5
		{"dark", r3.Vec{Z: 1}, 0, testPalette[1].Shadow},         // dot clamped to 0
		{"no light dir", r3.Vec{}, 0.25, render.Shade(testPalette[1], 0.25)},
	}
	for _, c := range cases {
		var rec recorder
		o := baseOptions()
		o.Light = c.light
		o.Ambient = c.ambient
		render.Render(&rec, m, voxelprops.Identity(), o)
		if len(rec.fills) != 1 {
			t.Fatalf("%s: fills = %d, want 1", c.name, len(rec.fills))
		}
		if rec.fills[0].C != c.want {
			t.Errorf("%s: color = %v, want %v", c.name, rec.fills[0].C, c.want)
		}
	}
}

func TestShadeTwoSegmentRamp(t *testing.T) {
	e := palette.Entry{
		Shadow:    color.RGBA{R: 0, A: 255},
		Base:      color.RGBA{R: 100, A: 255},
		Highlight: color.RGBA{R: 200, A: 255},
	}
	cases := []struct {
		intensity float64
		wantR     uint8
	}{
		{0, 0},
		{0.25, 50},
		{0.5, 100},
		{0.75, 150},
		{1, 200},
	}
	for _, c := range cases {
		if got := render.Shade(e, c.intensity); got.R != c.wantR {
			t.Errorf("Shade(%v).R = %d, want %d", c.intensity, got.R, c.wantR)
		}
	}
}

func TestRenderPaletteFallback(t *testing.T) {
	m := &voxelprops.Mesh{Size: 4}
	frontTriangle(m, 0, 77) // id absent from testPalette

	var rec recorder
	o := baseOptions()
	o.Ambient = 1
	render.Render(&rec, m, voxelprops.Identity(), o)
	if len(rec.fills) != 1 {
		t.Fatalf("fills = %d, want 1", len(rec.fills))
	}
	if want := testPalette[1].Highlight; rec.fills[0].C != want {
		t.Errorf("fallback color = %v, want id 1 highlight %v", rec.fills[0].C, want)
	}
}

func TestRenderWireframeDedupsSharedEdges(t *testing.T) {
	// One quad as the mesh builder emits it: 4 vertices, 2 triangles
	// sharing the 0-2 diagonal. 6 directed edges, 5 unique.
	m := &voxelprops.Mesh{
		Size: 4,
		Vertices: []r3.Vec{
			{X: -0.5, Y: -0.5}, {X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5},
		},
		Colors:    []byte{1, 1, 1, 1},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	var rec recorder
	o := baseOptions()
	o.Fill = false
	o.Wireframe = true
	render.Render(&rec, m, voxelprops.Identity(), o)

	if len(rec.strokes) != 5 {
		t.Fatalf("strokes = %d, want 5 unique edges", len(rec.strokes))
	}
	for _, s := range rec.strokes {
		if s.W != 1 {
			t.Errorf("default stroke width = %v, want 1", s.W)
		}
	}
	seen := map[strokeCall]bool{}
	for _, s := range rec.strokes {
		if seen[s] {
			t.Errorf("duplicate stroke %+v", s)
		}
		seen[s] = true
	}
}

func TestRenderStateless(t *testing.T) {
	g, err := model.Build(model.Robot, 16)
	if err != nil {
		t.Fatal(err)
	}
	g, _ = voxelprops.Hollow(g)
	m := voxelprops.GenerateMesh(g, true)

	o := baseOptions()
	o.Palette = palette.Default
	o.Wireframe = true
	tr := voxelprops.Mul(voxelprops.RotateY(0.5), voxelprops.Mul(
		voxelprops.Scale(2.0/16), voxelprops.Translate(-8, -8, -8)))

	var first, second recorder
	render.Render(&first, m, tr, o)
	render.Render(&second, m, tr, o)

	if diff := cmp.Diff(first.fills, second.fills); diff != "" {
		t.Errorf("fill sequence not reproducible:\n%s", diff)
	}
	if diff := cmp.Diff(first.strokes, second.strokes); diff != "" {
		t.Errorf("stroke sequence not reproducible:\n%s", diff)
	}
}

func renderPNG(t *testing.T, m *voxelprops.Mesh, tr voxelprops.Transform, o render.Options) []byte {
	t.Helper()
	p := render.NewImagePainter(o.Width, o.Height, palette.Hex("#f4f1ea"))
	render.Render(p, m, tr, o)
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImagePainterDeterministic(t *testing.T) {
	g, err := model.Build(model.Tree, 16)
	if err != nil {
		t.Fatal(err)
	}
	g, _ = voxelprops.Hollow(g)
	m := voxelprops.GenerateMesh(g, true)

	tr := voxelprops.Translate(-8, -8, -8)
	tr = voxelprops.Mul(voxelprops.Scale(2.0/16*0.75), tr)
	tr = voxelprops.Mul(voxelprops.RotateY(0.6), tr)
	tr = voxelprops.Mul(voxelprops.RotateX(-0.4), tr)

	o := render.Options{
		Width: 160, Height: 160,
		Fill:    true,
		Palette: palette.Default,
		Light:   r3.Unit(r3.Vec{X: -0.5, Y: 0.8, Z: -0.6}),
		Ambient: 0.35,
	}
	a := renderPNG(t, m, tr, o)
	b := renderPNG(t, m, tr, o)
	equal, err := cmpimg.EqualApprox("png", a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("two identical render passes produced different images")
	}
}
