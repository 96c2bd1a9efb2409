// Command voxrender renders a built-in voxel model to a PNG (and
// optionally an STL). It drives the library's documented lifecycle
// once: build grid → optional hollow → mesh → transform → render.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/MushroomFleet/voxelprops"
	"github.com/MushroomFleet/voxelprops/model"
	"github.com/MushroomFleet/voxelprops/palette"
	"github.com/MushroomFleet/voxelprops/render"
)

func main() {
	var (
		modelName   = flag.String("model", "human", "model to render (human, robot, car, tree, house, cube, sphere)")
		size        = flag.Int("size", 32, "grid resolution (side length)")
		hollow      = flag.Bool("hollow", true, "remove interior voxels before meshing")
		symmetry    = flag.Bool("symmetry", true, "use the bilateral-symmetry mesh optimization")
		fill        = flag.Bool("fill", true, "paint filled triangles")
		wire        = flag.Bool("wire", false, "paint wireframe edges")
		paletteName = flag.String("palette", "default", "palette name (default, warm, cool)")
		yaw         = flag.Float64("yaw", 0.6, "rotation about the y axis, radians")
		pitch       = flag.Float64("pitch", -0.4, "rotation about the x axis, radians")
		zoom        = flag.Float64("zoom", 1.0, "zoom factor")
		ambient     = flag.Float64("ambient", 0.35, "ambient light coefficient in [0,1]")
		width       = flag.Int("width", 800, "output width in pixels")
		height      = flag.Int("height", 800, "output height in pixels")
		supersample = flag.Int("ss", 2, "supersampling factor for antialiasing")
		out         = flag.String("o", "voxrender.png", "output PNG path")
		stlOut      = flag.String("stl", "", "also export the mesh as binary STL to this path")
	)
	flag.Parse()

	if err := run(config{
		model: *modelName, size: *size,
		hollow: *hollow, symmetry: *symmetry,
		fill: *fill, wire: *wire,
		palette: *paletteName,
		yaw:     *yaw, pitch: *pitch, zoom: *zoom, ambient: *ambient,
		width: *width, height: *height, supersample: *supersample,
		out: *out, stl: *stlOut,
	}); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	model            string
	size             int
	hollow, symmetry bool
	fill, wire       bool
	palette          string
	yaw, pitch       float64
	zoom, ambient    float64
	width, height    int
	supersample      int
	out, stl         string
}

func run(cfg config) error {
	kind, err := model.Parse(cfg.model)
	if err != nil {
		return err
	}
	pal, known := palette.Named(cfg.palette)
	if !known {
		log.Printf("unknown palette %q, using default", cfg.palette)
	}
	if cfg.supersample < 1 {
		cfg.supersample = 1
	}

	grid, err := model.Build(kind, cfg.size)
	if err != nil {
		return err
	}
	if cfg.hollow {
		var stats voxelprops.ShellStats
		grid, stats = voxelprops.Hollow(grid)
		log.Printf("hollow: removed %d kept %d (ratio %.3f)", stats.Removed, stats.Kept, stats.Ratio)
	}

	mesh := voxelprops.GenerateMesh(grid, cfg.symmetry)
	log.Printf("mesh: %d vertices, %d triangles", len(mesh.Vertices), len(mesh.Triangles))
	if len(mesh.Triangles) == 0 {
		return fmt.Errorf("model %s produced an empty mesh at size %d", kind, cfg.size)
	}

	if cfg.stl != "" {
		if err := render.CreateSTL(cfg.stl, mesh); err != nil {
			return fmt.Errorf("write %s: %w", cfg.stl, err)
		}
		log.Printf("wrote %s", cfg.stl)
	}

	// Center the grid, fit it to the unit viewport, then rotate.
	s := float64(cfg.size)
	t := voxelprops.Translate(-s/2, -s/2, -s/2)
	t = voxelprops.Mul(voxelprops.Scale(2/s*0.75*cfg.zoom), t)
	t = voxelprops.Mul(voxelprops.RotateY(cfg.yaw), t)
	t = voxelprops.Mul(voxelprops.RotateX(cfg.pitch), t)

	ss := cfg.supersample
	p := render.NewImagePainter(cfg.width*ss, cfg.height*ss, palette.Hex("#f4f1ea"))
	render.Render(p, mesh, t, render.Options{
		Width:     cfg.width * ss,
		Height:    cfg.height * ss,
		Fill:      cfg.fill,
		Wireframe: cfg.wire,
		Palette:   pal,
		Light:     r3.Unit(r3.Vec{X: -0.5, Y: 0.8, Z: -0.6}),
		Ambient:   cfg.ambient,
		LineWidth: float64(ss),
	})

	img := p.Image()
	if ss > 1 {
		img = resize.Resize(uint(cfg.width), uint(cfg.height), img, resize.Bilinear)
	}
	if err := fauxgl.SavePNG(cfg.out, img); err != nil {
		os.Remove(cfg.out)
		return fmt.Errorf("write %s: %w", cfg.out, err)
	}
	log.Printf("wrote %s", cfg.out)
	return nil
}
