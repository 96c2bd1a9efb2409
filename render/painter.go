package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

// ImagePainter is a Painter over an in-memory 2D canvas. It is the
// reference Painter implementation; hosts with their own drawing
// surface implement Painter directly.
type ImagePainter struct {
	dc *gg.Context
}

var _ Painter = (*ImagePainter)(nil)

// NewImagePainter returns a width×height canvas cleared to the given
// background color.
func NewImagePainter(width, height int, background color.Color) *ImagePainter {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return &ImagePainter{dc: dc}
}

// FillTriangle paints a solid triangle.
func (ip *ImagePainter) FillTriangle(p0, p1, p2 r2.Vec, c color.RGBA) {
	ip.dc.MoveTo(p0.X, p0.Y)
	ip.dc.LineTo(p1.X, p1.Y)
	ip.dc.LineTo(p2.X, p2.Y)
	ip.dc.ClosePath()
	ip.dc.SetColor(c)
	ip.dc.Fill()
}

// StrokeLine paints a line segment of the given width.
func (ip *ImagePainter) StrokeLine(p0, p1 r2.Vec, c color.RGBA, width float64) {
	ip.dc.MoveTo(p0.X, p0.Y)
	ip.dc.LineTo(p1.X, p1.Y)
	ip.dc.SetColor(c)
	ip.dc.SetLineWidth(width)
	ip.dc.Stroke()
}

// Image returns the painted canvas.
func (ip *ImagePainter) Image() image.Image { return ip.dc.Image() }
