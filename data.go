package boxzoom

import (
	"image"
	"math"
)

// Data is the committed box in content coordinates together with the size
// of the content it was drawn on, which is what a caller needs to persist
// the selection or map it onto the source image.
type Data struct {
	Offset       Point   `yaml:"offset"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	Committed    bool    `yaml:"committed"`
}

// Rect returns the box rectangle in content coordinates.
func (d Data) Rect() Rect {
	return Rect{X: d.Offset.X, Y: d.Offset.Y, Width: d.Width, Height: d.Height}
}

// Valid reports whether the box is committed and has a positive area.
// Degenerate boxes (a tap) are committed like any other; callers that need
// an area check here.
func (d Data) Valid() bool {
	return d.Committed && d.Width > 0 && d.Height > 0 &&
		!math.IsNaN(d.Width) && !math.IsNaN(d.Height)
}

// Percent returns the box as percentages of the canvas size.
func (d Data) Percent() Rect {
	if d.CanvasWidth <= 0 || d.CanvasHeight <= 0 {
		return Rect{}
	}
	return Rect{
		X:      d.Offset.X / d.CanvasWidth * 100,
		Y:      d.Offset.Y / d.CanvasHeight * 100,
		Width:  d.Width / d.CanvasWidth * 100,
		Height: d.Height / d.CanvasHeight * 100,
	}
}

// PixelRect maps the box onto an image of the given natural size. Edges
// are rounded to whole pixels and the size is clamped so rounding never
// pushes the rectangle past the image.
func (d Data) PixelRect(naturalW, naturalH int) image.Rectangle {
	p := d.Percent()
	fw, fh := float64(naturalW), float64(naturalH)
	x := int(math.Round(fw * p.X / 100))
	y := int(math.Round(fh * p.Y / 100))
	w := int(math.Round(fw * p.Width / 100))
	h := int(math.Round(fh * p.Height / 100))
	x = min(max(x, 0), naturalW)
	y = min(max(y, 0), naturalH)
	w = min(max(w, 0), naturalW-x)
	h = min(max(h, 0), naturalH-y)
	return image.Rect(x, y, x+w, y+h)
}
