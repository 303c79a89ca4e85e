// Package plot draws 2D curves into a pixel canvas that can be presented on
// a terminal using half-block characters, giving double vertical resolution.
package plot

import (
	"image/color"

	"github.com/alex-fu27/maths/pkg/vec"
)

// Canvas is a 2D array of pixels. Height should be 2x the terminal rows the
// canvas will be drawn into.
type Canvas struct {
	Width  int          // Width in pixels (same as terminal columns)
	Height int          // Height in pixels (2x terminal rows)
	Pixels []color.RGBA // Row-major pixel data
}

// New creates a canvas with the given dimensions.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col color.RGBA) {
	for i := range c.Pixels {
		c.Pixels[i] = col
	}
}

// Set sets the pixel at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.Pixels[y*c.Width+x] = col
}

// At returns the pixel at (x, y), or transparent black out of bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return color.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// Line draws a line between two points using Bresenham's algorithm.
func (c *Canvas) Line(a, b vec.Vec2[float64], col color.RGBA) {
	x0, y0 := int(a.X()), int(a.Y())
	x1, y1 := int(b.X()), int(b.Y())

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline draws connected line segments through pts.
func (c *Canvas) Polyline(pts []vec.Vec2[float64], col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], col)
	}
}

// Axes draws an axis cross through origin (in canvas coordinates).
func (c *Canvas) Axes(origin vec.Vec2[int], col color.RGBA) {
	for x := 0; x < c.Width; x++ {
		c.Set(x, origin.Y(), col)
	}
	for y := 0; y < c.Height; y++ {
		c.Set(origin.X(), y, col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
