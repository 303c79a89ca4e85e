package plot

import (
	"image/color"
	"testing"

	"github.com/alex-fu27/maths/pkg/vec"
)

var white = color.RGBA{255, 255, 255, 255}

func TestSetAt(t *testing.T) {
	c := New(4, 4)
	c.Set(1, 2, white)
	if c.At(1, 2) != white {
		t.Errorf("At(1, 2) = %v, want white", c.At(1, 2))
	}
	if c.At(0, 0) != (color.RGBA{}) {
		t.Error("untouched pixel not transparent black")
	}
}

func TestBoundsDropped(t *testing.T) {
	c := New(2, 2)
	c.Set(-1, 0, white)
	c.Set(0, -1, white)
	c.Set(2, 0, white)
	c.Set(0, 2, white)
	for i, p := range c.Pixels {
		if p != (color.RGBA{}) {
			t.Errorf("out-of-bounds write landed at pixel %d", i)
		}
	}
	if c.At(5, 5) != (color.RGBA{}) {
		t.Error("out-of-bounds read not transparent black")
	}
}

func TestClear(t *testing.T) {
	c := New(3, 3)
	c.Clear(white)
	for i, p := range c.Pixels {
		if p != white {
			t.Errorf("pixel %d = %v after Clear", i, p)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := New(10, 10)
	c.Line(vec.V2(1.0, 1), vec.V2(8.0, 6), white)
	if c.At(1, 1) != white {
		t.Error("line start not set")
	}
	if c.At(8, 6) != white {
		t.Error("line end not set")
	}
}

func TestLineHorizontal(t *testing.T) {
	c := New(10, 10)
	c.Line(vec.V2(0.0, 5), vec.V2(9.0, 5), white)
	for x := 0; x < 10; x++ {
		if c.At(x, 5) != white {
			t.Errorf("horizontal line missing pixel at x=%d", x)
		}
	}
}

func TestPolyline(t *testing.T) {
	c := New(10, 10)
	pts := []vec.Vec2[float64]{
		vec.V2(0.0, 0), vec.V2(5.0, 0), vec.V2(5.0, 5),
	}
	c.Polyline(pts, white)
	for _, p := range pts {
		if c.At(int(p.X()), int(p.Y())) != white {
			t.Errorf("polyline missing vertex %v", p)
		}
	}
}

func TestAxes(t *testing.T) {
	c := New(6, 6)
	c.Axes(vec.V2(2, 3), white)
	for x := 0; x < 6; x++ {
		if c.At(x, 3) != white {
			t.Errorf("x axis missing pixel at x=%d", x)
		}
	}
	for y := 0; y < 6; y++ {
		if c.At(2, y) != white {
			t.Errorf("y axis missing pixel at y=%d", y)
		}
	}
}
