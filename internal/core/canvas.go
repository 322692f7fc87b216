package core

import "math"

// Canvas projects a logical drawing surface onto a region of a Screen.
// Games simulate in logical units (for example an 800x400 playfield) and the
// canvas scales that space to whatever cell area the terminal provides.
type Canvas struct {
	dst           *Screen
	area          Rect    // Target region in screen cells
	logicalWidth  float64 // Width of the logical surface
	logicalHeight float64 // Height of the logical surface
}

// NewCanvas creates a canvas that maps a logicalW x logicalH surface onto area of dst.
func NewCanvas(dst *Screen, area Rect, logicalW, logicalH float64) *Canvas {
	return &Canvas{
		dst:           dst,
		area:          area,
		logicalWidth:  logicalW,
		logicalHeight: logicalH,
	}
}

// Area returns the screen region the canvas draws into.
func (c *Canvas) Area() Rect {
	return c.area
}

// Project converts a logical rectangle to screen cells.
// Any non-empty logical rectangle covers at least one cell.
func (c *Canvas) Project(r RectF) Rect {
	if c.logicalWidth <= 0 || c.logicalHeight <= 0 {
		return NewRect(c.area.X, c.area.Y, 0, 0)
	}
	x0 := int(math.Floor(c.scaleX(r.X)))
	y0 := int(math.Floor(c.scaleY(r.Y)))
	x1 := int(math.Ceil(c.scaleX(r.Right())))
	y1 := int(math.Ceil(c.scaleY(r.Bottom())))
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return NewRect(c.area.X+x0, c.area.Y+y0, x1-x0, y1-y0)
}

// Multiply before dividing so that whole logical sizes land on exact cell edges.
func (c *Canvas) scaleX(x float64) float64 {
	return x * float64(c.area.W) / c.logicalWidth
}

func (c *Canvas) scaleY(y float64) float64 {
	return y * float64(c.area.H) / c.logicalHeight
}

// FillRect draws a filled logical rectangle, clipped to the canvas region.
func (c *Canvas) FillRect(r RectF, fill rune, col Color) {
	cells := c.Project(r)
	x0 := Clamp(cells.X, c.area.X, c.area.Right())
	x1 := Clamp(cells.Right(), c.area.X, c.area.Right())
	y0 := Clamp(cells.Y, c.area.Y, c.area.Bottom())
	y1 := Clamp(cells.Bottom(), c.area.Y, c.area.Bottom())
	c.dst.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), fill, col)
}
