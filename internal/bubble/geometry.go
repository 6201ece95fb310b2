package bubble

import "fmt"

// Size is a target raster size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is the sticker size used when the caller does not pick one.
var DefaultSize = Size{Width: 300, Height: 150}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Rect is an axis-aligned rectangle in drawing units, origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

// Bounds returns the rectangle covering s, anchored at the origin.
func (s Size) Bounds() Rect {
	return Rect{W: float64(s.Width), H: float64(s.Height)}
}

// Inset shrinks r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Offset moves r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty reports whether r has a non-positive width or height.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// MidY is the vertical center of r.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// MidX is the horizontal center of r.
func (r Rect) MidX() float64 { return r.X + r.W/2 }
