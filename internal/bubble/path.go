package bubble

import (
	"math"

	"github.com/gogpu/gg"
)

// PathBuilder receives outline commands. *gg.Context satisfies it directly.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Tail geometry. The tail hangs off the bottom right corner and reaches
// TailOverhang units past the rectangle on the right and bottom.
const (
	CornerRadius = 15.0
	TailOverhang = 1.0
)

// TraceBubble emits the chat bubble outline for r into b: three rounded corners
// and a pointed tail at the bottom right. Offsets are absolute, not proportional
// to r, so rectangles smaller than about 40x40 clip the tail.
func TraceBubble(b PathBuilder, r Rect) {
	x, y, w, h := r.X, r.Y, r.W, r.H
	pt := func(dx, dy float64) (float64, float64) { return x + dx, y + dy }
	line := func(dx, dy float64) { b.LineTo(pt(dx, dy)) }
	curve := func(c1x, c1y, c2x, c2y, ex, ey float64) {
		ax, ay := pt(c1x, c1y)
		bx, by := pt(c2x, c2y)
		cx, cy := pt(ex, ey)
		b.CubicTo(ax, ay, bx, by, cx, cy)
	}

	b.MoveTo(pt(w-20, h))
	line(15, h)
	// bottom left
	curve(8, h, 0, h-8, 0, h-15)
	line(0, 15)
	// top left
	curve(0, 8, 8, 0, 15, 0)
	line(w-20, 0)
	// top right
	curve(w-12, 0, w-5, 8, w-5, 15)
	line(w-5, h-12)
	// tail
	curve(w-5, h-1, w, h, w, h)
	line(w+TailOverhang, h)
	curve(w-4, h+1, w-8, h-1, w-12, h-4)
	curve(w-15, h, w-20, h, w-20, h)
	b.ClosePath()
}

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segCubic
	segClose
)

type segment struct {
	kind segKind
	pts  [3]gg.Point
}

// Outline is a recorded sequence of outline commands. It satisfies PathBuilder.
type Outline struct {
	segs []segment
}

func (o *Outline) MoveTo(x, y float64) {
	o.segs = append(o.segs, segment{kind: segMove, pts: [3]gg.Point{{X: x, Y: y}}})
}

func (o *Outline) LineTo(x, y float64) {
	o.segs = append(o.segs, segment{kind: segLine, pts: [3]gg.Point{{X: x, Y: y}}})
}

func (o *Outline) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	o.segs = append(o.segs, segment{kind: segCubic, pts: [3]gg.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

func (o *Outline) ClosePath() {
	o.segs = append(o.segs, segment{kind: segClose})
}

// Len returns the number of recorded commands.
func (o *Outline) Len() int { return len(o.segs) }

// Replay feeds every recorded command into b.
func (o *Outline) Replay(b PathBuilder) {
	for _, sg := range o.segs {
		switch sg.kind {
		case segMove:
			b.MoveTo(sg.pts[0].X, sg.pts[0].Y)
		case segLine:
			b.LineTo(sg.pts[0].X, sg.pts[0].Y)
		case segCubic:
			b.CubicTo(sg.pts[0].X, sg.pts[0].Y, sg.pts[1].X, sg.pts[1].Y, sg.pts[2].X, sg.pts[2].Y)
		case segClose:
			b.ClosePath()
		}
	}
}

// Transform returns a copy of o with every point mapped through m.
func (o *Outline) Transform(m gg.Matrix) *Outline {
	out := &Outline{segs: make([]segment, len(o.segs))}
	for i, sg := range o.segs {
		for j := range sg.pts {
			sg.pts[j] = m.TransformPoint(sg.pts[j])
		}
		out.segs[i] = sg
	}
	return out
}

// Path converts o to a *gg.Path for measuring.
func (o *Outline) Path() *gg.Path {
	p := gg.NewPath()
	o.Replay(pathRecorder{p})
	return p
}

// pathRecorder adapts *gg.Path, whose close command is named Close.
type pathRecorder struct{ *gg.Path }

func (r pathRecorder) ClosePath() { r.Close() }

// RecordBubble records the bubble outline for r.
func RecordBubble(r Rect) *Outline {
	o := &Outline{}
	TraceBubble(o, r)
	return o
}

// BuildBubblePath records the bubble outline for r as a single closed contour.
func BuildBubblePath(r Rect) *gg.Path {
	return RecordBubble(r).Path()
}

// flattenTolerance is the maximum chord deviation, in drawing units, used when
// measuring an outline.
const flattenTolerance = 0.05

// Polygon flattens p into a closed polyline. Consecutive duplicate points are
// removed and the closing point is dropped.
func Polygon(p *gg.Path) []gg.Point {
	raw := p.Flatten(flattenTolerance)
	out := make([]gg.Point, 0, len(raw))
	for _, pt := range raw {
		if n := len(out); n > 0 && nearlyEqual(out[n-1], pt) {
			continue
		}
		out = append(out, pt)
	}
	if n := len(out); n > 1 && nearlyEqual(out[0], out[n-1]) {
		out = out[:n-1]
	}
	return out
}

// Area returns the unsigned area enclosed by the flattened outline.
func Area(p *gg.Path) float64 {
	poly := Polygon(p)
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func nearlyEqual(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
