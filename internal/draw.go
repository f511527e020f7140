package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing so points on the edge stay visible
const dbgDrawPadding = 40

// A Viewport is the axis aligned world-space rectangle that is visible on a
// canvas.
type Viewport struct {
	Min, Max Point
}

func (v Viewport) Width() float64  { return v.Max.X() - v.Min.X() }
func (v Viewport) Height() float64 { return v.Max.Y() - v.Min.Y() }

// Edges returns the left, right, bottom and top border lines.
func (v Viewport) Edges() [4]Line {
	return [4]Line{
		NewLine(1, 0, -v.Min.X()),
		NewLine(1, 0, -v.Max.X()),
		NewLine(0, 1, -v.Min.Y()),
		NewLine(0, 1, -v.Max.Y()),
	}
}

// Contains is inclusive, and tolerance based so that meets computed from the
// edges count as inside.
func (v Viewport) Contains(p Point) bool {
	const slack = 1e-7
	return p.X() >= v.Min.X()-slack && p.X() <= v.Max.X()+slack &&
		p.Y() >= v.Min.Y()-slack && p.Y() <= v.Max.Y()+slack
}

// ClipLine finds the segment of l that is visible in the viewport. The line is
// met with each border, and the two visible meets farthest apart are the
// segment's ends. ok is false when the line misses the viewport, or is the
// line at infinity.
func (v Viewport) ClipLine(l Line) (a, b Point, ok bool) {
	if l.IsDegenerate() {
		return a, b, false
	}
	var hits []Point
	for _, edge := range v.Edges() {
		if p, isPoint := l.Meet(edge).(Point); isPoint && v.Contains(p) {
			hits = append(hits, p)
		}
	}
	best := -1.0
	for i := range hits {
		for j := i + 1; j < len(hits); j++ {
			if dist := hits[i].DistanceTo(hits[j]); dist > best {
				best = dist
				a, b = hits[i], hits[j]
			}
		}
	}
	// Order the ends along the line's own orientation
	if best >= 0 && b.Sub(a).Dot(l.Direction()) < 0 {
		a, b = b, a
	}
	return a, b, best > 0
}

// Draw a geometric value on a context whose transform already maps world
// coordinates. Points are dots, directions are arrows from the origin, and
// lines are clipped to the viewport. The caller sets colors and strokes.
func Draw(c *gg.Context, g Geometric, viewport Viewport, radius float64) {
	switch g := g.(type) {
	case Point:
		c.DrawCircle(g.X(), g.Y(), radius)
		c.Fill()
	case Direction:
		drawArrow(c, Origin, Origin.Add(g), radius*3)
		c.Stroke()
	case Line:
		if a, b, ok := viewport.ClipLine(g); ok {
			c.DrawLine(a.X(), a.Y(), b.X(), b.Y())
			c.Stroke()
		}
	}
}

// DrawPolygon adds a closed path through the points. The caller fills or
// strokes it.
func DrawPolygon(c *gg.Context, points []Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X(), points[0].Y())
	for _, p := range points[1:] {
		c.LineTo(p.X(), p.Y())
	}
	c.ClosePath()
}

func drawArrow(c *gg.Context, from, to Point, head float64) {
	c.DrawLine(from.X(), from.Y(), to.X(), to.Y())
	shaft := to.Sub(from)
	if shaft.MagSqr() == 0 {
		return
	}
	back := shaft.SetLength(-head)
	for _, side := range []float64{math.Pi / 6, -math.Pi / 6} {
		tip := to.Add(back.Rotate(side))
		c.DrawLine(to.X(), to.Y(), tip.X(), tip.Y())
	}
}

// Fit a viewport around the given values, always including the origin so
// directions have somewhere to start.
func fitViewport(values []Geometric) Viewport {
	points := []Point{Origin}
	for _, g := range values {
		switch g := g.(type) {
		case Point:
			points = append(points, g)
		case Direction:
			points = append(points, g.ToPoint())
		}
	}
	min, max := Bounds(points)
	pad := NewDirection(1, 1)
	return Viewport{min.SubDirection(pad), max.Add(pad)}
}

// Helper to draw geometric values and print them in the terminal (iTerm only)
// for debugging.
func dbgDraw(scale float64, values ...Geometric) {
	viewport := fitViewport(values)
	width := int(scale*viewport.Width()) + dbgDrawPadding*2
	height := int(scale*viewport.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-viewport.Min.X(), -viewport.Min.Y())

	c.SetLineWidth(2)
	for _, g := range values {
		switch g.(type) {
		case Point:
			c.SetRGB(1, 1, 0)
		case Direction:
			c.SetRGB(0, 1, 1)
		case Line:
			c.SetRGB(1, 0, 1)
		}
		Draw(c, g, viewport, 3/scale)
	}

	c.SavePNG("/tmp/pga.png")
	imgcat.CatFile("/tmp/pga.png", os.Stdout)
}
