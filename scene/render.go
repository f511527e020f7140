package scene

import (
	"github.com/fogleman/gg"
	"github.com/osuushi/pga"
	"github.com/osuushi/pga/internal"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Viewport is the world-space rectangle the canvas shows. The origin is at the
// center of the canvas.
func (s *Scene) Viewport() pga.Viewport {
	halfWidth := float64(s.Canvas.Width) / s.Canvas.Scale / 2
	halfHeight := float64(s.Canvas.Height) / s.Canvas.Scale / 2
	return pga.Viewport{
		Min: pga.NewPoint(-halfWidth, -halfHeight),
		Max: pga.NewPoint(halfWidth, halfHeight),
	}
}

// Render draws every layer in order. Constructions (mirror lines and rotation
// pivots) are drawn on top.
func (s *Scene) Render() *gg.Context {
	width, height := s.Canvas.Width, s.Canvas.Height
	c := gg.NewContext(width, height)
	c.SetHexColor(s.Canvas.Background)
	c.Clear()

	// Flip the context so y points up, with the origin at the center
	c.Translate(float64(width)/2, float64(height)/2)
	c.Scale(s.Canvas.Scale, -s.Canvas.Scale)

	viewport := s.Viewport()
	c.SetLineWidth(1.5)
	for _, layer := range s.Layers {
		c.SetHexColor(layer.Color)
		internal.DrawPolygon(c, layer.Points)
		c.FillPreserve()
		c.Stroke()
	}

	c.SetRGBA(1, 0.2, 0.6, 0.8)
	c.SetDash(6, 4)
	drawnMirrors := map[pga.Line]bool{}
	for _, layer := range s.Layers {
		if layer.Mirror != nil && !drawnMirrors[*layer.Mirror] {
			drawnMirrors[*layer.Mirror] = true
			internal.Draw(c, *layer.Mirror, viewport, 0)
		}
	}
	c.SetDash()
	for _, layer := range s.Layers {
		if layer.Pivot != nil {
			internal.Draw(c, *layer.Pivot, viewport, 3/s.Canvas.Scale)
		}
	}

	if s.Canvas.Labels {
		s.drawLabels(c)
	}
	return c
}

// Text has to be drawn in device coordinates, or it comes out upside down.
func (s *Scene) drawLabels(c *gg.Context) {
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(1, 1, 1)
	for _, layer := range s.Layers {
		center, err := pga.Centroid(layer.Points)
		if err != nil {
			continue
		}
		x, y := c.TransformPoint(center.X(), center.Y())
		c.Push()
		c.Identity()
		c.DrawStringAnchored(layer.Name, x, y, 0.5, 0.5)
		c.Pop()
	}
}

func (s *Scene) SavePNG(path string) error {
	c := s.Render()
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	Logger().Info("rendered scene", "path", path, "width", s.Canvas.Width, "height", s.Canvas.Height, "layers", len(s.Layers))
	return nil
}
