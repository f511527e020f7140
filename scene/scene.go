package scene

import (
	"path/filepath"
	"sort"

	"github.com/osuushi/pga"
	"github.com/pkg/errors"
)

// A Layer is one polygon to draw, along with the construction that produced
// it.
type Layer struct {
	Name   string
	Points []pga.Point
	Color  string

	// Set on layers produced by a rotation or reflection, for drawing the
	// construction.
	Pivot  *pga.Point
	Mirror *pga.Line
}

type Scene struct {
	Canvas CanvasConfig
	Layers []Layer
}

// Build turns a config into layers. Each shape becomes a layer, and each
// transform adds its copies after all the shapes. Layers are ordered by name
// within those two groups so output is stable. Relative SVG paths are resolved
// against dir.
func Build(cfg *Config, dir string) (*Scene, error) {
	scene := &Scene{Canvas: cfg.Canvas}
	shapes := make(map[string][]pga.Point, len(cfg.Shape))

	for _, name := range sortedKeys(cfg.Shape) {
		shape := cfg.Shape[name]
		points, err := shape.points()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %q", name)
		}
		if shape.SVG != "" {
			path := shape.SVG
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			svgPoints, err := LoadSVGPolygonFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "shape %q", name)
			}
			points = append(points, svgPoints...)
		}
		color := shape.Color
		if color == "" {
			color = "#cccccc"
		}
		shapes[name] = points
		scene.Layers = append(scene.Layers, Layer{Name: name, Points: points, Color: color})
		Logger().Debug("shape", "name", name, "points", len(points), "area", pga.Polygon(points).SignedArea())
	}

	for _, name := range sortedKeys(cfg.Transform) {
		transform := cfg.Transform[name]
		v, err := transform.versor()
		if err != nil {
			return nil, errors.Wrapf(err, "transform %q", name)
		}
		layers := transformLayers(name, transform, v, shapes[transform.Shape])
		Logger().Debug("transform", "name", name, "kind", transform.Kind, "copies", len(layers))
		scene.Layers = append(scene.Layers, layers...)
	}
	return scene, nil
}

func transformLayers(name string, transform *TransformConfig, v versor, points []pga.Point) []Layer {
	color := transform.Color
	if color == "" {
		color = "#888888"
	}

	if v.flector != nil {
		mirror := v.flector.Mirror()
		return []Layer{{
			Name:   name,
			Points: pga.Polygon(points).Reflect(*v.flector),
			Color:  color,
			Mirror: &mirror,
		}}
	}

	copies := transform.Copies
	if copies == 0 {
		copies = 1
	}
	// Copy k uses the step motor composed k times
	layers := make([]Layer, 0, copies)
	current := pga.IdentityMotor
	for k := 1; k <= copies; k++ {
		current = current.Then(*v.motor)
		layers = append(layers, Layer{
			Name:   name,
			Points: pga.Polygon(points).Transform(current),
			Color:  color,
			Pivot:  v.pivot,
		})
	}
	return layers
}

// All points in the scene, used for fitting and labels.
func (s *Scene) Points() []pga.Point {
	var points []pga.Point
	for _, layer := range s.Layers {
		points = append(points, layer.Points...)
	}
	return points
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
