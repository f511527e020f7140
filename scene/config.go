package scene

import (
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/pga"
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const ExampleConfig = `[Canvas]

# Canvas size in pixels. The origin is at the center, and y points up.
Width = 512
Height = 512
# Pixels per world unit.
Scale = 40
Background = "#101018"
# Write each layer's name at its centroid.
Labels = false

# Shapes are closed polygons. Points are given as "x y" pairs, in order. An
# SVG file can be given instead of (or as well as) points; the points of its
# first <polygon> are appended. Regular polygons can be generated with
# Regular (the number of corners) and Radius.
[Shape "arrow"]
Point = 0 -0.5
Point = 2 -0.5
Point = 2 -1.2
Point = 3.5 0
Point = 2 1.2
Point = 2 0.5
Point = 0 0.5
Color = "#33ccffaa"

[Shape "hex"]
Regular = 6
Radius = 1
Color = "#ffcc33"

# Transforms draw transformed copies of a shape.
#
# Kind = rotation:    Pivot ("x y") and Angle (degrees, counterclockwise).
# Kind = translation: Offset ("dx dy").
# Kind = reflection:  Line ("nx ny d" for nx·x + ny·y + d = 0).
#
# Copies repeats the transform: copy k has the transform applied k times.
# Reflections always have one copy.
[Transform "spin"]
Kind = rotation
Shape = arrow
Pivot = 0 0
Angle = 45
Copies = 7
Color = "#3366ff88"

[Transform "mirror"]
Kind = reflection
Shape = hex
Line = 1 -1 -4
Color = "#ff6633"
`

const (
	KindRotation    = "rotation"
	KindTranslation = "translation"
	KindReflection  = "reflection"
)

type Config struct {
	Canvas    CanvasConfig
	Shape     map[string]*ShapeConfig
	Transform map[string]*TransformConfig
}

type CanvasConfig struct {
	Width, Height int
	Scale         float64
	Background    string
	Labels        bool
}

type ShapeConfig struct {
	Point   []string
	SVG     string
	Regular int
	Radius  float64
	Color   string
}

type TransformConfig struct {
	Kind   string
	Shape  string
	Pivot  string
	Angle  float64
	Offset string
	Line   string
	Copies int
	Color  string
}

func defaultConfig() Config {
	return Config{Canvas: CanvasConfig{
		Width:      512,
		Height:     512,
		Scale:      40,
		Background: "#ffffff",
	}}
}

// ReadConfig reads and validates a scene file.
func ReadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid scene %s", path)
	}
	return &cfg, nil
}

// ParseConfig reads and validates a scene from a string.
func ParseConfig(text string) (*Config, error) {
	cfg := defaultConfig()
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}
	return &cfg, nil
}

// Validate checks everything that can be checked without touching the file
// system. SVG files are only opened by Build.
func (cfg *Config) Validate() error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return errors.Errorf("canvas size must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Scale <= 0 {
		return errors.Errorf("canvas scale must be positive, got %g", cfg.Canvas.Scale)
	}
	// An unquoted "#" starts a comment in gcfg, which leaves the value empty
	if cfg.Canvas.Background == "" {
		return errors.New(`canvas background is empty (hex colors must be quoted, e.g. "#101018")`)
	}
	if err := checkColor(cfg.Canvas.Background); err != nil {
		return errors.Wrap(err, "canvas background")
	}
	for name, shape := range cfg.Shape {
		if _, err := shape.points(); err != nil {
			return errors.Wrapf(err, "shape %q", name)
		}
		if len(shape.Point) == 0 && shape.SVG == "" && shape.Regular == 0 {
			return errors.Errorf("shape %q has no points", name)
		}
		if shape.Regular < 0 || (shape.Regular > 0 && shape.Regular < 3) {
			return errors.Errorf("shape %q: a regular polygon needs at least 3 corners, got %d", name, shape.Regular)
		}
		if err := checkColor(shape.Color); err != nil {
			return errors.Wrapf(err, "shape %q", name)
		}
	}
	for name, transform := range cfg.Transform {
		if _, ok := cfg.Shape[transform.Shape]; !ok {
			return errors.Errorf("transform %q refers to unknown shape %q", name, transform.Shape)
		}
		if transform.Copies < 0 {
			return errors.Errorf("transform %q: copies must not be negative, got %d", name, transform.Copies)
		}
		if _, err := transform.versor(); err != nil {
			return errors.Wrapf(err, "transform %q", name)
		}
		if err := checkColor(transform.Color); err != nil {
			return errors.Wrapf(err, "transform %q", name)
		}
	}
	return nil
}

// Colors are hex in the forms gg accepts: rgb, rrggbb or rrggbbaa, with an
// optional leading #. Empty means the default color.
func checkColor(color string) error {
	if color == "" {
		return nil
	}
	hex := strings.TrimPrefix(color, "#")
	switch len(hex) {
	case 3, 6, 8:
	default:
		return errors.Errorf("invalid color %q", color)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return errors.Errorf("invalid color %q", color)
	}
	return nil
}

// Points listed directly in the config, plus the regular polygon if any. SVG
// points are loaded separately.
func (shape *ShapeConfig) points() ([]pga.Point, error) {
	var points []pga.Point
	for _, text := range shape.Point {
		p, err := ParsePoint(text)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if shape.Regular >= 3 {
		roots, err := pga.RootsOfUnity(shape.Regular)
		if err != nil {
			return nil, err
		}
		radius := shape.Radius
		if radius == 0 {
			radius = 1
		}
		for _, root := range roots {
			points = append(points, root.Scale(radius).ToPoint())
		}
	}
	return points, nil
}

// A versor is either a motor or a flector. Exactly one of the two is set.
// Rotations also record their pivot.
type versor struct {
	motor   *pga.Motor
	flector *pga.Flector
	pivot   *pga.Point
}

func (transform *TransformConfig) versor() (versor, error) {
	switch strings.ToLower(transform.Kind) {
	case KindRotation:
		pivot := pga.Origin
		if transform.Pivot != "" {
			var err error
			if pivot, err = ParsePoint(transform.Pivot); err != nil {
				return versor{}, errors.Wrap(err, "pivot")
			}
		}
		m := pga.Rotation(pivot, transform.Angle*math.Pi/180)
		return versor{motor: &m, pivot: &pivot}, nil
	case KindTranslation:
		offset, err := ParseDirection(transform.Offset)
		if err != nil {
			return versor{}, errors.Wrap(err, "offset")
		}
		m := pga.Translation(offset)
		return versor{motor: &m}, nil
	case KindReflection:
		line, err := ParseLine(transform.Line)
		if err != nil {
			return versor{}, errors.Wrap(err, "line")
		}
		f, err := pga.Reflection(line)
		if err != nil {
			return versor{}, err
		}
		return versor{flector: &f}, nil
	}
	return versor{}, errors.Errorf("unknown transform kind %q", transform.Kind)
}

// ParseFloats parses exactly n whitespace separated numbers.
func ParseFloats(text string, n int) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, errors.Errorf("expected %d numbers, got %q", n, text)
	}
	values := make([]float64, n)
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		values[i] = value
	}
	return values, nil
}

// ParsePoint parses "x y".
func ParsePoint(text string) (pga.Point, error) {
	values, err := ParseFloats(text, 2)
	if err != nil {
		return pga.Point{}, err
	}
	return pga.NewPoint(values[0], values[1]), nil
}

// ParseDirection parses "x y".
func ParseDirection(text string) (pga.Direction, error) {
	values, err := ParseFloats(text, 2)
	if err != nil {
		return pga.Direction{}, err
	}
	return pga.NewDirection(values[0], values[1]), nil
}

// ParseLine parses "nx ny d".
func ParseLine(text string) (pga.Line, error) {
	values, err := ParseFloats(text, 3)
	if err != nil {
		return pga.Line{}, err
	}
	return pga.NewLine(values[0], values[1], values[2]), nil
}
