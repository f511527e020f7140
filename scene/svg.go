package scene

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/pga"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It parses the SVG, finds
// whatever the first polygon is, and returns its points in order. Transforms,
// paths and units are ignored. SVG's y axis points down, so y is negated to
// keep the shape upright on a y-up canvas.

func LoadSVGPolygon(r io.Reader) ([]pga.Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found in svg")
	}

	var points []pga.Point
	// Points may be separated by commas, whitespace, or both
	fields := strings.Fields(strings.ReplaceAll(polygons[0].Attributes["points"], ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in polygon points %q", polygons[0].Attributes["points"])
	}
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, pga.NewPoint(x, -y))
	}
	return points, nil
}

func LoadSVGPolygonFile(path string) ([]pga.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer file.Close()
	points, err := LoadSVGPolygon(file)
	return points, errors.Wrapf(err, "loading %s", path)
}
