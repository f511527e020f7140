package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point lists. This is not a
// full (or even correct) svg parser. It parses the SVG and then finds whatever
// the first polygon is, and returns its points in order. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"arrow", "kite", "zigzag"}

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, NewPoint(x, y))
	}
	return points
}

// Some ad hoc fixtures

// A five pointed star around the origin, built from roots of unity
func SimpleStar() []Point {
	const outerRadius = 5
	const innerRadius = 2
	var points []Point
	for i, dir := range RootsOfUnity(10) {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		points = append(points, dir.Rotate(math.Pi/2).SetLength(radius).ToPoint())
	}
	return points
}

// Random values for property checks. The source is seeded so failures
// reproduce.
type sampler struct {
	rng *rand.Rand
}

func newSampler() *sampler {
	return &sampler{rand.New(rand.NewSource(42))}
}

func (s *sampler) float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *sampler) point() Point {
	return NewPoint(s.float(-10, 10), s.float(-10, 10))
}

func (s *sampler) direction() Direction {
	return NewDirection(s.float(-10, 10), s.float(-10, 10))
}

func (s *sampler) angle() float64 {
	return s.float(-4*math.Pi, 4*math.Pi)
}

// A line with a normal that is never degenerate
func (s *sampler) line() Line {
	normal := DirectionFromAngle(s.angle()).Scale(s.float(0.5, 3))
	return NewLine(normal.X(), normal.Y(), s.float(-5, 5))
}
