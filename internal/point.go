package internal

import (
	"fmt"
	"math"
)

// A Point is a Euclidean point: a bivector whose weight is 1. Points are
// immutable values; every operation returns a new one.
type Point struct {
	b Bivector
}

func NewPoint(x, y float64) Point {
	return Point{Bivector{E20: x, E01: y, E12: 1}}
}

// PointFromBivector converts raw coordinates into a Point. The weight must not
// be nearly zero, since such a value is a Direction. Any other weight is
// divided out, so the resulting point always has weight 1.
func PointFromBivector(b Bivector) Point {
	if IsNearlyZero(b.E12) {
		fatalf(ErrInvalidConversion, "cannot convert ideal bivector %v to a point (weight %g)", b, b.E12)
	}
	if b.E12 == 1 {
		return Point{b}
	}
	return Point{Bivector{E20: b.E20 / b.E12, E01: b.E01 / b.E12, E12: 1}}
}

func (p Point) X() float64 { return p.b.E20 }
func (p Point) Y() float64 { return p.b.E01 }

func (p Point) Weight() float64 { return p.b.E12 }

func (p Point) Bivector() Bivector { return p.b }

// Translate the point by a direction. Weights add 1 + 0 = 1.
func (p Point) Add(d Direction) Point {
	return Point{p.b.Add(d.b)}
}

// The difference of two points is the direction from other to p. Weights
// cancel 1 - 1 = 0.
func (p Point) Sub(other Point) Direction {
	return Direction{p.b.Sub(other.b)}
}

func (p Point) SubDirection(d Direction) Point {
	return Point{p.b.Sub(d.b)}
}

// ToDirection returns the position vector of the point, i.e. the direction
// from the origin to p.
func (p Point) ToDirection() Direction {
	return NewDirection(p.X(), p.Y())
}

// Dual returns the line nx = x, ny = y, d = 1, the polar of the point.
func (p Point) Dual() Line {
	return Line{p.b.Dual()}
}

// Join returns the line through p and other, oriented from p towards other.
// Swapping the operands negates the line.
func (p Point) Join(other Point) Line {
	return Line{p.b.Join(other.b)}
}

// JoinDirection returns the line through p running along d.
func (p Point) JoinDirection(d Direction) Line {
	return Line{p.b.Join(d.b)}
}

func (p Point) DistanceTo(other Point) float64 {
	return p.Sub(other).Mag()
}

// Lerp interpolates between two points. Both operands are points, so the
// weight stays 1 for every t.
func (p Point) Lerp(other Point, t float64) Point {
	return Point{LerpBivector(p.b, other.b, t)}
}

func (p Point) Equal(other Point) bool {
	return p.b.Equal(other.b)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", clean(p.X()), clean(p.Y()))
}

// Midpoint is a shorthand used by mirror constructions.
func Midpoint(a, b Point) Point {
	return a.Lerp(b, 0.5)
}

// Centroid of a set of points. Panics on an empty set.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		fatalf(ErrDomainPrecondition, "centroid of no points")
	}
	var sum Bivector
	for _, p := range points {
		sum = sum.Add(p.b)
	}
	return PointFromBivector(sum)
}

// Bounds of a set of points, used to fit drawings. Returns infinities for an
// empty set.
func Bounds(points []Point) (min, max Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	return NewPoint(minX, minY), NewPoint(maxX, maxY)
}
