package internal

import (
	"fmt"
	"math"
)

// A Direction is an ideal point, a point at infinity: a bivector whose weight
// is 0. Directions behave like ordinary 2D vectors, and carry the vector-math
// helpers sketches use for motion and layout.
type Direction struct {
	b Bivector
}

func NewDirection(x, y float64) Direction {
	return Direction{Bivector{E20: x, E01: y}}
}

// DirectionFromBivector converts raw coordinates into a Direction. The weight
// must be nearly zero; a weighted value is a Point, and silently dropping its
// weight would move it.
func DirectionFromBivector(b Bivector) Direction {
	if !IsNearlyZero(b.E12) {
		fatalf(ErrInvalidConversion, "cannot convert weighted bivector %v to a direction (weight %g)", b, b.E12)
	}
	return Direction{Bivector{E20: b.E20, E01: b.E01}}
}

// DirectionFromAngle returns the unit direction at theta radians, measured
// counterclockwise from the positive x axis.
func DirectionFromAngle(theta float64) Direction {
	sin, cos := math.Sincos(theta)
	return NewDirection(cos, sin)
}

// RootsOfUnity returns n unit directions spaced evenly around the circle,
// starting at angle 0.
func RootsOfUnity(n int) []Direction {
	if n < 1 {
		fatalf(ErrDomainPrecondition, "roots of unity need a positive count, got %d", n)
	}
	result := make([]Direction, n)
	for i := range result {
		result[i] = DirectionFromAngle(2 * math.Pi * float64(i) / float64(n))
	}
	return result
}

func (d Direction) X() float64 { return d.b.E20 }
func (d Direction) Y() float64 { return d.b.E01 }

func (d Direction) Weight() float64 { return d.b.E12 }

func (d Direction) Bivector() Bivector { return d.b }

func (d Direction) Add(other Direction) Direction {
	return Direction{d.b.Add(other.b)}
}

func (d Direction) Sub(other Direction) Direction {
	return Direction{d.b.Sub(other.b)}
}

func (d Direction) Scale(k float64) Direction {
	return Direction{d.b.Scale(k)}
}

func (d Direction) Neg() Direction {
	return Direction{d.b.Neg()}
}

func (d Direction) Dot(other Direction) float64 {
	return d.X()*other.X() + d.Y()*other.Y()
}

// Cross is the z component of the 3D cross product. It is positive when other
// is counterclockwise from d.
func (d Direction) Cross(other Direction) float64 {
	return d.X()*other.Y() - d.Y()*other.X()
}

func (d Direction) MagSqr() float64 {
	return d.Dot(d)
}

func (d Direction) Mag() float64 {
	return math.Hypot(d.X(), d.Y())
}

// Angle is the counterclockwise angle from the positive x axis, in (-π, π].
func (d Direction) Angle() float64 {
	return math.Atan2(d.Y(), d.X())
}

// Normalize scales the direction to unit length. The zero direction has no
// orientation, so it is returned unchanged.
func (d Direction) Normalize() Direction {
	mag := d.Mag()
	if mag == 0 {
		return d
	}
	return d.Scale(1 / mag)
}

// SetLength scales the direction to the given length. The zero direction stays
// zero.
func (d Direction) SetLength(length float64) Direction {
	return d.Normalize().Scale(length)
}

// LimitLength shortens the direction to max if it is longer, and otherwise
// returns it unchanged.
func (d Direction) LimitLength(max float64) Direction {
	if d.MagSqr() > max*max {
		return d.SetLength(max)
	}
	return d
}

// Perp is the direction rotated a quarter turn counterclockwise.
func (d Direction) Perp() Direction {
	return QuarterTurn.TransformDirection(d)
}

// Rotate the direction counterclockwise by angle radians. Directions have no
// position, so the pivot does not matter.
func (d Direction) Rotate(angle float64) Direction {
	return Rotation(Origin, angle).TransformDirection(d)
}

// ToPoint returns the point reached by moving from the origin along d.
func (d Direction) ToPoint() Point {
	return Origin.Add(d)
}

// Dual of an ideal point is the line through the origin perpendicular to it.
// This is the degenerate case of the point/line duality in the sense that the
// line passes through the origin (d = 0); it still has a normal, so
// IsDegenerate reports false.
func (d Direction) Dual() Line {
	return Line{d.b.Dual()}
}

// Lerp interpolates between two directions. Both operands are directions, so
// the weight stays 0 for every t.
func (d Direction) Lerp(other Direction, t float64) Direction {
	return Direction{LerpBivector(d.b, other.b, t)}
}

func (d Direction) Equal(other Direction) bool {
	return d.b.Equal(other.b)
}

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%g, %g)", clean(d.X()), clean(d.Y()))
}
