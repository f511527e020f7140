package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/pga/internal/dbg"
)

// A Motor is a direct isometry: a rotation about some point, or a translation,
// which is a rotation about a point at infinity. Motors are built once and are
// safe to reuse for any number of transforms, from any number of goroutines.
type Motor struct {
	e Even
}

var IdentityMotor = Motor{Even{S: 1}}

// Rotation builds the motor that rotates counterclockwise by angle radians
// about pivot: cos(angle/2) - sin(angle/2)·pivot.
func Rotation(pivot Point, angle float64) Motor {
	sin, cos := math.Sincos(angle / 2)
	p := pivot.Bivector()
	return Motor{Even{
		S:   cos,
		E01: -sin * p.E01,
		E20: -sin * p.E20,
		E12: -sin * p.E12,
	}}
}

// Translation builds the motor that moves every point by d. Directions are
// unaffected by translations.
func Translation(d Direction) Motor {
	return Motor{Even{S: 1, E01: -d.X() / 2, E20: d.Y() / 2}}
}

// MotorFromEven wraps a raw even value. The value is scaled to unit norm; a
// value with zero norm is a pure ideal element and is not an isometry.
func MotorFromEven(e Even) Motor {
	normSqr := e.NormSqr()
	if IsNearlyZero(normSqr) {
		fatalf(ErrInvalidOperator, "even value %v has no Euclidean part", e)
	}
	if normSqr == 1 {
		return Motor{e}
	}
	k := 1 / math.Sqrt(normSqr)
	return Motor{Even{e.S * k, e.E01 * k, e.E20 * k, e.E12 * k}}
}

func (m Motor) Even() Even { return m.e }

// Reverse returns the inverse motor: same pivot, opposite angle.
func (m Motor) Reverse() Motor {
	return Motor{m.e.Reverse()}
}

// Then returns the motor that applies m first and next second.
func (m Motor) Then(next Motor) Motor {
	return Motor{next.e.Mul(m.e)}
}

// Angle of the rotation part, in (-2π, 2π]. Translations have angle 0.
func (m Motor) Angle() float64 {
	return -2 * math.Atan2(m.e.E12, m.e.S)
}

func (m Motor) TransformPoint(p Point) Point {
	return PointFromBivector(m.e.SandwichBivector(p.Bivector()))
}

func (m Motor) TransformDirection(d Direction) Direction {
	return DirectionFromBivector(m.e.SandwichBivector(d.Bivector()))
}

func (m Motor) TransformLine(l Line) Line {
	return Line{m.e.SandwichVector(l.Vector())}
}

// Transform applies the motor to any geometric value. The result always has
// the class of the input.
func (m Motor) Transform(g Geometric) Geometric {
	switch g := g.(type) {
	case Point:
		return m.TransformPoint(g)
	case Direction:
		return m.TransformDirection(g)
	case Line:
		return m.TransformLine(g)
	}
	panic(fmt.Sprintf("unknown geometric type %T", g))
}

func (m Motor) TransformPoints(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = m.TransformPoint(p)
	}
	return result
}

func (m Motor) Equal(other Motor) bool {
	return m.e.Equal(other.e)
}

func (m Motor) String() string {
	return fmt.Sprintf("Motor(%g + %ge01 + %ge20 + %ge12)",
		clean(m.e.S), clean(m.e.E01), clean(m.e.E20), clean(m.e.E12))
}

// DbgName gives the motor a readable name, colored by kind: green for pure
// rotations about the origin, cyan for pure translations, yellow otherwise.
func (m Motor) DbgName() string {
	name := dbg.Name(m)
	switch {
	case IsNearlyZero(m.e.E12):
		name = aurora.Cyan(name).String()
	case IsNearlyZero(m.e.E01) && IsNearlyZero(m.e.E20):
		name = aurora.Green(name).String()
	default:
		name = aurora.Yellow(name).String()
	}
	return name
}
