package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/pga/internal/dbg"
)

// A Flector is an indirect isometry. The only kind built here is a reflection
// in a mirror line; composing two flectors gives a Motor.
type Flector struct {
	mirror Vector
}

// Reflection builds the flector that mirrors across line. The line needs a
// normal, so the line at infinity (or the zero line) panics with
// ErrInvalidOperator.
func Reflection(line Line) Flector {
	if line.IsDegenerate() {
		fatalf(ErrInvalidOperator, "cannot reflect in degenerate line %v", line)
	}
	return Flector{line.Normalize().Vector()}
}

// Mirror returns the mirror line, normalized.
func (f Flector) Mirror() Line {
	return Line{f.mirror}
}

// Transform reflects any geometric value. Points and directions are
// reflected as bivectors, and the class of the result is read back from its
// weight with the same tolerance the conversions use, so a point can never
// come back as a direction or the other way around.
func (f Flector) Transform(g Geometric) Geometric {
	switch g := g.(type) {
	case Point:
		return Classify(f.mirror.ReflectBivector(g.Bivector()))
	case Direction:
		return Classify(f.mirror.ReflectBivector(g.Bivector()))
	case Line:
		return f.TransformLine(g)
	}
	panic(fmt.Sprintf("unknown geometric type %T", g))
}

func (f Flector) TransformPoint(p Point) Point {
	return PointFromBivector(f.mirror.ReflectBivector(p.Bivector()))
}

func (f Flector) TransformDirection(d Direction) Direction {
	return DirectionFromBivector(f.mirror.ReflectBivector(d.Bivector()))
}

// TransformLine reflects a line. Reflection reverses orientation, so the
// result contains the reflected points but runs the mirrored way.
func (f Flector) TransformLine(l Line) Line {
	return Line{f.mirror.ReflectVector(l.Vector())}
}

func (f Flector) TransformPoints(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = f.TransformPoint(p)
	}
	return result
}

// Then returns the motor that reflects in f first and then in next. Two
// parallel mirrors give a translation, two crossing mirrors give a rotation
// by twice the angle between them about their meet.
func (f Flector) Then(next Flector) Motor {
	return MotorFromEven(next.mirror.Mul(f.mirror))
}

func (f Flector) Equal(other Flector) bool {
	return f.mirror.Equal(other.mirror)
}

func (f Flector) String() string {
	return fmt.Sprintf("Flector(%s)", f.Mirror())
}

func (f Flector) DbgName() string {
	return aurora.Magenta(dbg.Name(f)).String()
}
