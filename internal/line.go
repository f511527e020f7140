package internal

import (
	"fmt"
	"math"
)

// A Line is the set of points with nx·x + ny·y + d = 0. Lines are oriented:
// the line and its negation contain the same points but run in opposite
// directions, which matters for reflections and for Join antisymmetry.
type Line struct {
	v Vector
}

func NewLine(nx, ny, d float64) Line {
	return Line{Vector{E0: d, E1: nx, E2: ny}}
}

func LineFromVector(v Vector) Line {
	return Line{v}
}

func (l Line) Nx() float64 { return l.v.E1 }
func (l Line) Ny() float64 { return l.v.E2 }
func (l Line) D() float64  { return l.v.E0 }

func (l Line) Vector() Vector { return l.v }

// A degenerate line has no normal. The only such line the algebra produces is
// the line at infinity, which is what joining two directions yields. The
// length of the normal is compared, not its square, so small but valid lines
// still count.
func (l Line) IsDegenerate() bool {
	return IsNearlyZero(math.Sqrt(l.v.NormSqr()))
}

// Normal is the (unnormalized) normal direction of the line, pointing to the
// side where nx·x + ny·y + d is positive.
func (l Line) Normal() Direction {
	return NewDirection(l.Nx(), l.Ny())
}

// Direction is the (unnormalized) direction the line runs in. For a line made
// with Join, this is the direction from the first point to the second.
func (l Line) Direction() Direction {
	return NewDirection(l.Ny(), -l.Nx())
}

// Normalize scales the line so its normal has unit length. Degenerate lines
// are returned unchanged.
func (l Line) Normalize() Line {
	if l.IsDegenerate() {
		return l
	}
	return Line{l.v.Scale(1 / math.Sqrt(l.v.NormSqr()))}
}

// Neg returns the same set of points with the opposite orientation.
func (l Line) Neg() Line {
	return Line{l.v.Neg()}
}

// Dual returns the generalized point dual to the line. A line through the
// origin has no finite dual, and gives a Direction.
func (l Line) Dual() Geometric {
	return Classify(l.v.Dual())
}

// Meet returns the intersection of two lines. Parallel lines meet at infinity,
// in the Direction they share. Both lines are normalized first, so the weight
// of the meet is the sine of the angle between them and does not depend on
// how the lines were scaled.
func (l Line) Meet(other Line) Geometric {
	return Classify(l.Normalize().v.Meet(other.Normalize().v))
}

// Evaluate the line equation at p. This is the signed distance scaled by the
// norm of the normal.
func (l Line) Evaluate(p Point) float64 {
	return l.Nx()*p.X() + l.Ny()*p.Y() + l.D()
}

// SignedDistance from the line to p, positive on the side the normal points
// to. Degenerate lines have no meaningful distance, and give +Inf.
func (l Line) SignedDistance(p Point) float64 {
	if l.IsDegenerate() {
		return math.Inf(1)
	}
	return l.Evaluate(p) / math.Sqrt(l.v.NormSqr())
}

// Contains reports whether p lies on the line (incidence). No normalization is
// needed, except that a very long normal makes the test stricter.
func (l Line) Contains(p Point) bool {
	return IsNearlyZero(l.Evaluate(p))
}

// Project returns the foot of the perpendicular from p onto the line.
func (l Line) Project(p Point) Point {
	if l.IsDegenerate() {
		fatalf(ErrInvalidOperator, "cannot project onto degenerate line %v", l)
	}
	return p.Add(l.Normal().Scale(-l.Evaluate(p) / l.v.NormSqr()))
}

// Equal compares coefficients exactly (within tolerance). Two lines that differ
// by a scale factor are the same set of points but are not Equal; use Same for
// that.
func (l Line) Equal(other Line) bool {
	return l.v.Equal(other.v)
}

// Same reports whether both lines contain the same points, regardless of scale
// or orientation.
func (l Line) Same(other Line) bool {
	a, b := l.v, other.v
	// Parallel coefficient vectors have a zero 3D cross product.
	return IsNearlyZero(a.E1*b.E2-a.E2*b.E1) &&
		IsNearlyZero(a.E2*b.E0-a.E0*b.E2) &&
		IsNearlyZero(a.E0*b.E1-a.E1*b.E0)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%g, %g, %g)", clean(l.Nx()), clean(l.Ny()), clean(l.D()))
}
