package internal

import "fmt"

// Geometric is the union of the three geometric classes the versors act on. It
// is sealed: only Point, Direction and Line implement it, so a type switch over
// those three cases is exhaustive.
type Geometric interface {
	fmt.Stringer

	// This is a dummy method that keeps the union closed. It is never called,
	// but it prevents raw coordinates (or anything else with a String method)
	// from being passed where a classified value is expected.
	geometricTypeHint()
}

// Geometric types enumerated here with type hint
func (Point) geometricTypeHint()     {}
func (Direction) geometricTypeHint() {}
func (Line) geometricTypeHint()      {}

// Classify turns a raw bivector into the class its weight says it is. A weight
// that is nearly zero is a Direction, anything else is a Point. This is the
// same test that PointFromBivector and DirectionFromBivector enforce.
func Classify(b Bivector) Geometric {
	if IsNearlyZero(b.E12) {
		return DirectionFromBivector(b)
	}
	return PointFromBivector(b)
}
