// A 2D projective geometric algebra kernel for Go.
//
// Points and directions are both generalized points (bivectors), told apart by
// their weight: points have weight 1, directions (points at infinity) have
// weight 0. Lines are vectors, the duals of points. Motors (rotations and
// translations) and flectors (reflections) transform all three with the
// sandwich product.
//
// The value types and their arithmetic never fail. The few operations that can
// be misused panic inside the kernel; the functions in this package recover
// those panics and return them as errors, which can be checked with errors.Is
// against ErrInvalidConversion, ErrInvalidOperator and ErrDomainPrecondition.
package pga

import "github.com/osuushi/pga/internal"

type Bivector = internal.Bivector
type Vector = internal.Vector
type Point = internal.Point
type Direction = internal.Direction
type Line = internal.Line
type Motor = internal.Motor
type Flector = internal.Flector
type Geometric = internal.Geometric
type Polygon = internal.Polygon
type Viewport = internal.Viewport

var (
	ErrInvalidConversion  = internal.ErrInvalidConversion
	ErrInvalidOperator    = internal.ErrInvalidOperator
	ErrDomainPrecondition = internal.ErrDomainPrecondition
)

var (
	Origin        = internal.Origin
	UnitX         = internal.UnitX
	UnitY         = internal.UnitY
	QuarterTurn   = internal.QuarterTurn
	IdentityMotor = internal.IdentityMotor
)

// Tolerance used for every equality and weight test.
const Tolerance = internal.Tolerance

// Constructors that cannot fail.

func NewPoint(x, y float64) Point { return internal.NewPoint(x, y) }

func NewDirection(x, y float64) Direction { return internal.NewDirection(x, y) }

func NewLine(nx, ny, d float64) Line { return internal.NewLine(nx, ny, d) }

func DirectionFromAngle(theta float64) Direction { return internal.DirectionFromAngle(theta) }

func Rotation(pivot Point, angle float64) Motor { return internal.Rotation(pivot, angle) }

func Translation(d Direction) Motor { return internal.Translation(d) }

// Classify raw coordinates as a Point or a Direction by their weight.
func Classify(b Bivector) Geometric { return internal.Classify(b) }

// PointFromBivector converts raw coordinates to a Point. It fails with
// ErrInvalidConversion if the weight is nearly zero.
func PointFromBivector(b Bivector) (result Point, err error) {
	defer recoverInto(&err)
	return internal.PointFromBivector(b), nil
}

// DirectionFromBivector converts raw coordinates to a Direction. It fails with
// ErrInvalidConversion unless the weight is nearly zero.
func DirectionFromBivector(b Bivector) (result Direction, err error) {
	defer recoverInto(&err)
	return internal.DirectionFromBivector(b), nil
}

// RootsOfUnity returns n evenly spaced unit directions starting at angle 0. It
// fails with ErrDomainPrecondition for n < 1.
func RootsOfUnity(n int) (result []Direction, err error) {
	defer recoverInto(&err)
	return internal.RootsOfUnity(n), nil
}

// Reflection builds the flector mirroring across line. It fails with
// ErrInvalidOperator if the line has no normal.
func Reflection(line Line) (result Flector, err error) {
	defer recoverInto(&err)
	return internal.Reflection(line), nil
}

// Centroid of a set of points. It fails with ErrDomainPrecondition for an empty
// set.
func Centroid(points []Point) (result Point, err error) {
	defer recoverInto(&err)
	return internal.Centroid(points), nil
}

func recoverInto(err *error) {
	if recoveredErr := internal.HandleKernelPanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
