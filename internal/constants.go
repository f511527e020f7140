package internal

import "math"

var (
	Origin = NewPoint(0, 0)
	UnitX  = NewDirection(1, 0)
	UnitY  = NewDirection(0, 1)

	// A quarter turn counterclockwise about the origin. Used for perpendiculars.
	QuarterTurn = Rotation(Origin, math.Pi/2)
)
