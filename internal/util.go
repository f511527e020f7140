package internal

import "math"

// Tolerance is the one epsilon used by every weight check and equality in the
// kernel. Points and directions are told apart by comparing their weight to
// zero with it, so it must stay the same everywhere.
const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. Note
// that -0 and 0 compare equal, which the == operator also guarantees, but
// tolerance keeps results of long transform chains comparable.
func IsNearly(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func IsNearlyZero(a float64) bool {
	return math.Abs(a) < Tolerance
}

// clean turns negative zero into positive zero, so that formatted output never
// shows "-0".
func clean(a float64) float64 {
	if a == 0 {
		return 0
	}
	return a
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
