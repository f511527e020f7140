package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflection(t *testing.T) {
	xAxis := Reflection(NewLine(0, 1, 0))
	diagonal := Reflection(NewLine(1, 1, -1))

	table := []struct {
		name     string
		flector  Flector
		input    Geometric
		expected Geometric
	}{
		{"point across x axis", xAxis, NewPoint(2, 3), NewPoint(2, -3)},
		{"point on mirror", xAxis, NewPoint(-4, 0), NewPoint(-4, 0)},
		{"direction across x axis", xAxis, NewDirection(2, 3), NewDirection(2, -3)},
		{"origin across diagonal", diagonal, Origin, NewPoint(1, 1)},
		{"direction across diagonal", diagonal, NewDirection(1, 0), NewDirection(0, -1)},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			actual := test.flector.Transform(test.input)
			require.IsType(t, test.expected, actual)
			switch expected := test.expected.(type) {
			case Point:
				assertPointsInDelta(t, expected, actual.(Point))
			case Direction:
				assertDirectionsInDelta(t, expected, actual.(Direction))
			}
		})
	}
}

func TestReflectionOfLine(t *testing.T) {
	mirror := Reflection(NewLine(0, 1, 0))
	line := NewPoint(0, 1).Join(NewPoint(1, 0))
	reflected := mirror.Transform(line)
	require.IsType(t, Line{}, reflected)
	assert.True(t, reflected.(Line).Contains(NewPoint(0, -1)))
	assert.True(t, reflected.(Line).Contains(NewPoint(1, 0)))
}

func TestReflectionInvolution(t *testing.T) {
	s := newSampler()
	for i := 0; i < 100; i++ {
		f := Reflection(s.line())
		p, d, l := s.point(), s.direction(), s.line()
		assertPointsInDelta(t, p, f.TransformPoint(f.TransformPoint(p)))
		assertDirectionsInDelta(t, d, f.TransformDirection(f.TransformDirection(d)))
		assert.True(t, l.Vector().Equal(f.TransformLine(f.TransformLine(l)).Vector()))

		twice := f.Transform(f.Transform(p))
		require.IsType(t, Point{}, twice)
		assertPointsInDelta(t, p, twice.(Point))
	}
}

func TestReflectionGeometry(t *testing.T) {
	s := newSampler()
	for i := 0; i < 100; i++ {
		mirror := s.line()
		f := Reflection(mirror)
		p := s.point()
		image := f.TransformPoint(p)

		// The mirror is the perpendicular bisector of a point and its image
		assert.InDelta(t, 0, mirror.SignedDistance(Midpoint(p, image)), 1e-9)
		assert.InDelta(t, 0, image.Sub(p).Dot(mirror.Direction()), 1e-8)
		assert.InDelta(t, mirror.SignedDistance(p), -mirror.SignedDistance(image), 1e-9)

		// Directions keep their magnitude, and only flip orientation
		d := s.direction()
		reflected := f.TransformDirection(d)
		assert.InDelta(t, d.Mag(), reflected.Mag(), 1e-9)
		assert.InDelta(t, d.Dot(mirror.Direction()), reflected.Dot(mirror.Direction()), 1e-8)
	}
}

func TestReflectionReversesOrientation(t *testing.T) {
	f := Reflection(NewLine(1, -2, 0.5))
	a, b := UnitX, UnitY
	assert.Greater(t, a.Cross(b), 0.0)
	assert.Less(t, f.TransformDirection(a).Cross(f.TransformDirection(b)), 0.0)
}

func TestReflectionOfDegenerateLine(t *testing.T) {
	for _, line := range []Line{NewLine(0, 0, 1), NewLine(0, 0, 0), NewLine(1e-12, 0, 3)} {
		err := catch(func() { Reflection(line) })
		require.Error(t, err, "line %v", line)
		assert.True(t, errors.Is(err, ErrInvalidOperator))
	}
}

func TestReflectionInSmallLine(t *testing.T) {
	// Lines are homogeneous, so a tiny normal is the same mirror as a unit one
	f := Reflection(NewLine(1e-5, 0, 0))
	assert.True(t, f.Equal(Reflection(NewLine(1, 0, 0))))
	assertPointsInDelta(t, NewPoint(-2, 3), f.TransformPoint(NewPoint(2, 3)))

	// Two distinct points very close together still make a valid mirror
	a, b := NewPoint(1, 1), NewPoint(1+2e-5, 1)
	var g Flector
	require.NotPanics(t, func() { g = Reflection(a.Join(b)) })
	assertPointsInDelta(t, NewPoint(4, -1), g.TransformPoint(NewPoint(4, 3)))
	assert.False(t, a.Join(b).IsDegenerate())
}

func TestMirrorIsNormalized(t *testing.T) {
	f := Reflection(NewLine(3, 4, -10))
	assert.InDelta(t, 1, f.Mirror().Normal().Mag(), Tolerance)
	assert.True(t, f.Mirror().Same(NewLine(3, 4, -10)))
}

func TestFlectorThen(t *testing.T) {
	t.Run("crossing mirrors rotate", func(t *testing.T) {
		// Mirrors through (1, 1) at 45° to each other rotate by 90° about (1, 1)
		first := Reflection(NewLine(0, 1, -1))
		second := Reflection(NewPoint(1, 1).JoinDirection(NewDirection(1, 1)))
		m := first.Then(second)
		expected := Rotation(NewPoint(1, 1), math.Pi/2)
		s := newSampler()
		for i := 0; i < 20; i++ {
			p := s.point()
			assertPointsInDelta(t, expected.TransformPoint(p), m.TransformPoint(p))
			assertPointsInDelta(t, second.TransformPoint(first.TransformPoint(p)), m.TransformPoint(p))
		}
	})

	t.Run("parallel mirrors translate", func(t *testing.T) {
		first := Reflection(NewLine(1, 0, 0))
		second := Reflection(NewLine(1, 0, -2))
		m := first.Then(second)
		assertPointsInDelta(t, NewPoint(4.5, 3), m.TransformPoint(NewPoint(0.5, 3)))
		assertDirectionsInDelta(t, NewDirection(1, 1), m.TransformDirection(NewDirection(1, 1)))
	})

	t.Run("same mirror is the identity", func(t *testing.T) {
		f := Reflection(NewLine(2, 1, 1))
		p := NewPoint(3, 3)
		assertPointsInDelta(t, p, f.Then(f).TransformPoint(p))
	})
}

func TestFlectorFixtures(t *testing.T) {
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			points := LoadFixture(name)
			require.NotEmpty(t, points)
			f := Reflection(NewLine(1, 2, -3))
			mirrored := f.TransformPoints(points)
			back := f.TransformPoints(mirrored)
			for i := range points {
				assertPointsInDelta(t, points[i], back[i])
				next := CircularIndex(i+1, len(points))
				assert.InDelta(t, points[i].DistanceTo(points[next]), mirrored[i].DistanceTo(mirrored[next]), 1e-9)
			}
		})
	}
}

func TestFlectorStrings(t *testing.T) {
	f := Reflection(NewLine(0, 2, 0))
	assert.Equal(t, "Flector(Line(0, 1, 0))", f.String())
	assert.NotEmpty(t, f.DbgName())
}
