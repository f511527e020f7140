package scene

import (
	"path/filepath"
	"testing"

	"github.com/osuushi/pga"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExampleConfig(t *testing.T) {
	cfg, err := ParseConfig(ExampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Canvas.Width)
	assert.Equal(t, 40.0, cfg.Canvas.Scale)
	assert.Equal(t, "#101018", cfg.Canvas.Background)
	require.Contains(t, cfg.Shape, "arrow")
	assert.Len(t, cfg.Shape["arrow"].Point, 7)
	assert.Equal(t, 6, cfg.Shape["hex"].Regular)
	require.Contains(t, cfg.Transform, "spin")
	assert.Equal(t, KindRotation, cfg.Transform["spin"].Kind)
	assert.Equal(t, 7, cfg.Transform["spin"].Copies)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(filepath.Join("testdata", "mirror.gcfg"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Canvas.Width)
	assert.Equal(t, "triangle.svg", cfg.Shape["tri"].SVG)

	_, err = ReadConfig(filepath.Join("testdata", "missing.gcfg"))
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("[Shape \"dot\"]\nPoint = 0 0\n")
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Canvas.Width)
	assert.Equal(t, "#ffffff", cfg.Canvas.Background)
}

func TestConfigValidation(t *testing.T) {
	table := []struct {
		name, text, message string
	}{
		{"bad canvas", "[Canvas]\nWidth = 0\n", "canvas size"},
		{"bad scale", "[Canvas]\nScale = -1\n", "canvas scale"},
		{"empty shape", "[Shape \"a\"]\nColor = \"#fff\"\n", "has no points"},
		{"bad point", "[Shape \"a\"]\nPoint = 1\n", "expected 2 numbers"},
		{"bad number", "[Shape \"a\"]\nPoint = 1 x\n", "invalid number"},
		{"degenerate regular", "[Shape \"a\"]\nRegular = 2\n", "at least 3 corners"},
		{"unknown shape", "[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = rotation\nShape = b\n", "unknown shape"},
		{"unknown kind", "[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = shear\nShape = a\n", "unknown transform kind"},
		{"negative copies", "[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = rotation\nShape = a\nCopies = -1\n", "copies"},
		{"unquoted background", "[Canvas]\nBackground = #101018\n", "must be quoted"},
		{"bad background", "[Canvas]\nBackground = \"#10101\"\n", "invalid color"},
		{"bad shape color", "[Shape \"a\"]\nPoint = 0 0\nColor = \"#ggg\"\n", "invalid color"},
		{"bad transform color", "[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = rotation\nShape = a\nColor = red\n", "invalid color"},
		{"bad offset", "[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = translation\nShape = a\nOffset = 1\n", "offset"},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseConfig(test.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.message)
		})
	}

	t.Run("degenerate mirror", func(t *testing.T) {
		_, err := ParseConfig("[Shape \"a\"]\nPoint = 0 0\n[Transform \"t\"]\nKind = reflection\nShape = a\nLine = 0 0 1\n")
		require.Error(t, err)
		assert.True(t, errors.Is(err, pga.ErrInvalidOperator))
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := ParseConfig("[Canvas]\nDepth = 3\n")
		assert.Error(t, err)
	})
}

func TestParseHelpers(t *testing.T) {
	p, err := ParsePoint(" 1.5   -2 ")
	require.NoError(t, err)
	assert.Equal(t, pga.NewPoint(1.5, -2), p)

	d, err := ParseDirection("0 1")
	require.NoError(t, err)
	assert.Equal(t, pga.UnitY, d)

	l, err := ParseLine("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, pga.NewLine(1, 2, 3), l)

	_, err = ParseLine("1 2")
	assert.Error(t, err)
}
