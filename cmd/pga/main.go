package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/pga"
	"github.com/osuushi/pga/scene"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("pga", "Sketch with 2D projective geometric algebra.")
	verbose = app.Flag("verbose", "Log scene building and rendering to stderr.").Short('v').Bool()
	color   = app.Flag("color", "Color terminal output.").Default("true").Bool()

	renderCmd    = app.Command("render", "Render a scene file to PNG.")
	renderConfig = renderCmd.Arg("config", "Scene file (see the example command).").Required().ExistingFile()
	renderOut    = renderCmd.Flag("out", "Output PNG path.").Short('o').Default("sketch.png").String()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image in the terminal (iTerm only).").Bool()

	transformCmd = app.Command("transform", `Transform "x y" points read from stdin. Blank lines separate polygons.`)
	rotate       = transformCmd.Flag("rotate", "Rotate counterclockwise by this many degrees.").Float64()
	pivot        = transformCmd.Flag("pivot", `Rotation pivot, "x y".`).Default("0 0").String()
	translate    = transformCmd.Flag("translate", `Then translate by "dx dy".`).String()
	reflect      = transformCmd.Flag("reflect", `Then reflect in the line "nx ny d".`).String()

	exampleCmd = app.Command("example", "Print an example scene file.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	au := aurora.NewAurora(*color)

	var err error
	switch command {
	case renderCmd.FullCommand():
		err = render(*renderConfig, *renderOut, *renderImgcat)
	case transformCmd.FullCommand():
		var t transformer
		if t, err = newTransformer(*rotate, *pivot, *translate, *reflect); err == nil {
			err = t.run(os.Stdin, os.Stdout, au)
		}
	case exampleCmd.FullCommand():
		fmt.Print(scene.ExampleConfig)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, au.Red(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
}

func render(configPath, out string, preview bool) error {
	cfg, err := scene.ReadConfig(configPath)
	if err != nil {
		return err
	}
	s, err := scene.Build(cfg, filepath.Dir(configPath))
	if err != nil {
		return err
	}
	if err := s.SavePNG(out); err != nil {
		return err
	}
	if preview {
		return errors.Wrap(imgcat.CatFile(out, os.Stdout), "previewing")
	}
	return nil
}

// A transformer applies an optional rotation, then an optional translation,
// then an optional reflection. The motors are composed once up front.
type transformer struct {
	motor   pga.Motor
	flector *pga.Flector
}

func newTransformer(degrees float64, pivotText, translateText, reflectText string) (transformer, error) {
	t := transformer{motor: pga.IdentityMotor}
	if degrees != 0 {
		p, err := scene.ParsePoint(pivotText)
		if err != nil {
			return t, errors.Wrap(err, "pivot")
		}
		t.motor = t.motor.Then(pga.Rotation(p, degrees*math.Pi/180))
	}
	if translateText != "" {
		d, err := scene.ParseDirection(translateText)
		if err != nil {
			return t, errors.Wrap(err, "translate")
		}
		t.motor = t.motor.Then(pga.Translation(d))
	}
	if reflectText != "" {
		line, err := scene.ParseLine(reflectText)
		if err != nil {
			return t, errors.Wrap(err, "reflect")
		}
		f, err := pga.Reflection(line)
		if err != nil {
			return t, err
		}
		t.flector = &f
	}
	return t, nil
}

func (t transformer) apply(p pga.Point) pga.Point {
	p = t.motor.TransformPoint(p)
	if t.flector != nil {
		p = t.flector.TransformPoint(p)
	}
	return p
}

func (t transformer) run(in io.Reader, out io.Writer, au aurora.Aurora) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	for i, polygon := range polygons {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, au.Gray(12, fmt.Sprintf("# polygon %d, %d points", i+1, len(polygon))))
		for _, p := range polygon {
			q := t.apply(p)
			fmt.Fprintf(out, "%s %s\n", au.Cyan(formatFloat(q.X())), au.Cyan(formatFloat(q.Y())))
		}
	}
	return nil
}

// Input on stdin should be newline separated points in the form "x y", with
// each polygon separated by an extra newline. Lines starting with # are
// skipped, so output can be piped back in.
func readPolygons(in io.Reader) ([][]pga.Point, error) {
	var polygons [][]pga.Point
	scanner := bufio.NewScanner(in)
	var points []pga.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}
		if line[0] == '#' {
			continue
		}

		point, err := scene.ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// Round away float noise from the transforms, and never print -0
func formatFloat(x float64) string {
	x = math.Round(x*1e9) / 1e9
	if x == 0 {
		x = 0
	}
	return fmt.Sprintf("%g", x)
}
