package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/config"
	"github.com/osuushi/earclip/gasket"
	"github.com/osuushi/earclip/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. `tessellate` feeds a point list to a session one
// vertex at a time, the way a user would click them out, and renders the
// result. `gasket` renders a Sierpinski gasket.

var (
	app        = kingpin.New("earclip", "Ear-clipping polygon triangulation.")
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	verbose    = app.Flag("verbose", "Print a dump of the ring when a polygon can't be tessellated.").Short('v').Bool()

	tessellateCmd     = app.Command("tessellate", "Triangulate a polygon, adding one vertex at a time.")
	tessellateInput   = tessellateCmd.Arg("input", "Point list (\"x y\" per line) or .svg file. Reads a point list from stdin when omitted.").ExistingFile()
	tessellatePixels  = tessellateCmd.Flag("pixels", "Input is in canvas pixels, Y down. Convert to clip space.").Bool()
	tessellateFlat    = tessellateCmd.Flag("flat", "Don't shade triangles by the order they were cut.").Bool()
	tessellateOut     = tessellateCmd.Flag("out", "PNG output path.").Short('o').String()
	tessellateGeoJSON = tessellateCmd.Flag("geojson", "GeoJSON output path.").String()
	tessellateFrames  = tessellateCmd.Flag("frames", "Write a PNG per added vertex into this directory.").String()
	tessellatePreview = tessellateCmd.Flag("preview", "Show the result in the terminal (iTerm only).").Bool()

	gasketCmd     = app.Command("gasket", "Render a Sierpinski gasket.")
	gasketDim     = gasketCmd.Flag("dim", "Dimensions, 2 or 3.").Default("2").Enum("2", "3")
	gasketPoints  = gasketCmd.Flag("points", "Number of points.").Int()
	gasketSeed    = gasketCmd.Flag("seed", "Random seed. Zero seeds from the clock.").Int64()
	gasketOut     = gasketCmd.Flag("out", "PNG output path.").Short('o').String()
	gasketPreview = gasketCmd.Flag("preview", "Show the result in the terminal (iTerm only).").Bool()

	configCmd = app.Command("config", "Print the effective configuration.")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("earclip: ")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	cfg, err := loadConfig(*configPath)
	app.FatalIfError(err, "config")

	switch command {
	case tessellateCmd.FullCommand():
		err = runTessellate(cfg)
	case gasketCmd.FullCommand():
		err = runGasket(cfg)
	case configCmd.FullCommand():
		err = runConfig(cfg)
	}
	app.FatalIfError(err, command)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runTessellate(cfg *config.Config) error {
	points, err := readInput(*tessellateInput, !*tessellatePixels)
	if err != nil {
		return err
	}
	if *tessellatePixels {
		w, h := float64(cfg.Canvas.Width), float64(cfg.Canvas.Height)
		for i, p := range points {
			points[i] = render.ToClip(p.X, p.Y, w, h)
		}
	}

	canvas := render.NewCanvas(cfg.Canvas)
	opts := []advanced.Option{
		advanced.WithLogger(log.New(os.Stderr, "earclip: ", 0)),
	}
	if cfg.Shading && !*tessellateFlat {
		opts = append(opts, advanced.WithShader(advanced.Progressive))
	}

	frames := &frameWriter{dir: *tessellateFrames, canvas: canvas}
	if frames.dir != "" {
		if err := os.MkdirAll(frames.dir, 0o755); err != nil {
			return errors.Wrap(err, "create frames directory")
		}
		opts = append(opts, advanced.WithObserver(frames.write))
	}

	session := advanced.NewSession(opts...)
	failures := 0
	for i, p := range points {
		if err := session.AddVertex(p); err != nil {
			failures++
			reportFailure(i, err)
		}
	}
	if frames.err != nil {
		return frames.err
	}

	frame := session.Frame()
	out := firstNonEmpty(*tessellateOut, cfg.Output.PNG)
	if err := render.SavePNG(canvas.Draw(frame), out); err != nil {
		return err
	}
	if geojsonPath := firstNonEmpty(*tessellateGeoJSON, cfg.Output.GeoJSON); geojsonPath != "" {
		if err := render.WriteGeoJSON(geojsonPath, frame); err != nil {
			return err
		}
	}

	log.Printf("%d vertices, %d triangles (%s mode), area %g, %d resets",
		len(frame.Points), len(frame.Triangles), frame.Mode,
		advanced.TotalArea(frame.Triangles), failures)
	if *tessellatePreview || cfg.Output.Preview {
		render.Preview(out, os.Stdout)
	}
	return nil
}

func runGasket(cfg *config.Config) error {
	n := *gasketPoints
	if n <= 0 {
		n = cfg.Gasket.Points
	}
	seed := *gasketSeed
	if seed == 0 {
		seed = cfg.Gasket.Seed
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	canvas := render.NewCanvas(cfg.Canvas)
	out := firstNonEmpty(*gasketOut, cfg.Output.PNG)
	var err error
	if *gasketDim == "3" {
		points := gasket.Generate3D(n, gasket.Tetrahedron, rng)
		err = render.SavePNG(canvas.DrawPoints3D(points), out)
	} else {
		points := gasket.Generate2D(n, gasket.Triangle, rng)
		frame := advanced.Frame{Mode: advanced.ModePoints, Points: points}
		err = render.SavePNG(canvas.Draw(frame), out)
	}
	if err != nil {
		return err
	}

	log.Printf("%d point %sD gasket written to %s", n, *gasketDim, out)
	if *gasketPreview || cfg.Output.Preview {
		render.Preview(out, os.Stdout)
	}
	return nil
}

func runConfig(cfg *config.Config) error {
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// Read the input points. SVG files are recognized by extension; anything else
// is a point list.
func readInput(path string, flipSVG bool) ([]advanced.Point, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		poly, err := advanced.ParseSVGPolygon(in, flipSVG)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		return poly.Points, nil
	}
	return advanced.ReadPoints(in)
}

func reportFailure(index int, err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n",
		aurora.Red(fmt.Sprintf("vertex %d:", index+1)).Bold(),
		aurora.Yellow(fmt.Sprintf("%v; polygon reset", err)))

	var untriangulable *advanced.UntriangulableError
	if *verbose && errors.As(err, &untriangulable) {
		fmt.Fprintln(os.Stderr, untriangulable.Ring)
	}
}

// Session observer that saves every frame as a numbered PNG. Only the first
// error is kept.
type frameWriter struct {
	dir    string
	canvas render.Canvas
	count  int
	err    error
}

func (w *frameWriter) write(frame advanced.Frame) {
	if w.err != nil {
		return
	}
	w.count++
	path := filepath.Join(w.dir, fmt.Sprintf("frame-%03d.png", w.count))
	w.err = render.SavePNG(w.canvas.Draw(frame), path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
