// Command sketchdemo renders a scene description with the sketch library.
//
// The scene is read from -scene (a file, or "-" for stdin) or defaults to a
// built-in drawing. It is recorded once and played back onto the chosen
// backend: "raster" writes a PNG, "ebiten" opens a window.
package main

import (
	"flag"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/recording"
	"github.com/gogpu/sketch/recording/backends/ebiten"
	"github.com/gogpu/sketch/recording/backends/raster"
	"github.com/gogpu/sketch/scene"
)

// demoScene is drawn in mathematical coordinates: y grows upward.
const demoScene = `
R 40,40 760,560
S 80,80 720,80
P 120,140 280,140 200,300
C 400,300 90
A 520,160 620,320 720,160
A 500,480 600,420 700,480
`

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "sketch.png", "output file for the raster backend")
		input    = flag.String("scene", "", `scene file, "-" for stdin (default: built-in demo)`)
		backend  = flag.String("backend", "raster", "backend: raster or ebiten")
		yUp      = flag.Bool("yup", true, "scene uses y-up coordinates")
		lenient  = flag.Bool("skip-invalid", false, "skip shapes that cannot be built")
		lineW    = flag.Float64("line-width", 2, "stroke width in pixels")
		verbose  = flag.Bool("v", false, "debug logging")
		listOnly = flag.Bool("backends", false, "list registered backends and exit")
	)
	flag.Parse()

	if *listOnly {
		for _, name := range recording.Backends() {
			log.Println(name)
		}
		return
	}

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	name, src, err := readScene(*input)
	if err != nil {
		log.Fatalf("Failed to read scene: %v", err)
	}

	var opts []scene.Option
	if *lenient {
		opts = append(opts, scene.WithSkipInvalid())
	}
	sc, err := scene.Parse(name, src, opts...)
	if err != nil {
		log.Fatalf("Failed to parse scene: %v", err)
	}

	var ropts []sketch.RendererOption
	if *yUp {
		ropts = append(ropts, sketch.WithYUp(float64(*height)))
	}

	rec := recording.NewRecorder(*width, *height)
	if err := sc.Draw(rec, sketch.NewRenderer(ropts...)); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	r := rec.FinishRecording()

	switch *backend {
	case "raster":
		b := raster.NewBackend(
			raster.WithLineWidth(*lineW),
			raster.WithBackground(color.White),
		)
		if err := r.Playback(b); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		if err := b.SaveToFile(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Scene saved to %s (%dx%d, %d shapes)\n", *output, *width, *height, sc.Len())
	case "ebiten":
		err := ebiten.Show(r,
			ebiten.WithTitle(name),
			ebiten.WithLineWidth(float32(*lineW)),
			ebiten.WithBackground(color.Black),
		)
		if err != nil {
			log.Fatalf("Failed to show: %v", err)
		}
	default:
		log.Fatalf("Unknown backend %q", *backend)
	}
}

func readScene(path string) (name, src string, err error) {
	switch path {
	case "":
		return "demo", demoScene, nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		return "stdin", string(b), err
	default:
		b, err := os.ReadFile(path)
		return path, string(b), err
	}
}
