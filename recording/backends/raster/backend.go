// Package raster provides a raster backend for the recording system.
// It renders recordings to an *image.RGBA using golang.org/x/image/vector.
//
// Paths are kept in canvas form until Stroke: arcs are flattened into
// polylines and every edge is expanded into a quad of the configured line
// width, which the vector rasterizer fills with anti-aliasing.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/sketch/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly with options
//	backend := raster.NewBackend(raster.WithLineWidth(2), raster.WithBackground(color.White))
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/path"
	"github.com/gogpu/sketch/internal/stroke"
	"github.com/gogpu/sketch/recording"
)

// ErrNotStarted is reported when drawing or output happens before Begin.
var ErrNotStarted = errors.New("raster: backend used before Begin")

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	opts   options
	width  int
	height int

	img  *image.RGBA
	ras  *vector.Rasterizer
	ink  *image.Uniform
	path path.Path
	err  error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Begin allocates the target image and fills it with the background color.
func (b *Backend) Begin(width, height int) error {
	if err := recording.CheckSize(width, height); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.ras = vector.NewRasterizer(width, height)
	b.ink = image.NewUniform(b.opts.color)
	b.path.Reset()
	b.err = nil

	if b.opts.background != nil {
		draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.opts.background), image.Point{}, draw.Src)
	}
	return nil
}

// End finalizes the rendering. It reports the first error met while
// drawing.
func (b *Backend) End() error {
	return b.err
}

// Width returns the image width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the image height.
func (b *Backend) Height() int {
	return b.height
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// BeginPath discards the current path.
func (b *Backend) BeginPath() {
	b.path.Reset()
}

// MoveTo starts a new subpath.
func (b *Backend) MoveTo(x, y float64) {
	b.path.MoveTo(x, y)
}

// LineTo adds a line to the current subpath.
func (b *Backend) LineTo(x, y float64) {
	b.path.LineTo(x, y)
}

// Arc adds a flattened arc to the current subpath.
func (b *Backend) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	b.path.Arc(x, y, radius, startAngle, endAngle, counterClockwise)
}

// ClosePath closes the current subpath.
func (b *Backend) ClosePath() {
	b.path.ClosePath()
}

// Stroke strokes every subpath of the current path. The path is kept, as
// on a canvas, until the next BeginPath.
func (b *Backend) Stroke() {
	if !b.ready() {
		return
	}
	for _, sub := range b.path.Subpaths() {
		b.strokeSubpath(sub)
	}
	b.flush()
}

// StrokeRect strokes a rectangle outline without touching the current
// path. Negative sizes are normalized.
func (b *Backend) StrokeRect(x, y, width, height float64) {
	if !b.ready() {
		return
	}
	b.strokeSubpath(path.Rect(x, y, width, height))
	b.flush()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the image to a PNG file.
func (b *Backend) SaveToFile(name string) (err error) {
	if b.img == nil {
		return ErrNotStarted
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()

	_, err = b.WriteTo(f)
	return err
}

func (b *Backend) ready() bool {
	if b.img != nil {
		return true
	}
	if b.err == nil {
		b.err = ErrNotStarted
		sketch.Logger().Warn("raster: stroke before Begin")
	}
	return false
}

// strokeSubpath queues the stroke outline of sub, clipped to the image
// plus a margin wider than the line. Edges that are not finite are
// skipped.
func (b *Backend) strokeSubpath(sub path.Subpath) {
	m := b.opts.lineWidth + 1
	lo := sketch.Pt(-m, -m)
	hi := sketch.Pt(float64(b.width)+m, float64(b.height)+m)

	quads, invalid := stroke.SubpathWithin(sub, b.opts.lineWidth, lo, hi)
	if invalid > 0 {
		sketch.Logger().Debug("raster: skipped non-finite edges", slog.Int("edges", invalid))
	}
	b.addQuads(quads)
}

// maxCoord keeps coordinates where float32 and the rasterizer's int32
// scanline math stay exact.
const maxCoord = 1 << 24

func (b *Backend) addQuads(quads []stroke.Quad) {
	for _, q := range quads {
		if !inRange(q) {
			continue
		}
		b.ras.MoveTo(float32(q[0].X), float32(q[0].Y))
		for _, p := range q[1:] {
			b.ras.LineTo(float32(p.X), float32(p.Y))
		}
		b.ras.ClosePath()
	}
}

func inRange(q stroke.Quad) bool {
	for _, p := range q {
		if !(math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord) {
			return false
		}
	}
	return true
}

// flush composites the accumulated coverage with the stroke color.
func (b *Backend) flush() {
	b.ras.Draw(b.img, b.img.Bounds(), b.ink, image.Point{})
	b.ras.Reset(b.width, b.height)
	sketch.Logger().Debug("raster: stroked", slog.Int("subpaths", len(b.path.Subpaths())))
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// colorOrDefault keeps nil colors from reaching image.NewUniform.
func colorOrDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
