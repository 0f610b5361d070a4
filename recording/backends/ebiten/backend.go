// Package ebiten provides a recording backend that draws through the
// Ebitengine vector API, on the GPU.
//
// Paths are built as vector.Path values, so arcs stay true curves until
// Ebitengine tessellates them. Strokes are tessellated with
// AppendVerticesAndIndicesForStroke and drawn with DrawTriangles;
// StrokeRect uses vector.StrokeRect.
//
// The backend draws onto any *ebiten.Image, typically the screen passed to
// ebiten.Game.Draw. The registered "ebiten" backend allocates an offscreen
// image sized by Begin. Viewer shows a recording in a window.
package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/sketch/internal/path"
	"github.com/gogpu/sketch/recording"
)

func init() {
	recording.Register("ebiten", func() recording.Backend {
		return New(nil)
	})
}

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a one-pixel white source image for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Backend draws recordings onto an *ebiten.Image.
type Backend struct {
	target     *ebiten.Image
	ownsTarget bool
	opts       options
	path       *vector.Path
}

var (
	_ recording.Backend      = (*Backend)(nil)
	_ recording.ImageBackend = (*Backend)(nil)
)

// New creates a backend drawing onto target. A nil target gets a new
// offscreen image of the recording's size on every Begin.
func New(target *ebiten.Image, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{target: target, opts: o, path: &vector.Path{}}
}

// Begin prepares the target image.
func (b *Backend) Begin(width, height int) error {
	if err := recording.CheckSize(width, height); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	if b.target == nil || b.ownsTarget {
		b.target = ebiten.NewImage(width, height)
		b.ownsTarget = true
	}
	if bg, ok := b.opts.background.Get(); ok {
		b.target.Fill(bg)
	}
	b.path = &vector.Path{}
	return nil
}

// End is a no-op: Ebitengine flushes draw commands itself.
func (b *Backend) End() error {
	return nil
}

// Target returns the image being drawn on.
func (b *Backend) Target() *ebiten.Image {
	return b.target
}

// Image returns the target image. Reading its pixels requires a running
// game loop.
func (b *Backend) Image() image.Image {
	if b.target == nil {
		return nil
	}
	return b.target
}

// BeginPath discards the current path.
func (b *Backend) BeginPath() {
	b.path = &vector.Path{}
}

// MoveTo starts a new subpath.
func (b *Backend) MoveTo(x, y float64) {
	b.path.MoveTo(float32(x), float32(y))
}

// LineTo adds a line to the current subpath.
func (b *Backend) LineTo(x, y float64) {
	b.path.LineTo(float32(x), float32(y))
}

// Arc adds a circular arc. Canvas arcs sweep towards increasing angle,
// which on a y-down screen is vector.Clockwise.
func (b *Backend) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	// Normalize to the canvas sweep so both directions agree on full turns.
	sweep := path.ArcSweep(startAngle, endAngle, counterClockwise)
	endAngle = startAngle + sweep

	b.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), direction(counterClockwise))
}

// ClosePath closes the current subpath.
func (b *Backend) ClosePath() {
	b.path.Close()
}

// Stroke tessellates the current path and draws it.
func (b *Backend) Stroke() {
	if b.target == nil {
		return
	}
	vs, is := b.path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    b.opts.lineWidth,
		LineJoin: vector.LineJoinMiter,
		LineCap:  vector.LineCapSquare,
	})

	// Vertex colors are straight alpha by default.
	c := color.NRGBAModel.Convert(b.opts.color).(color.NRGBA)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}

	b.target.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias: b.opts.antialias,
	})
}

// StrokeRect strokes a rectangle outline. Negative sizes are normalized.
func (b *Backend) StrokeRect(x, y, width, height float64) {
	if b.target == nil {
		return
	}
	r := path.Rect(x, y, width, height)
	tl, br := r.Points[0], r.Points[2]
	vector.StrokeRect(b.target,
		float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y),
		b.opts.lineWidth, b.opts.color, b.opts.antialias)
}

func direction(counterClockwise bool) vector.Direction {
	if counterClockwise {
		return vector.CounterClockwise
	}
	return vector.Clockwise
}
