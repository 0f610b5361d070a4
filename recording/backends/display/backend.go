// Package display provides a recording backend that draws onto a TinyGo
// display driver.
//
// Any tinygo.org/x/drivers.Displayer works as a target: SPI panels, e-ink
// screens or the in-memory Framebuffer. Lines are one pixel wide and drawn
// with Bresenham's algorithm; arcs are flattened first. Display() is called
// once per playback, from End.
//
// # Example
//
//	dev := st7789.New(machine.SPI0, resetPin, dcPin, csPin, blPin)
//	dev.Configure(st7789.Config{Width: 240, Height: 240})
//
//	backend := display.New(&dev, display.WithColor(color.RGBA{G: 0xff, A: 0xff}))
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//
// The registered "display" backend draws onto a fresh Framebuffer sized by
// Begin.
package display

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"tinygo.org/x/drivers"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/path"
	"github.com/gogpu/sketch/recording"
)

func init() {
	recording.Register("display", func() recording.Backend {
		return New(nil)
	})
}

// Backend draws recordings onto a drivers.Displayer.
type Backend struct {
	dev  drivers.Displayer
	opts options
	path path.Path

	// ownsDevice is set when dev is a Framebuffer created by Begin.
	ownsDevice bool
}

var (
	_ recording.Backend      = (*Backend)(nil)
	_ recording.ImageBackend = (*Backend)(nil)
)

// New creates a backend drawing onto dev. A nil dev gets a new Framebuffer
// of the recording's size on every Begin.
func New(dev drivers.Displayer, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{dev: dev, opts: o}
}

// Device returns the display being drawn on.
func (b *Backend) Device() drivers.Displayer {
	return b.dev
}

// Begin prepares the display and paints the background, if one is set.
func (b *Backend) Begin(width, height int) error {
	if err := recording.CheckSize(width, height); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if width > math.MaxInt16 || height > math.MaxInt16 {
		return fmt.Errorf("display: %w %dx%d exceeds the int16 pixel range", recording.ErrInvalidSize, width, height)
	}
	if b.dev == nil || b.ownsDevice {
		b.dev = NewFramebuffer(int16(width), int16(height))
		b.ownsDevice = true
	}
	b.path.Reset()

	w, h := b.dev.Size()
	if int(w) < width || int(h) < height {
		sketch.Logger().Debug("display: recording larger than display, clipping",
			slog.Int("width", width), slog.Int("height", height),
			slog.Int("display_width", int(w)), slog.Int("display_height", int(h)))
	}

	if bg, ok := b.opts.background.Get(); ok {
		for y := range h {
			for x := range w {
				b.dev.SetPixel(x, y, bg)
			}
		}
	}
	return nil
}

// End presents the frame.
func (b *Backend) End() error {
	if b.dev == nil {
		return fmt.Errorf("display: End before Begin")
	}
	if err := b.dev.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Image returns the drawn pixels when the device is a Framebuffer, and nil
// for hardware displays.
func (b *Backend) Image() image.Image {
	if fb, ok := b.dev.(*Framebuffer); ok {
		return fb.Image()
	}
	return nil
}

func (b *Backend) BeginPath()          { b.path.Reset() }
func (b *Backend) MoveTo(x, y float64) { b.path.MoveTo(x, y) }
func (b *Backend) LineTo(x, y float64) { b.path.LineTo(x, y) }
func (b *Backend) ClosePath()          { b.path.ClosePath() }

func (b *Backend) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	b.path.Arc(x, y, radius, startAngle, endAngle, counterClockwise)
}

// Stroke draws every edge of the current path.
func (b *Backend) Stroke() {
	for _, sub := range b.path.Subpaths() {
		b.strokeSubpath(sub)
	}
}

// StrokeRect draws a rectangle outline. Negative sizes are normalized.
func (b *Backend) StrokeRect(x, y, width, height float64) {
	b.strokeSubpath(path.Rect(x, y, width, height))
}

func (b *Backend) strokeSubpath(sub path.Subpath) {
	if b.dev == nil {
		return
	}
	if len(sub.Points) == 1 {
		if x, y, ok := pixel(sub.Points[0]); ok {
			b.dev.SetPixel(x, y, b.opts.color)
		}
		return
	}
	w, h := b.dev.Size()
	lo, hi := sketch.Pt(-1, -1), sketch.Pt(float64(w), float64(h))
	sub.Edges(func(p, q sketch.Point) {
		if !path.Finite(p) || !path.Finite(q) {
			sketch.Logger().Debug("display: skipped non-finite edge", slog.Any("from", p), slog.Any("to", q))
			return
		}
		p, q, ok := path.ClipSegment(p, q, lo, hi)
		if !ok {
			return
		}
		x0, y0, ok0 := pixel(p)
		x1, y1, ok1 := pixel(q)
		if ok0 && ok1 {
			line(b.dev, x0, y0, x1, y1, b.opts.color)
		}
	})
}

// pixel rounds p to device coordinates, failing outside the int16 range.
func pixel(p sketch.Point) (x, y int16, ok bool) {
	fx, fy := math.Round(p.X), math.Round(p.Y)
	if !(fx >= math.MinInt16 && fx <= math.MaxInt16 && fy >= math.MinInt16 && fy <= math.MaxInt16) {
		return 0, 0, false
	}
	return int16(fx), int16(fy), true
}

// line draws from (x0, y0) to (x1, y1) inclusive with Bresenham's
// algorithm.
func line(d drivers.Displayer, x0, y0, x1, y1 int16, c color.RGBA) {
	ax, ay, bx, by := int(x0), int(y0), int(x1), int(y1)
	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy

	for {
		d.SetPixel(int16(ax), int16(ay), c)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
