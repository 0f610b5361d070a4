package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Framebuffer is an in-memory drivers.Displayer backed by an *image.RGBA.
// It stands in for hardware when no display is attached.
type Framebuffer struct {
	img      *image.RGBA
	presents int
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer creates a black framebuffer of the given size.
func NewFramebuffer(width, height int16) *Framebuffer {
	return &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, int(max(width, 0)), int(max(height, 0)))),
	}
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel sets one pixel. Pixels outside the framebuffer are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(f.img.Bounds()) {
		return
	}
	f.img.SetRGBA(int(x), int(y), c)
}

// Display counts presented frames. The pixels are already in place.
func (f *Framebuffer) Display() error {
	f.presents++
	return nil
}

// Presents returns how many times Display was called.
func (f *Framebuffer) Presents() int {
	return f.presents
}

// Image returns the framebuffer contents.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}
