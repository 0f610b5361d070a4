package display

import "image/color"

// Option configures a display Backend.
type Option func(*options)

type options struct {
	color      color.RGBA
	background optionalColor
}

type optionalColor struct {
	c   color.RGBA
	set bool
}

func (o optionalColor) Get() (color.RGBA, bool) {
	return o.c, o.set
}

func defaultOptions() options {
	return options{
		color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WithColor sets the line color. Lines are white by default.
func WithColor(c color.RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithBackground clears the whole display to c on Begin. Without it the
// display keeps its previous contents.
func WithBackground(c color.RGBA) Option {
	return func(o *options) {
		o.background = optionalColor{c: c, set: true}
	}
}
