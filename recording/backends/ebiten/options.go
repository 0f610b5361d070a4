package ebiten

import "image/color"

// Option configures a Backend or Viewer.
type Option func(*options)

type options struct {
	lineWidth  float32
	color      color.Color
	background optionalColor
	antialias  bool
	title      string
}

type optionalColor struct {
	c   color.Color
	set bool
}

func (o optionalColor) Get() (color.Color, bool) {
	return o.c, o.set && o.c != nil
}

func defaultOptions() options {
	return options{
		lineWidth: 1,
		color:     color.White,
		antialias: true,
		title:     "sketch",
	}
}

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float32) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithColor sets the stroke color. Strokes are white by default.
func WithColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.color = c
		}
	}
}

// WithBackground fills the target with c on Begin.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = optionalColor{c: c, set: true}
	}
}

// WithAntialias toggles anti-aliasing. It is on by default.
func WithAntialias(on bool) Option {
	return func(o *options) {
		o.antialias = on
	}
}

// WithTitle sets the Viewer window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}
