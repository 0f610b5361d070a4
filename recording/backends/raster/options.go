package raster

import (
	"image/color"
	"math"
)

// Option configures a raster Backend.
type Option func(*options)

type options struct {
	lineWidth  float64
	color      color.Color
	background color.Color
}

// defaultOptions strokes 1px black lines on a transparent image.
func defaultOptions() options {
	return options{
		lineWidth: 1,
		color:     color.Black,
	}
}

// WithLineWidth sets the stroke width in pixels. Widths that are not
// positive and finite are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 && !math.IsInf(w, 1) {
			o.lineWidth = w
		}
	}
}

// WithColor sets the stroke color.
func WithColor(c color.Color) Option {
	return func(o *options) {
		o.color = colorOrDefault(c, color.Black)
	}
}

// WithBackground fills the image with c on Begin. A nil color leaves the
// image transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
