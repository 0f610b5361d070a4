package sketch

import (
	"log/slog"

	mt "github.com/rustyoz/Mtransform"
)

// RendererOption configures a Renderer during creation.
// Use functional options to customize the coordinate conventions.
//
// Example:
//
//	// Shapes in mathematical coordinates on a 600px tall canvas
//	r := sketch.NewRenderer(sketch.WithYUp(600))
//
//	// Extra device transform, e.g. a 2x zoom
//	t := mt.Identity()
//	t.Scale(2, 2)
//	r := sketch.NewRenderer(sketch.WithTransform(t))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	yUp       bool
	height    float64
	transform *mt.Transform
	logger    *slog.Logger
}

// defaultRendererOptions returns the default renderer options: shape
// coordinates are surface coordinates and no extra transform applies.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{}
}

// WithYUp declares that shapes use mathematical coordinates, with y growing
// upward and angles counter-clockwise. Points are mapped to (x, height-y)
// on the surface, arc angles are negated and sweeps are inverted, so arcs
// land on the same visual points they were built from.
func WithYUp(height float64) RendererOption {
	return func(o *rendererOptions) {
		o.yUp = true
		o.height = height
	}
}

// WithTransform sets a device transform applied to every coordinate after
// the y-axis mapping.
//
// Arcs stay circular only under similarity transforms (translation,
// rotation, uniform scale and reflection). For a non-uniform scale, radii
// follow the scale of the x axis.
func WithTransform(t mt.Transform) RendererOption {
	return func(o *rendererOptions) {
		o.transform = &t
	}
}

// WithLogger sets the logger used by one Renderer.
// By default the renderer logs through Logger().
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
