package scene

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
	"github.com/gogpu/sketch"
)

// Scene is an ordered collection of shapes. The zero value is an empty
// scene ready to use.
type Scene struct {
	shapes []sketch.Shape
}

// New creates a scene holding the given shapes in order.
func New(shapes ...sketch.Shape) *Scene {
	s := &Scene{}
	for _, sh := range shapes {
		s.Add(sh)
	}
	return s
}

// Add appends a shape. Nil shapes are ignored.
func (s *Scene) Add(shape sketch.Shape) {
	if shape == nil {
		return
	}
	s.shapes = append(s.shapes, shape)
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns a copy of the shapes in drawing order.
func (s *Scene) Shapes() []sketch.Shape {
	return slices.Clone(s.shapes)
}

// All iterates over the shapes in drawing order.
func (s *Scene) All() iter.Seq[sketch.Shape] {
	return slices.Values(s.shapes)
}

// Draw draws every shape onto surface with r, each within its own
// BeginPath/Stroke pair. A nil renderer uses canvas conventions, like
// sketch.Draw. Drawing stops at the first error.
func (s *Scene) Draw(surface sketch.Surface, r *sketch.Renderer) error {
	if r == nil {
		r = sketch.NewRenderer()
	}
	for i, shape := range xiter.Enumerate(s.All()) {
		if err := r.Draw(surface, shape); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	return nil
}
