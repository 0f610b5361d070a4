package recording

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/sketch"
)

// Backend is the interface that all output backends must implement.
// A Backend is a sketch.Surface with a lifecycle: Playback calls Begin,
// replays every command through the Surface methods and calls End.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept Surface calls only between Begin and End
//  3. Report drawing failures from End rather than from Surface methods
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewSVGBackend()
//	    })
//	}
type Backend interface {
	sketch.Surface

	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	// After End is called, output methods (Image, WriteTo, SaveToFile)
	// can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() image.Image
}

// ErrInvalidSize is returned by Begin for a canvas without area.
var ErrInvalidSize = errors.New("recording: invalid size")

// CheckSize returns an error wrapping ErrInvalidSize unless both dimensions
// are positive. Backends call it first thing in Begin.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}
