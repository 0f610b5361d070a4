package recording

import (
	"fmt"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/parallel"
)

// Recorder captures drawing operations as commands.
// It implements sketch.Surface, so it can be handed to sketch.Draw or a
// sketch.Renderer. Use FinishRecording to obtain a Recording that can be
// replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = sketch.Draw(rec, sketch.NewCircle(sketch.Pt(100, 100), 50))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ sketch.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a canvas of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands, keeping the canvas size.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder may continue to be used; later commands do not
// affect the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
	}
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// BeginPath implements sketch.Surface.
func (r *Recorder) BeginPath() {
	r.record(BeginPathCommand{})
}

// MoveTo implements sketch.Surface.
func (r *Recorder) MoveTo(x, y float64) {
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo implements sketch.Surface.
func (r *Recorder) LineTo(x, y float64) {
	r.record(LineToCommand{X: x, Y: y})
}

// Arc implements sketch.Surface.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	r.record(ArcCommand{
		X:                x,
		Y:                y,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterClockwise,
	})
}

// ClosePath implements sketch.Surface.
func (r *Recorder) ClosePath() {
	r.record(ClosePathCommand{})
}

// StrokeRect implements sketch.Surface.
func (r *Recorder) StrokeRect(x, y, width, height float64) {
	r.record(StrokeRectCommand{X: x, Y: y, Width: width, Height: height})
}

// Stroke implements sketch.Surface.
func (r *Recorder) Stroke() {
	r.record(StrokeCommand{})
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend: Begin with the
// canvas size, one Surface call per command, then End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for _, cmd := range r.commands {
		replay(backend, cmd)
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}

// PlaybackAll replays the recording onto every backend concurrently, one
// backend per worker. Backends must not share state. All backends are
// played even when some fail; the errors are joined, each prefixed with the
// backend's position.
func (r *Recording) PlaybackAll(backends ...Backend) error {
	if len(backends) == 0 {
		return nil
	}

	pool := parallel.NewPool(len(backends))
	defer pool.Close()

	jobs := make([]func() error, len(backends))
	for i, b := range backends {
		jobs[i] = func() error {
			if err := r.Playback(b); err != nil {
				return fmt.Errorf("backend %d: %w", i, err)
			}
			return nil
		}
	}
	return pool.Run(jobs)
}

// replay issues the Surface call a command was recorded from.
func replay(s sketch.Surface, cmd Command) {
	switch c := cmd.(type) {
	case BeginPathCommand:
		s.BeginPath()
	case MoveToCommand:
		s.MoveTo(c.X, c.Y)
	case LineToCommand:
		s.LineTo(c.X, c.Y)
	case ArcCommand:
		s.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.CounterClockwise)
	case ClosePathCommand:
		s.ClosePath()
	case StrokeRectCommand:
		s.StrokeRect(c.X, c.Y, c.Width, c.Height)
	case StrokeCommand:
		s.Stroke()
	}
}
