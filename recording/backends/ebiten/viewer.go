package ebiten

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/recording"
)

// Viewer is an ebiten.Game that replays a recording every frame.
type Viewer struct {
	rec  *recording.Recording
	opts []Option
	err  error
}

var _ ebiten.Game = (*Viewer)(nil)

// NewViewer creates a viewer for rec. Options apply to the backend drawing
// each frame and to the window.
func NewViewer(rec *recording.Recording, opts ...Option) *Viewer {
	return &Viewer{rec: rec, opts: opts}
}

// Update stops the game once a frame failed to draw.
func (v *Viewer) Update() error {
	return v.err
}

// Draw replays the recording onto the screen.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if err := v.rec.Playback(New(screen, v.opts...)); err != nil {
		sketch.Logger().Error("ebiten: playback failed", slog.Any("error", err))
		v.err = err
	}
}

// Layout keeps the recording's canvas size regardless of the window.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.rec.Width(), v.rec.Height()
}

// Show opens a window displaying rec and blocks until it is closed.
func Show(rec *recording.Recording, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ebiten.SetWindowSize(rec.Width(), rec.Height())
	ebiten.SetWindowTitle(o.title)

	if err := ebiten.RunGame(NewViewer(rec, opts...)); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
