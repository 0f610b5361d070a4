// Package recording captures sketch drawing calls as commands and replays
// them onto output backends.
//
// The recording system decouples drawing from output: the sketch renderer
// draws onto a Recorder, which implements sketch.Surface, and the resulting
// Recording can be played back any number of times onto backends that
// produce pixels, drive a display or draw through a game engine.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures Surface calls as commands
//   - Recording: Stores commands for inspection and playback
//   - Backend: A Surface with a Begin/End lifecycle that renders commands
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//
//	arc, err := sketch.NewArc(sketch.Pt(100, 100), sketch.Pt(200, 50), sketch.Pt(300, 100))
//	if err != nil {
//	    return err
//	}
//	_ = sketch.Draw(rec, arc)
//	_ = sketch.Draw(rec, sketch.NewRectangle(sketch.Pt(10, 10), sketch.Pt(790, 590)))
//
//	r := rec.FinishRecording()
//	fmt.Println(r.Count(recording.CmdArc)) // 1
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/sketch/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	_ = b.(recording.FileBackend).SaveToFile("sketch.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/sketch/recording"
//	    _ "github.com/gogpu/sketch/recording/backends/display" // "display"
//	    _ "github.com/gogpu/sketch/recording/backends/ebiten"  // "ebiten"
//	    _ "github.com/gogpu/sketch/recording/backends/raster"  // "raster"
//	)
package recording
