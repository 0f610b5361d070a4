package recording

// CommandType identifies the type of a command.
// Each command type corresponds to one sketch.Surface method.
type CommandType uint8

const (
	// Path commands
	CmdBeginPath CommandType = iota // Start a new path
	CmdMoveTo                       // Start a subpath
	CmdLineTo                       // Add a line
	CmdArc                          // Add a circular arc
	CmdClosePath                    // Close the subpath

	// Drawing commands
	CmdStrokeRect // Stroke a rectangle outline
	CmdStroke     // Stroke the current path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginPath:  "BeginPath",
	CmdMoveTo:     "MoveTo",
	CmdLineTo:     "LineTo",
	CmdArc:        "Arc",
	CmdClosePath:  "ClosePath",
	CmdStrokeRect: "StrokeRect",
	CmdStroke:     "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPathCommand starts a new, empty path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new subpath at a point.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a straight line to a point.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds a circular arc in canvas conventions: angles in radians,
// measured with y down, sweeping towards increasing angle unless
// CounterClockwise is set.
type ArcCommand struct {
	X, Y             float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// StrokeRectCommand strokes a rectangle outline. Width and Height may be
// negative.
type StrokeRectCommand struct {
	X, Y          float64
	Width, Height float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }
