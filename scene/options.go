package scene

import "log/slog"

// Option configures Parse.
type Option func(*options)

type options struct {
	skipInvalid bool
	logger      *slog.Logger
}

// WithSkipInvalid makes Parse drop commands whose shape cannot be built,
// such as an arc through collinear points, instead of failing. Each dropped
// command is logged at Warn level. Syntax errors still fail.
func WithSkipInvalid() Option {
	return func(o *options) {
		o.skipInvalid = true
	}
}

// WithLogger sets the logger used while parsing.
// By default Parse logs through sketch.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
