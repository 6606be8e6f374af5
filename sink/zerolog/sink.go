// Package zerologsink forwards tinylog records to an rs/zerolog logger.
package zerologsink

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/tinylog"
)

// Sink bridges tinylog callbacks to zerolog.
//
// Fields: "ts" from xclock (RFC3339Nano string), "severity", "file", "line".
// User records are written with zerolog.NoLevel so no backend level drops them.
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// Print implements tinylog.PrintFunc.
func (s *Sink) Print(level tinylog.Level, file string, line int, msg string) {
	zlvl := mapLevel(level)

	// Drop early if below the backend's own level (no Event allocation).
	if zlvl != zerolog.NoLevel && zlvl < s.l.GetLevel() {
		return
	}

	s.l.WithLevel(zlvl).
		Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano)).
		Str("severity", level.String()).
		Str("file", file).
		Int("line", line).
		Msg(msg)
}

func mapLevel(l tinylog.Level) zerolog.Level {
	switch l {
	case tinylog.LevelTrace:
		return zerolog.TraceLevel
	case tinylog.LevelInfo:
		return zerolog.InfoLevel
	case tinylog.LevelWarn:
		return zerolog.WarnLevel
	case tinylog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
