// Package slogsink forwards tinylog records to a log/slog logger.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/tinylog"
)

// Extra slog levels for tinylog severities slog does not name.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelUser  = slog.LevelError + 4
)

// Sink adapts tinylog callbacks to slog. It builds slog.Attrs directly and
// uses LogAttrs.
type Sink struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l}
}

func toSlog(l tinylog.Level) slog.Level {
	switch l {
	case tinylog.LevelTrace:
		return LevelTrace
	case tinylog.LevelInfo:
		return slog.LevelInfo
	case tinylog.LevelWarn:
		return slog.LevelWarn
	case tinylog.LevelError:
		return slog.LevelError
	default:
		return LevelUser
	}
}

// Print implements tinylog.PrintFunc.
func (s *Sink) Print(level tinylog.Level, file string, line int, msg string) {
	ctx := context.Background()
	lvl := toSlog(level)
	if !s.l.Enabled(ctx, lvl) {
		return
	}
	s.l.LogAttrs(ctx, lvl, msg,
		slog.Time("ts", xclock.Now()),
		slog.String("severity", level.String()),
		slog.String("file", file),
		slog.Int("line", line),
	)
}

// ReplaceLevelNames renders LevelTrace and LevelUser as "TRACE" and "USER"
// instead of "DEBUG-4" and "ERROR+4". Use as HandlerOptions.ReplaceAttr.
func ReplaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case LevelUser:
		a.Value = slog.StringValue("USER")
	}
	return a
}
