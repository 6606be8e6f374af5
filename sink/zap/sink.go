// Package zapsink forwards tinylog records to a go.uber.org/zap logger.
package zapsink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/tinylog"
)

// Sink bridges tinylog callbacks to zap.
//
// Each record carries the xclock timestamp as tsKey (RFC3339Nano string),
// the source location as "file"/"line" and the tinylog level name as
// "severity", since zap has no Trace or User level.
type Sink struct {
	l     *zap.Logger
	tsKey string
}

// New creates a sink for l; a nil logger discards everything.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, tsKey: tsKey}
}

// Print implements tinylog.PrintFunc.
func (s *Sink) Print(level tinylog.Level, file string, line int, msg string) {
	ce := s.l.Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}
	ce.Write(
		zap.String(s.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)),
		zap.String("severity", level.String()),
		zap.String("file", file),
		zap.Int("line", line),
	)
}

// toZapLevel maps tinylog levels onto zap's. User maps to Error so that it
// survives the usual production filters; Fatal/Panic are never used.
func toZapLevel(l tinylog.Level) zapcore.Level {
	switch l {
	case tinylog.LevelTrace:
		return zapcore.DebugLevel
	case tinylog.LevelInfo:
		return zapcore.InfoLevel
	case tinylog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
