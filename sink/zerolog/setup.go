package zerologsink

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/tinylog"
)

// Config is an explicit, code-first configuration for zerolog + tinylog.
type Config struct {
	Writer     io.Writer // default: os.Stdout
	MinLevel   tinylog.Level
	BufferSize int
	Console    bool // pretty console output instead of JSON
}

// NewLogger builds the zerolog logger described by cfg.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if !cfg.Console {
		return zerolog.New(w)
	}
	// The sink writes its own "ts" string field; zerolog's time column stays empty.
	cw := zerolog.ConsoleWriter{
		Out:          w,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw)
}

// Use builds a zerolog-backed sink, installs a callback-mode global
// dispatcher printing through it, and returns the dispatcher.
func Use(cfg Config) (*tinylog.Dispatcher, error) {
	s := New(NewLogger(cfg))
	return tinylog.Use(tinylog.Config{
		MinLevel:   cfg.MinLevel,
		Mode:       tinylog.ModeCallback,
		BufferSize: cfg.BufferSize,
		Sink:       s.Print,
	})
}
