package slogsink

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/tinylog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + tinylog.
type Config struct {
	Writer     io.Writer // default: os.Stdout
	MinLevel   tinylog.Level
	BufferSize int
	Format     Format // JSON (default) or Text
	// HandlerOptions is optional; Level and ReplaceAttr are set by NewLogger
	// when left empty.
	HandlerOptions *slog.HandlerOptions
}

// NewLogger builds the slog logger described by cfg.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	if opts.Level == nil {
		// tinylog filters first; let every mapped level through.
		opts.Level = LevelTrace
	}
	if opts.ReplaceAttr == nil {
		opts.ReplaceAttr = ReplaceLevelNames
	}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return slog.New(h)
}

// Use builds a slog-backed sink, installs a callback-mode global dispatcher
// printing through it, and returns the dispatcher.
func Use(cfg Config) (*tinylog.Dispatcher, error) {
	s := New(NewLogger(cfg))
	return tinylog.Use(tinylog.Config{
		MinLevel:   cfg.MinLevel,
		Mode:       tinylog.ModeCallback,
		BufferSize: cfg.BufferSize,
		Sink:       s.Print,
	})
}
