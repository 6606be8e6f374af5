package stream

import (
	"io"

	"github.com/trickstertwo/tinylog"
)

// Config is an explicit, code-first configuration for a stream-backed
// global dispatcher.
type Config struct {
	Writer     io.Writer // default: os.Stdout
	MinLevel   tinylog.Level
	BufferSize int
	Options    Options
}

// Use builds a Sink, installs a callback-mode global dispatcher that prints
// through it, and returns both.
func Use(cfg Config) (*tinylog.Dispatcher, *Sink, error) {
	s := New(cfg.Writer, cfg.Options)
	d, err := tinylog.Use(tinylog.Config{
		MinLevel:   cfg.MinLevel,
		Mode:       tinylog.ModeCallback,
		BufferSize: cfg.BufferSize,
		Sink:       s.Print,
	})
	if err != nil {
		return nil, nil, err
	}
	return d, s, nil
}
