// Package stream provides a tinylog sink that writes one timestamped line per
// record to an io.Writer such as a serial port, socket or file.
package stream

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/tinylog"
)

// Format selects the line encoding.
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// ErrorHandler receives write errors. Records are never retried.
type ErrorHandler func(error)

// Options configures a Sink.
type Options struct {
	Format           Format
	TimeFormat       string // default time.RFC3339Nano
	DisableTimestamp bool
	DisableCaller    bool // omit file and line
	ErrorHandler     ErrorHandler
	Clock            xclock.Clock // default xclock.Default() at write time
}

func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "tinylog/stream: %v\n", err)
}

// Sink serializes records onto a writer. Safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	opts   Options
	errors atomic.Uint64
}

// New creates a Sink writing to w (os.Stdout when nil).
func New(w io.Writer, opts Options) *Sink {
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == 0 {
		opts.Format = FormatText
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = time.RFC3339Nano
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	return &Sink{w: w, opts: opts}
}

func (s *Sink) now() time.Time {
	if s.opts.Clock != nil {
		return s.opts.Clock.Now()
	}
	return xclock.Now()
}

// Print implements tinylog.PrintFunc.
func (s *Sink) Print(level tinylog.Level, file string, line int, msg string) {
	buf := getBuf()
	defer putBuf(buf)

	at := s.now()
	if s.opts.Format == FormatJSON {
		writeJSONLine(buf, at, level, file, line, msg, s.opts)
	} else {
		writeTextLine(buf, at, level, file, line, msg, s.opts)
	}

	s.mu.Lock()
	_, err := s.w.Write(buf.b)
	s.mu.Unlock()
	if err != nil {
		s.errors.Add(1)
		s.opts.ErrorHandler(err)
	}
}

// WriteErrors returns how many records failed to write.
func (s *Sink) WriteErrors() uint64 { return s.errors.Load() }
