package tinylog

import (
	"io"
	"strconv"
	"sync"
	"sync/atomic"
)

// PrintFunc receives one rendered record. msg is only valid for the duration
// of the call. Implementations invoked from several goroutines must be safe
// for concurrent use; the Dispatcher does no locking around them.
type PrintFunc func(level Level, file string, line int, msg string)

// Dispatcher filters records against a fixed minimum level, renders them into
// a bounded buffer and routes them to the console or to a single callback.
// Every call runs synchronously in the caller's goroutine.
type Dispatcher struct {
	minLevel Level
	mode     Mode
	bufSize  int
	console  io.Writer
	format   FormatFunc

	// Registered callback; nil when unset. Swapped atomically so Add never
	// observes a partially written value.
	sink atomic.Pointer[PrintFunc]

	bufs sync.Pool // holds *[]byte of length bufSize
}

func newDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		minLevel: cfg.MinLevel,
		mode:     cfg.Mode,
		bufSize:  cfg.BufferSize,
		console:  cfg.Console,
		format:   cfg.Formatter,
	}
	d.bufs.New = func() any {
		b := make([]byte, d.bufSize)
		return &b
	}
	d.RegisterPrintCallback(cfg.Sink)
	return d
}

func (d *Dispatcher) MinLevel() Level { return d.minLevel }
func (d *Dispatcher) Mode() Mode      { return d.mode }

// Enabled reports whether a record at level would be emitted.
// Use to avoid building arguments in hot paths when disabled.
func (d *Dispatcher) Enabled(level Level) bool {
	return level.Valid() && level >= d.minLevel
}

// RegisterPrintCallback replaces the registered callback. nil clears it.
// The last registration wins.
func (d *Dispatcher) RegisterPrintCallback(cb PrintFunc) {
	if cb == nil {
		d.sink.Store(nil)
		return
	}
	d.sink.Store(&cb)
}

// Add renders and dispatches one record. Invalid and filtered levels return
// immediately; overlong messages are truncated to the buffer capacity.
func (d *Dispatcher) Add(level Level, file string, line int, format string, args ...any) {
	if !d.Enabled(level) {
		return
	}

	var cb PrintFunc
	if d.mode == ModeCallback {
		p := d.sink.Load()
		if p == nil {
			return
		}
		cb = *p
	}

	bp := d.bufs.Get().(*[]byte)
	defer d.bufs.Put(bp)
	buf := *bp
	n := d.format(buf, format, args...)
	if n < 0 {
		n = 0
	} else if n > len(buf)-1 {
		n = len(buf) - 1
	}

	switch d.mode {
	case ModeConsole:
		d.writeConsole(level, file, line, buf[:n])
	case ModeCallback:
		cb(level, file, line, string(buf[:n]))
	}
}

// writeConsole emits "<Name>: <message> \t(<file> #<line>)\n" in a single Write.
// Tooling parses this layout; keep it stable.
func (d *Dispatcher) writeConsole(level Level, file string, line int, msg []byte) {
	out := make([]byte, 0, len(msg)+len(file)+32)
	out = append(out, levelNames[level]...)
	out = append(out, ": "...)
	out = append(out, msg...)
	out = append(out, " \t("...)
	out = append(out, file...)
	out = append(out, " #"...)
	out = strconv.AppendInt(out, int64(line), 10)
	out = append(out, ')', '\n')
	_, _ = d.console.Write(out)
}
