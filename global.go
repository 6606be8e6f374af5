package tinylog

import (
	"path/filepath"
	"runtime"
	"sync/atomic"
)

// Facade: process-wide dispatcher (Singleton + Facade).
var global atomic.Pointer[Dispatcher]

func init() {
	d, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	global.Store(d)
}

// SetGlobal installs d as the process-wide dispatcher. A callback registered
// on the previous dispatcher is not carried over. nil is ignored.
func SetGlobal(d *Dispatcher) {
	if d == nil {
		return
	}
	global.Store(d)
}

// L returns the process-wide dispatcher. It is never nil.
func L() *Dispatcher { return global.Load() }

// Use builds a Dispatcher from cfg, installs it globally and returns it.
func Use(cfg Config) (*Dispatcher, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	SetGlobal(d)
	return d, nil
}

// RegisterPrintCallback replaces the callback of the global dispatcher.
func RegisterPrintCallback(cb PrintFunc) { L().RegisterPrintCallback(cb) }

// Add dispatches a record with an explicit source location on the global dispatcher.
func Add(level Level, file string, line int, format string, args ...any) {
	L().Add(level, file, line, format, args...)
}

// Level helpers record the caller's file and line.
// Usage: tinylog.Warn("retry %d of %d", n, max)

func Trace(format string, args ...any) { addCaller(LevelTrace, format, args) }
func Info(format string, args ...any)  { addCaller(LevelInfo, format, args) }
func Warn(format string, args ...any)  { addCaller(LevelWarn, format, args) }
func Error(format string, args ...any) { addCaller(LevelError, format, args) }
func User(format string, args ...any)  { addCaller(LevelUser, format, args) }

func addCaller(level Level, format string, args []any) {
	d := L()
	if !d.Enabled(level) {
		return
	}
	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file, line = filepath.Base(f), l
	}
	d.Add(level, file, line, format, args...)
}
