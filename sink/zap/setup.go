package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/tinylog"
)

// Config is an explicit, code-first configuration for zap + tinylog.
type Config struct {
	Writer        io.Writer // default: os.Stdout
	MinLevel      tinylog.Level
	BufferSize    int
	Console       bool                  // zapcore console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
}

// DefaultEncoderConfig leaves the time key empty; the sink adds its own "ts".
func DefaultEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// NewLogger builds the zap logger described by cfg.
func NewLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = DefaultEncoderConfig()
	} else {
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	// tinylog filters first; zap accepts everything it is handed.
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Use builds a zap-backed sink, installs a callback-mode global dispatcher
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
