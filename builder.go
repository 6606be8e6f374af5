package tinylog

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultBufferSize is the render buffer capacity, terminator included.
const DefaultBufferSize = 256

var (
	ErrInvalidMode     = errors.New("tinylog: invalid mode")
	ErrInvalidMinLevel = errors.New("tinylog: invalid minimum level")
	ErrBufferSize      = errors.New("tinylog: buffer size must be at least 2")
)

// Config for constructing a Dispatcher. All fields are fixed for the
// Dispatcher's lifetime.
type Config struct {
	MinLevel   Level
	Mode       Mode
	BufferSize int       // default DefaultBufferSize
	Console    io.Writer // ModeConsole only; default os.Stdout
	Formatter  FormatFunc
	Sink       PrintFunc // optional initial callback
}

// DefaultConfig mirrors the usual embedded build: callback mode, Warn and up.
func DefaultConfig() Config {
	return Config{
		MinLevel:   LevelWarn,
		Mode:       ModeCallback,
		BufferSize: DefaultBufferSize,
	}
}

// Builder separates construction from representation.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithMode(m Mode) *Builder {
	b.cfg.Mode = m
	return b
}

func (b *Builder) WithBufferSize(n int) *Builder {
	b.cfg.BufferSize = n
	return b
}

func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.cfg.Console = w
	return b
}

func (b *Builder) WithFormatter(f FormatFunc) *Builder {
	b.cfg.Formatter = f
	return b
}

func (b *Builder) WithPrintCallback(cb PrintFunc) *Builder {
	b.cfg.Sink = cb
	return b
}

// Build validates the configuration and constructs the Dispatcher.
func (b *Builder) Build() (*Dispatcher, error) {
	return New(b.cfg)
}

// New constructs a Dispatcher from cfg, filling unset optional fields.
func New(cfg Config) (*Dispatcher, error) {
	if !cfg.Mode.valid() {
		return nil, errors.Wrapf(ErrInvalidMode, "mode %d", cfg.Mode)
	}
	if cfg.MinLevel < LevelTrace || cfg.MinLevel > LevelNone {
		return nil, errors.Wrapf(ErrInvalidMinLevel, "level %d", int(cfg.MinLevel))
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.BufferSize < 2 {
		return nil, errors.Wrapf(ErrBufferSize, "got %d", cfg.BufferSize)
	}
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = Format
	}
	return newDispatcher(cfg), nil
}
