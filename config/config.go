// Package config loads tinylog settings from TOML files, defaults and
// environment overrides.
package config

import (
	"io"
	"strconv"
	"strings"

	"github.com/Psiphon-Inc/configloader-go"
	"github.com/Psiphon-Inc/configloader-go/toml"
	"github.com/pkg/errors"

	"github.com/trickstertwo/tinylog"
)

// Sink names accepted in Log.Sink.
const (
	SinkStream  = "stream"
	SinkZap     = "zap"
	SinkZerolog = "zerolog"
	SinkSlog    = "slog"
)

var ErrUnknownSink = errors.New("config: unknown sink")

type fileConfig struct {
	Log struct {
		MinLevel   string
		Mode       string
		BufferSize int
		Sink       string
		JSON       bool
	}

	Metrics struct {
		Addr string
	}
}

// Config is the validated result of loading.
type Config struct {
	file fileConfig
	md   configloader.Metadata

	minLevel tinylog.Level
	mode     tinylog.Mode
}

var defaults = []configloader.Default{
	{Key: configloader.Key{"Log", "MinLevel"}, Val: "warn"},
	{Key: configloader.Key{"Log", "Mode"}, Val: "callback"},
	{Key: configloader.Key{"Log", "BufferSize"}, Val: tinylog.DefaultBufferSize},
	{Key: configloader.Key{"Log", "Sink"}, Val: SinkStream},
	{Key: configloader.Key{"Log", "JSON"}, Val: false},
	{Key: configloader.Key{"Metrics", "Addr"}, Val: ""},
}

var envOverrides = []configloader.EnvOverride{
	{EnvVar: "TINYLOG_MIN_LEVEL", Key: configloader.Key{"Log", "MinLevel"}},
	{EnvVar: "TINYLOG_MODE", Key: configloader.Key{"Log", "Mode"}},
	{EnvVar: "TINYLOG_BUFFER_SIZE", Key: configloader.Key{"Log", "BufferSize"}, Conv: atoiOrString},
	{EnvVar: "TINYLOG_SINK", Key: configloader.Key{"Log", "Sink"}},
	{EnvVar: "TINYLOG_METRICS_ADDR", Key: configloader.Key{"Metrics", "Addr"}},
}

// atoiOrString leaves unparsable values as strings so the loader reports a
// type mismatch instead of silently using zero.
func atoiOrString(s string) interface{} {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}

// LoadFiles finds the named files in searchPaths (the first file must exist)
// and loads them in order, later files overriding earlier ones.
func LoadFiles(filenames, searchPaths []string) (*Config, error) {
	readers, closers, names, err := configloader.FindConfigFiles(filenames, searchPaths)
	if err != nil {
		return nil, errors.Wrap(err, "FindConfigFiles failed")
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	return Load(readers, names)
}

// Load reads TOML from readers, applying defaults and environment overrides.
// names may be nil.
func Load(readers []io.Reader, names []string) (*Config, error) {
	var conf Config
	var err error
	conf.md, err = configloader.Load(
		toml.Codec,
		readers, names,
		envOverrides,
		defaults,
		&conf.file)
	if err != nil {
		return nil, errors.Wrap(err, "configloader.Load failed")
	}

	if conf.minLevel, err = tinylog.ParseLevel(conf.file.Log.MinLevel); err != nil {
		return nil, errors.Wrap(err, "Log.MinLevel")
	}
	if conf.mode, err = tinylog.ParseMode(conf.file.Log.Mode); err != nil {
		return nil, errors.Wrap(err, "Log.Mode")
	}
	conf.file.Log.Sink = strings.ToLower(strings.TrimSpace(conf.file.Log.Sink))
	switch conf.file.Log.Sink {
	case SinkStream, SinkZap, SinkZerolog, SinkSlog:
	default:
		return nil, errors.Wrapf(ErrUnknownSink, "Log.Sink %q", conf.file.Log.Sink)
	}
	return &conf, nil
}

func (c *Config) MinLevel() tinylog.Level { return c.minLevel }
func (c *Config) Mode() tinylog.Mode      { return c.mode }
func (c *Config) BufferSize() int         { return c.file.Log.BufferSize }
func (c *Config) Sink() string            { return c.file.Log.Sink }
func (c *Config) JSON() bool              { return c.file.Log.JSON }
func (c *Config) MetricsAddr() string     { return c.file.Metrics.Addr }

// Provenances reports where each setting came from.
func (c *Config) Provenances() configloader.Provenances { return c.md.Provenances }

// Builder returns a tinylog.Builder primed with the loaded settings.
func (c *Config) Builder() *tinylog.Builder {
	return tinylog.NewBuilder().
		WithMinLevel(c.minLevel).
		WithMode(c.mode).
		WithBufferSize(c.file.Log.BufferSize)
}
