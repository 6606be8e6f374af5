package tinylog

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	want := map[Level]string{
		LevelTrace: "Trace",
		LevelInfo:  "Info",
		LevelWarn:  "Warn",
		LevelError: "Error",
		LevelUser:  "User",
		LevelNone:  "None",
		9:          "Level(9)",
		-1:         "Level(-1)",
	}
	for l, s := range want {
		if got := l.String(); got != s {
			t.Fatalf("Level(%d).String() = %q, want %q", int(l), got, s)
		}
	}
}

func TestLevelValid(t *testing.T) {
	t.Parallel()

	for l := LevelTrace; l < LevelNone; l++ {
		if !l.Valid() {
			t.Fatalf("%s should be valid", l)
		}
	}
	for _, l := range []Level{LevelNone, LevelNone + 1, -1} {
		if l.Valid() {
			t.Fatalf("%d should be invalid", int(l))
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"Info", LevelInfo},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"user", LevelUser},
		{"none", LevelNone},
		{"off", LevelNone},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseLevel("debug"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Mode{
		"console":  ModeConsole,
		"printf":   ModeConsole,
		"Callback": ModeCallback,
	} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("serial"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}
