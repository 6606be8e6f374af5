package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/tinylog"
)

var frozenAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTextLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(&buf, Options{Clock: xclock.NewFrozen(frozenAt)})
	s.Print(tinylog.LevelWarn, "net.c", 42, "timeout after 500 ms")

	want := `ts=2025-01-01T00:00:00Z level=Warn file=net.c line=42 msg="timeout after 500 ms"` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("text line mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestTextLineBareValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(&buf, Options{DisableTimestamp: true})
	s.Print(tinylog.LevelUser, "main.c", 1, "ready")
	s.Print(tinylog.LevelInfo, "main.c", 2, "")

	want := "level=User file=main.c line=1 msg=ready\nlevel=Info file=main.c line=2 msg=\"\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestJSONLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(&buf, Options{Format: FormatJSON, Clock: xclock.NewFrozen(frozenAt)})
	s.Print(tinylog.LevelError, "drv/spi.c", 7, "bad \"crc\"\tretry")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["ts"] != "2025-01-01T00:00:00Z" {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
	if m["level"] != "Error" || m["file"] != "drv/spi.c" || m["line"] != float64(7) {
		t.Fatalf("record mismatch: %v", m)
	}
	if m["msg"] != "bad \"crc\"\tretry" {
		t.Fatalf("msg mismatch: %q", m["msg"])
	}
}

func TestJSONWithoutCaller(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(&buf, Options{Format: FormatJSON, DisableCaller: true, DisableTimestamp: true})
	s.Print(tinylog.LevelInfo, "x.c", 1, "hi")

	if got, want := buf.String(), `{"level":"Info","msg":"hi"}`+"\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUsesDefaultClock(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(xclock.NewFrozen(frozenAt))

	var buf bytes.Buffer
	New(&buf, Options{}).Print(tinylog.LevelInfo, "a.c", 1, "x")
	if !strings.HasPrefix(buf.String(), "ts=2025-01-01T00:00:00Z ") {
		t.Fatalf("expected frozen default clock, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("uart: tx timeout") }

func TestWriteErrors(t *testing.T) {
	t.Parallel()

	var seen []error
	s := New(failingWriter{}, Options{ErrorHandler: func(err error) { seen = append(seen, err) }})
	s.Print(tinylog.LevelError, "a.c", 1, "x")
	s.Print(tinylog.LevelError, "a.c", 2, "y")

	if s.WriteErrors() != 2 || len(seen) != 2 {
		t.Fatalf("expected 2 errors, got counter=%d handler=%d", s.WriteErrors(), len(seen))
	}
}

func TestUseWiresGlobal(t *testing.T) {
	old := tinylog.L()
	defer tinylog.SetGlobal(old)

	var buf bytes.Buffer
	d, _, err := Use(Config{
		Writer:   &buf,
		MinLevel: tinylog.LevelInfo,
		Options:  Options{DisableTimestamp: true},
	})
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if tinylog.L() != d {
		t.Fatal("Use did not install the dispatcher")
	}
	tinylog.Add(tinylog.LevelTrace, "a.c", 1, "dropped")
	tinylog.Add(tinylog.LevelInfo, "a.c", 2, "kept %d", 1)

	if got, want := buf.String(), "level=Info file=a.c line=2 msg=\"kept 1\"\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
