package tinylog

import (
	"fmt"
	"unicode/utf8"
)

// FormatFunc renders format and args into buf and returns the message length.
// Implementations must leave the message in buf[:n] with n < len(buf) and never
// write past len(buf).
type FormatFunc func(buf []byte, format string, args ...any) int

// Format is the default FormatFunc. It writes at most len(buf)-1 message bytes
// followed by a 0 terminator, truncating on a rune boundary when the rendered
// text does not fit. An empty buf yields 0.
func Format(buf []byte, format string, args ...any) int {
	if len(buf) == 0 {
		return 0
	}
	w := boundedWriter{buf: buf[:len(buf)-1]}
	fmt.Fprintf(&w, format, args...)
	n := w.n
	if w.truncated {
		n = trimPartialRune(buf[:n])
	}
	buf[n] = 0
	return n
}

// boundedWriter copies into a fixed slice and silently drops the overflow.
type boundedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	c := copy(w.buf[w.n:], p)
	w.n += c
	if c < len(p) {
		w.truncated = true
	}
	return len(p), nil
}

// trimPartialRune drops a trailing incomplete UTF-8 sequence left by truncation.
func trimPartialRune(b []byte) int {
	n := len(b)
	start := n
	for i := 0; i < utf8.UTFMax && start > 0; i++ {
		start--
		if utf8.RuneStart(b[start]) {
			if !utf8.FullRune(b[start:n]) {
				return start
			}
			return n
		}
	}
	return n
}
