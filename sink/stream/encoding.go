package stream

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/trickstertwo/tinylog"
)

const digits = "0123456789abcdef"

func appendInt(buf *buffer, v int) {
	buf.b = strconv.AppendInt(buf.b, int64(v), 10)
}

func appendTime(buf *buffer, t time.Time, layout string) {
	buf.b = t.AppendFormat(buf.b, layout)
}

func appendQuoted(buf *buffer, s string) {
	buf.writeByte('"')
	appendQuotedContent(buf, s)
	buf.writeByte('"')
}

func appendQuotedContent(buf *buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if start < i {
			buf.writeString(s[start:i])
		}
		if c < 0x80 {
			switch c {
			case '\\', '"':
				buf.writeByte('\\')
				buf.writeByte(c)
			case '\n':
				buf.writeString(`\n`)
			case '\r':
				buf.writeString(`\r`)
			case '\t':
				buf.writeString(`\t`)
			default:
				buf.writeString(`\u00`)
				buf.writeByte(digits[c>>4])
				buf.writeByte(digits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.writeString(`\uFFFD`)
			i++
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		buf.writeString(s[start:])
	}
}

// appendTextString quotes s only when it would break key=value parsing.
func appendTextString(buf *buffer, s string) {
	if s == "" {
		buf.writeString(`""`)
		return
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1F || c == ' ' || c == '"' || c == '=' {
			appendQuoted(buf, s)
			return
		}
	}
	buf.writeString(s)
}

func writeTextLine(buf *buffer, at time.Time, level tinylog.Level, file string, line int, msg string, opts Options) {
	if !opts.DisableTimestamp {
		buf.writeString("ts=")
		appendTime(buf, at, opts.TimeFormat)
		buf.writeByte(' ')
	}
	buf.writeString("level=")
	buf.writeString(level.String())
	if !opts.DisableCaller {
		buf.writeString(" file=")
		appendTextString(buf, file)
		buf.writeString(" line=")
		appendInt(buf, line)
	}
	buf.writeString(" msg=")
	appendTextString(buf, msg)
	buf.writeByte('\n')
}

func writeJSONLine(buf *buffer, at time.Time, level tinylog.Level, file string, line int, msg string, opts Options) {
	buf.writeByte('{')
	if !opts.DisableTimestamp {
		buf.writeString(`"ts":"`)
		appendTime(buf, at, opts.TimeFormat)
		buf.writeString(`",`)
	}
	buf.writeString(`"level":"`)
	buf.writeString(level.String())
	buf.writeByte('"')
	if !opts.DisableCaller {
		buf.writeString(`,"file":`)
		appendQuoted(buf, file)
		buf.writeString(`,"line":`)
		appendInt(buf, line)
	}
	buf.writeString(`,"msg":`)
	appendQuoted(buf, msg)
	buf.writeString("}\n")
}
