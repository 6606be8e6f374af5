package tinylog

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level orders records from most verbose (Trace) to least verbose (User).
type Level int

const (
	LevelTrace Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelUser

	// LevelNone is one past the last valid level. It is never a record level;
	// used as a minimum level it silences everything.
	LevelNone
)

var levelNames = [...]string{"Trace", "Info", "Warn", "Error", "User"}

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("tinylog: unknown level")

// Valid reports whether l may be attached to a record.
func (l Level) Valid() bool {
	return l >= LevelTrace && l < LevelNone
}

func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	if l == LevelNone {
		return "None"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel maps a case-insensitive level name to a Level.
// "none" yields LevelNone, which is only meaningful as a minimum level.
func ParseLevel(s string) (Level, error) {
	name := strings.TrimSpace(s)
	for i, n := range levelNames {
		if strings.EqualFold(n, name) {
			return Level(i), nil
		}
	}
	switch strings.ToLower(name) {
	case "none", "off":
		return LevelNone, nil
	case "warning":
		return LevelWarn, nil
	}
	return LevelNone, errors.Wrapf(ErrUnknownLevel, "%q", s)
}
