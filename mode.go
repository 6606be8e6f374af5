package tinylog

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects where rendered records go. It is fixed when a Dispatcher is
// built; there is no per-call override.
type Mode uint8

const (
	// ModeConsole writes one line per record to the console writer.
	ModeConsole Mode = iota + 1
	// ModeCallback hands records to the registered PrintFunc, if any.
	ModeCallback
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("tinylog: unknown mode")

func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeCallback:
		return "callback"
	default:
		return "invalid"
	}
}

func (m Mode) valid() bool {
	return m == ModeConsole || m == ModeCallback
}

// ParseMode accepts "console" (alias "printf") and "callback".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "printf":
		return ModeConsole, nil
	case "callback":
		return ModeCallback, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}
