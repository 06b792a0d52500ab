// Package timer runs the Pomodoro countdown: a state machine that cycles
// between work and break modes, and the terminal views that drive it.
package timer

import (
	"strings"

	"github.com/focusflow/focusflow/internal/apperr"
	"github.com/focusflow/focusflow/internal/models"
)

var errUnknownMode = &apperr.Error{
	Message: "unknown timer mode %q (expected work, short or long)",
}

// Mode is the kind of session being timed.
type Mode string

const (
	Work       Mode = "work"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
)

// Label is the human readable name of the mode.
func (m Mode) Label() string {
	switch m {
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// Minutes returns the configured length of the mode.
func (m Mode) Minutes(s models.Settings) int {
	switch m {
	case ShortBreak:
		return s.ShortBreakDuration
	case LongBreak:
		return s.LongBreakDuration
	default:
		return s.WorkDuration
	}
}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)

	switch v {
	case "", "work", "focus", "pomodoro":
		return Work, nil
	case "short", "shortbreak":
		return ShortBreak, nil
	case "long", "longbreak":
		return LongBreak, nil
	default:
		return "", errUnknownMode.Fmt(s)
	}
}
