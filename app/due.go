package app

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/markusmobius/go-dateparser"

	"github.com/focusflow/focusflow/internal/apperr"
	"github.com/focusflow/focusflow/internal/timeutil"
)

var errInvalidDueDate = &apperr.Error{
	Message: "unable to understand due date %q",
}

// parseDueDate converts user input into a YYYY-MM-DD date. Absolute dates in
// any common layout are tried first, then natural language such as
// "tomorrow" or "next friday" relative to now. Empty input means no due
// date.
func parseDueDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	if t, err := time.ParseInLocation(timeutil.DateLayout, s, now.Location()); err == nil {
		return t.Format(timeutil.DateLayout), nil
	}

	if t, err := dateparse.ParseIn(s, now.Location()); err == nil {
		return t.Format(timeutil.DateLayout), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return "", errInvalidDueDate.Fmt(s)
	}

	return dt.Time.Format(timeutil.DateLayout), nil
}
