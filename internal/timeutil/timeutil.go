// Package timeutil provides helpers for formatting and rounding time values.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// DateLayout is the layout of task due dates.
const DateLayout = "2006-01-02"

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundTenth rounds v to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// SecsToMinsAndSecs splits a number of seconds into whole minutes and the
// remaining seconds.
func SecsToMinsAndSecs(secs int) (mins, rem int) {
	if secs < 0 {
		secs = 0
	}

	return secs / secondsInAMinute, secs % secondsInAMinute
}

// Clock formats a number of seconds as MM:SS.
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// MinutesToHours converts minutes into fractional hours.
func MinutesToHours(mins int) float64 {
	return float64(mins) / minutesInAnHour
}

// HoursToDuration converts fractional hours into a time.Duration.
func HoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// WeekdayLabel returns the three letter label for a Sunday-first day index.
func WeekdayLabel(i int) string {
	return time.Weekday(i).String()[:3]
}
