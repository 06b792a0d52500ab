// Package models declares the documents persisted by focusflow.
package models

import (
	"strings"
	"time"

	"github.com/focusflow/focusflow/internal/apperr"
)

const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// DaysInWeek is the length of Stats.WeeklyData.
const DaysInWeek = 7

var (
	errUnknownCategory = &apperr.Error{
		Message: "unknown category %q (expected work, personal, study or other)",
	}
	errUnknownPriority = &apperr.Error{
		Message: "unknown priority %q (expected low, medium or high)",
	}
	errUnknownFilter = &apperr.Error{
		Message: "unknown filter %q (expected all, pending or completed)",
	}
)

type (
	// Category groups tasks.
	Category string

	// Priority ranks tasks.
	Priority string

	// Filter selects a subset of tasks by completion state.
	Filter string
)

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryOther    Category = "other"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryStudy,
	CategoryOther,
}

// Task is a single to-do item. Only Completed changes after creation.
type Task struct {
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	// DueDate is a calendar date in YYYY-MM-DD form, or empty.
	DueDate   string `json:"dueDate"`
	ID        int64  `json:"id"`
	Completed bool   `json:"completed"`
}

// Settings holds the user's timer durations (in minutes) and notification
// switches.
type Settings struct {
	WorkDuration       int  `json:"workDuration"       validate:"gt=0"`
	ShortBreakDuration int  `json:"shortBreakDuration" validate:"gt=0"`
	LongBreakDuration  int  `json:"longBreakDuration"  validate:"gt=0"`
	NotifBreaks        bool `json:"notifBreaks"`
	NotifTasks         bool `json:"notifTasks"`
	NotifSounds        bool `json:"notifSounds"`
}

// Stats is the accumulated usage document.
type Stats struct {
	WeeklyData     [DaysInWeek]int `json:"weeklyData"`
	FocusHours     float64         `json:"focusHours"`
	TotalPomodoros int             `json:"totalPomodoros"`
	TotalTasks     int             `json:"totalTasks"`
	CompletedTasks int             `json:"completedTasks"`
}

// DefaultSettings returns the settings used when none have been saved.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       DefaultWorkMinutes,
		ShortBreakDuration: DefaultShortBreakMinutes,
		LongBreakDuration:  DefaultLongBreakMinutes,
		NotifBreaks:        true,
		NotifTasks:         true,
		NotifSounds:        true,
	}
}

// DefaultStats returns an empty stats document.
func DefaultStats() Stats {
	return Stats{}
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))

	for _, v := range Categories {
		if v == c {
			return c, nil
		}
	}

	return "", errUnknownCategory.Fmt(s)
}

// ParsePriority converts user input into a Priority. Numeric shorthands
// 1, 2 and 3 are accepted.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	default:
		return "", errUnknownPriority.Fmt(s)
	}
}

// ParseFilter converts user input into a Filter. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterCompleted:
		return f, nil
	default:
		return "", errUnknownFilter.Fmt(s)
	}
}
