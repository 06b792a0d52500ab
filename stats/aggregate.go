package stats

import (
	"slices"

	"github.com/focusflow/focusflow/internal/models"
	"github.com/focusflow/focusflow/internal/timeutil"
)

// maxStreak caps the streak figure.
const maxStreak = 30

// Bar is one day of the weekly chart.
type Bar struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

// Dashboard is the read-only summary shown to the user.
type Dashboard struct {
	Weekly            []Bar   `json:"weekly"`
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	PendingTasks      int     `json:"pendingTasks"`
	TotalPomodoros    int     `json:"totalPomodoros"`
	FocusHours        float64 `json:"focusHours"`
	ProductivityScore int     `json:"productivityScore"`
	Streak            int     `json:"streak"`
}

// ProductivityScore is the percentage of tasks completed, rounded to the
// nearest integer. It is 0 when there are no tasks.
func ProductivityScore(total, completed int) int {
	if total <= 0 {
		return 0
	}

	return timeutil.Round(float64(completed) / float64(total) * 100)
}

// Streak is min(completed, 30). It counts completed tasks, not consecutive
// days.
func Streak(completed int) int {
	return min(completed, maxStreak)
}

// WeeklyHistogram scales each day's count against the busiest day so that
// every height lies in [0, 1].
func WeeklyHistogram(weekly [models.DaysInWeek]int) [models.DaysInWeek]float64 {
	var heights [models.DaysInWeek]float64

	peak := max(slices.Max(weekly[:]), 1)

	for i, v := range weekly {
		heights[i] = float64(max(v, 0)) / float64(peak)
	}

	return heights
}

// Summarize computes the dashboard from the stats document and a snapshot
// of the task list. Task totals are taken from the list itself.
func Summarize(s models.Stats, tasks []models.Task) Dashboard {
	var completed int

	for i := range tasks {
		if tasks[i].Completed {
			completed++
		}
	}

	total := len(tasks)
	heights := WeeklyHistogram(s.WeeklyData)

	weekly := make([]Bar, models.DaysInWeek)
	for i := range weekly {
		weekly[i] = Bar{
			Label:  timeutil.WeekdayLabel(i),
			Count:  s.WeeklyData[i],
			Height: heights[i],
		}
	}

	return Dashboard{
		TotalTasks:        total,
		CompletedTasks:    completed,
		PendingTasks:      total - completed,
		TotalPomodoros:    s.TotalPomodoros,
		FocusHours:        timeutil.RoundTenth(s.FocusHours),
		ProductivityScore: ProductivityScore(total, completed),
		Streak:            Streak(completed),
		Weekly:            weekly,
	}
}
