// Package stats computes and reports focusflow usage statistics.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/focusflow/focusflow/internal/timeutil"
	"github.com/focusflow/focusflow/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No pomodoros recorded yet"
)

// ToJSON encodes the dashboard as indented JSON.
func (d Dashboard) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// focusTime humanises fractional hours, e.g. "2 hours 30 minutes".
func focusTime(hours float64) string {
	if hours <= 0 {
		return "0 minutes"
	}

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(timeutil.HoursToDuration(hours)).
		LimitToUnit("hours").
		LimitFirstN(2).
		String()
}

// getSummary renders the headline figures.
func getSummary(d Dashboard) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Summary")))
	b.WriteString(fmt.Sprintf("Tasks: %s (%s completed, %s pending)\n",
		ui.Green(d.TotalTasks),
		ui.Green(d.CompletedTasks),
		ui.Green(d.PendingTasks),
	))
	b.WriteString(fmt.Sprintln("Pomodoros completed:", ui.Green(d.TotalPomodoros)))
	b.WriteString(fmt.Sprintf("Focus time: %s\n", ui.Green(focusTime(d.FocusHours))))
	b.WriteString(fmt.Sprintf("Productivity score: %s\n",
		ui.Green(fmt.Sprintf("%d%%", d.ProductivityScore)),
	))
	b.WriteString(fmt.Sprintln("Streak:", ui.Green(d.Streak)))

	return b.String()
}

// getBarChart renders the weekly pomodoro counts.
func getBarChart(d Dashboard) string {
	header := ui.Blue("\nWeekly breakdown (pomodoros)")

	if !slices.ContainsFunc(d.Weekly, func(b Bar) bool { return b.Count > 0 }) {
		return header + "\n" + noSessionsMsg + "\n"
	}

	bars := make(pterm.Bars, 0, len(d.Weekly))
	for _, v := range d.Weekly {
		bars = append(bars, pterm.Bar{
			Label: v.Label,
			Value: v.Count,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + "\n" + chart
}

// Render writes the dashboard to w.
func Render(w io.Writer, d Dashboard) error {
	_, err := fmt.Fprintln(w, getSummary(d)+getBarChart(d))

	return err
}
