package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/focusflow/focusflow/internal/models"
	"github.com/focusflow/focusflow/internal/ui"
	"github.com/focusflow/focusflow/stats"
)

const (
	noTasksMsg   = "No tasks found"
	upNextLimit  = 5
	createdShort = "Jan 02, 2006"
)

func priorityText(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return ui.Red(p)
	case models.PriorityMedium:
		return ui.Yellow(p)
	default:
		return ui.Green(p)
	}
}

// printTasksTable prints a task table to the command-line.
func printTasksTable(w io.Writer, list []models.Task) {
	tableBody := make([][]string, len(list))

	for i := range list {
		t := list[i]

		statusText := ui.Blue("pending")
		title := t.Title

		if t.Completed {
			statusText = ui.Green("done")
			title = ui.Faint(title)
		}

		row := []string{
			strconv.FormatInt(t.ID, 10),
			title,
			string(t.Category),
			priorityText(t.Priority),
			t.DueDate,
			t.CreatedAt.Local().Format(createdShort),
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "TITLE", "CATEGORY", "PRIORITY", "DUE", "CREATED", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printSettings prints the settings document as a table.
func printSettings(w io.Writer, s models.Settings) {
	onOff := func(b bool) string {
		if b {
			return ui.Green("on")
		}

		return ui.Red("off")
	}

	ui.KeyValues([2]string{"SETTING", "VALUE"}, [][2]string{
		{"Work duration", fmt.Sprintf("%d min", s.WorkDuration)},
		{"Short break", fmt.Sprintf("%d min", s.ShortBreakDuration)},
		{"Long break", fmt.Sprintf("%d min", s.LongBreakDuration)},
		{"Break notifications", onOff(s.NotifBreaks)},
		{"Task notifications", onOff(s.NotifTasks)},
		{"Notification sounds", onOff(s.NotifSounds)},
	}, w)
}

// printUpNext prints the first few pending tasks below the dashboard.
func printUpNext(w io.Writer, pending []models.Task) {
	fmt.Fprintln(w, ui.Blue("Up next"))

	if len(pending) == 0 {
		fmt.Fprintln(w, "No pending tasks. Enjoy your day!")
		return
	}

	for _, t := range pending {
		line := fmt.Sprintf("  • %s %s", t.Title, priorityText(t.Priority))
		if t.DueDate != "" {
			line += ui.Faint(" due " + t.DueDate)
		}

		fmt.Fprintln(w, line)
	}
}

func renderDashboard(w io.Writer, d stats.Dashboard, pending []models.Task) error {
	if err := stats.Render(w, d); err != nil {
		return err
	}

	printUpNext(w, pending)

	return nil
}
