package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/focusflow/focusflow/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Model) formatTimeRemaining() string {
	return timeutil.Clock(t.machine.State().TimeLeft)
}

func (t *Model) statusView(st State) string {
	if !st.Running {
		return t.style.Secondary.Render("[Paused]")
	}

	timeFormat := "03:04 PM"
	if t.twentyFourHour {
		timeFormat = "15:04"
	}

	end := time.Now().Add(time.Duration(st.TimeLeft) * time.Second)

	return t.style.Hint.Render("until " + end.Format(timeFormat))
}

func (t *Model) timerView() string {
	var s strings.Builder

	st := t.machine.State()

	s.WriteString(t.style.Mode(st.Mode).Render(st.Mode.Label()))
	s.WriteString(t.statusView(st))

	if st.Mode == Work {
		s.WriteString(t.style.Hint.Render(fmt.Sprintf(
			" (%d/%d)",
			st.SessionsCompleted%t.machine.LongBreakInterval()+1,
			t.machine.LongBreakInterval(),
		)))
	}

	t.progress.FullColor = string(modeColor(st.Mode))

	s.WriteString("\n\n")
	s.WriteString(
		t.style.Main.Foreground(modeColor(st.Mode)).Render(t.formatTimeRemaining()),
	)
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.machine.Progress()))

	if t.message != "" {
		s.WriteString("\n\n" + t.style.Secondary.Render(t.message))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView(defaultKeymap.shortHelp()))

	return s.String()
}

// View implements tea.Model.
func (t *Model) View() string {
	return t.style.Base.Render(t.timerView())
}
