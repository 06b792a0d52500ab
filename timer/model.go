package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

const (
	padding  = 2
	maxWidth = 60
)

// Model is the interactive terminal timer. The machine is only touched from
// Update so no locking is required.
type Model struct {
	machine        *Machine
	scheduler      *ProgramScheduler
	help           help.Model
	message        string
	progress       progress.Model
	style          Style
	twentyFourHour bool
}

// NewModel wires a machine that was created with scheduler into a
// bubbletea model.
func NewModel(m *Machine, scheduler *ProgramScheduler, twentyFourHour bool) *Model {
	t := &Model{
		machine:        m,
		scheduler:      scheduler,
		help:           help.New(),
		style:          newStyle(),
		twentyFourHour: twentyFourHour,
		progress: progress.New(
			progress.WithSolidFill(string(colorWork)),
			progress.WithoutPercentage(),
		),
	}

	t.progress.Width = maxWidth

	m.OnTransition(func(tr Transition) {
		t.message = tr.Message
	})

	return t
}

// Init implements tea.Model. The countdown waits for the user to start it.
func (t *Model) Init() tea.Cmd {
	return nil
}

func (t *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.machine.State().Running {
			t.machine.Pause()
		} else {
			t.message = ""
			t.machine.Start()
		}

	case key.Matches(msg, defaultKeymap.reset):
		t.machine.Reset()

	case key.Matches(msg, defaultKeymap.work):
		t.machine.SwitchMode(Work)

	case key.Matches(msg, defaultKeymap.shortBreak):
		t.machine.SwitchMode(ShortBreak)

	case key.Matches(msg, defaultKeymap.longBreak):
		t.machine.SwitchMode(LongBreak)

	case key.Matches(msg, defaultKeymap.quit):
		t.machine.Pause()

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, t.scheduler.Cmd()
}

// Update implements tea.Model.
func (t *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("timer message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t, t.scheduler.Handle(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil
	}

	return t, nil
}
