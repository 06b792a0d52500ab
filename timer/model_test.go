package timer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/internal/models"
)

func newTestModel(t *testing.T) (*Model, *Machine, *ProgramScheduler) {
	t.Helper()

	s := NewProgramScheduler()

	m, err := NewMachine(
		&staticSettings{s: models.DefaultSettings()},
		&fakeRecorder{},
		s,
	)
	require.NoError(t, err)

	return NewModel(m, s, false), m, s
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelTogglePlay(t *testing.T) {
	model, m, s := newTestModel(t)

	assert.Nil(t, model.Init())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.NotNil(t, cmd)
	assert.True(t, m.State().Running)
	assert.Equal(t, 1, s.active())

	_, cmd = model.Update(tickMsg{id: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1499, m.State().TimeLeft)

	model.Update(runeKey('p'))
	assert.False(t, m.State().Running)
	assert.Zero(t, s.active())
}

func TestModelSwitchKeys(t *testing.T) {
	cases := []struct {
		key  rune
		mode Mode
		left int
	}{
		{'s', ShortBreak, 300},
		{'l', LongBreak, 900},
		{'w', Work, 1500},
	}

	model, m, _ := newTestModel(t)

	for _, tc := range cases {
		model.Update(runeKey(' '))
		model.Update(runeKey(tc.key))

		assert.Equal(t, State{Mode: tc.mode, TimeLeft: tc.left}, m.State())
	}
}

func TestModelReset(t *testing.T) {
	model, m, _ := newTestModel(t)

	model.Update(runeKey(' '))
	model.Update(tickMsg{id: 1})
	model.Update(runeKey('r'))

	assert.Equal(t, State{Mode: Work, TimeLeft: 1500}, m.State())
}

func TestModelQuitPauses(t *testing.T) {
	model, m, _ := newTestModel(t)

	model.Update(runeKey(' '))
	_, cmd := model.Update(runeKey('q'))

	assert.NotNil(t, cmd)
	assert.False(t, m.State().Running)
}

func TestModelView(t *testing.T) {
	model, m, _ := newTestModel(t)

	view := model.View()
	assert.Contains(t, view, "Focus Time")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "[Paused]")
	assert.Contains(t, view, "(1/4)")

	m.Complete()

	view = model.View()
	assert.Contains(t, view, "Short Break")
	assert.Contains(t, view, "05:00")
	assert.Contains(t, view, workDoneMessage)
}
