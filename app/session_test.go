package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/timer"
)

func TestSessionCommand(t *testing.T) {
	tr := timer.Transition{
		From:              timer.Work,
		To:                timer.LongBreak,
		SessionsCompleted: 4,
	}

	cmd, err := sessionCommand(`notify-send "Session over" --urgency=low`, tr)
	require.NoError(t, err)
	require.NotNil(t, cmd)

	assert.Equal(t, []string{"notify-send", "Session over", "--urgency=low"}, cmd.Args)
	assert.Contains(t, cmd.Env, "FOCUSFLOW_SESSION_FROM=work")
	assert.Contains(t, cmd.Env, "FOCUSFLOW_SESSION_TO=longBreak")
	assert.Contains(t, cmd.Env, "FOCUSFLOW_SESSIONS_COMPLETED=4")
}

func TestSessionCommandErrors(t *testing.T) {
	_, err := sessionCommand(`echo "unterminated`, timer.Transition{})
	assert.Error(t, err)

	cmd, err := sessionCommand("   ", timer.Transition{})
	assert.NoError(t, err)
	assert.Nil(t, cmd)

	assert.NoError(t, runSessionCmd("", timer.Transition{}))
}
