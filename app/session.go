package app

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/focusflow/focusflow/timer"
)

const (
	envSessionFrom      = "FOCUSFLOW_SESSION_FROM"
	envSessionTo        = "FOCUSFLOW_SESSION_TO"
	envSessionCompleted = "FOCUSFLOW_SESSIONS_COMPLETED"
)

// sessionCommand parses sessionCmd into a command that describes the
// transition through environment variables.
func sessionCommand(sessionCmd string, tr timer.Transition) (*exec.Cmd, error) {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return nil, fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		envSessionFrom+"="+string(tr.From),
		envSessionTo+"="+string(tr.To),
		envSessionCompleted+"="+strconv.Itoa(tr.SessionsCompleted),
	)

	return cmd, nil
}

// runSessionCmd executes the configured command after a session ends.
func runSessionCmd(sessionCmd string, tr timer.Transition) error {
	cmd, err := sessionCommand(sessionCmd, tr)
	if err != nil || cmd == nil {
		return err
	}

	return cmd.Run()
}
