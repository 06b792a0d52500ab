package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sent struct {
	title, message string
}

func TestNotify(t *testing.T) {
	cases := []struct {
		name      string
		sendErr   error
		sound     bool
		wantPlays int
	}{
		{"text only", nil, false, 0},
		{"with sound", nil, true, 1},
		{"send failure still plays", errors.New("no dbus"), true, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				got   []sent
				plays int
			)

			d := NewDesktop(
				WithSender(func(title, message, _ string) error {
					got = append(got, sent{title, message})
					return tc.sendErr
				}),
				WithPlayer(func() error {
					plays++
					return nil
				}),
			)

			d.Notify("focusflow", "Break complete! Ready to focus?", tc.sound)

			assert.Equal(t, []sent{{"focusflow", "Break complete! Ready to focus?"}}, got)
			assert.Equal(t, tc.wantPlays, plays)
		})
	}
}

func TestNotifyPlayerErrorIsSwallowed(t *testing.T) {
	d := NewDesktop(
		WithSender(func(_, _, _ string) error { return nil }),
		WithPlayer(func() error { return errors.New("no audio device") }),
	)

	assert.NotPanics(t, func() {
		d.Notify("focusflow", "Task completed", true)
	})
}
