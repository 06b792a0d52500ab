package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/focusflow/focusflow/internal/models"
)

var errNotPositive = errors.New("enter a whole number of minutes above zero")

// settingsEditor lets the user change s in place.
type settingsEditor func(s *models.Settings) error

func positiveMinutes(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return errNotPositive
	}

	return nil
}

// huhSettingsForm edits the settings in an interactive form.
func huhSettingsForm(s *models.Settings) error {
	work := strconv.Itoa(s.WorkDuration)
	short := strconv.Itoa(s.ShortBreakDuration)
	long := strconv.Itoa(s.LongBreakDuration)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work session length (minutes)").
				Validate(positiveMinutes).
				Value(&work),
			huh.NewInput().
				Title("Short break length (minutes)").
				Validate(positiveMinutes).
				Value(&short),
			huh.NewInput().
				Title("Long break length (minutes)").
				Validate(positiveMinutes).
				Value(&long),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Notify when a session ends?").
				Value(&s.NotifBreaks),
			huh.NewConfirm().
				Title("Notify when a task is completed?").
				Value(&s.NotifTasks),
			huh.NewConfirm().
				Title("Play a sound with notifications?").
				Value(&s.NotifSounds),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form interaction failed: %w", err)
	}

	// validated by the form
	s.WorkDuration, _ = strconv.Atoi(work)
	s.ShortBreakDuration, _ = strconv.Atoi(short)
	s.LongBreakDuration, _ = strconv.Atoi(long)

	return nil
}
