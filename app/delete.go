package app

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/focusflow/focusflow/internal/models"
)

// confirmFunc asks the user a yes/no question.
type confirmFunc func(title string) (bool, error)

// huhConfirm asks the question in an interactive prompt that defaults to no.
func huhConfirm(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return ok, nil
}

// deletePrompt is the question shown before a task is removed.
func deletePrompt(t models.Task) string {
	return fmt.Sprintf("Delete %q permanently?", t.Title)
}
