// Package ui holds the terminal colour and table helpers used by the CLI.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants, which read better on dark
// terminal backgrounds.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// Faint dims text that is secondary, such as completed tasks.
func Faint(a any) string {
	return pterm.Gray(a)
}
