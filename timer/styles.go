package timer

import "github.com/charmbracelet/lipgloss"

var (
	colorWork       = lipgloss.Color("#B0DB43")
	colorShortBreak = lipgloss.Color("#12EAEA")
	colorLongBreak  = lipgloss.Color("#C492B1")
	colorHint       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#909090"}
	colorMessage    = lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#C0CAF5"}
)

// Style holds the lipgloss styles used by the timer view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	modes     map[Mode]lipgloss.Style
}

func newStyle() Style {
	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#1A1B26"))

	return Style{
		Base: lipgloss.NewStyle().Padding(1, padding),
		Main: lipgloss.NewStyle().Bold(true),
		Secondary: lipgloss.NewStyle().
			Foreground(colorMessage),
		Hint: lipgloss.NewStyle().
			Foreground(colorHint),
		modes: map[Mode]lipgloss.Style{
			Work:       badge.Background(colorWork),
			ShortBreak: badge.Background(colorShortBreak),
			LongBreak:  badge.Background(colorLongBreak),
		},
	}
}

// Mode returns the badge style of m.
func (s Style) Mode(m Mode) lipgloss.Style {
	return s.modes[m]
}

func modeColor(m Mode) lipgloss.Color {
	switch m {
	case ShortBreak:
		return colorShortBreak
	case LongBreak:
		return colorLongBreak
	default:
		return colorWork
	}
}
