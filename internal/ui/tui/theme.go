package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Warning  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Inactive: lipgloss.NewStyle().Faint(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
