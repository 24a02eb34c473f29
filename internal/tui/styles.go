package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	TurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	BustStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	PushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

func init() {
	// Dark cards on a light terminal are unreadable with the default palette
	if !termenv.HasDarkBackground() {
		CardStyle = CardStyle.Foreground(lipgloss.Color("#1A1A1A"))
		TurnStyle = TurnStyle.Foreground(lipgloss.Color("#B8860B"))
	}
}
