package app

import "charm.land/lipgloss/v2"

// Terminal styling for the quiz surface.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	topicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true)

	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC")).
			Background(lipgloss.Color("#1E293B")).
			Padding(0, 1)
)
