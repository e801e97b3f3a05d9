package chatui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the chat widget.
type Styles struct {
	Header    lipgloss.Style
	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	UserText  lipgloss.Style
	System    lipgloss.Style
	Typing    lipgloss.Style
	Footer    lipgloss.Style
	Divider   lipgloss.Style
	Input     lipgloss.Style
	MainPane  lipgloss.Style
}

// DefaultStyles returns the widget's default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		BotLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		UserText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		System: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("243")),
		Typing: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		MainPane: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1),
	}
}
