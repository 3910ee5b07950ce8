package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the widget configuration passed explicitly at construction; no
// package-level mutable style state.
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Directory lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Spinner   lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:     base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Dim:       base.Faint(true),
		Highlight: base.Reverse(true),
		Directory: base.Foreground(lipgloss.Color("#60A5FA")),
		Success:   base.Foreground(lipgloss.Color("#22C55E")),
		Error:     base.Foreground(lipgloss.Color("#EF4444")),
		Warning:   base.Foreground(lipgloss.Color("#F59E0B")),
		Spinner:   base.Foreground(lipgloss.Color("#22D3EE")),
	}
}
