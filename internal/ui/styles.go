package ui

import "github.com/charmbracelet/lipgloss"

// Styles shared by the dashboard and the CLI output.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Header renders a "=== title ===" section header.
func Header(title string) string {
	return HeaderStyle.Render("=== " + title + " ===")
}

// Warning renders a non-fatal message for stderr.
func Warning(message string) string {
	return WarningStyle.Render("warning: " + message)
}
