package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared console palette for the demo commands.
var (
	headerColor  = lipgloss.Color("#F780FF") // Bright pink
	promptColor  = lipgloss.Color("#8BE9FD") // Cyan
	replyColor   = lipgloss.Color("#E9E9F4") // Light purple/white
	mutedColor   = lipgloss.Color("#6272A4") // Muted purple
	errColor     = lipgloss.Color("#FF5555") // Red
	okColor      = lipgloss.Color("#50FA7B") // Green
	accentColor  = lipgloss.Color("#FFB86C") // Orange
	warningColor = lipgloss.Color("#F1FA8C") // Yellow

	headerStyle  = lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(promptColor).Italic(true)
	replyStyle   = lipgloss.NewStyle().Foreground(replyColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	errStyle     = lipgloss.NewStyle().Foreground(errColor).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(okColor)
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
)

// divider renders a section separator line.
func divider() string {
	return mutedStyle.Render(strings.Repeat("=", 60))
}
