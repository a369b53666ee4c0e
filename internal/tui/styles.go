package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#2563EB")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#16A34A")
	colorError   = lipgloss.Color("#DC2626")
	colorText    = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorAccent).
			Padding(0, 1)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSuccess).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorError).
			Padding(0, 1)

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	pendingStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle    = lipgloss.NewStyle().Foreground(colorError)
)
