package components

import (
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest status message on the right. isErr colors the message red.
func RenderStatusBar(width int, hints, status string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	statusColor := t.GreenBright
	if isErr {
		statusColor = t.Red
	}
	statusStyle := lipgloss.NewStyle().Foreground(statusColor).Background(t.Surface)

	left := " " + hints
	right := ""
	if status != "" {
		right = statusStyle.Render(status + " ")
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		// Hints yield to the status message on narrow terminals
		left = truncate(left, max(width-lipgloss.Width(right), 0))
		padding = 0
	}

	pad := lipgloss.NewStyle().Background(t.Surface).Render(spaces(padding))
	return style.Render(left + pad + right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
