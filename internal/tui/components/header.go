package components

import (
	"strings"

	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Screen names in header order.
var Screens = []string{"Home", "Profiles", "Simulator", "Journal", "Settings"}

// ScreenVisualWidth returns the rendered width of a header tab.
func ScreenVisualWidth(name string) int {
	return lipgloss.Width(name) + 2 // horizontal padding
}

// RenderHeader renders the screen tabs and a right-aligned
// context string (e.g. the selected profile).
func RenderHeader(activeIdx int, width int, context string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	contextStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	var parts []string
	for i, name := range Screens {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	tabs := strings.Join(parts, sepStyle.Render("│"))

	right := ""
	if context != "" {
		right = contextStyle.Render(context + " ")
	}
	gap := width - lipgloss.Width(tabs) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return tabs + barStyle.Render(strings.Repeat(" ", gap)) + right
}
