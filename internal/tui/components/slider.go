package components

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders one input as a labeled track whose filled part shows where
// the value sits between the range bounds.
func Slider(label, value string, frac float64, focused bool, labelW, trackW int) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if trackW < 4 {
		trackW = 4
	}

	fill := t.Accent
	labelColor := t.TextMuted
	marker := "  "
	if focused {
		fill = t.AccentBright
		labelColor = t.TextPrimary
		marker = "▸ "
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(trackW),
		progress.WithoutPercentage(),
	)
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(t.TextDim)

	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(focused)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return markerStyle.Render(marker) +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		valueStyle.Render(value)
}

// ProgressBar renders a gauge with a trailing percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
