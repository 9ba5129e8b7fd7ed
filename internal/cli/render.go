package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	badStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			gap := strings.Repeat(" ", max(w-lipgloss.Width(cell), 0))
			var padded string
			if i == 0 {
				padded = " " + cell + gap + " "
			} else {
				padded = " " + gap + cell + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a simple text progress bar.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s",
		mutedStyle.Render(bar),
		FormatCount(float64(current)),
		FormatCount(float64(total)),
	)
}

// Bar is one labeled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// RenderBars renders labeled horizontal bars scaled to the largest value,
// each followed by its value in reais.
func RenderBars(bars []Bar, maxWidth int) string {
	if len(bars) == 0 {
		return ""
	}

	labelW := 0
	maxVal := 0.0
	for _, b := range bars {
		if len(b.Label) > labelW {
			labelW = len(b.Label)
		}
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	var sb strings.Builder
	for _, b := range bars {
		sb.WriteString(RenderHorizontalBar(fmt.Sprintf("%-*s", labelW, b.Label), b.Value, maxVal, maxWidth, b.Color))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderHorizontalBar renders a horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	barLen := 0
	if maxValue > 0 && value > 0 {
		barLen = int(value / maxValue * float64(maxWidth))
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	pad := strings.Repeat(" ", maxWidth-barLen)
	return fmt.Sprintf("  %s %s%s %s", mutedStyle.Render(label), bar, pad, valueStyle.Render(FormatBRL(value)))
}

// RenderShareBar renders a single stacked bar where each segment's width is
// its share of the total, followed by a percentage legend.
func RenderShareBar(bars []Bar, width int) string {
	total := 0.0
	for _, b := range bars {
		if b.Value > 0 {
			total += b.Value
		}
	}
	if total <= 0 || width <= 0 {
		return "  " + dimStyle.Render(strings.Repeat("░", width)) + "\n"
	}

	var line, legend strings.Builder
	used := 0
	for i, b := range bars {
		v := b.Value
		if v < 0 {
			v = 0
		}
		n := int(v / total * float64(width))
		if i == len(bars)-1 {
			n = width - used
		}
		used += n
		style := lipgloss.NewStyle().Foreground(b.Color)
		line.WriteString(style.Render(strings.Repeat("█", n)))
		if i > 0 {
			legend.WriteString("  ")
		}
		legend.WriteString(style.Render("■"))
		legend.WriteString(" ")
		legend.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s", b.Label, FormatPercent(v/total))))
	}
	return "  " + line.String() + "\n  " + legend.String() + "\n"
}

// RenderSigned renders an amount in green when non-negative and red otherwise.
func RenderSigned(v float64, text string) string {
	if v < 0 {
		return badStyle.Render(text)
	}
	return goodStyle.Render(text)
}
