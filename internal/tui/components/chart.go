package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one labeled value in a chart.
type Series struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// BarChart renders vertical bars, one per series, over a y-axis labeled in
// reais. Negative values draw as empty columns.
func BarChart(series []Series, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	t := theme.Active

	values := make([]float64, len(series))
	for i, s := range series {
		values[i] = math.Max(s.Value, 0)
	}
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := width - yLabelW - 1
	n := len(values)
	gap := 2
	barW := (chartW - gap*(n+1)) / n
	if barW < 1 {
		barW = 1
	}
	if barW > 14 {
		barW = 14
	}
	axisLen := n*barW + (n+1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)
	gapStr := blankStyle.Render(strings.Repeat(" ", gap))

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			b.WriteString(gapStr)
			color := series[i].Color
			if color == "" {
				color = t.Accent
			}
			barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Centered labels under each bar
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
	for _, s := range series {
		b.WriteString(gapStr)
		lbl := truncate(s.Label, barW)
		left := (barW - lipgloss.Width(lbl)) / 2
		right := barW - lipgloss.Width(lbl) - left
		b.WriteString(labelStyle.Render(strings.Repeat(" ", left) + lbl + strings.Repeat(" ", right)))
	}

	return b.String()
}

// ShareChart is the terminal rendition of a pie chart: one stacked bar whose
// segments are proportional to each series, with a legend of shares and
// amounts. Negative values count as zero.
func ShareChart(series []Series, width int) string {
	t := theme.Active
	if width < 10 {
		width = 10
	}

	total := 0.0
	for _, s := range series {
		total += math.Max(s.Value, 0)
	}

	blankStyle := lipgloss.NewStyle().Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var bar strings.Builder
	if total <= 0 {
		bar.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(strings.Repeat("░", width)))
	} else {
		used := 0
		for i, s := range series {
			n := int(math.Round(math.Max(s.Value, 0) / total * float64(width)))
			if i == len(series)-1 || used+n > width {
				n = width - used
			}
			used += n
			bar.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render(strings.Repeat("█", n)))
		}
	}

	labelW := 0
	for _, s := range series {
		if w := lipgloss.Width(s.Label); w > labelW {
			labelW = w
		}
	}

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n")
	b.WriteString(bar.String())
	for _, s := range series {
		share := 0.0
		if total > 0 {
			share = math.Max(s.Value, 0) / total
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■"))
		b.WriteString(blankStyle.Render(" "))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %5s  ", cli.FormatPercent(share))))
		b.WriteString(mutedStyle.Render(cli.FormatBRL(s.Value)))
	}
	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel renders axis ticks in Brazilian short form ("50 mil", "1,5 mi").
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0f mi", v/1e6)
		}
		return strings.Replace(fmt.Sprintf("%.1f mi", v/1e6), ".", ",", 1)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0f mil", v/1e3)
		}
		return strings.Replace(fmt.Sprintf("%.1f mil", v/1e3), ".", ",", 1)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
	}
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return string(runes[:1])
	}
	return string(runes[:limit-1]) + "…"
}
