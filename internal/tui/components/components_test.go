package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/finsim/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	for i, line := range lines {
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - will show as black squares", i)
		}
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("Line %d width = %d, want 44", i, w)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 40; total < 45; total++ {
		widths := LayoutRow(total, 4)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Fatalf("LayoutRow(%d, 4) sums to %d", total, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("multitech")
	defer theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Revenue", Value: "R$ 120.000,00", Delta: "+R$ 20.000,00"},
		{Label: "Expenses", Value: "R$ 84.000,00"},
		{Label: "Profit", Value: "R$ 36.000,00", Color: theme.Active.Green},
		{Label: "Margin", Value: "30%"},
	}, 100)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 100 {
			t.Fatalf("line %d width = %d, want 100", i, w)
		}
	}
}

func TestBarChartShowsLabelsAndSkipsNegative(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart([]Series{
		{Label: "Revenue", Value: 120000},
		{Label: "Expenses", Value: 84000},
		{Label: "Profit", Value: -5000},
	}, 60, 10)

	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	for _, want := range []string{"Revenue", "Expenses", "Profit"} {
		if !strings.Contains(last, want) {
			t.Fatalf("label row %q missing %q", last, want)
		}
	}
	if !strings.Contains(out, "mil") {
		t.Fatalf("y-axis should be labeled in thousands of reais:\n%s", out)
	}
}

func TestShareChartZeroTotal(t *testing.T) {
	out := ShareChart([]Series{
		{Label: "Revenue", Value: 0},
		{Label: "Expenses", Value: 0},
	}, 20)
	if !strings.Contains(out, "░") {
		t.Fatalf("zero total should render an empty track:\n%s", out)
	}
	if !strings.Contains(out, "0%") {
		t.Fatalf("zero total should report 0%% shares:\n%s", out)
	}
}

func TestShareChartSegmentsFillWidth(t *testing.T) {
	out := ShareChart([]Series{
		{Label: "Revenue", Value: 100000, Color: theme.Active.Blue},
		{Label: "Expenses", Value: 70000, Color: theme.Active.Orange},
		{Label: "Profit", Value: 30000, Color: theme.Active.Green},
	}, 40)
	first := strings.Split(out, "\n")[0]
	if w := lipgloss.Width(first); w != 40 {
		t.Fatalf("share bar width = %d, want 40", w)
	}
	if !strings.Contains(out, "50%") || !strings.Contains(out, "35%") || !strings.Contains(out, "15%") {
		t.Fatalf("legend missing shares:\n%s", out)
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := map[float64]string{
		50000:   "50 mil",
		2500:    "2,5 mil",
		1000000: "1 mi",
		1500000: "1,5 mi",
		5:       "5",
	}
	for in, want := range tests {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSliderClampsFraction(t *testing.T) {
	a := Slider("Revenue", "R$ 0,00", -1, false, 10, 20)
	b := Slider("Revenue", "R$ 0,00", 0, false, 10, 20)
	if a != b {
		t.Fatal("negative fraction should render like zero")
	}
	if !strings.Contains(Slider("Students", "50", 0.1, true, 10, 20), "▸") {
		t.Fatal("focused slider should carry the marker")
	}
}

func TestProgressBarClampsAndShowsPercent(t *testing.T) {
	if got := ProgressBar(1.5, 20); !strings.Contains(got, "100%") {
		t.Fatalf("ProgressBar(1.5) = %q, want 100%%", got)
	}
	if ProgressBar(-0.2, 20) != ProgressBar(0, 20) {
		t.Fatal("negative ratio should render like zero")
	}
	if got := ProgressBar(0.3, 20); !strings.Contains(got, " 30%") {
		t.Fatalf("ProgressBar(0.3) = %q, want 30%%", got)
	}
	if w := lipgloss.Width(ProgressBar(0.3, 20)); w != 25 {
		t.Fatalf("ProgressBar width = %d, want 25", w)
	}
}
