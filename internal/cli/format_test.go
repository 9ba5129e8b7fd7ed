package cli

import (
	"strings"
	"testing"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{999.5, "R$ 999,50"},
		{100000, "R$ 100.000,00"},
		{1234567.891, "R$ 1.234.567,89"},
		{-50000, "-R$ 50.000,00"},
		{-0.001, "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := FormatBRL(tt.in); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBRLShort(t *testing.T) {
	tests := []struct {
		in      float64
		compact bool
		want    string
	}{
		{1234567, false, "R$ 1.234.567"},
		{999.6, false, "R$ 1.000"},
		{100000, true, "R$ 100 mil"},
		{2500000, true, "R$ 2,5 mi"},
		{5000, true, "R$ 5.000"},
		{-30000, true, "-R$ 30 mil"},
	}
	for _, tt := range tests {
		if got := FormatBRLShort(tt.in, tt.compact); got != tt.want {
			t.Errorf("FormatBRLShort(%v, %v) = %q, want %q", tt.in, tt.compact, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{0.3, "30%"},
		{0.156, "16%"},
		{-1.25, "-125%"},
		{-0.001, "0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(50); got != "50" {
		t.Fatalf("FormatCount(50) = %q, want %q", got, "50")
	}
	if got := FormatCount(12345); got != "12.345" {
		t.Fatalf("FormatCount(12345) = %q, want %q", got, "12.345")
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(103000, 100000); got != "+R$ 3.000,00" {
		t.Fatalf("FormatDelta up = %q", got)
	}
	if got := FormatDelta(90000, 100000); got != "-R$ 10.000,00" {
		t.Fatalf("FormatDelta down = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100000", 100000},
		{"R$ 100.000,00", 100000},
		{"1.234.567", 1234567},
		{"100.000", 100000},
		{"1234.5", 1234.5},
		{"2,5", 2.5},
		{" 60 ", 60},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "R$", "abc", "1,2,3", "NaN"} {
		if _, err := ParseAmount(bad); err == nil {
			t.Errorf("ParseAmount(%q) should fail", bad)
		}
	}
}

func TestRenderTableAlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Revenue", FormatBRL(100000)},
			{"Margin", FormatPercent(0.3)},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
	w := len([]rune(stripANSI(lines[0])))
	for i, l := range lines {
		if got := len([]rune(stripANSI(l))); got != w {
			t.Fatalf("line %d width = %d, want %d", i, got, w)
		}
	}
}

func TestRenderShareBarEmptyTotal(t *testing.T) {
	out := RenderShareBar([]Bar{{Label: "Profit", Value: 0}}, 10)
	if !strings.Contains(out, "░") {
		t.Fatalf("empty share bar should render a placeholder track, got %q", out)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
