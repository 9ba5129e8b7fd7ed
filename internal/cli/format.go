// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Brazilian number layout: "." groups thousands, "," separates decimals.
const (
	brlPattern   = "#.###,##"
	countPattern = "#.###,"
)

// FormatBRL formats a value as Brazilian reais.
// e.g., 100000 -> "R$ 100.000,00", -50000 -> "-R$ 50.000,00"
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "R$ -"
	}
	sign := ""
	if v < 0 && math.Abs(v) >= 0.005 {
		sign = "-"
	}
	return sign + "R$ " + humanize.FormatFloat(brlPattern, math.Abs(v))
}

// FormatBRLShort formats reais without cents, for compact cards and axes.
// e.g., 1234567 -> "R$ 1.234.567", 2500000 -> "R$ 2,5 mi" when compact is set.
func FormatBRLShort(v float64, compact bool) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if compact && v >= 1_000_000 {
		return sign + "R$ " + humanize.FormatFloat("#.###,#", v/1_000_000) + " mi"
	}
	if compact && v >= 10_000 {
		return sign + "R$ " + humanize.FormatFloat(countPattern, math.Round(v/1000)) + " mil"
	}
	return sign + "R$ " + humanize.FormatFloat(countPattern, math.Round(v))
}

// FormatCount formats a whole count with thousands grouping.
// e.g., 1234 -> "1.234"
func FormatCount(n float64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	return humanize.FormatFloat(countPattern, math.Round(n))
}

// FormatPercent formats a ratio as a whole-number percentage.
// e.g., 0.3 -> "30%", -1.25 -> "-125%"
func FormatPercent(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "-%"
	}
	p := math.Round(f * 100)
	if p == 0 {
		p = 0 // drops negative zero
	}
	return fmt.Sprintf("%.0f%%", p)
}

// FormatDelta formats the change from previous to current in reais with an
// explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatBRL(delta)
	}
	return FormatBRL(delta)
}

// FormatField formats a slider value: reais for money fields, a count otherwise.
func FormatField(v float64, currency bool) string {
	if currency {
		return FormatBRL(v)
	}
	return FormatCount(v)
}

// ParseAmount reads an amount typed by a user. It accepts Brazilian layout
// ("R$ 1.234,50", "100.000") as well as plain numbers ("1234.5").
func ParseAmount(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.ReplaceAll(clean, " ", "")
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	switch {
	case strings.Contains(clean, ","):
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case strings.Count(clean, ".") > 1:
		clean = strings.ReplaceAll(clean, ".", "")
	case strings.Contains(clean, "."):
		// A single dot followed by exactly three digits groups thousands.
		if i := strings.IndexByte(clean, '.'); len(clean)-i-1 == 3 {
			clean = clean[:i] + clean[i+1:]
		}
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
