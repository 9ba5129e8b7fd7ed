package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/store"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type journalLoadedMsg struct {
	entries []store.Entry
	err     error
}

type journalRecordedMsg struct {
	entry store.Entry
	err   error
}

type journalClearedMsg struct {
	removed int64
	err     error
}

type journalOpenedMsg struct {
	journal *store.Journal
	err     error
}

func loadJournalCmd(j *store.Journal) tea.Cmd {
	return func() tea.Msg {
		entries, err := j.List(journalListLimit)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func recordCmd(j *store.Journal, e store.Entry) tea.Cmd {
	return func() tea.Msg {
		saved, err := j.Record(e)
		return journalRecordedMsg{entry: saved, err: err}
	}
}

func clearJournalCmd(j *store.Journal) tea.Cmd {
	return func() tea.Msg {
		n, err := j.Clear()
		return journalClearedMsg{removed: n, err: err}
	}
}

func openJournalCmd(path string) tea.Cmd {
	return func() tea.Msg {
		j, err := store.Open(path)
		return journalOpenedMsg{journal: j, err: err}
	}
}

func (a App) updateJournal(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.journalCursor < len(a.journalEntries)-1 {
			a.journalCursor++
		}
		return a, nil, true
	case "k", "up":
		if a.journalCursor > 0 {
			a.journalCursor--
		}
		return a, nil, true
	case "g":
		a.journalCursor = 0
		return a, nil, true
	case "G":
		a.journalCursor = max(len(a.journalEntries)-1, 0)
		return a, nil, true
	case "r":
		if a.journal == nil {
			return a, nil, true
		}
		return a, loadJournalCmd(a.journal), true
	case "C":
		if a.journal == nil {
			return a, nil, true
		}
		return a, clearJournalCmd(a.journal), true
	}
	return a, nil, false
}

func (a App) renderJournal(cw int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	if a.journal == nil {
		return components.ContentCard("Journal",
			mutedStyle.Render("The journal is disabled. Enable it in Settings or start with --journal."), cw)
	}
	if len(a.journalEntries) == 0 {
		msg := "No snapshots yet. Press [w] on the Simulator screen to save one."
		if !a.journalLoaded {
			msg = "Loading..."
		}
		return components.ContentCard("Journal", mutedStyle.Render(msg), cw)
	}

	inner := components.CardInnerWidth(cw)

	// Oldest first so the trend reads left to right.
	profits := make([]float64, len(a.journalEntries))
	for i, e := range a.journalEntries {
		profits[len(profits)-1-i] = e.Effective.Profit
	}
	trend := components.Sparkline(profits, t.Green)

	const rowFmt = "%-12s  %-10s  %15s  %15s  %6s  %s"
	var list strings.Builder
	list.WriteString(headStyle.Render(truncStr(fmt.Sprintf(rowFmt, "When", "Profile", "Revenue", "Profit", "Margin", "Scenarios"), inner)))
	list.WriteString("\n")
	for i, e := range a.journalEntries {
		profile := "-"
		if p, err := model.ParseProfile(e.Profile); err == nil {
			profile = p.Name()
		}
		line := fmt.Sprintf(rowFmt,
			e.CreatedAt.Local().Format("02 Jan 15:04"),
			profile,
			cli.FormatBRLShort(e.Effective.Revenue, false),
			cli.FormatBRLShort(e.Effective.Profit, false),
			cli.FormatPercent(e.Effective.Margin),
			strings.Join(e.Scenarios, ", "),
		)
		line = truncStr(line, inner)
		if i == a.journalCursor {
			list.WriteString(selStyle.Render(fmt.Sprintf("%-*s", inner, line)))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		if i < len(a.journalEntries)-1 {
			list.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Profit trend · %d snapshots", len(a.journalEntries)), trend, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Snapshots", list.String(), cw))
	if a.journalCursor < len(a.journalEntries) {
		b.WriteString("\n")
		b.WriteString(a.renderJournalDetail(a.journalEntries[a.journalCursor], cw))
	}
	return b.String()
}

func (a App) renderJournalDetail(e store.Entry, cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	rows := []struct{ label, value string }{
		{"Id", e.ID},
		{"Inputs", fmt.Sprintf("revenue %s, expenses %s, %s students, investment %s",
			cli.FormatBRL(e.Inputs.Revenue), cli.FormatBRL(e.Inputs.Expenses),
			cli.FormatCount(e.Inputs.Students), cli.FormatBRL(e.Inputs.Investment))},
		{"Effective", fmt.Sprintf("%s - %s = %s",
			cli.FormatBRL(e.Effective.Revenue), cli.FormatBRL(e.Effective.Expenses), cli.FormatBRL(e.Effective.Profit))},
		{"Simple", fmt.Sprintf("profit %s, margin %s", cli.FormatBRL(e.Raw.Profit), cli.FormatPercent(e.Raw.Margin))},
	}

	inner := components.CardInnerWidth(cw)
	var body strings.Builder
	for i, r := range rows {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-10s ", r.label)))
		body.WriteString(valueStyle.Render(truncStr(r.value, inner-11)))
		if i < len(rows)-1 {
			body.WriteString("\n")
		}
	}
	return components.ContentCard("Selected", body.String(), cw)
}
