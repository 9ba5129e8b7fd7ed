package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/feedback"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/pipeline"
	"github.com/theirongolddev/finsim/internal/store"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	sliderLabelW = 11
	sliderValueW = 16
	chartHeight  = 10
)

func (a App) updateSimulator(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.sliderCursor < model.FieldCount-1 {
			a.sliderCursor++
		}
		return a, nil, true
	case "k", "up":
		if a.sliderCursor > 0 {
			a.sliderCursor--
		}
		return a, nil, true
	case "right", "l":
		a.nudge(1)
		return a, nil, true
	case "left", "h":
		a.nudge(-1)
		return a, nil, true
	case "shift+right", "L":
		a.nudge(bigStep)
		return a, nil, true
	case "shift+left", "H":
		a.nudge(-bigStep)
		return a, nil, true
	case "e", "enter":
		return a.startExactInput()
	case "c":
		a.chart = a.chart.Toggle()
		return a, nil, true
	case "p":
		a.chart = model.ChartPie
		return a, nil, true
	case "b":
		a.chart = model.ChartBar
		return a, nil, true
	case "0":
		a.session.Reset()
		a.applied = nil
		a.recompute()
		a.setStatus("Back to the starting values")
		return a, nil, true
	case "1", "2", "3", "4", "5":
		sc := pipeline.Scenario(int(key[0] - '1'))
		a.applyScenario(sc)
		return a, nil, true
	case "w":
		if a.journal == nil {
			a.setStatus("Journal disabled (enable it in Settings)")
			return a, nil, true
		}
		return a, recordCmd(a.journal, a.snapshot()), true
	}
	return a, nil, false
}

func (a *App) nudge(steps int) {
	a.session.Nudge(a.sliderCursor, steps)
	a.recompute()
}

func (a *App) applyScenario(sc pipeline.Scenario) {
	before := a.session.Inputs()
	a.session.Apply(sc)
	a.applied = append(a.applied, sc)
	a.recompute()

	after := a.session.Inputs()
	a.logger.Debug("scenario applied",
		zap.String("scenario", sc.String()),
		zap.Float64("revenue_before", before.Revenue),
		zap.Float64("revenue_after", after.Revenue),
		zap.Float64("expenses_after", after.Expenses),
		zap.Float64("students_after", after.Students),
		zap.Float64("investment_after", after.Investment),
	)
	a.setStatus("Scenario: " + sc.Label())
}

// snapshot builds the journal entry for the current state.
func (a App) snapshot() store.Entry {
	e := store.Entry{
		Baseline:  a.session.Baseline(),
		Inputs:    a.result.Inputs,
		Raw:       a.result.Raw,
		Effective: a.result.Effective,
	}
	if a.hasProfile {
		e.Profile = a.profile.String()
	}
	for _, sc := range a.applied {
		e.Scenarios = append(e.Scenarios, sc.String())
	}
	return e
}

func (a App) startExactInput() (App, tea.Cmd, bool) {
	f := a.sliderCursor
	r := a.session.Ranges().Of(f)

	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 20
	ti.Prompt = ""
	ti.Placeholder = fmt.Sprintf("%s to %s", cli.FormatField(r.Min, f.IsCurrency()), cli.FormatField(r.Max, f.IsCurrency()))
	ti.Focus()

	a.editInput = ti
	a.editing = true
	return a, textinput.Blink, true
}

func (a App) updateExactInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.editing = false
		raw := a.editInput.Value()
		if strings.TrimSpace(raw) == "" {
			return a, nil
		}
		v, err := cli.ParseAmount(raw)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.session.SetField(a.sliderCursor, v)
		a.recompute()
		got := a.session.Inputs().Get(a.sliderCursor)
		if got != v {
			a.setStatus(fmt.Sprintf("%s adjusted to %s", a.sliderCursor.Label(), cli.FormatField(got, a.sliderCursor.IsCurrency())))
		} else {
			a.setStatus("")
		}
		return a, nil
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.editInput, cmd = a.editInput.Update(msg)
	return a, cmd
}

func (a App) renderSimulator(cw int) string {
	t := theme.Active
	eff := a.result.Effective
	base := a.baseResult.Effective

	profitColor := t.GreenBright
	if eff.Profit <= 0 {
		profitColor = t.Red
	}

	compact := a.isCompactLayout()
	money := cli.FormatBRL
	if compact {
		money = func(v float64) string { return cli.FormatBRLShort(v, true) }
	}

	metrics := []components.Metric{
		{Label: "Revenue", Value: money(eff.Revenue), Delta: cli.FormatDelta(eff.Revenue, base.Revenue), Color: t.Blue},
		{Label: "Expenses", Value: money(eff.Expenses), Delta: cli.FormatDelta(eff.Expenses, base.Expenses), Color: t.Orange},
		{Label: "Profit", Value: money(eff.Profit), Delta: cli.FormatDelta(eff.Profit, base.Profit), Color: profitColor},
		{Label: "Margin", Value: cli.FormatPercent(eff.Margin), Delta: "start " + cli.FormatPercent(base.Margin)},
	}

	var b strings.Builder
	if compact {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
		b.WriteString("\n")
		b.WriteString(a.renderSliders(cw))
		b.WriteString("\n")
		b.WriteString(a.renderChart(cw))
		b.WriteString("\n")
		b.WriteString(a.renderFeedback(cw))
		b.WriteString("\n")
		b.WriteString(a.renderDetails(cw))
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(components.CardRow([]string{a.renderSliders(halves[0]), a.renderChart(halves[1])}))
	b.WriteString("\n")
	b.WriteString(components.CardRow([]string{a.renderFeedback(halves[0]), a.renderDetails(halves[1])}))
	return b.String()
}

func (a App) renderSliders(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)
	in := a.session.Inputs()
	ranges := a.session.Ranges()

	trackW := inner - 2 - sliderLabelW - 2 - sliderValueW
	if trackW < 8 {
		trackW = 8
	}

	var body strings.Builder
	for f := model.Field(0); f < model.FieldCount; f++ {
		v := in.Get(f)
		value := cli.FormatField(v, f.IsCurrency())
		if a.editing && f == a.sliderCursor {
			value = a.editInput.View()
		}
		body.WriteString(components.Slider(f.Label(), value, ranges.Of(f).Fraction(v), f == a.sliderCursor, sliderLabelW, trackW))
		body.WriteString("\n")
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	appliedStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)

	body.WriteString("\n")
	var presets []string
	for i, sc := range pipeline.AllScenarios() {
		presets = append(presets, keyStyle.Render(fmt.Sprintf("%d", i+1))+mutedStyle.Render(" "+sc.Label()))
	}
	body.WriteString(lipgloss.NewStyle().Background(t.Surface).Width(inner).Render(strings.Join(presets, mutedStyle.Render("  "))))

	if len(a.applied) > 0 {
		names := make([]string, len(a.applied))
		for i, sc := range a.applied {
			names[i] = sc.Label()
		}
		body.WriteString("\n")
		body.WriteString(appliedStyle.Render(truncStr("Applied: "+strings.Join(names, " → "), inner)))
	}

	return components.FocusCard("Inputs", body.String(), w)
}

func (a App) renderChart(w int) string {
	t := theme.Active
	eff := a.result.Effective
	inner := components.CardInnerWidth(w)

	series := []components.Series{
		{Label: "Revenue", Value: eff.Revenue, Color: t.Blue},
		{Label: "Expenses", Value: eff.Expenses, Color: t.Orange},
		{Label: "Profit", Value: eff.Profit, Color: t.Green},
	}

	var body, title string
	switch a.chart {
	case model.ChartBar:
		title = "Results · bar"
		body = components.BarChart(series, inner, chartHeight)
	default:
		title = "Results · pie"
		body = components.ShareChart(series, inner)
	}
	return components.ContentCard(title, body, w)
}

func (a App) renderFeedback(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(inner)

	title := "Interpretation"
	if a.hasProfile {
		title += " · " + a.profile.Name()
		return components.ContentCard(title, textStyle.Render(feedback.Build(a.profile, a.result.Raw)), w)
	}
	return components.ContentCard(title, textStyle.Render(feedback.Fallback), w)
}

func (a App) renderDetails(w int) string {
	t := theme.Active
	d := a.result.Effective.Details
	raw := a.result.Raw

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	rows := []struct{ label, value string }{
		{"Revenue per student", cli.FormatBRL(d.RevenuePerStudent)},
		{"Cost per student", cli.FormatBRL(d.CostPerStudent)},
		{"From new students", cli.FormatBRL(d.RevenueFromStudents) + " / " + cli.FormatBRL(d.ExpenseFromStudents)},
		{"From investment", cli.FormatBRL(d.RevenueFromInvestment) + " / " + cli.FormatBRL(d.ExpenseFromInvestment)},
		{"Simple profit", cli.FormatBRL(raw.Profit) + " (" + cli.FormatPercent(raw.Margin) + ")"},
	}

	var body strings.Builder
	for _, r := range rows {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", r.label)))
		body.WriteString(valueStyle.Render(r.value))
		body.WriteString("\n")
	}
	gaugeW := components.CardInnerWidth(w) - 21 - 5
	body.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", "Margin")))
	body.WriteString(components.ProgressBar(a.result.Effective.Margin, max(gaugeW, 8)))
	return components.ContentCard("Growth details", body.String(), w)
}
