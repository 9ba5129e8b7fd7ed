package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/logging"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	settingsFieldTheme = iota
	settingsFieldProfile
	settingsFieldChart
	settingsFieldJournal
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings screen state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) updateSettings(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		return a.settingsStartEdit()
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (App, tea.Cmd, bool) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldProfile:
		ti.Placeholder = "manager, bank, ... (empty to choose each time)"
		ti.SetValue(a.cfg.General.DefaultProfile)
	case settingsFieldChart:
		ti.Placeholder = "pie or bar"
		ti.SetValue(a.chart.String())
	case settingsFieldJournal:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.journal != nil))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(a.cfg.Log.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink, true
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited value to the live state and persists only
// that field. Flag and environment overrides stay in the running session.
func (a *App) settingsSave() tea.Cmd {
	val := strings.TrimSpace(a.settings.input.Value())
	var (
		edit func(*config.Config)
		cmd  tea.Cmd
	)

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Exists(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q (valid: %s)", val, strings.Join(theme.Names(), ", "))
			return nil
		}
		edit = func(c *config.Config) { c.Appearance.Theme = val }
		theme.SetActive(val)
	case settingsFieldProfile:
		if val != "" {
			p, err := model.ParseProfile(val)
			if err != nil {
				a.settings.saveErr = err
				return nil
			}
			val = p.String()
		}
		edit = func(c *config.Config) { c.General.DefaultProfile = val }
	case settingsFieldChart:
		k, err := model.ParseChartKind(val)
		if err != nil {
			a.settings.saveErr = err
			return nil
		}
		edit = func(c *config.Config) { c.General.Chart = k.String() }
		a.chart = k
	case settingsFieldJournal:
		on, err := strconv.ParseBool(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("journal: %q is not true or false", val)
			return nil
		}
		edit = func(c *config.Config) { c.Journal.Enabled = on }
		switch {
		case on && a.journal == nil:
			cmd = openJournalCmd(a.cfg.JournalPath())
		case !on && a.journal != nil:
			if err := a.journal.Close(); err != nil {
				a.logger.Warn("closing journal", zap.Error(err))
			}
			a.journal = nil
			a.journalEntries = nil
			a.journalLoaded = false
		}
	case settingsFieldLogLevel:
		if _, err := logging.ParseLevel(val); err != nil {
			a.settings.saveErr = err
			return nil
		}
		val = strings.ToLower(val)
		edit = func(c *config.Config) { c.Log.Level = val }
	default:
		return nil
	}

	edit(&a.cfg)
	if err := config.Update(edit); err != nil {
		a.settings.saveErr = err
	}
	return cmd
}

func (a App) renderSettings(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	profile := a.cfg.General.DefaultProfile
	if profile == "" {
		profile = "(choose each time)"
	}
	journal := "off"
	if a.journal != nil {
		journal = "on"
	}

	fields := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Default profile", profile},
		{"Chart", a.chart.String()},
		{"Journal", journal},
		{"Log level", a.cfg.Log.Level},
	}

	innerW := components.CardInnerWidth(cw)
	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(truncStr(fmt.Sprintf("Save failed: %s", a.settings.saveErr), innerW)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	r := a.session.Ranges()
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(truncStr(config.ConfigPath(), innerW-14)) + "\n")
	infoBody.WriteString(labelStyle.Render("Journal file: ") + valueStyle.Render(truncStr(a.cfg.JournalPath(), innerW-14)) + "\n")
	for f := model.Field(0); f < model.FieldCount; f++ {
		rg := r.Of(f)
		infoBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", f.Label()+":")))
		infoBody.WriteString(valueStyle.Render(fmt.Sprintf("%v to %v, step %v", rg.Min, rg.Max, rg.Step)))
		if f < model.FieldCount-1 {
			infoBody.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
