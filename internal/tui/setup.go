package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// SetupValues holds the answers of the first-run form.
type SetupValues struct {
	Theme   string
	Profile string // empty means choose on each start
	Chart   string
	Journal bool

	seed *SetupValues
}

// NewSetupValues seeds the form with the current configuration.
func NewSetupValues(cfg config.Config) *SetupValues {
	v := &SetupValues{
		Theme:   cfg.Appearance.Theme,
		Profile: cfg.General.DefaultProfile,
		Chart:   cfg.Chart().String(),
		Journal: cfg.Journal.Enabled,
	}
	seed := *v
	v.seed = &seed
	return v
}

// Apply copies the answers into cfg. Answers still equal to their seeded
// value are skipped, so session-only overrides shown in the form are not
// written to the config file.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	var seed SetupValues
	seeded := v.seed != nil
	if seeded {
		seed = *v.seed
	}

	if (!seeded || v.Theme != seed.Theme) && theme.Exists(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if !seeded || v.Profile != seed.Profile {
		if p, err := model.ParseProfile(v.Profile); err == nil {
			cfg.General.DefaultProfile = p.String()
		} else {
			cfg.General.DefaultProfile = ""
		}
	}
	if !seeded || v.Chart != seed.Chart {
		if k, err := model.ParseChartKind(v.Chart); err == nil {
			cfg.General.Chart = k.String()
		}
	}
	if !seeded || v.Journal != seed.Journal {
		cfg.Journal.Enabled = v.Journal
	}
	return cfg
}

// NewSetupForm builds the setup form bound to vals. The same form backs the
// first TUI start and the setup command.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	profileOpts := []huh.Option[string]{huh.NewOption("Choose on each start", "")}
	for _, p := range model.AllProfiles() {
		label := fmt.Sprintf("%s (%s)", p.Name(), p.Category())
		profileOpts = append(profileOpts, huh.NewOption(label, p.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to finsim").
				Description(fmt.Sprintf("Slider limits and starting values live in %s.\nRun `finsim setup` anytime to change these answers.", config.ConfigPath())),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Default profile").
				Description("Who reads the numbers when the simulator opens.").
				Options(profileOpts...).
				Value(&vals.Profile),
			huh.NewSelect[string]().
				Title("Chart").
				Options(
					huh.NewOption("Pie (shares of the total)", "pie"),
					huh.NewOption("Bar", "bar"),
				).
				Value(&vals.Chart),
			huh.NewConfirm().
				Title("Keep a local journal of saved snapshots?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.Journal),
		),
	).WithTheme(huh.ThemeBase()).WithShowHelp(true)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupForm = nil
		a.needSetup = false
		return a, a.saveSetupConfig()
	case huh.StateAborted:
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig applies the form answers to the running app and saves them.
func (a *App) saveSetupConfig() tea.Cmd {
	cfg := a.setupVals.Apply(a.cfg)
	theme.SetActive(cfg.Appearance.Theme)
	a.chart = cfg.Chart()
	if p, ok := cfg.Profile(); ok {
		a.selectProfile(p)
		a.screen = screenSimulator
	}

	var cmd tea.Cmd
	if cfg.Journal.Enabled && a.journal == nil {
		cmd = openJournalCmd(cfg.JournalPath())
	}

	if err := config.Update(func(c *config.Config) { *c = a.setupVals.Apply(*c) }); err != nil {
		a.logger.Warn("saving setup", zap.Error(err))
		a.setError(fmt.Errorf("settings apply for this session only: %w", err))
	} else {
		a.setStatus("Saved to " + config.ConfigPath())
	}
	a.cfg = cfg
	return cmd
}

func (a App) viewSetup() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	base := a.session.Baseline()
	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ finsim"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" · starting at %s revenue, %s students",
		cli.FormatBRL(base.Revenue), cli.FormatCount(base.Students))))
	b.WriteString("\n\n")
	b.WriteString(a.setupForm.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}
