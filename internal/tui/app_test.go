package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/store"
	"github.com/theirongolddev/finsim/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp() App {
	a := NewApp(config.DefaultConfig(), nil, nil, false)
	a.width, a.height = 140, 45
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		next, ok := m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
		a = next
	}
	return a
}

func TestTabAtXMatchesScreenWidths(t *testing.T) {
	a := App{}
	pos := 0
	for i, name := range components.Screens {
		w := len(name) + 2 // horizontal padding in the header renderer
		if got := a.tabAtX(pos + w/2); got != i {
			t.Fatalf("x=%d -> screen=%d, want %d", pos+w/2, got, i)
		}
		pos += w + 1 // separator
	}
	if got := a.tabAtX(pos + 5); got != -1 {
		t.Fatalf("x past the last tab -> %d, want -1", got)
	}
}

func TestHomeToProfilesToSimulator(t *testing.T) {
	a := newTestApp()
	if a.screen != screenHome {
		t.Fatalf("start screen = %d, want home", a.screen)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if a.screen != screenProfiles || a.category != model.CategoryExternal {
		t.Fatalf("after choosing external: screen=%d category=%v", a.screen, a.category)
	}

	// External profiles: investor, bank, ...
	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if a.screen != screenSimulator {
		t.Fatalf("screen = %d, want simulator", a.screen)
	}
	if !a.hasProfile || a.profile != model.ProfileBank {
		t.Fatalf("profile = %v (set=%v), want bank", a.profile, a.hasProfile)
	}
}

func TestDefaultProfileOpensSimulator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DefaultProfile = "society"
	a := NewApp(cfg, nil, nil, false)
	if a.screen != screenSimulator || a.profile != model.ProfileSociety {
		t.Fatalf("screen=%d profile=%v, want simulator/society", a.screen, a.profile)
	}
}

func TestSimulatorNudgesSelectedSlider(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator

	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if got := a.session.Inputs().Revenue; got != 101000 {
		t.Fatalf("revenue after right = %v, want 101000", got)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if got := a.session.Inputs().Revenue; got != 91000 {
		t.Fatalf("revenue after shift+left = %v, want 91000", got)
	}

	a = press(t, a, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyRight})
	if got := a.session.Inputs().Students; got != 51 {
		t.Fatalf("students = %v, want 51", got)
	}
	if a.result.Inputs != a.session.Inputs() {
		t.Fatal("result was not recomputed after the slider moved")
	}
}

func TestMouseWheelNudges(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator
	a = press(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := a.session.Inputs().Revenue; got != 101000 {
		t.Fatalf("revenue after wheel up = %v, want 101000", got)
	}
}

func TestScenarioKeysAndReset(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator

	a = press(t, a, runes("1"))
	if got := a.session.Inputs().Students; got != 60 {
		t.Fatalf("students after high demand = %v, want 60", got)
	}
	if got := a.result.Effective.Revenue; got != 120000 {
		t.Fatalf("effective revenue = %v, want 120000", got)
	}
	if len(a.applied) != 1 {
		t.Fatalf("applied = %v, want one scenario", a.applied)
	}

	a = press(t, a, runes("0"))
	if a.session.Inputs() != a.session.Baseline().Inputs() {
		t.Fatalf("inputs after reset = %+v, want baseline", a.session.Inputs())
	}
	if len(a.applied) != 0 {
		t.Fatal("reset should forget applied scenarios")
	}
}

func TestExactValueInput(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator

	a = press(t, a, runes("e"))
	if !a.editing {
		t.Fatal("e should open the exact value editor")
	}
	a = press(t, a, runes("R$ 250.000,00"), tea.KeyMsg{Type: tea.KeyEnter})
	if a.editing {
		t.Fatal("enter should close the editor")
	}
	if got := a.session.Inputs().Revenue; got != 250000 {
		t.Fatalf("revenue = %v, want 250000", got)
	}

	// Out of range values are clamped and reported.
	a = press(t, a, runes("e"), runes("9999999"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := a.session.Inputs().Revenue; got != 500000 {
		t.Fatalf("revenue = %v, want clamped 500000", got)
	}
	if !strings.Contains(a.status, "adjusted") {
		t.Fatalf("status = %q, want adjustment notice", a.status)
	}

	a = press(t, a, runes("e"), runes("abc"), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.statusErr {
		t.Fatal("invalid amount should set an error status")
	}
}

func TestChartKeys(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator
	if a.chart != model.ChartPie {
		t.Fatalf("default chart = %v, want pie", a.chart)
	}
	a = press(t, a, runes("c"))
	if a.chart != model.ChartBar {
		t.Fatalf("chart after c = %v, want bar", a.chart)
	}
	a = press(t, a, runes("p"))
	if a.chart != model.ChartPie {
		t.Fatalf("chart after p = %v, want pie", a.chart)
	}
}

func TestRecordWithoutJournal(t *testing.T) {
	a := newTestApp()
	a.screen = screenSimulator

	m, cmd := a.Update(runes("w"))
	if cmd != nil {
		t.Fatal("no command expected when the journal is disabled")
	}
	if got := m.(App).status; !strings.Contains(got, "Journal disabled") {
		t.Fatalf("status = %q", got)
	}
}

func TestRecordSnapshot(t *testing.T) {
	j, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer j.Close()

	cfg := config.DefaultConfig()
	cfg.General.DefaultProfile = "manager"
	a := NewApp(cfg, j, nil, false)
	a = press(t, a, runes("2"))

	_, cmd := a.Update(runes("w"))
	if cmd == nil {
		t.Fatal("w should return a record command")
	}
	a = press(t, a, cmd())

	if len(a.journalEntries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(a.journalEntries))
	}
	e := a.journalEntries[0]
	if e.Profile != "manager" || len(e.Scenarios) != 1 || e.Scenarios[0] != "campaign" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Inputs.Investment != 10000 {
		t.Fatalf("recorded investment = %v, want 10000", e.Inputs.Investment)
	}

	n, err := j.Count()
	if err != nil || n != 1 {
		t.Fatalf("Count = %d, %v; want 1", n, err)
	}
}

func TestSettingsSaveChart(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := newTestApp()
	a.screen = screenSettings
	a = press(t, a, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.settings.editing || a.settings.cursor != settingsFieldChart {
		t.Fatalf("editing=%v cursor=%d", a.settings.editing, a.settings.cursor)
	}

	a.settings.input.SetValue("bar")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.settings.saveErr != nil {
		t.Fatalf("save error: %v", a.settings.saveErr)
	}
	if a.chart != model.ChartBar {
		t.Fatalf("chart = %v, want bar", a.chart)
	}

	saved, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if saved.General.Chart != "bar" {
		t.Fatalf("saved chart = %q, want bar", saved.General.Chart)
	}
}

func TestSettingsSaveKeepsSessionOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// As if started with FINSIM_THEME=multitech --base-revenue 200000 --journal.
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = "multitech"
	cfg.Sliders.Revenue.Initial = 200000
	cfg.Journal.Enabled = true

	a := NewApp(cfg, nil, nil, false)
	a.width, a.height = 140, 45
	a.screen = screenSettings
	a = press(t, a, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("bar")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.settings.saveErr != nil {
		t.Fatalf("save error: %v", a.settings.saveErr)
	}
	if a.cfg.Appearance.Theme != "multitech" || a.cfg.General.Chart != "bar" {
		t.Fatalf("session config = %+v", a.cfg)
	}

	saved, err := config.LoadFile()
	if err != nil {
		t.Fatalf("config.LoadFile: %v", err)
	}
	if saved.General.Chart != "bar" {
		t.Fatalf("saved chart = %q, want bar", saved.General.Chart)
	}
	if saved.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("saved theme = %q, want flexoki-dark", saved.Appearance.Theme)
	}
	if saved.Sliders.Revenue.Initial != 100000 {
		t.Fatalf("saved revenue initial = %v, want 100000", saved.Sliders.Revenue.Initial)
	}
	if saved.Journal.Enabled {
		t.Fatal("session journal flag was written to the config file")
	}
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := newTestApp()
	a.screen = screenSettings
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("neon")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.settings.saveErr == nil {
		t.Fatal("unknown theme should fail")
	}
	if config.Exists() {
		t.Fatal("nothing should be written on a failed edit")
	}
}

func TestSetupValuesApply(t *testing.T) {
	v := SetupValues{Theme: "multitech", Profile: "bank", Chart: "bar", Journal: true}
	cfg := v.Apply(config.DefaultConfig())
	if cfg.Appearance.Theme != "multitech" || cfg.General.DefaultProfile != "bank" ||
		cfg.General.Chart != "bar" || !cfg.Journal.Enabled {
		t.Fatalf("applied config = %+v", cfg)
	}

	v = SetupValues{Theme: "nope", Profile: "", Chart: "pie"}
	cfg = v.Apply(config.DefaultConfig())
	if cfg.Appearance.Theme != "flexoki-dark" || cfg.General.DefaultProfile != "" {
		t.Fatalf("invalid answers should keep defaults, got %+v", cfg)
	}
}

func TestSetupValuesSkipUntouchedAnswers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = "multitech"
	cfg.Journal.Enabled = true

	v := NewSetupValues(cfg)
	v.Chart = "bar"
	out := v.Apply(config.DefaultConfig())
	if out.General.Chart != "bar" {
		t.Fatalf("chart = %q, want bar", out.General.Chart)
	}
	if out.Appearance.Theme != "flexoki-dark" || out.Journal.Enabled {
		t.Fatalf("untouched answers were applied: %+v", out)
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	a := newTestApp()
	a.selectProfile(model.ProfileInvestor)

	want := map[int]string{
		screenHome:      "Internal users",
		screenProfiles:  "Investor",
		screenSimulator: "Interpretation",
		screenJournal:   "journal is disabled",
		screenSettings:  "Default profile",
	}
	for screen, text := range want {
		a.screen = screen
		out := a.View()
		if !strings.Contains(out, text) {
			t.Errorf("screen %d view missing %q", screen, text)
		}
		if got := lipgloss.Height(out); got != a.height {
			t.Errorf("screen %d view height = %d, want %d", screen, got, a.height)
		}
	}

	a.width = 60
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show the width notice")
	}
}

func TestCompactSimulatorView(t *testing.T) {
	a := newTestApp()
	a.width, a.height = 100, 90
	a.screen = screenSimulator
	a.chart = model.ChartBar
	out := a.View()
	for _, s := range []string{"Inputs", "Results · bar", "Growth details", "R$ 100 mil", " 30%"} {
		if !strings.Contains(out, s) {
			t.Errorf("compact view missing %q", s)
		}
	}
}
