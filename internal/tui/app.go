// Package tui provides the interactive Bubble Tea simulator for finsim.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/pipeline"
	"github.com/theirongolddev/finsim/internal/store"
	"github.com/theirongolddev/finsim/internal/tui/components"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Screen indices, matching components.Screens.
const (
	screenHome = iota
	screenProfiles
	screenSimulator
	screenJournal
	screenSettings
	screenCount // sentinel
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5

	journalListLimit = 50
	bigStep          = 10
)

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	journal *store.Journal // nil when the journal is disabled

	// Simulation
	session    pipeline.Session
	result     pipeline.Result
	baseResult pipeline.Result
	applied    []pipeline.Scenario
	profile    model.Profile
	hasProfile bool
	category   model.Category
	chart      model.ChartKind

	// UI state
	width    int
	height   int
	screen   int
	showHelp bool

	homeCursor    int
	profileCursor int
	sliderCursor  model.Field
	editing       bool
	editInput     textinput.Model

	// Journal screen
	journalEntries []store.Entry
	journalCursor  int
	journalLoaded  bool

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	status    string
	statusErr bool
}

// NewApp creates the TUI model. journal may be nil; logger may be nil.
// needSetup shows the first-run form before anything else.
func NewApp(cfg config.Config, journal *store.Journal, logger *zap.Logger, needSetup bool) App {
	if logger == nil {
		logger = zap.NewNop()
	}

	session := pipeline.NewSession(cfg.Initial(), cfg.Ranges())
	a := App{
		cfg:       cfg,
		logger:    logger,
		journal:   journal,
		session:   session,
		chart:     cfg.Chart(),
		needSetup: needSetup,
	}
	a.baseResult = pipeline.Evaluate(session.Baseline(), session.Baseline().Inputs())
	a.recompute()

	if p, ok := cfg.Profile(); ok {
		a.selectProfile(p)
		a.screen = screenSimulator
	}

	if needSetup {
		a.setupVals = NewSetupValues(cfg)
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Journal returns the open journal, if any, so the caller can close it after
// the program exits.
func (a App) Journal() *store.Journal {
	return a.journal
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.journal != nil {
		cmds = append(cmds, loadJournalCmd(a.journal))
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.result = a.session.Evaluate()
}

func (a *App) selectProfile(p model.Profile) {
	a.profile = p
	a.hasProfile = p.Valid()
	a.category = p.Category()
	for i, q := range model.ProfilesIn(a.category) {
		if q == p {
			a.profileCursor = i
		}
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.editing || a.settings.editing {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.screen == screenSimulator {
				a.nudge(1)
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.screen == screenSimulator {
				a.nudge(-1)
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Header is the first line
			if msg.Y == 0 {
				if s := a.tabAtX(msg.X); s >= 0 {
					a.screen = s
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.editing {
			return a.updateExactInput(msg)
		}
		if a.screen == screenSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		var (
			cmd     tea.Cmd
			handled bool
		)
		switch a.screen {
		case screenHome:
			a, handled = a.updateHome(key)
		case screenProfiles:
			a, handled = a.updateProfiles(key)
		case screenSimulator:
			a, cmd, handled = a.updateSimulator(key)
		case screenJournal:
			a, cmd, handled = a.updateJournal(key)
		case screenSettings:
			a, cmd, handled = a.updateSettings(key)
		}
		if handled {
			return a, cmd
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.screen = (a.screen + 1) % screenCount
		case "shift+tab":
			a.screen = (a.screen - 1 + screenCount) % screenCount
		case "esc":
			if a.screen > screenHome && a.screen <= screenSimulator {
				a.screen--
			} else {
				a.screen = screenSimulator
			}
		}
		return a, nil

	case journalLoadedMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		a.journalEntries = msg.entries
		a.journalLoaded = true
		if a.journalCursor >= len(a.journalEntries) {
			a.journalCursor = max(len(a.journalEntries)-1, 0)
		}
		return a, nil

	case journalRecordedMsg:
		if msg.err != nil {
			a.logger.Warn("recording snapshot", zap.Error(msg.err))
			a.setError(msg.err)
			return a, nil
		}
		a.logger.Info("snapshot recorded",
			zap.String("id", msg.entry.ID),
			zap.String("profile", msg.entry.Profile),
			zap.Strings("scenarios", msg.entry.Scenarios),
		)
		a.journalEntries = append([]store.Entry{msg.entry}, a.journalEntries...)
		if len(a.journalEntries) > journalListLimit {
			a.journalEntries = a.journalEntries[:journalListLimit]
		}
		a.setStatus("Snapshot saved " + shortID(msg.entry.ID))
		return a, nil

	case journalClearedMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		a.journalEntries = nil
		a.journalCursor = 0
		a.setStatus(fmt.Sprintf("Removed %d snapshots", msg.removed))
		return a, nil

	case journalOpenedMsg:
		if msg.err != nil {
			a.logger.Warn("opening journal", zap.Error(msg.err))
			a.setError(msg.err)
			return a, nil
		}
		a.journal = msg.journal
		a.setStatus("Journal enabled")
		return a, loadJournalCmd(a.journal)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editing {
		var cmd tea.Cmd
		a.editInput, cmd = a.editInput.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.viewSetup()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finsim needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"Tab S-Tab", "Next / Previous screen"},
			{"Enter", "Choose"},
			{"Esc", "Back"},
			{"j k", "Move selection"},
		}},
		{"Simulator", []struct{ key, desc string }{
			{"← →", "Move slider one step"},
			{"S-← S-→", "Move slider ten steps"},
			{"e", "Type an exact value"},
			{"1-5", "Apply a scenario"},
			{"0", "Back to the starting values"},
			{"c p b", "Toggle / pie / bar chart"},
			{"w", "Save snapshot to journal"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderHeader(a.screen, w, a.headerContext())
	statusBar := components.RenderStatusBar(w, a.hints(), a.status, a.statusErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.screen {
	case screenHome:
		content = a.renderHome(cw)
	case screenProfiles:
		content = a.renderProfiles(cw)
	case screenSimulator:
		content = a.renderSimulator(cw)
	case screenJournal:
		content = a.renderJournal(cw)
	case screenSettings:
		content = a.renderSettings(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) headerContext() string {
	if !a.hasProfile {
		return "no profile"
	}
	return a.profile.Name() + " · " + a.profile.Category().String()
}

func (a App) hints() string {
	switch a.screen {
	case screenHome:
		return "[j/k] choose  [Enter] continue  [?] help  [q] quit"
	case screenProfiles:
		return "[←/→/j/k] choose  [Enter] simulate  [Esc] back  [?] help"
	case screenSimulator:
		return "[j/k] slider  [←/→] adjust  [e] exact  [1-5] scenario  [0] reset  [c] chart  [w] save"
	case screenJournal:
		return "[j/k] select  [r] reload  [C] clear  [Tab] next screen"
	case screenSettings:
		return "[j/k] navigate  [Enter] edit  [Esc] cancel"
	}
	return ""
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the screen index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderHeader.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, name := range components.Screens {
		w := components.ScreenVisualWidth(name)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w

		// Separator is one column between tabs.
		if i < len(components.Screens)-1 {
			pos++
		}
	}
	return -1
}
