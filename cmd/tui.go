package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/logging"
	"github.com/theirongolddev/finsim/internal/tui"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive simulator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// The terminal belongs to the UI, so logs only go to a file if one is set.
	logger, closeLog, err := logging.NewFile(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer closeLog()

	journal, err := openJournal(cfg, logger)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, journal, logger, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()

	// The journal may have been opened or closed from the settings screen.
	if a, ok := final.(tui.App); ok {
		journal = a.Journal()
	}
	if journal != nil {
		if cerr := journal.Close(); cerr != nil {
			logger.Warn("closing journal", zap.Error(cerr))
		}
	}

	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
