// Package cmd implements the finsim CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/logging"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagQuiet          bool
	flagProfile        string
	flagJournal        bool
	flagBaseRevenue    float64
	flagBaseExpenses   float64
	flagBaseStudents   float64
	flagBaseInvestment float64
)

var rootCmd = &cobra.Command{
	Use:   "finsim",
	Short: "Financial literacy simulator",
	Long: "Simulate revenue, expenses, students and investment for a course business\n" +
		"and read the results from the point of view of each stakeholder.",
	RunE:         runSimulate,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress and log output")
	pf.StringVarP(&flagProfile, "profile", "p", "", "Stakeholder profile (see `finsim profiles`)")
	pf.BoolVar(&flagJournal, "journal", false, "Record evaluations in the local journal")
	pf.Float64Var(&flagBaseRevenue, "base-revenue", 0, "Starting revenue (overrides config)")
	pf.Float64Var(&flagBaseExpenses, "base-expenses", 0, "Starting expenses (overrides config)")
	pf.Float64Var(&flagBaseStudents, "base-students", 0, "Starting student count (overrides config)")
	pf.Float64Var(&flagBaseInvestment, "base-investment", 0, "Starting investment (overrides config)")
}

// loadConfig is the shared config path used by all commands: file, env,
// validation, then persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", config.ConfigPath(), err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-revenue") {
		cfg.Sliders.Revenue.Initial = flagBaseRevenue
	}
	if flags.Changed("base-expenses") {
		cfg.Sliders.Expenses.Initial = flagBaseExpenses
	}
	if flags.Changed("base-students") {
		cfg.Sliders.Students.Initial = flagBaseStudents
	}
	if flags.Changed("base-investment") {
		cfg.Sliders.Investment.Initial = flagBaseInvestment
	}

	if flagProfile != "" {
		p, err := model.ParseProfile(flagProfile)
		if err != nil {
			return cfg, err
		}
		cfg.General.DefaultProfile = p.String()
	}
	if flagJournal {
		cfg.Journal.Enabled = true
	}
	return cfg, nil
}

// newLogger builds the stderr logger for non-interactive commands.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.NewCLI(cfg.Log.Level, flagQuiet)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	return logger, nil
}

// openJournal opens the journal when enabled. A nil journal means disabled.
func openJournal(cfg config.Config, logger *zap.Logger) (*store.Journal, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	path := cfg.JournalPath()
	j, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	logger.Debug("journal opened", zap.String("path", path))
	return j, nil
}
