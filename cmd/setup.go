package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/tui"
	"github.com/theirongolddev/finsim/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	vals := tui.NewSetupValues(cfg)
	if err := tui.NewSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Update(func(c *config.Config) { *c = vals.Apply(*c) }); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finsim setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
