package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/config"
	"github.com/theirongolddev/finsim/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Invalid: %s\n", err)
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultProfile != "" {
		fmt.Printf("    Default profile: %s\n", cfg.General.DefaultProfile)
	} else {
		fmt.Println("    Default profile: not set")
	}
	fmt.Printf("    Chart:           %s\n", cfg.General.Chart)
	fmt.Println()

	fmt.Println("  [Sliders]")
	ranges := cfg.Ranges()
	initial := cfg.Initial()
	for f := model.Field(0); f < model.FieldCount; f++ {
		r := ranges.Of(f)
		cur := f.IsCurrency()
		fmt.Printf("    %-11s %s to %s, step %s, starts at %s\n", f.Label()+":",
			cli.FormatField(r.Min, cur), cli.FormatField(r.Max, cur),
			cli.FormatField(r.Step, cur), cli.FormatField(initial.Get(f), cur))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Journal]")
	fmt.Printf("    Enabled: %v\n", cfg.Journal.Enabled)
	fmt.Printf("    Path:    %s\n", cfg.JournalPath())
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	}
	fmt.Println()

	fmt.Println("  Run `finsim setup` to reconfigure.")
	return nil
}
