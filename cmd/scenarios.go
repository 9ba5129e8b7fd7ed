package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/pipeline"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List scenario presets",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO PRESETS"))
	fmt.Println()

	rows := make([][]string, 0, len(pipeline.AllScenarios()))
	for i, sc := range pipeline.AllScenarios() {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), sc.String(), sc.Label(), sc.Describe()})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Key", "Name", "Label", "Effect"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Results are rounded to whole units and kept within the slider limits.")
	fmt.Println("  Repeat --scenario to chain presets, e.g. `finsim --scenario crisis --scenario cost-cut`.")
	return nil
}
