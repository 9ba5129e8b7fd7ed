package cmd

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/feedback"
	"github.com/theirongolddev/finsim/internal/model"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List stakeholder profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("STAKEHOLDER PROFILES"))
	fmt.Println()

	for _, c := range []model.Category{model.CategoryInternal, model.CategoryExternal} {
		title := "Internal users"
		if c == model.CategoryExternal {
			title = "External users"
		}
		rows := [][]string{}
		for _, p := range model.ProfilesIn(c) {
			rows = append(rows, []string{p.String(), p.Name(), feedback.Usage(p)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   title,
			Headers: []string{"Key", "Name", "Uses accounting information to"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Println("  Use a key with --profile, e.g. `finsim --profile bank`.")
	return nil
}
