package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/store"

	"github.com/spf13/cobra"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded snapshots",
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

var journalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded snapshot",
	Args:  cobra.NoArgs,
	RunE:  runJournalClear,
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "l", 20, "Number of snapshots to show (0 for all)")
	journalCmd.AddCommand(journalClearCmd)
	rootCmd.AddCommand(journalCmd)
}

// openJournalForRead opens the journal regardless of the enabled flag; the
// flag only controls whether evaluations are recorded.
func openJournalForRead(cmd *cobra.Command) (*store.Journal, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg.Journal.Enabled = true
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	return openJournal(cfg, logger)
}

func runJournal(cmd *cobra.Command, _ []string) error {
	j, err := openJournalForRead(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.List(journalLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No snapshots recorded.")
		fmt.Println("  Run with --journal (or set [journal] enabled = true) to record them.")
		return nil
	}
	total, err := j.Count()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("JOURNAL  showing %d of %d", len(entries), total)))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		profile := e.Profile
		if profile == "" {
			profile = "-"
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.ID[:8],
			profile,
			cli.FormatBRL(e.Effective.Revenue),
			cli.FormatBRL(e.Effective.Profit),
			cli.FormatPercent(e.Effective.Margin),
			strings.Join(e.Scenarios, ", "),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Id", "Profile", "Revenue", "Profit", "Margin", "Scenarios"},
		Rows:    rows,
	}))
	return nil
}

func runJournalClear(cmd *cobra.Command, _ []string) error {
	j, err := openJournalForRead(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	n, err := j.Clear()
	if err != nil {
		return err
	}
	fmt.Printf("  Removed %d snapshots\n", n)
	return nil
}
