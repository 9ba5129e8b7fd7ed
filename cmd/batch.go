package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/pipeline"
	"github.com/theirongolddev/finsim/internal/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.jsonl|dir>",
	Short: "Evaluate every case in JSONL scenario files",
	Long: "Each line is a JSON object such as\n" +
		`  {"label":"expansion","revenue":150000,"students":80,"scenarios":["campaign"]}` + "\n" +
		"Missing fields take the starting values. Blank lines and lines starting with # are ignored.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	files, err := source.ScanDir(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("\n  No .jsonl files found.")
		return nil
	}

	var (
		cases       []source.Case
		parseErrors int
	)
	for _, f := range files {
		res := source.ParseFile(f, cfg.Initial())
		if res.Err != nil {
			logger.Warn("skipping file", zap.String("path", f.Path), zap.Error(res.Err))
			continue
		}
		if res.ParseErrors > 0 {
			logger.Warn("malformed lines skipped", zap.String("path", f.Path), zap.Int("count", res.ParseErrors))
		}
		parseErrors += res.ParseErrors
		cases = append(cases, res.Cases...)
	}
	if len(cases) == 0 {
		fmt.Println("\n  No valid cases found.")
		return nil
	}

	session := pipeline.NewSession(cfg.Initial(), cfg.Ranges())
	resolved := source.Resolve(cases, session.Ranges())

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%100 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Evaluating %s", cli.RenderProgressBar(current, total, 20))
		}
	}
	results := pipeline.EvaluateAll(session.Baseline(), resolved, progressFn)
	if !flagQuiet {
		fmt.Fprintln(os.Stderr)
	}
	logger.Debug("batch evaluated", zap.Int("files", len(files)), zap.Int("cases", len(results)))

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BATCH  %d cases from %d files", len(results), len(files))))
	fmt.Println()

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Label,
			cli.FormatBRL(r.Effective.Revenue),
			cli.FormatBRL(r.Effective.Expenses),
			cli.FormatBRL(r.Effective.Profit),
			cli.FormatPercent(r.Effective.Margin),
			cli.RenderSigned(r.Raw.Profit, cli.FormatBRL(r.Raw.Profit)),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Case", "Revenue", "Expenses", "Profit", "Margin", "Simple profit"},
		Rows:    rows,
	}))

	if parseErrors > 0 {
		fmt.Fprintf(os.Stderr, "\n  %d lines could not be parsed\n", parseErrors)
	}
	return nil
}
