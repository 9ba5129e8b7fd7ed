package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/feedback"
	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/pipeline"
	"github.com/theirongolddev/finsim/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	simRevenue    float64
	simExpenses   float64
	simStudents   float64
	simInvestment float64
	simScenarios  []string
)

var inputFlags = []struct {
	flag  string
	field model.Field
}{
	{"revenue", model.FieldRevenue},
	{"expenses", model.FieldExpenses},
	{"students", model.FieldStudents},
	{"investment", model.FieldInvestment},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Evaluate one set of inputs and print the results",
	RunE:  runSimulate,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, simulateCmd} {
		f := c.Flags()
		f.Float64VarP(&simRevenue, "revenue", "r", 0, "Revenue in reais (default: starting value)")
		f.Float64VarP(&simExpenses, "expenses", "e", 0, "Expenses in reais (default: starting value)")
		f.Float64VarP(&simStudents, "students", "s", 0, "Number of students (default: starting value)")
		f.Float64VarP(&simInvestment, "investment", "i", 0, "Investment in new courses (default: starting value)")
		f.StringArrayVar(&simScenarios, "scenario", nil, "Apply a scenario preset; repeatable, applied in order")
	}
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	scenarios, err := parseScenarios(simScenarios)
	if err != nil {
		return err
	}

	session := pipeline.NewSession(cfg.Initial(), cfg.Ranges())

	in := session.Inputs()
	requested := model.Inputs{Revenue: simRevenue, Expenses: simExpenses, Students: simStudents, Investment: simInvestment}
	var changed []model.Field
	for _, f := range inputFlags {
		if cmd.Flags().Changed(f.flag) {
			in = in.With(f.field, requested.Get(f.field))
			changed = append(changed, f.field)
		}
	}
	session.Set(in)
	for _, f := range changed {
		if got := session.Inputs().Get(f); got != requested.Get(f) {
			logger.Warn("input adjusted to slider range",
				zap.String("field", strings.ToLower(f.Label())),
				zap.Float64("requested", requested.Get(f)),
				zap.Float64("used", got),
			)
		}
	}

	for _, sc := range scenarios {
		session.Apply(sc)
		logger.Debug("scenario applied", zap.String("scenario", sc.String()))
	}

	res := session.Evaluate()
	base := pipeline.Evaluate(session.Baseline(), session.Baseline().Inputs())
	profile, hasProfile := cfg.Profile()

	printSimulation(res, base, scenarios)
	printFeedback(profile, hasProfile, res.Raw)

	journal, err := openJournal(cfg, logger)
	if err != nil {
		return err
	}
	if journal == nil {
		return nil
	}
	defer journal.Close()

	e := store.Entry{
		Baseline:  session.Baseline(),
		Inputs:    res.Inputs,
		Raw:       res.Raw,
		Effective: res.Effective,
	}
	if hasProfile {
		e.Profile = profile.String()
	}
	for _, sc := range scenarios {
		e.Scenarios = append(e.Scenarios, sc.String())
	}
	saved, err := journal.Record(e)
	if err != nil {
		return err
	}
	logger.Info("snapshot recorded", zap.String("id", saved.ID))
	return nil
}

func parseScenarios(names []string) ([]pipeline.Scenario, error) {
	out := make([]pipeline.Scenario, 0, len(names))
	for _, n := range names {
		sc, err := pipeline.ParseScenario(n)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func printSimulation(res, base pipeline.Result, scenarios []pipeline.Scenario) {
	eff := res.Effective
	start := base.Effective

	fmt.Println()
	fmt.Println(cli.RenderTitle("MULTI TECH  Financial simulation"))
	fmt.Println()

	in := res.Inputs
	inputs := cli.Table{
		Title:   "Inputs",
		Headers: []string{"Input", "Start", "Now"},
		Rows: [][]string{
			{"Revenue", cli.FormatBRL(base.Inputs.Revenue), cli.FormatBRL(in.Revenue)},
			{"Expenses", cli.FormatBRL(base.Inputs.Expenses), cli.FormatBRL(in.Expenses)},
			{"Students", cli.FormatCount(base.Inputs.Students), cli.FormatCount(in.Students)},
			{"Investment", cli.FormatBRL(base.Inputs.Investment), cli.FormatBRL(in.Investment)},
		},
	}
	fmt.Print(cli.RenderTable(inputs))
	if len(scenarios) > 0 {
		labels := make([]string, len(scenarios))
		for i, sc := range scenarios {
			labels[i] = sc.Label() + " (" + sc.Describe() + ")"
		}
		fmt.Printf("  Scenarios: %s\n", strings.Join(labels, " → "))
	}
	fmt.Println()

	results := cli.Table{
		Title:   "Results",
		Headers: []string{"Metric", "Start", "Now", "Change"},
		Rows: [][]string{
			{"Revenue", cli.FormatBRL(start.Revenue), cli.FormatBRL(eff.Revenue), cli.FormatDelta(eff.Revenue, start.Revenue)},
			{"Expenses", cli.FormatBRL(start.Expenses), cli.FormatBRL(eff.Expenses), cli.FormatDelta(eff.Expenses, start.Expenses)},
			{"Profit", cli.FormatBRL(start.Profit), cli.FormatBRL(eff.Profit), cli.FormatDelta(eff.Profit, start.Profit)},
			{"Margin", cli.FormatPercent(start.Margin), cli.FormatPercent(eff.Margin), ""},
			{"---"},
			{"Revenue per student", "", cli.FormatBRL(eff.Details.RevenuePerStudent), ""},
			{"Cost per student", "", cli.FormatBRL(eff.Details.CostPerStudent), ""},
			{"From new students", "", cli.FormatBRL(eff.Details.RevenueFromStudents), cli.FormatBRL(eff.Details.ExpenseFromStudents)},
			{"From investment", "", cli.FormatBRL(eff.Details.RevenueFromInvestment), cli.FormatBRL(eff.Details.ExpenseFromInvestment)},
		},
	}
	fmt.Print(cli.RenderTable(results))
	fmt.Println()

	bars := []cli.Bar{
		{Label: "Revenue", Value: eff.Revenue, Color: cli.ColorBlue},
		{Label: "Expenses", Value: eff.Expenses, Color: cli.ColorOrange},
		{Label: "Profit", Value: eff.Profit, Color: cli.ColorGreen},
	}
	fmt.Print(cli.RenderBars(bars, 30))
	fmt.Println()
	fmt.Print(cli.RenderShareBar(bars, 48))
	fmt.Println()
}

func printFeedback(p model.Profile, ok bool, raw model.Raw) {
	wrap := lipgloss.NewStyle().Width(72).PaddingLeft(2)
	if !ok {
		fmt.Println(wrap.Render(feedback.Fallback))
		fmt.Println(wrap.Render("Pass --profile to read the numbers as a stakeholder."))
		fmt.Println()
		return
	}

	fmt.Printf("  %s (%s)\n", lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent).Render(p.Name()), p.Category())
	fmt.Println(wrap.Render(feedback.Build(p, raw)))
	fmt.Println()
	if raw.Profit < 0 {
		fmt.Fprintln(os.Stderr, "  Note: the KPIs show profit floored at zero; the interpretation uses the simple calculation.")
	}
}
