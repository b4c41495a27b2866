package cmd

import (
	"fmt"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/config"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Save and compare what-if plan snapshots",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Snapshot the current plan and its results under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Re-run the projection for a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(config.ScenarioDBPath())
}

func runScenarioSave(_ *cobra.Command, args []string) error {
	plan, _, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := projectPlan(plan)
	if err != nil {
		return err
	}
	agg := engine.Aggregate(engine.Categories(plan))
	metrics := engine.Metrics(plan, result)

	sc := store.Scenario{
		Name:                 args[0],
		Plan:                 plan,
		TotalAnnualCost:      agg.TotalAnnualCost,
		WeightedInflationPct: agg.WeightedInflationPct,
		RetirementFireNumber: metrics.RetirementFireNumber,
		FireYearOffset:       result.FireYearOffset,
	}
	if age, ok := result.FireAge(); ok {
		sc.FireAge = &age
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(sc); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}

	fmt.Printf("\n  Saved scenario %q\n\n", args[0])
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	scenarios, err := s.List()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("\n  No scenarios saved yet. Use `fire-calculator scenario save NAME`.")
		return nil
	}

	cfg, _ := config.Load()
	cur := cfg.General.CurrencySymbol

	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		fireAge := "—"
		if sc.FireAge != nil {
			fireAge = fmt.Sprintf("%d", *sc.FireAge)
		}
		rows = append(rows, []string{
			sc.Name,
			sc.CreatedAt.Local().Format("2006-01-02"),
			cli.FormatMoney(cur, sc.TotalAnnualCost),
			cli.FormatMoney(cur, sc.RetirementFireNumber),
			fireAge,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"Name", "Saved", "Annual Cost", "FIRE Number", "FIRE Age"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sc, err := s.Get(args[0])
	if err != nil {
		return err
	}

	result, err := projectPlan(sc.Plan)
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	metrics := engine.Metrics(sc.Plan, result)
	cur := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO  %s", sc.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Age Range", fmt.Sprintf("%d → %d", sc.Plan.CurrentAge, sc.Plan.RetirementAge)},
			{"Annual Savings", cli.FormatMoney(cur, metrics.AnnualContribution)},
			{"Current Annual Expenses", cli.FormatMoney(cur, sc.TotalAnnualCost)},
			{"Weighted Avg Inflation", cli.FormatPercent(sc.WeightedInflationPct)},
			{"FIRE Number", cli.FormatMoney(cur, metrics.RetirementFireNumber)},
		},
	}))
	fmt.Println()
	printOutlook(sc.Plan, result, metrics)
	fmt.Println()

	return nil
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted scenario %q\n\n", args[0])
	return nil
}
