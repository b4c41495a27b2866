package cmd

import (
	"fmt"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/engine"

	"github.com/spf13/cobra"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Year-by-year savings vs FIRE number table",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	plan, cfg, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := projectPlan(plan)
	if err != nil {
		return err
	}
	metrics := engine.Metrics(plan, result)
	cur := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FIRE PROJECTION  %d years", plan.Horizon())))
	fmt.Println()

	rows := make([][]string, 0, len(result.Points))
	for _, p := range result.Points {
		achieved := ""
		if p.FireAchieved {
			achieved = cli.GoodStyle.Render("✓")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Age),
			fmt.Sprintf("Year %d", p.YearOffset),
			cli.FormatMoney(cur, p.Savings),
			cli.FormatMoney(cur, p.AnnualExpenses),
			cli.FormatMoney(cur, p.FireNumber),
			achieved,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Age", "Year", "Savings", "Expenses", "FIRE Number", "FIRE"},
		Rows:    rows,
	}))

	// Savings trajectory at a glance
	savings := make([]float64, len(result.Points))
	for i, p := range result.Points {
		savings[i] = p.Savings
	}
	fmt.Printf("\n  Savings  %s\n", cli.RenderSparkline(savings))

	if age, ok := result.FireAge(); ok {
		fmt.Println(cli.GoodStyle.Render(fmt.Sprintf("  FIRE achieved at age %d (year %d)", age, *result.FireYearOffset)))
	} else {
		fmt.Println(cli.WarnStyle.Render(fmt.Sprintf("  Not achieved within the horizon (target %s)",
			cli.FormatMoney(cur, metrics.RetirementFireNumber))))
	}
	fmt.Println()

	return nil
}
