package cmd

import (
	"fmt"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/model"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Current expense breakdown with blended inflation",
	RunE:  runExpenses,
}

func init() {
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	plan, cfg, err := loadPlan()
	if err != nil {
		return err
	}
	if err := engine.Validate(plan); err != nil {
		return fmt.Errorf("plan rejected: %w", err)
	}

	categories := engine.Categories(plan)
	agg := engine.Aggregate(categories)
	cur := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("CURRENT EXPENSES"))
	fmt.Println()

	rows := make([][]string, 0, len(categories)+2)
	for i, c := range categories {
		rows = append(rows, []string{
			c.Name,
			describeExpense(cur, plan.Expenses[i]),
			cli.FormatMoney(cur, c.AnnualAmount),
			cli.FormatPercent(c.InflationPct),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		"",
		cli.FormatMoney(cur, agg.TotalAnnualCost),
		cli.FormatPercent(agg.WeightedInflationPct) + " (weighted)",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "As Entered", "Annualized", "Inflation"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

// describeExpense renders the category in its native period, e.g.
// "50,000 (monthly)" or "1,500,000 (every 7 years)".
func describeExpense(cur string, e model.ExpenseInput) string {
	switch e.Kind {
	case model.KindMonthly:
		return fmt.Sprintf("%s (monthly)", cli.FormatMoney(cur, e.Amount))
	case model.KindPerUnit:
		return fmt.Sprintf("%s × %.0f", cli.FormatMoney(cur, e.Amount), e.Count)
	case model.KindEveryNYears:
		return fmt.Sprintf("%s (every %d years)", cli.FormatMoney(cur, e.Amount), e.FrequencyYears)
	default:
		return fmt.Sprintf("%s (annual)", cli.FormatMoney(cur, e.Amount))
	}
}
