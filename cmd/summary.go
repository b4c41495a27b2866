package cmd

import (
	"fmt"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline FIRE metrics",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	plan, cfg, err := loadPlan()
	if err != nil {
		return err
	}

	result, err := projectPlan(plan)
	if err != nil {
		return err
	}

	agg := engine.Aggregate(engine.Categories(plan))
	metrics := engine.Metrics(plan, result)
	cur := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FIRE PLAN  Age %d → %d", plan.CurrentAge, plan.RetirementAge)))
	fmt.Println()

	rows := [][]string{
		{"Current Savings", cli.FormatMoney(cur, plan.CurrentSavings)},
		{"Annual Savings", cli.FormatMoney(cur, metrics.AnnualContribution)},
		{"Savings Rate", fmt.Sprintf("%.0f%%", plan.SavingsRatePct)},
		{"Investment Return", fmt.Sprintf("%.1f%%", plan.InvestmentReturnPct)},
		{"---"},
		{"Current Annual Expenses", cli.FormatMoney(cur, agg.TotalAnnualCost)},
		{"Weighted Avg Inflation", cli.FormatPercent(agg.WeightedInflationPct)},
		{"Expenses at Retirement", cli.FormatMoney(cur, metrics.RetirementExpenses)},
		{"---"},
		{"Safe Withdrawal Rate", fmt.Sprintf("%.1f%%", plan.SafeWithdrawalRatePct)},
		{"FIRE Number", cli.FormatMoney(cur, metrics.RetirementFireNumber)},
		{"Years Until Retirement", fmt.Sprintf("%d", plan.Horizon())},
	}

	if metrics.YearsToSaveNoGrowth != nil {
		rows = append(rows, []string{"Years to Save (flat)", cli.FormatYears(*metrics.YearsToSaveNoGrowth)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	printOutlook(plan, result, metrics)
	fmt.Println()

	return nil
}

func printOutlook(plan model.Plan, result model.ProjectionResult, metrics model.KeyMetrics) {
	switch metrics.Outlook {
	case model.OutlookAchievedNow:
		fmt.Println(cli.GoodStyle.Render("  Your savings already clear today's FIRE number."))
	case model.OutlookEarly:
		age, _ := result.FireAge()
		fmt.Println(cli.GoodStyle.Render(fmt.Sprintf(
			"  On track for FIRE at age %d — %d years ahead of your target of %d.",
			age, plan.RetirementAge-age, plan.RetirementAge)))
	case model.OutlookOnTrack:
		age, _ := result.FireAge()
		fmt.Println(cli.GoodStyle.Render(fmt.Sprintf("  On track for FIRE right at your target age of %d.", age)))
	default:
		fmt.Println(cli.WarnStyle.Render(fmt.Sprintf(
			"  Current projections don't reach your FIRE number by age %d.", plan.RetirementAge)))
		fmt.Println(cli.WarnStyle.Render("  Consider raising your savings rate, income, or retirement age."))
	}
}
