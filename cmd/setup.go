package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/config"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive plan setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()
	path := config.PlanPath(flagPlan, cfg)

	// Start from the existing plan if there is one, so re-running setup
	// edits rather than resets.
	plan := config.DefaultPlan()
	if config.PlanExists(path) {
		if existing, err := config.LoadPlan(path); err == nil {
			plan = existing
		}
	}

	fmt.Println()
	fmt.Println("  Let's build your FIRE plan. Press Enter to keep the shown value.")
	fmt.Println()

	fmt.Println("  1. Personal details")
	plan.CurrentAge = promptInt(reader, "Current age", plan.CurrentAge)
	plan.RetirementAge = promptInt(reader, "Target retirement age", plan.RetirementAge)
	fmt.Println()

	fmt.Println("  2. Financial status")
	plan.CurrentSavings = promptFloat(reader, "Current savings", plan.CurrentSavings)
	plan.MonthlyIncome = promptFloat(reader, "Monthly income", plan.MonthlyIncome)
	plan.SavingsRatePct = promptFloat(reader, "Savings rate %", plan.SavingsRatePct)
	plan.InvestmentReturnPct = promptFloat(reader, "Expected investment return %", plan.InvestmentReturnPct)
	plan.SafeWithdrawalRatePct = promptFloat(reader, "Safe withdrawal rate %", plan.SafeWithdrawalRatePct)
	fmt.Println()

	fmt.Println("  3. Expense categories")
	for i := range plan.Expenses {
		e := &plan.Expenses[i]
		fmt.Printf("     %s (%s)\n", e.Name, describeKind(*e))
		e.Amount = promptFloat(reader, "Amount", e.Amount)
		switch e.Kind {
		case model.KindPerUnit:
			e.Count = promptFloat(reader, "Count per year", e.Count)
		case model.KindEveryNYears:
			e.FrequencyYears = promptInt(reader, "Every how many years", e.FrequencyYears)
		}
		e.InflationPct = promptFloat(reader, "Inflation rate %", e.InflationPct)
	}

	if err := engine.Validate(plan); err != nil {
		return fmt.Errorf("plan rejected: %w", err)
	}

	if err := config.SavePlan(path, plan); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `fire-calculator` for the summary, or `fire-calculator tui` for the dashboard.")
	fmt.Println()

	return nil
}

func describeKind(e model.ExpenseInput) string {
	switch e.Kind {
	case model.KindMonthly:
		return "monthly"
	case model.KindPerUnit:
		return "per unit"
	case model.KindEveryNYears:
		return fmt.Sprintf("every %d years", e.FrequencyYears)
	default:
		return "annual"
	}
}

func promptInt(r *bufio.Reader, label string, def int) int {
	fmt.Printf("     %s [%d]: ", label, def)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     (not a number, keeping current value)")
		return def
	}
	return v
}

func promptFloat(r *bufio.Reader, label string, def float64) float64 {
	fmt.Printf("     %s [%s]: ", label, strconv.FormatFloat(def, 'f', -1, 64))
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("     (not a number, keeping current value)")
		return def
	}
	return v
}
