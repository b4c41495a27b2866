package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/prajeet74/fire-calculator/internal/model"
)

// DefaultPlan returns a fully populated starter plan. The numbers match
// the calculator's original worked example and give a realistic picture
// before the user has run setup.
func DefaultPlan() model.Plan {
	return model.Plan{
		CurrentAge:            28,
		RetirementAge:         45,
		CurrentSavings:        1000000,
		MonthlyIncome:         100000,
		SavingsRatePct:        40,
		InvestmentReturnPct:   7,
		SafeWithdrawalRatePct: 4,
		Expenses: []model.ExpenseInput{
			{Name: "Monthly Expenses", Kind: model.KindMonthly, Amount: 50000, InflationPct: 4},
			{Name: "Annual Trips", Kind: model.KindPerUnit, Amount: 250000, Count: 1, InflationPct: 6},
			{Name: "Car Upgrade", Kind: model.KindEveryNYears, Amount: 1500000, FrequencyYears: 7, InflationPct: 5},
			{Name: "Gadget Upgrade", Kind: model.KindEveryNYears, Amount: 500000, FrequencyYears: 7, InflationPct: 3},
			{Name: "Dependents", Kind: model.KindPerUnit, Amount: 600000, Count: 1, InflationPct: 6},
			{Name: "Misc Costs", Kind: model.KindMonthly, Amount: 10000, InflationPct: 6},
		},
	}
}

// LoadPlan reads a plan file from disk.
func LoadPlan(path string) (model.Plan, error) {
	var plan model.Plan

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plan, fmt.Errorf("no plan found at %s (run `fire-calculator setup` first): %w", path, err)
		}
		return plan, fmt.Errorf("reading plan: %w", err)
	}

	if err := toml.Unmarshal(data, &plan); err != nil {
		return plan, fmt.Errorf("parsing plan: %w", err)
	}

	return plan, nil
}

// PlanExists reports whether a plan file is present at path.
func PlanExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SavePlan writes the plan to disk, creating the directory if needed.
func SavePlan(path string, plan model.Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating plan dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating plan file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(plan)
}
