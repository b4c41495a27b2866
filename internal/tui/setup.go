package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/config"
	"github.com/prajeet74/fire-calculator/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw string inputs of the first-run form.
type setupValues struct {
	currentAge    string
	retirementAge string
	savings       string
	income        string
	savingsRate   string
	investReturn  string
	swr           string
	theme         string
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

// newSetupForm builds the first-run plan form, seeded with default values.
// Expense categories start from the defaults and can be refined later via
// `setup` or by editing the plan file.
func newSetupForm(vals *setupValues) *huh.Form {
	d := config.DefaultPlan()
	vals.currentAge = strconv.Itoa(d.CurrentAge)
	vals.retirementAge = strconv.Itoa(d.RetirementAge)
	vals.savings = strconv.FormatFloat(d.CurrentSavings, 'f', -1, 64)
	vals.income = strconv.FormatFloat(d.MonthlyIncome, 'f', -1, 64)
	vals.savingsRate = strconv.FormatFloat(d.SavingsRatePct, 'f', -1, 64)
	vals.investReturn = strconv.FormatFloat(d.InvestmentReturnPct, 'f', -1, 64)
	vals.swr = strconv.FormatFloat(d.SafeWithdrawalRatePct, 'f', -1, 64)
	vals.theme = theme.Active.Name

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current age").
				Value(&vals.currentAge).
				Validate(validateInt),
			huh.NewInput().
				Title("Target retirement age").
				Value(&vals.retirementAge).
				Validate(validateInt),
			huh.NewInput().
				Title("Current savings").
				Value(&vals.savings).
				Validate(validateFloat),
			huh.NewInput().
				Title("Monthly income").
				Value(&vals.income).
				Validate(validateFloat),
		).Title("Your FIRE plan"),
		huh.NewGroup(
			huh.NewInput().
				Title("Savings rate (% of income)").
				Value(&vals.savingsRate).
				Validate(validateFloat),
			huh.NewInput().
				Title("Expected investment return %").
				Value(&vals.investReturn).
				Validate(validateFloat),
			huh.NewInput().
				Title("Safe withdrawal rate %").
				Value(&vals.swr).
				Validate(validateFloat),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		).Title("Assumptions"),
	)
}

// saveSetupPlan writes the completed form values to the plan file and the
// chosen theme to the config file.
func (a *App) saveSetupPlan() {
	plan := config.DefaultPlan()

	if v, err := strconv.Atoi(strings.TrimSpace(a.setupVals.currentAge)); err == nil {
		plan.CurrentAge = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(a.setupVals.retirementAge)); err == nil {
		plan.RetirementAge = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.savings), 64); err == nil {
		plan.CurrentSavings = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.income), 64); err == nil {
		plan.MonthlyIncome = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.savingsRate), 64); err == nil {
		plan.SavingsRatePct = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.investReturn), 64); err == nil {
		plan.InvestmentReturnPct = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.swr), 64); err == nil {
		plan.SafeWithdrawalRatePct = v
	}

	a.plan = plan
	_ = config.SavePlan(a.planPath, plan)

	if a.setupVals.theme != "" {
		a.cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
		_ = config.Save(a.cfg)
	}
}
