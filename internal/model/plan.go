// Package model defines the value objects exchanged between the plan
// configuration, the projection engine, and the presentation layers.
package model

// Expense kinds supported by the annualizer.
const (
	KindMonthly     = "monthly"       // amount is a monthly recurring cost
	KindAnnual      = "annual"        // amount is already a yearly cost
	KindPerUnit     = "per_unit"      // amount × count per year (trips, dependents)
	KindEveryNYears = "every_n_years" // amount / frequency_years, amortized
)

// ExpenseInput is one expense category as the user states it, in its
// native period. Annualization happens in the engine.
type ExpenseInput struct {
	Name           string  `toml:"name" json:"name"`
	Kind           string  `toml:"kind" json:"kind" validate:"oneof=monthly annual per_unit every_n_years"`
	Amount         float64 `toml:"amount" json:"amount" validate:"gte=0"`
	Count          float64 `toml:"count,omitempty" json:"count,omitempty"`
	FrequencyYears int     `toml:"frequency_years,omitempty" json:"frequency_years,omitempty"`
	InflationPct   float64 `toml:"inflation_pct" json:"inflation_pct"`
}

// Plan holds every input the projection needs. It is treated as
// immutable: commands load it once per invocation and pass it by value.
type Plan struct {
	CurrentAge            int     `toml:"current_age" json:"current_age" validate:"gte=0"`
	RetirementAge         int     `toml:"retirement_age" json:"retirement_age" validate:"gtefield=CurrentAge"`
	CurrentSavings        float64 `toml:"current_savings" json:"current_savings" validate:"gte=0"`
	MonthlyIncome         float64 `toml:"monthly_income" json:"monthly_income" validate:"gte=0"`
	SavingsRatePct        float64 `toml:"savings_rate_pct" json:"savings_rate_pct" validate:"gte=0,lte=100"`
	InvestmentReturnPct   float64 `toml:"investment_return_pct" json:"investment_return_pct"`
	SafeWithdrawalRatePct float64 `toml:"safe_withdrawal_rate_pct" json:"safe_withdrawal_rate_pct" validate:"gt=0"`

	Expenses []ExpenseInput `toml:"expense" json:"expenses" validate:"dive"`
}

// Horizon returns the number of years until the target retirement age.
func (p Plan) Horizon() int {
	return p.RetirementAge - p.CurrentAge
}
