// Package engine implements the FIRE projection: expense annualization
// and aggregation, per-category future-cost compounding, and the
// year-by-year savings recurrence.
package engine

import (
	"math"

	"github.com/prajeet74/fire-calculator/internal/model"
)

// DefaultInflationPct is the blended-rate fallback used when the plan
// carries no expense weight at all (total annual cost of zero).
const DefaultInflationPct = 4.0

// Annualize normalizes one expense input to a one-year basis. The
// every_n_years kind is an amortized average (cost / frequency), not a
// model of the actual lumpy cash-flow timing. Inputs are assumed to
// have passed Validate.
func Annualize(e model.ExpenseInput) model.CostCategory {
	var annual float64
	switch e.Kind {
	case model.KindMonthly:
		annual = e.Amount * 12
	case model.KindAnnual:
		annual = e.Amount
	case model.KindPerUnit:
		annual = e.Amount * e.Count
	case model.KindEveryNYears:
		annual = e.Amount / float64(e.FrequencyYears)
	}

	return model.CostCategory{
		Name:         e.Name,
		AnnualAmount: annual,
		InflationPct: e.InflationPct,
	}
}

// Categories annualizes every expense category in the plan, preserving
// plan order.
func Categories(p model.Plan) []model.CostCategory {
	categories := make([]model.CostCategory, len(p.Expenses))
	for i, e := range p.Expenses {
		categories[i] = Annualize(e)
	}
	return categories
}

// Aggregate sums the annualized categories and computes the
// cost-weighted blended inflation rate. Zero-amount categories carry
// zero weight; a zero total falls back to DefaultInflationPct.
func Aggregate(categories []model.CostCategory) model.AggregateExpense {
	var total, weighted float64
	for _, c := range categories {
		total += c.AnnualAmount
		weighted += c.AnnualAmount * c.InflationPct
	}

	if total == 0 {
		return model.AggregateExpense{WeightedInflationPct: DefaultInflationPct}
	}

	return model.AggregateExpense{
		TotalAnnualCost:      total,
		WeightedInflationPct: weighted / total,
	}
}

// FutureAnnualCost compounds each category at its own inflation rate
// over the elapsed years and sums the results. The blended rate from
// Aggregate must never be substituted here: the two disagree whenever
// category rates are non-uniform, because relative weights drift as
// the categories compound apart.
func FutureAnnualCost(categories []model.CostCategory, years int) float64 {
	var total float64
	for _, c := range categories {
		total += c.AnnualAmount * math.Pow(1+c.InflationPct/100, float64(years))
	}
	return total
}

// FireNumber is the savings target that sustains the given annual
// expenses at the given safe withdrawal rate.
func FireNumber(annualExpenses, swrPct float64) (float64, error) {
	if swrPct <= 0 {
		return 0, &InvalidParameterError{
			Field:  "safe_withdrawal_rate_pct",
			Reason: "must be greater than zero",
		}
	}
	return annualExpenses * (100 / swrPct), nil
}
