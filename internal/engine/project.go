package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/model"

	"github.com/go-playground/validator/v10"
)

// InvalidParameterError reports a plan field that failed validation.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

var planValidator = validator.New()

// Validate checks the plan before any projection math runs. The first
// offending field is reported; a valid plan returns nil.
func Validate(p model.Plan) error {
	if err := planValidator.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &InvalidParameterError{
				Field:  fieldName(verrs[0]),
				Reason: violationReason(verrs[0]),
			}
		}
		return err
	}

	// Kind-specific constraints the struct tags can't express.
	for i, e := range p.Expenses {
		switch e.Kind {
		case model.KindEveryNYears:
			if e.FrequencyYears < 1 {
				return &InvalidParameterError{
					Field:  fmt.Sprintf("expense[%d].frequency_years", i),
					Reason: "must be at least 1",
				}
			}
		case model.KindPerUnit:
			if e.Count < 0 {
				return &InvalidParameterError{
					Field:  fmt.Sprintf("expense[%d].count", i),
					Reason: "must not be negative",
				}
			}
		}
	}

	return nil
}

// fieldName converts a validator namespace like "Plan.Expenses[2].Amount"
// into the plan-file spelling "expense[2].amount".
func fieldName(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Plan.")
	ns = strings.ReplaceAll(ns, "Expenses[", "expense[")

	var b strings.Builder
	for i, r := range ns {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && ns[i-1] != '.' && ns[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func violationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gtefield":
		return "must not be less than current_age"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}

// Project runs the full year-by-year simulation over the plan horizon.
//
// Offset 0 is the present; each later year applies the investment
// return to the previous savings and adds the fixed annual
// contribution. The series is always computed through the final offset
// even after FIRE is achieved, since the chart needs every point.
func Project(p model.Plan) (model.ProjectionResult, error) {
	if err := Validate(p); err != nil {
		return model.ProjectionResult{}, err
	}

	categories := Categories(p)
	horizon := p.Horizon()

	contribution := AnnualContribution(p)
	growth := 1 + p.InvestmentReturnPct/100
	payout := 100 / p.SafeWithdrawalRatePct

	points := make([]model.ProjectionPoint, 0, horizon+1)
	var fireOffset *int

	savings := p.CurrentSavings
	for y := 0; y <= horizon; y++ {
		if y > 0 {
			savings = savings*growth + contribution
		}
		expenses := FutureAnnualCost(categories, y)
		fireNumber := expenses * payout
		achieved := savings >= fireNumber

		if achieved && fireOffset == nil {
			offset := y
			fireOffset = &offset
		}

		points = append(points, model.ProjectionPoint{
			YearOffset:     y,
			Age:            p.CurrentAge + y,
			Savings:        savings,
			AnnualExpenses: expenses,
			FireNumber:     fireNumber,
			FireAchieved:   achieved,
		})
	}

	return model.ProjectionResult{Points: points, FireYearOffset: fireOffset}, nil
}

// AnnualContribution is the fixed yearly saving: monthly income × 12
// scaled by the savings rate. No income growth is modeled.
func AnnualContribution(p model.Plan) float64 {
	return p.MonthlyIncome * 12 * (p.SavingsRatePct / 100)
}

// Metrics derives the headline numbers shown alongside the series.
// The plan must have passed Validate (Project does this).
func Metrics(p model.Plan, res model.ProjectionResult) model.KeyMetrics {
	categories := Categories(p)
	horizon := p.Horizon()

	contribution := AnnualContribution(p)
	retirementExpenses := FutureAnnualCost(categories, horizon)
	fireNumber := retirementExpenses * (100 / p.SafeWithdrawalRatePct)

	m := model.KeyMetrics{
		AnnualContribution:   contribution,
		RetirementExpenses:   retirementExpenses,
		RetirementFireNumber: fireNumber,
		Outlook:              outlook(p, res),
	}

	// Single closed-form estimate, deliberately not a solver.
	if contribution > 0 {
		years := (fireNumber - p.CurrentSavings) / (contribution * (1 + p.InvestmentReturnPct/100))
		if years > 0 {
			m.YearsToSaveNoGrowth = &years
		}
	}

	return m
}

func outlook(p model.Plan, res model.ProjectionResult) model.Outlook {
	switch {
	case res.FireYearOffset == nil:
		return model.OutlookOffTrack
	case *res.FireYearOffset == 0:
		return model.OutlookAchievedNow
	case *res.FireYearOffset < p.Horizon():
		return model.OutlookEarly
	default:
		return model.OutlookOnTrack
	}
}
