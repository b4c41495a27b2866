package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/model"
)

// scenarioPlan mirrors the reference scenario: a 28-year-old targeting
// retirement at 45 with 1,032,000/yr of current expenses.
func scenarioPlan() model.Plan {
	return model.Plan{
		CurrentAge:            28,
		RetirementAge:         45,
		CurrentSavings:        1000000,
		MonthlyIncome:         100000,
		SavingsRatePct:        40,
		InvestmentReturnPct:   7,
		SafeWithdrawalRatePct: 4,
		Expenses: []model.ExpenseInput{
			{Name: "Living", Kind: model.KindMonthly, Amount: 51000, InflationPct: 4},
			{Name: "Trips", Kind: model.KindPerUnit, Amount: 240000, Count: 1, InflationPct: 7},
			{Name: "Car", Kind: model.KindEveryNYears, Amount: 630000, FrequencyYears: 7, InflationPct: 5},
			{Name: "Misc", Kind: model.KindMonthly, Amount: 7500, InflationPct: 6},
		},
	}
}

func TestProject_Scenario(t *testing.T) {
	plan := scenarioPlan()

	res, err := Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if len(res.Points) != 18 {
		t.Fatalf("series length = %d, want 18 (offsets 0..17)", len(res.Points))
	}

	p0 := res.Points[0]
	if p0.Savings != 1000000 {
		t.Fatalf("offset-0 savings = %.2f, want 1000000", p0.Savings)
	}
	if p0.AnnualExpenses != 1032000 {
		t.Fatalf("offset-0 expenses = %.2f, want 1032000", p0.AnnualExpenses)
	}
	if p0.FireNumber != 25800000 {
		t.Fatalf("offset-0 fire number = %.2f, want 25800000 (1032000 × 25)", p0.FireNumber)
	}
	if p0.FireAchieved {
		t.Fatal("offset-0 should not be achieved: savings are far below the target")
	}

	// Verify the final savings against a direct recurrence computation.
	contribution := plan.MonthlyIncome * 12 * (plan.SavingsRatePct / 100)
	if !approxEqual(contribution, 480000, 1e-9) {
		t.Fatalf("annual contribution = %.4f, want 480000", contribution)
	}

	growth := 1 + plan.InvestmentReturnPct/100
	savings := plan.CurrentSavings
	for y := 1; y <= 17; y++ {
		savings = savings*growth + contribution
	}

	last := res.Points[17]
	if last.Age != 45 {
		t.Fatalf("final age = %d, want 45", last.Age)
	}
	if !approxEqual(last.Savings, savings, 1e-6) {
		t.Fatalf("offset-17 savings = %.4f, want %.4f (direct recurrence)", last.Savings, savings)
	}

	// With a 25.8M target this plan never gets there inside the horizon.
	if res.FireYearOffset != nil {
		t.Fatalf("FireYearOffset = %d, want absent", *res.FireYearOffset)
	}

	m := Metrics(plan, res)
	if m.Outlook != model.OutlookOffTrack {
		t.Fatalf("outlook = %q, want %q", m.Outlook, model.OutlookOffTrack)
	}
	if m.YearsToSaveNoGrowth == nil || *m.YearsToSaveNoGrowth <= 0 {
		t.Fatal("YearsToSaveNoGrowth should be present and positive")
	}
}

func TestProject_MonotonicFireNumber(t *testing.T) {
	res, err := Project(scenarioPlan())
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	for i := 1; i < len(res.Points); i++ {
		if res.Points[i].FireNumber < res.Points[i-1].FireNumber {
			t.Fatalf("fire number decreased at offset %d: %.2f -> %.2f",
				i, res.Points[i-1].FireNumber, res.Points[i].FireNumber)
		}
	}
}

func TestProject_FirstAchievedOffset(t *testing.T) {
	// Cheap expenses plus aggressive saving: FIRE lands mid-horizon.
	plan := model.Plan{
		CurrentAge:            30,
		RetirementAge:         50,
		CurrentSavings:        0,
		MonthlyIncome:         200000,
		SavingsRatePct:        50,
		InvestmentReturnPct:   7,
		SafeWithdrawalRatePct: 4,
		Expenses: []model.ExpenseInput{
			{Name: "Living", Kind: model.KindMonthly, Amount: 20000, InflationPct: 4},
		},
	}

	res, err := Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if res.FireYearOffset == nil {
		t.Fatal("expected FIRE to be achieved within the horizon")
	}
	offset := *res.FireYearOffset
	if offset <= 0 || offset >= plan.Horizon() {
		t.Fatalf("FireYearOffset = %d, expected strictly inside (0, %d)", offset, plan.Horizon())
	}

	for i := 0; i < offset; i++ {
		if res.Points[i].FireAchieved {
			t.Fatalf("offset %d achieved before recorded first offset %d", i, offset)
		}
	}
	if !res.Points[offset].FireAchieved {
		t.Fatalf("recorded offset %d is not achieved", offset)
	}

	// The loop must not short-circuit after achievement: the chart needs
	// every year through the horizon.
	if len(res.Points) != plan.Horizon()+1 {
		t.Fatalf("series length = %d, want %d", len(res.Points), plan.Horizon()+1)
	}

	if m := Metrics(plan, res); m.Outlook != model.OutlookEarly {
		t.Fatalf("outlook = %q, want %q", m.Outlook, model.OutlookEarly)
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	plan := scenarioPlan()
	plan.RetirementAge = plan.CurrentAge

	res, err := Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}
	if len(res.Points) != 1 {
		t.Fatalf("series length = %d, want 1", len(res.Points))
	}
	if res.FireYearOffset != nil {
		t.Fatal("FireYearOffset should be absent when savings are below the target")
	}

	// Already past the target: a single achieved point is a valid
	// terminal state, not an error.
	plan.CurrentSavings = 30000000
	res, err = Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}
	if res.FireYearOffset == nil || *res.FireYearOffset != 0 {
		t.Fatal("FireYearOffset should be 0 when savings already clear the target")
	}
	if m := Metrics(plan, res); m.Outlook != model.OutlookAchievedNow {
		t.Fatalf("outlook = %q, want %q", m.Outlook, model.OutlookAchievedNow)
	}
}

func TestProject_InvalidParameters(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*model.Plan)
		wantField string
	}{
		{
			name:      "zero swr",
			mutate:    func(p *model.Plan) { p.SafeWithdrawalRatePct = 0 },
			wantField: "safe_withdrawal_rate_pct",
		},
		{
			name:      "retirement before current age",
			mutate:    func(p *model.Plan) { p.RetirementAge = p.CurrentAge - 1 },
			wantField: "retirement_age",
		},
		{
			name:      "savings rate above 100",
			mutate:    func(p *model.Plan) { p.SavingsRatePct = 150 },
			wantField: "savings_rate_pct",
		},
		{
			name:      "negative savings",
			mutate:    func(p *model.Plan) { p.CurrentSavings = -1 },
			wantField: "current_savings",
		},
		{
			name:      "zero upgrade frequency",
			mutate:    func(p *model.Plan) { p.Expenses[2].FrequencyYears = 0 },
			wantField: "expense[2].frequency_years",
		},
		{
			name:      "unknown expense kind",
			mutate:    func(p *model.Plan) { p.Expenses[0].Kind = "weekly" },
			wantField: "expense[0].kind",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := scenarioPlan()
			tc.mutate(&plan)

			res, err := Project(plan)
			if err == nil {
				t.Fatal("Project should fail validation")
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("error = %v, want *InvalidParameterError", err)
			}
			if ipe.Field != tc.wantField {
				t.Fatalf("error field = %q, want %q", ipe.Field, tc.wantField)
			}
			if len(res.Points) != 0 {
				t.Fatal("no partial series should be produced on validation failure")
			}
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	plan := scenarioPlan()

	first, err := Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}
	second, err := Project(plan)
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical plans must produce bit-identical projections")
	}
}
