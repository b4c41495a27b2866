package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/model"
)

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= relTol*scale
}

func TestAnnualize(t *testing.T) {
	cases := []struct {
		name string
		in   model.ExpenseInput
		want float64
	}{
		{
			name: "monthly times twelve",
			in:   model.ExpenseInput{Kind: model.KindMonthly, Amount: 50000},
			want: 600000,
		},
		{
			name: "annual passes through",
			in:   model.ExpenseInput{Kind: model.KindAnnual, Amount: 120000},
			want: 120000,
		},
		{
			name: "per unit multiplies count",
			in:   model.ExpenseInput{Kind: model.KindPerUnit, Amount: 250000, Count: 2},
			want: 500000,
		},
		{
			name: "lump sum amortized over frequency",
			in:   model.ExpenseInput{Kind: model.KindEveryNYears, Amount: 1500000, FrequencyYears: 7},
			want: 1500000.0 / 7,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Annualize(tc.in).AnnualAmount
			if got != tc.want {
				t.Fatalf("Annualize() = %.4f, want %.4f", got, tc.want)
			}
		})
	}
}

func TestAggregate_WeightedRate(t *testing.T) {
	categories := []model.CostCategory{
		{Name: "living", AnnualAmount: 600000, InflationPct: 4},
		{Name: "trips", AnnualAmount: 250000, InflationPct: 6},
		{Name: "car", AnnualAmount: 150000, InflationPct: 5},
	}

	agg := Aggregate(categories)

	if agg.TotalAnnualCost != 1000000 {
		t.Fatalf("TotalAnnualCost = %.2f, want 1000000", agg.TotalAnnualCost)
	}

	// Σ(aᵢrᵢ)/Σaᵢ = (600000·4 + 250000·6 + 150000·5) / 1e6
	want := (600000.0*4 + 250000*6 + 150000*5) / 1000000
	if !approxEqual(agg.WeightedInflationPct, want, 1e-12) {
		t.Fatalf("WeightedInflationPct = %.6f, want %.6f", agg.WeightedInflationPct, want)
	}
}

func TestAggregate_ZeroAmountCarriesNoWeight(t *testing.T) {
	categories := []model.CostCategory{
		{Name: "idle", AnnualAmount: 0, InflationPct: 12},
		{Name: "living", AnnualAmount: 100, InflationPct: 4},
	}

	agg := Aggregate(categories)
	if agg.WeightedInflationPct != 4 {
		t.Fatalf("WeightedInflationPct = %.4f, want 4 (zero-amount category must not weigh in)", agg.WeightedInflationPct)
	}
}

func TestAggregate_ZeroTotalUsesDefault(t *testing.T) {
	for _, categories := range [][]model.CostCategory{
		nil,
		{{Name: "idle", AnnualAmount: 0, InflationPct: 9}},
	} {
		agg := Aggregate(categories)
		if agg.TotalAnnualCost != 0 {
			t.Fatalf("TotalAnnualCost = %.2f, want 0", agg.TotalAnnualCost)
		}
		if agg.WeightedInflationPct != DefaultInflationPct {
			t.Fatalf("WeightedInflationPct = %.2f, want default %.2f", agg.WeightedInflationPct, DefaultInflationPct)
		}
	}
}

func TestFutureAnnualCost_ZeroYearsMatchesTotal(t *testing.T) {
	categories := []model.CostCategory{
		{AnnualAmount: 612000, InflationPct: 4},
		{AnnualAmount: 240000, InflationPct: 7},
		{AnnualAmount: 90000, InflationPct: 5},
	}

	got := FutureAnnualCost(categories, 0)
	want := Aggregate(categories).TotalAnnualCost
	if got != want {
		t.Fatalf("FutureAnnualCost(0) = %.6f, want exact total %.6f", got, want)
	}
}

func TestFutureAnnualCost_CompoundsPerCategory(t *testing.T) {
	categories := []model.CostCategory{
		{AnnualAmount: 600000, InflationPct: 4},
		{AnnualAmount: 250000, InflationPct: 6},
		{AnnualAmount: 150000, InflationPct: 5},
	}
	const years = 10

	got := FutureAnnualCost(categories, years)

	var want float64
	for _, c := range categories {
		want += c.AnnualAmount * math.Pow(1+c.InflationPct/100, years)
	}
	if !approxEqual(got, want, 1e-12) {
		t.Fatalf("FutureAnnualCost(%d) = %.6f, want %.6f", years, got, want)
	}

	// Regression guard: substituting the blended rate changes the answer
	// whenever category rates are non-uniform.
	agg := Aggregate(categories)
	blended := agg.TotalAnnualCost * math.Pow(1+agg.WeightedInflationPct/100, years)
	if approxEqual(got, blended, 1e-9) {
		t.Fatalf("per-category compounding %.6f must differ from blended-rate substitution %.6f", got, blended)
	}
}

func TestFireNumber(t *testing.T) {
	got, err := FireNumber(1032000, 4)
	if err != nil {
		t.Fatalf("FireNumber returned error: %v", err)
	}
	if got != 25800000 {
		t.Fatalf("FireNumber(1032000, 4) = %.2f, want 25800000", got)
	}
}

func TestFireNumber_InvalidSWR(t *testing.T) {
	for _, swr := range []float64{0, -2} {
		got, err := FireNumber(1032000, swr)
		if err == nil {
			t.Fatalf("FireNumber(swr=%.1f) should fail", swr)
		}
		var ipe *InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Fatalf("error = %v, want *InvalidParameterError", err)
		}
		if ipe.Field != "safe_withdrawal_rate_pct" {
			t.Fatalf("error field = %q, want safe_withdrawal_rate_pct", ipe.Field)
		}
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Fatalf("FireNumber(swr=%.1f) leaked %v into output", swr, got)
		}
	}
}
