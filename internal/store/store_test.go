package store

import (
	"path/filepath"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/model"
)

func testPlan() model.Plan {
	return model.Plan{
		CurrentAge:            28,
		RetirementAge:         45,
		CurrentSavings:        1000000,
		MonthlyIncome:         100000,
		SavingsRatePct:        40,
		InvestmentReturnPct:   7,
		SafeWithdrawalRatePct: 4,
		Expenses: []model.ExpenseInput{
			{Name: "Living", Kind: model.KindMonthly, Amount: 50000, InflationPct: 4},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)

	offset := 12
	age := 40
	sc := Scenario{
		Name:                 "aggressive",
		Plan:                 testPlan(),
		TotalAnnualCost:      600000,
		WeightedInflationPct: 4,
		RetirementFireNumber: 15000000,
		FireYearOffset:       &offset,
		FireAge:              &age,
	}

	if err := s.Save(sc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get("aggressive")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalAnnualCost != 600000 {
		t.Fatalf("TotalAnnualCost = %.2f, want 600000", got.TotalAnnualCost)
	}
	if got.FireYearOffset == nil || *got.FireYearOffset != 12 {
		t.Fatal("FireYearOffset did not round-trip")
	}
	if got.Plan.MonthlyIncome != 100000 {
		t.Fatalf("plan MonthlyIncome = %.2f, want 100000", got.Plan.MonthlyIncome)
	}
	if len(got.Plan.Expenses) != 1 || got.Plan.Expenses[0].Name != "Living" {
		t.Fatal("plan expenses did not round-trip")
	}
}

func TestSaveReplacesByName(t *testing.T) {
	s := openTestStore(t)

	sc := Scenario{Name: "base", Plan: testPlan(), TotalAnnualCost: 600000}
	if err := s.Save(sc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sc.TotalAnnualCost = 720000
	if err := s.Save(sc); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List returned %d scenarios, want 1", len(all))
	}
	if all[0].TotalAnnualCost != 720000 {
		t.Fatalf("TotalAnnualCost = %.2f, want replaced value 720000", all[0].TotalAnnualCost)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("ghost"); err == nil {
		t.Fatal("Get should fail for an unknown scenario")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(Scenario{Name: "tmp", Plan: testPlan()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("tmp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("tmp"); err == nil {
		t.Fatal("Delete should fail once the scenario is gone")
	}
}
