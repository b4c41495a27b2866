package config

import (
	"path/filepath"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/engine"
)

func TestPlanRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")

	want := DefaultPlan()
	want.CurrentAge = 35
	want.Expenses[0].Amount = 62000

	if err := SavePlan(path, want); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if !PlanExists(path) {
		t.Fatal("PlanExists should report the saved plan")
	}

	got, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}

	if got.CurrentAge != 35 {
		t.Fatalf("CurrentAge = %d, want 35", got.CurrentAge)
	}
	if len(got.Expenses) != len(want.Expenses) {
		t.Fatalf("expense count = %d, want %d", len(got.Expenses), len(want.Expenses))
	}
	if got.Expenses[0].Amount != 62000 {
		t.Fatalf("Expenses[0].Amount = %.2f, want 62000", got.Expenses[0].Amount)
	}
	if got.Expenses[2].FrequencyYears != 7 {
		t.Fatalf("Expenses[2].FrequencyYears = %d, want 7", got.Expenses[2].FrequencyYears)
	}
}

func TestLoadPlan_Missing(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadPlan should fail for a missing file")
	}
}

func TestDefaultPlan_IsValid(t *testing.T) {
	plan := DefaultPlan()
	if err := engine.Validate(plan); err != nil {
		t.Fatalf("default plan must validate: %v", err)
	}

	// 50000·12 + 250000 + 1500000/7 + 500000/7 + 600000 + 10000·12
	agg := engine.Aggregate(engine.Categories(plan))
	want := 600000.0 + 250000 + 1500000.0/7 + 500000.0/7 + 600000 + 120000
	if agg.TotalAnnualCost != want {
		t.Fatalf("default total annual cost = %.2f, want %.2f", agg.TotalAnnualCost, want)
	}
}
