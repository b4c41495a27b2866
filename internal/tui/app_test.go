package tui

import (
	"path/filepath"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewApp_FirstRunShowsSetupForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")

	a := NewApp(path, config.DefaultConfig())
	if !a.needSetup {
		t.Fatal("expected needSetup for a missing plan file")
	}
	if a.setupForm == nil {
		t.Fatal("expected a setup form on first run")
	}
}

func TestNewApp_LoadsPlanAndProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	plan := config.DefaultPlan()
	if err := config.SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	a := NewApp(path, config.DefaultConfig())
	if a.needSetup {
		t.Fatal("plan file exists, setup should not run")
	}
	if a.planErr != nil {
		t.Fatalf("unexpected plan error: %v", a.planErr)
	}

	wantPoints := plan.Horizon() + 1
	if got := len(a.result.Points); got != wantPoints {
		t.Errorf("projection has %d points, want %d", got, wantPoints)
	}
	if a.metrics.RetirementFireNumber <= 0 {
		t.Errorf("RetirementFireNumber = %v, want > 0", a.metrics.RetirementFireNumber)
	}
	if a.agg.TotalAnnualCost <= 0 {
		t.Errorf("TotalAnnualCost = %v, want > 0", a.agg.TotalAnnualCost)
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := config.SavePlan(path, config.DefaultPlan()); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	a := NewApp(path, config.DefaultConfig())

	m, _ := a.Update(keyPress('p'))
	a = m.(App)
	if a.activeTab != tabProjection {
		t.Errorf("after 'p' activeTab = %d, want %d", a.activeTab, tabProjection)
	}

	m, _ = a.Update(keyPress('x'))
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Errorf("after 'x' activeTab = %d, want %d", a.activeTab, tabSettings)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabOverview {
		t.Errorf("right from last tab should wrap to %d, got %d", tabOverview, a.activeTab)
	}
}

func TestView_RendersTabsAtFullSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := config.SavePlan(path, config.DefaultPlan()); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	a := NewApp(path, config.DefaultConfig())

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	for tab := tabOverview; tab <= tabSettings; tab++ {
		a.activeTab = tab
		if out := a.View(); out == "" {
			t.Errorf("tab %d rendered empty view", tab)
		}
	}
}
