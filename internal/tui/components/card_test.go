package components

import (
	"strings"
	"testing"

	"github.com/prajeet74/fire-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor so styles render deterministically regardless of the
	// test environment's terminal.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 4},
		{99, 4},
		{101, 3},
		{7, 2},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
	}
}

func TestMetricCardRowExactWidth(t *testing.T) {
	cards := []struct{ Label, Value, Caption string }{
		{"FIRE Number", "25.8M", "at retirement"},
		{"Savings", "1.0M", ""},
		{"Expenses", "1.0M", "4.2% inflation"},
	}

	row := MetricCardRow(cards, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("MetricCardRow width = %d, want 90", got)
	}
}

func TestSparklineShape(t *testing.T) {
	got := Sparkline([]float64{0, 50, 100}, theme.Active.Accent)
	if !strings.Contains(got, "▁▄█") {
		t.Errorf("Sparkline = %q, want to contain %q", got, "▁▄█")
	}
}

func TestBarChartNarrowFallsBackToSparkline(t *testing.T) {
	got := BarChart([]float64{1, 2, 3}, nil, 0, theme.Active.Accent, 10, 2)
	if strings.Contains(got, "│") {
		t.Errorf("narrow BarChart should fall back to sparkline, got %q", got)
	}
}

func TestBarChartDrawsTargetLine(t *testing.T) {
	got := BarChart([]float64{10, 20}, nil, 100, theme.Active.Accent, 40, 8)
	if !strings.Contains(got, "╌") {
		t.Errorf("BarChart with target above all bars should draw a threshold line:\n%s", got)
	}
}
