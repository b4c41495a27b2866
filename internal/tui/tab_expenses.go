package tui

import (
	"fmt"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/tui/components"
	"github.com/prajeet74/fire-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.CurrencySymbol
	cats := engine.Categories(a.plan)
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	innerW := components.CardInnerWidth(cw)

	nameW := 10
	amountW := 10
	for _, c := range cats {
		if len(c.Name) > nameW {
			nameW = len(c.Name)
		}
		if w := len(cli.FormatMoney(cur, c.AnnualAmount)); w > amountW {
			amountW = w
		}
	}

	maxAmount := 0.0
	for _, c := range cats {
		if c.AnnualAmount > maxAmount {
			maxAmount = c.AnnualAmount
		}
	}

	// name + space + amount + space + bar + space + inflation
	barMax := innerW - nameW - amountW - 10
	if barMax < 1 {
		barMax = 1
	}

	var body strings.Builder
	for _, c := range cats {
		barLen := 0
		if maxAmount > 0 {
			barLen = int(c.AnnualAmount / maxAmount * float64(barMax))
		}
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameW, c.Name)))
		body.WriteString(amountStyle.Render(fmt.Sprintf("%*s ", amountW, cli.FormatMoney(cur, c.AnnualAmount))))
		body.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		body.WriteString(pctStyle.Render(fmt.Sprintf(" %s", cli.FormatPercent(c.InflationPct))))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(totalStyle.Render(fmt.Sprintf("%-*s %*s",
		nameW, "TOTAL",
		amountW, cli.FormatMoney(cur, a.agg.TotalAnnualCost))))
	body.WriteString(pctStyle.Render(fmt.Sprintf("  weighted inflation %s", cli.FormatPercent(a.agg.WeightedInflationPct))))

	b.WriteString(components.ContentCard("Annual Cost by Category", body.String(), cw))
	b.WriteString("\n")

	// Expense trajectory: projected annual expenses over the horizon
	pts := a.result.Points
	if len(pts) > 1 {
		vals := make([]float64, len(pts))
		for i, p := range pts {
			vals[i] = p.AnnualExpenses
		}
		spark := components.Sparkline(vals, t.Magenta)
		caption := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(
			fmt.Sprintf("%s today → %s at retirement, each category compounding at its own rate",
				cur+cli.FormatCompact(vals[0]),
				cur+cli.FormatCompact(vals[len(vals)-1])))
		b.WriteString(components.ContentCard("Expense Growth", spark+"\n"+caption, cw))
	}

	return b.String()
}
