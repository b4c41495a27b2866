package tui

import (
	"fmt"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/model"
	"github.com/prajeet74/fire-calculator/internal/tui/components"
	"github.com/prajeet74/fire-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.CurrencySymbol
	m := a.metrics
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Caption string }{
		{"FIRE Number", cur + cli.FormatCompact(m.RetirementFireNumber), "at retirement"},
		{"Current Savings", cur + cli.FormatCompact(a.plan.CurrentSavings), ""},
		{"Annual Savings", cur + cli.FormatCompact(m.AnnualContribution), fmt.Sprintf("%.0f%% of income", a.plan.SavingsRatePct)},
		{"Annual Expenses", cur + cli.FormatCompact(a.agg.TotalAnnualCost), cli.FormatPercent(a.agg.WeightedInflationPct) + " inflation"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: progress toward today's FIRE number
	if len(a.result.Points) > 0 && a.result.Points[0].FireNumber > 0 {
		pct := a.plan.CurrentSavings / a.result.Points[0].FireNumber
		innerW := components.CardInnerWidth(cw)
		barW := innerW - 30
		if barW < 10 {
			barW = 10
		}
		body := components.GoalBar("Toward today's target", pct, 22, barW)
		b.WriteString(components.ContentCard("FIRE Progress", body, cw))
		b.WriteString("\n")
	}

	// Row 3: Outlook + Plan summary
	halves := components.LayoutRow(cw, 2)

	goodStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var outlook strings.Builder
	switch m.Outlook {
	case model.OutlookAchievedNow:
		outlook.WriteString(goodStyle.Render("Your savings already cover retirement."))
	case model.OutlookEarly:
		age, _ := a.result.FireAge()
		outlook.WriteString(goodStyle.Render(fmt.Sprintf("On pace to reach FIRE at age %d,", age)))
		outlook.WriteString("\n")
		outlook.WriteString(goodStyle.Render(fmt.Sprintf("%d years ahead of plan.", a.plan.RetirementAge-age)))
	case model.OutlookOnTrack:
		outlook.WriteString(goodStyle.Render(fmt.Sprintf("On track to retire at %d.", a.plan.RetirementAge)))
	default:
		outlook.WriteString(warnStyle.Render(fmt.Sprintf("Not on pace to reach FIRE by %d.", a.plan.RetirementAge)))
		if m.YearsToSaveNoGrowth != nil {
			outlook.WriteString("\n")
			outlook.WriteString(labelStyle.Render(
				fmt.Sprintf("Roughly %s of saving needed, before growth.", cli.FormatYears(*m.YearsToSaveNoGrowth))))
		}
	}

	planRows := []struct{ label, value string }{
		{"Age Range", fmt.Sprintf("%d → %d", a.plan.CurrentAge, a.plan.RetirementAge)},
		{"Investment Return", cli.FormatPercent(a.plan.InvestmentReturnPct)},
		{"Safe Withdrawal Rate", cli.FormatPercent(a.plan.SafeWithdrawalRatePct)},
		{"Retirement Expenses", cli.FormatMoney(cur, m.RetirementExpenses)},
		{"Horizon", fmt.Sprintf("%d years", a.plan.Horizon())},
	}
	var planBody strings.Builder
	for _, r := range planRows {
		planBody.WriteString(labelStyle.Render(fmt.Sprintf("%-21s ", r.label)))
		planBody.WriteString(valueStyle.Render(r.value))
		planBody.WriteString("\n")
	}

	outlookCard := components.ContentCard("Outlook", outlook.String(), halves[0])
	planCard := components.ContentCard("Plan", strings.TrimRight(planBody.String(), "\n"), halves[1])
	b.WriteString(components.CardRow([]string{outlookCard, planCard}))

	return b.String()
}
