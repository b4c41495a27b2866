package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prajeet74/fire-calculator/internal/cli"
	"github.com/prajeet74/fire-calculator/internal/tui/components"
	"github.com/prajeet74/fire-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectionTab(cw, contentH int) string {
	t := theme.Active
	cur := a.cfg.General.CurrencySymbol
	pts := a.result.Points
	var b strings.Builder

	if len(pts) == 0 {
		return components.ContentCard("Projection", "No projection available.", cw)
	}

	vals := make([]float64, len(pts))
	labels := make([]string, len(pts))
	for i, p := range pts {
		vals[i] = p.Savings
		labels[i] = strconv.Itoa(p.Age)
	}

	chartH := contentH - 12
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 14 {
		chartH = 14
	}

	target := a.metrics.RetirementFireNumber
	chart := components.BarChart(vals, labels, target, t.Blue, components.CardInnerWidth(cw), chartH)
	title := fmt.Sprintf("Savings by Age  (╌ FIRE number at retirement: %s%s)", cur, cli.FormatCompact(target))
	b.WriteString(components.ContentCard(title, chart, cw))
	b.WriteString("\n")

	goodStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	// Milestones: every fifth year plus the final one
	var ms strings.Builder
	ms.WriteString(labelStyle.Render(fmt.Sprintf("%-5s %14s %14s", "Age", "Savings", "FIRE Number")))
	ms.WriteString("\n")
	for i, p := range pts {
		if i%5 != 0 && i != len(pts)-1 {
			continue
		}
		mark := "  "
		if p.FireAchieved {
			mark = goodStyle.Render(" ✓")
		}
		ms.WriteString(valueStyle.Render(fmt.Sprintf("%-5d %14s %14s",
			p.Age,
			cli.FormatMoney(cur, p.Savings),
			cli.FormatMoney(cur, p.FireNumber))))
		ms.WriteString(mark)
		ms.WriteString("\n")
	}

	if age, ok := a.result.FireAge(); ok {
		ms.WriteString("\n")
		ms.WriteString(goodStyle.Render(fmt.Sprintf("FIRE achieved at age %d.", age)))
	} else {
		ms.WriteString("\n")
		ms.WriteString(warnStyle.Render(fmt.Sprintf("Not achieved by age %d.", a.plan.RetirementAge)))
	}

	b.WriteString(components.ContentCard("Milestones", strings.TrimRight(ms.String(), "\n"), cw))

	return b.String()
}
