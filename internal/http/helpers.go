package http

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/services"
)

// formatEuro renders a decimal amount in the German notation used across
// the UI (e.g. "800,00 €").
func formatEuro(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

type (
	spendRow struct {
		Name   string
		Amount string
		Width  int // bar width in percent, scaled to the largest category
	}

	recommendationRow struct {
		Name      string
		Suggested string
		Percent   int
	}

	stepRow struct {
		Day   int
		Steps int
		Width int
	}

	fitnessView struct {
		Average    string
		HasData    bool
		OnTarget   bool
		Activities []string
		Steps      []stepRow
	}

	dashboardView struct {
		Goal            string
		Horizon         int
		MonthlyRate     string
		Total           string
		Rows            []spendRow
		Recommendations []recommendationRow
		Fitness         fitnessView
		Warnings        []string
	}
)

// buildDashboardView shapes one dashboard run for the templates: amounts
// formatted, bar widths scaled against the largest value.
func buildDashboardView(dash services.DashboardData) dashboardView {
	view := dashboardView{
		Goal:        dash.Plan.Goal.StringFixed(2),
		Horizon:     dash.Plan.HorizonMonths,
		MonthlyRate: formatEuro(dash.MonthlyRate),
		Total:       formatEuro(dash.Spend.Total()),
		Warnings:    dash.Warnings,
	}

	maxTotal := decimal.Zero
	for _, cs := range dash.Spend {
		if cs.Total.GreaterThan(maxTotal) {
			maxTotal = cs.Total
		}
	}
	for _, cs := range dash.Spend {
		view.Rows = append(view.Rows, spendRow{
			Name:   cs.Category,
			Amount: formatEuro(cs.Total),
			Width:  barWidth(cs.Total, maxTotal),
		})
	}

	for _, rec := range dash.Recommendations {
		view.Recommendations = append(view.Recommendations, recommendationRow{
			Name:      rec.Category,
			Suggested: formatEuro(rec.Suggested),
			Percent:   rec.DiscountPercent,
		})
	}

	view.Fitness = fitnessView{
		Average:    strconv.FormatFloat(dash.Fitness.AverageSteps, 'f', 0, 64),
		HasData:    len(dash.StepSeries) > 0,
		OnTarget:   dash.Fitness.OnTarget,
		Activities: dash.Fitness.Activities,
	}
	maxSteps := 0
	for _, steps := range dash.StepSeries {
		if steps > maxSteps {
			maxSteps = steps
		}
	}
	for i, steps := range dash.StepSeries {
		width := 0
		if maxSteps > 0 {
			width = clampWidth((steps*100 + maxSteps/2) / maxSteps)
		}
		view.Fitness.Steps = append(view.Fitness.Steps, stepRow{Day: i + 1, Steps: steps, Width: width})
	}

	return view
}

// barWidth converts an amount to a rounded percentage of the largest
// category, keeping tiny values visible.
func barWidth(amount, max decimal.Decimal) int {
	if max.IsZero() || !amount.IsPositive() {
		return 0
	}
	width := int(amount.Mul(hundred).DivRound(max, 0).IntPart())
	return clampWidth(width)
}

func clampWidth(width int) int {
	if width > 0 && width < 2 {
		return 2
	}
	if width > 100 {
		return 100
	}
	return width
}

var hundred = decimal.NewFromInt(100)
