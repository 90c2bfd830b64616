package core

import (
	"fmt"
	"strings"
)

// ReportInput collects everything the monthly report is built from.
type ReportInput struct {
	Plan            SavingsPlan
	Spend           SpendByCategory
	Recommendations []Recommendation
	Fitness         FitnessSummary
}

// BuildMonthlyReport renders the plain-text monthly report. The output is
// deterministic for identical inputs: no timestamps, and all sections
// follow the insertion order of the spend aggregation. The plan must have
// been validated by the caller (HorizonMonths >= 1).
func BuildMonthlyReport(in ReportInput) string {
	var b strings.Builder

	b.WriteString("**Monatsbericht**\n")
	b.WriteString("=================\n\n")
	fmt.Fprintf(&b, "**Sparziel:** %s Euro\n", in.Plan.Goal.StringFixed(2))
	fmt.Fprintf(&b, "**Zeitraum:** %d Monate\n", in.Plan.HorizonMonths)
	fmt.Fprintf(&b, "**Monatliche Sparrate:** %s Euro\n\n", in.Plan.MonthlyRate().StringFixed(2))
	b.WriteString("---\n\n")

	b.WriteString("**Ausgaben pro Kategorie:**\n")
	for _, cs := range in.Spend {
		fmt.Fprintf(&b, "- **%s**: %s Euro\n", cs.Category, cs.Total.StringFixed(2))
	}

	b.WriteString("\n**Empfehlungen zur Einsparung basierend auf deinen Präferenzen:**\n")
	for _, rec := range in.Recommendations {
		fmt.Fprintf(&b, "- **%s**: Reduziere auf **%s Euro** (%d%% Einsparung)\n",
			rec.Category, rec.Suggested.StringFixed(2), rec.DiscountPercent)
	}

	b.WriteString("\n**Empfehlungen basierend auf deinen Fitness-Daten:**\n")
	if in.Fitness.OnTarget {
		fmt.Fprintf(&b, "- Dein durchschnittlicher Schrittzahl ist **%.0f**, weiter so!\n", in.Fitness.AverageSteps)
	} else {
		fmt.Fprintf(&b, "- Dein durchschnittlicher Schrittzahl ist **%.0f**, versuche mehr zu gehen, um Gesundheit und eventuell Kosten zu sparen.\n", in.Fitness.AverageSteps)
	}
	b.WriteString("- **Sportaktivitäten**, die du kostengünstig gestalten kannst:\n")
	for _, activity := range in.Fitness.Activities {
		fmt.Fprintf(&b, "  * %s\n", activity)
	}

	return b.String()
}
