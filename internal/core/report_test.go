package core

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleReportInput() ReportInput {
	plan := SavingsPlan{Goal: decimal.NewFromInt(1200), HorizonMonths: 12}
	spend := AggregateSpending([]Transaction{
		tx("Miete", -800),
		tx("Essen", -250.50),
		tx("Lohn", 2000),
	})
	prefs := Preferences{"Miete": PriorityHigh, "Essen": PriorityMedium}
	return ReportInput{
		Plan:            plan,
		Spend:           spend,
		Recommendations: Recommend(spend, prefs),
		Fitness: AnalyzeFitness(FitnessData{
			DailySteps: []int{10000, 6000},
			Activities: []string{"Schwimmen", "Yoga"},
		}),
	}
}

func TestBuildMonthlyReportContent(t *testing.T) {
	report := BuildMonthlyReport(sampleReportInput())

	for _, want := range []string{
		"**Monatsbericht**",
		"**Sparziel:** 1200.00 Euro",
		"**Zeitraum:** 12 Monate",
		"**Monatliche Sparrate:** 100.00 Euro",
		"- **Miete**: 800.00 Euro",
		"- **Essen**: 250.50 Euro",
		"- **Miete**: Reduziere auf **400.00 Euro** (50% Einsparung)",
		"- **Essen**: Reduziere auf **175.35 Euro** (30% Einsparung)",
		"ist **8000**, weiter so!",
		"  * Schwimmen",
		"  * Yoga",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestBuildMonthlyReportBelowTargetNudge(t *testing.T) {
	in := sampleReportInput()
	in.Fitness = AnalyzeFitness(FitnessData{DailySteps: []int{4000, 5000}})
	report := BuildMonthlyReport(in)
	if !strings.Contains(report, "ist **4500**, versuche mehr zu gehen") {
		t.Fatalf("report missing below-target nudge:\n%s", report)
	}
}

func TestBuildMonthlyReportDeterministic(t *testing.T) {
	in := sampleReportInput()
	first := BuildMonthlyReport(in)
	second := BuildMonthlyReport(in)
	if first != second {
		t.Fatalf("report not byte-identical across runs")
	}
}
