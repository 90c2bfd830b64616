// Package services wires the data sources to the domain core. It is the
// single place where a failed data source is degraded to an empty default
// with a user-visible warning, so both the HTTP dashboard and the report
// CLI behave the same way.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/core"
	"finanzassistent/internal/data"
	"finanzassistent/internal/log"
)

// AssistantService orchestrates one dashboard run: load, aggregate,
// recommend, analyze.
type AssistantService struct {
	source data.Source
	logger *log.Logger
}

func NewAssistantService(source data.Source, logger *log.Logger) *AssistantService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &AssistantService{
		source: source,
		logger: logger.WithComponent(log.ComponentReport),
	}
}

// DashboardData is everything a single run derives from the three inputs.
type DashboardData struct {
	Plan            core.SavingsPlan
	MonthlyRate     decimal.Decimal
	Spend           core.SpendByCategory
	Recommendations []core.Recommendation
	Fitness         core.FitnessSummary

	// StepSeries is the raw daily step sequence, kept for the step chart
	// in the dashboard.
	StepSeries []int

	// Warnings carries one user-visible message per data source that had
	// to be degraded to an empty default.
	Warnings []string
}

// Dashboard validates the plan, loads whatever data is available and runs
// the aggregation pipeline. An invalid plan halts the run before any
// computation; a failed data source only produces a warning.
func (s *AssistantService) Dashboard(ctx context.Context, plan core.SavingsPlan) (DashboardData, error) {
	if err := plan.Validate(); err != nil {
		return DashboardData{}, err
	}

	result := DashboardData{Plan: plan, MonthlyRate: plan.MonthlyRate()}

	txs, err := s.source.Transactions(ctx)
	if err != nil {
		s.warn(ctx, &result, "Bankdaten", err)
		txs = nil
	}

	prefs, err := s.source.Preferences(ctx)
	if err != nil {
		s.warn(ctx, &result, "Präferenzen", err)
		prefs = core.Preferences{}
	}

	fitness, err := s.source.Fitness(ctx)
	if err != nil {
		s.warn(ctx, &result, "Fitnessdaten", err)
		fitness = core.FitnessData{}
	}

	result.Spend = core.AggregateSpending(txs)
	result.Recommendations = core.Recommend(result.Spend, prefs)
	result.Fitness = core.AnalyzeFitness(fitness)
	result.StepSeries = fitness.DailySteps

	s.logger.DebugContext(ctx, "Dashboard computed",
		log.FieldCategories, len(result.Spend),
		log.FieldWarnings, len(result.Warnings))

	return result, nil
}

// BuildReport produces the monthly report text plus the warnings of the
// underlying run.
func (s *AssistantService) BuildReport(ctx context.Context, plan core.SavingsPlan) (string, []string, error) {
	dash, err := s.Dashboard(ctx, plan)
	if err != nil {
		return "", nil, err
	}

	report := core.BuildMonthlyReport(core.ReportInput{
		Plan:            dash.Plan,
		Spend:           dash.Spend,
		Recommendations: dash.Recommendations,
		Fitness:         dash.Fitness,
	})
	return report, dash.Warnings, nil
}

func (s *AssistantService) warn(ctx context.Context, result *DashboardData, source string, err error) {
	s.logger.WarnContext(ctx, "Data source degraded to empty default",
		log.FieldSource, source, log.FieldError, err)
	result.Warnings = append(result.Warnings, warningFor(source, err))
}

// warningFor phrases the degradation for the UI.
func warningFor(source string, err error) string {
	switch {
	case errors.Is(err, data.ErrSourceNotFound):
		return fmt.Sprintf("%s nicht gefunden.", source)
	case errors.Is(err, data.ErrSourceMalformed):
		return fmt.Sprintf("Fehler beim Parsen der %s.", source)
	default:
		return fmt.Sprintf("%s konnten nicht geladen werden.", source)
	}
}
