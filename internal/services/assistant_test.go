package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzassistent/internal/core"
	"finanzassistent/internal/data"
	"finanzassistent/internal/data/memory"
)

// faultySource wraps a working source and fails selected reads.
type faultySource struct {
	data.Source
	txErr   error
	prefErr error
	fitErr  error
}

func (f faultySource) Transactions(ctx context.Context) ([]core.Transaction, error) {
	if f.txErr != nil {
		return nil, f.txErr
	}
	return f.Source.Transactions(ctx)
}

func (f faultySource) Preferences(ctx context.Context) (core.Preferences, error) {
	if f.prefErr != nil {
		return nil, f.prefErr
	}
	return f.Source.Preferences(ctx)
}

func (f faultySource) Fitness(ctx context.Context) (core.FitnessData, error) {
	if f.fitErr != nil {
		return core.FitnessData{}, f.fitErr
	}
	return f.Source.Fitness(ctx)
}

func plan(goal int64, horizon int) core.SavingsPlan {
	return core.SavingsPlan{Goal: decimal.NewFromInt(goal), HorizonMonths: horizon}
}

func TestDashboardHappyPath(t *testing.T) {
	svc := NewAssistantService(memory.NewSeeded(), nil)

	dash, err := svc.Dashboard(context.Background(), plan(1200, 12))
	require.NoError(t, err)

	assert.Equal(t, "100.00", dash.MonthlyRate.StringFixed(2))
	assert.Empty(t, dash.Warnings)
	require.NotEmpty(t, dash.Spend)
	assert.Equal(t, "Miete", dash.Spend[0].Category) // first-seen order
	require.Len(t, dash.Recommendations, len(dash.Spend))
	assert.Equal(t, 50, dash.Recommendations[0].DiscountPercent)
	assert.NotZero(t, dash.Fitness.AverageSteps)
}

func TestDashboardRejectsInvalidPlan(t *testing.T) {
	svc := NewAssistantService(memory.NewSeeded(), nil)

	_, err := svc.Dashboard(context.Background(), plan(1200, 0))
	require.ErrorIs(t, err, core.ErrInvalidHorizon)

	_, err = svc.Dashboard(context.Background(), plan(-1, 12))
	require.ErrorIs(t, err, core.ErrInvalidGoal)
}

func TestDashboardDegradesFailedSources(t *testing.T) {
	src := faultySource{
		Source: memory.NewSeeded(),
		txErr:  fmt.Errorf("%w: bankdaten.json", data.ErrSourceNotFound),
		fitErr: fmt.Errorf("%w: fitnessdaten.json: unexpected EOF", data.ErrSourceMalformed),
	}
	svc := NewAssistantService(src, nil)

	dash, err := svc.Dashboard(context.Background(), plan(1200, 12))
	require.NoError(t, err)

	assert.Empty(t, dash.Spend)
	assert.Empty(t, dash.Recommendations)
	assert.Zero(t, dash.Fitness.AverageSteps)
	assert.False(t, dash.Fitness.OnTarget)

	require.Len(t, dash.Warnings, 2)
	assert.Equal(t, "Bankdaten nicht gefunden.", dash.Warnings[0])
	assert.Equal(t, "Fehler beim Parsen der Fitnessdaten.", dash.Warnings[1])
}

func TestDashboardDegradesMissingPreferencesToLow(t *testing.T) {
	src := faultySource{
		Source:  memory.NewSeeded(),
		prefErr: fmt.Errorf("%w: praeferenzen.json", data.ErrSourceNotFound),
	}
	svc := NewAssistantService(src, nil)

	dash, err := svc.Dashboard(context.Background(), plan(1200, 12))
	require.NoError(t, err)

	require.Len(t, dash.Warnings, 1)
	for _, rec := range dash.Recommendations {
		assert.Equal(t, 10, rec.DiscountPercent, "without preferences every category defaults to low")
	}
}

func TestBuildReportDeterministicAndCarriesWarnings(t *testing.T) {
	src := faultySource{
		Source: memory.NewSeeded(),
		txErr:  fmt.Errorf("%w: bankdaten.json", data.ErrSourceNotFound),
	}
	svc := NewAssistantService(src, nil)

	first, warnings, err := svc.BuildReport(context.Background(), plan(1200, 12))
	require.NoError(t, err)
	require.Len(t, warnings, 1)

	second, _, err := svc.BuildReport(context.Background(), plan(1200, 12))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "**Monatsbericht**")
	assert.Contains(t, first, "**Monatliche Sparrate:** 100.00 Euro")
}
