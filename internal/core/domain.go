package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

// External priority labels as they appear in the preferences JSON.
const (
	PriorityHigh   Priority = "hoch"
	PriorityMedium Priority = "mittel"
	PriorityLow    Priority = "niedrig"
)

type (
	Priority string

	// Transaction is a single bank ledger entry. A negative amount is an
	// expense; non-negative amounts are ignored by the aggregation on
	// purpose (income is not tracked).
	Transaction struct {
		Category string
		Amount   decimal.Decimal
	}

	// CategorySpend is the accumulated expense total for one category.
	CategorySpend struct {
		Category string
		Total    decimal.Decimal
	}

	// SpendByCategory keeps categories in first-seen order so that
	// recommendations and report lines come out in a reproducible order.
	SpendByCategory []CategorySpend

	// Preferences maps a category to its user-declared priority.
	Preferences map[string]Priority

	// FitnessData mirrors the fitness tracker export: one step count per
	// day plus the declared sport activities.
	FitnessData struct {
		DailySteps []int
		Activities []string
	}

	// SavingsPlan is the user's goal amount and the horizon in months over
	// which it should be reached.
	SavingsPlan struct {
		Goal          decimal.Decimal
		HorizonMonths int
	}

	Recommendation struct {
		Category        string
		Suggested       decimal.Decimal
		DiscountPercent int
	}

	FitnessSummary struct {
		AverageSteps float64
		OnTarget     bool
		Activities   []string
	}
)

var (
	ErrInvalidGoal     = errors.New("savings goal must not be negative")
	ErrInvalidHorizon  = errors.New("horizon must be at least one month")
	ErrMissingCategory = errors.New("transaction without category")
	ErrMissingAmount   = errors.New("transaction without amount")
)

// PriorityFor returns the configured priority for a category, defaulting
// to low when the category has no entry.
func (p Preferences) PriorityFor(category string) Priority {
	if prio, ok := p[category]; ok {
		return prio
	}
	return PriorityLow
}

// Validate rejects plans before any computation touches them. A zero
// horizon in particular must never reach the monthly-rate division.
func (sp SavingsPlan) Validate() error {
	if sp.Goal.IsNegative() {
		return ErrInvalidGoal
	}
	if sp.HorizonMonths < 1 {
		return ErrInvalidHorizon
	}
	return nil
}

// MonthlyRate returns goal divided by horizon. Callers must have run
// Validate first; the horizon is assumed to be >= 1 here.
func (sp SavingsPlan) MonthlyRate() decimal.Decimal {
	return sp.Goal.Div(decimal.NewFromInt(int64(sp.HorizonMonths)))
}

// Total sums all category totals.
func (s SpendByCategory) Total() decimal.Decimal {
	total := decimal.Zero
	for _, cs := range s {
		total = total.Add(cs.Total)
	}
	return total
}
