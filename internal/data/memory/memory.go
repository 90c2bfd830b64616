// Package memory is an in-memory data source used by tests and by the
// zero-config default run.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/core"
)

type Store struct {
	mu    sync.Mutex
	txs   []core.Transaction
	prefs core.Preferences
	fit   core.FitnessData
}

func New() *Store {
	return &Store{prefs: core.Preferences{}}
}

// NewSeeded returns a store with a small demo dataset so the dashboard
// renders something meaningful without any files on disk.
func NewSeeded() *Store {
	return &Store{
		txs: []core.Transaction{
			{Category: "Miete", Amount: decimal.NewFromInt(-800)},
			{Category: "Lebensmittel", Amount: decimal.NewFromFloat(-250.50)},
			{Category: "Freizeit", Amount: decimal.NewFromFloat(-120.75)},
			{Category: "Lohn", Amount: decimal.NewFromInt(2400)},
		},
		prefs: core.Preferences{
			"Miete":        core.PriorityHigh,
			"Lebensmittel": core.PriorityMedium,
		},
		fit: core.FitnessData{
			DailySteps: []int{9500, 7200, 8100, 10400, 6800, 7900, 8800},
			Activities: []string{"Schwimmen", "Joggen", "Yoga"},
		},
	}
}

func (s *Store) SetTransactions(txs []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]core.Transaction(nil), txs...)
}

func (s *Store) SetPreferences(prefs core.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = make(core.Preferences, len(prefs))
	for k, v := range prefs {
		s.prefs[k] = v
	}
}

func (s *Store) SetFitness(fit core.FitnessData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fit = core.FitnessData{
		DailySteps: append([]int(nil), fit.DailySteps...),
		Activities: append([]string(nil), fit.Activities...),
	}
}

func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

func (s *Store) Preferences(_ context.Context) (core.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := make(core.Preferences, len(s.prefs))
	for k, v := range s.prefs {
		prefs[k] = v
	}
	return prefs, nil
}

func (s *Store) Fitness(_ context.Context) (core.FitnessData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.FitnessData{
		DailySteps: append([]int(nil), s.fit.DailySteps...),
		Activities: append([]string(nil), s.fit.Activities...),
	}, nil
}
