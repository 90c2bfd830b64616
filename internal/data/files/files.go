// Package files reads the three JSON documents (bank transactions, user
// preferences, fitness tracker export) from disk. It is the production
// backend; missing or malformed files surface as typed errors so the
// service layer can degrade that one source and keep going.
package files

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/core"
	"finanzassistent/internal/data"
)

type Store struct {
	transactionsPath string
	preferencesPath  string
	fitnessPath      string
}

func New(transactionsPath, preferencesPath, fitnessPath string) *Store {
	return &Store{
		transactionsPath: transactionsPath,
		preferencesPath:  preferencesPath,
		fitnessPath:      fitnessPath,
	}
}

// Pointer fields so a missing key is distinguishable from a zero value.
// A record with a missing key rejects the whole transactions load.
type transactionRecord struct {
	Kategorie *string          `json:"kategorie"`
	Betrag    *decimal.Decimal `json:"betrag"`
}

type preferencesDocument struct {
	Priorities map[string]string `json:"Prioritäten"`
}

type fitnessDocument struct {
	StepsPerDay []int    `json:"Schritte_pro_Tag"`
	Activities  []string `json:"Sportaktivitäten"`
}

func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	var records []transactionRecord
	if err := readJSON(s.transactionsPath, &records); err != nil {
		return nil, err
	}

	txs := make([]core.Transaction, 0, len(records))
	for i, rec := range records {
		if rec.Kategorie == nil || *rec.Kategorie == "" {
			return nil, fmt.Errorf("%s: record %d: %w", s.transactionsPath, i, core.ErrMissingCategory)
		}
		if rec.Betrag == nil {
			return nil, fmt.Errorf("%s: record %d: %w", s.transactionsPath, i, core.ErrMissingAmount)
		}
		txs = append(txs, core.Transaction{Category: *rec.Kategorie, Amount: *rec.Betrag})
	}
	return txs, nil
}

func (s *Store) Preferences(_ context.Context) (core.Preferences, error) {
	var doc preferencesDocument
	if err := readJSON(s.preferencesPath, &doc); err != nil {
		return nil, err
	}

	prefs := make(core.Preferences, len(doc.Priorities))
	for category, label := range doc.Priorities {
		prefs[category] = core.Priority(label)
	}
	return prefs, nil
}

func (s *Store) Fitness(_ context.Context) (core.FitnessData, error) {
	var doc fitnessDocument
	if err := readJSON(s.fitnessPath, &doc); err != nil {
		return core.FitnessData{}, err
	}
	return core.FitnessData{DailySteps: doc.StepsPerDay, Activities: doc.Activities}, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", data.ErrSourceNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", data.ErrSourceMalformed, path, err)
	}
	return nil
}
