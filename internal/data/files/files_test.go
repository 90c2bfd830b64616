package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzassistent/internal/core"
	"finanzassistent/internal/data"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newStore(t *testing.T, transactions, preferences, fitness string) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(
		writeFile(t, dir, "bankdaten.json", transactions),
		writeFile(t, dir, "praeferenzen.json", preferences),
		writeFile(t, dir, "fitnessdaten.json", fitness),
	)
}

func TestTransactions(t *testing.T) {
	store := newStore(t,
		`[{"kategorie":"Miete","betrag":-800},{"kategorie":"Lohn","betrag":2000.5}]`,
		`{}`, `{}`,
	)

	txs, err := store.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Miete", txs[0].Category)
	assert.Equal(t, "-800", txs[0].Amount.String())
	assert.Equal(t, "2000.5", txs[1].Amount.String())
}

func TestTransactionsMissingKeyRejectsWholeLoad(t *testing.T) {
	store := newStore(t,
		`[{"kategorie":"Miete","betrag":-800},{"betrag":-10}]`,
		`{}`, `{}`,
	)

	_, err := store.Transactions(context.Background())
	require.ErrorIs(t, err, core.ErrMissingCategory)
	assert.Contains(t, err.Error(), "record 1")

	store = newStore(t, `[{"kategorie":"Miete"}]`, `{}`, `{}`)
	_, err = store.Transactions(context.Background())
	require.ErrorIs(t, err, core.ErrMissingAmount)
	assert.Contains(t, err.Error(), "record 0")
}

func TestTransactionsFileMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "fehlt.json"), "", "")
	_, err := store.Transactions(context.Background())
	require.ErrorIs(t, err, data.ErrSourceNotFound)
}

func TestTransactionsMalformedJSON(t *testing.T) {
	store := newStore(t, `[{"kategorie":`, `{}`, `{}`)
	_, err := store.Transactions(context.Background())
	require.ErrorIs(t, err, data.ErrSourceMalformed)
}

func TestPreferences(t *testing.T) {
	store := newStore(t, `[]`,
		`{"Prioritäten":{"Miete":"hoch","Essen":"mittel","Hobby":"niedrig"}}`,
		`{}`,
	)

	prefs, err := store.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.PriorityHigh, prefs.PriorityFor("Miete"))
	assert.Equal(t, core.PriorityMedium, prefs.PriorityFor("Essen"))
	assert.Equal(t, core.PriorityLow, prefs.PriorityFor("Unbekannt"))
}

func TestFitness(t *testing.T) {
	store := newStore(t, `[]`, `{}`,
		`{"Schritte_pro_Tag":[10000,6000],"Sportaktivitäten":["Schwimmen","Yoga"]}`,
	)

	fit, err := store.Fitness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{10000, 6000}, fit.DailySteps)
	assert.Equal(t, []string{"Schwimmen", "Yoga"}, fit.Activities)
}

func TestFitnessEmptyDocument(t *testing.T) {
	store := newStore(t, `[]`, `{}`, `{}`)
	fit, err := store.Fitness(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fit.DailySteps)
	assert.Empty(t, fit.Activities)
}
