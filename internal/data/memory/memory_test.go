package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzassistent/internal/core"
)

func TestSeededStoreReturnsData(t *testing.T) {
	store := NewSeeded()
	ctx := context.Background()

	txs, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, txs)

	prefs, err := store.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.PriorityHigh, prefs.PriorityFor("Miete"))

	fit, err := store.Fitness(ctx)
	require.NoError(t, err)
	assert.Len(t, fit.DailySteps, 7)
}

func TestReadsReturnCopies(t *testing.T) {
	store := New()
	store.SetFitness(core.FitnessData{DailySteps: []int{1000}, Activities: []string{"Yoga"}})

	fit, err := store.Fitness(context.Background())
	require.NoError(t, err)
	fit.DailySteps[0] = 9999

	again, err := store.Fitness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000, again.DailySteps[0])
}
