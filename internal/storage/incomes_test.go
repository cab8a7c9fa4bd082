package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncome(t *testing.T) {
	ctx := context.Background()

	t.Run("contributions for one month accumulate", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.AddIncome(ctx, "03-2024", 1000))
		require.NoError(t, store.AddIncome(ctx, "03-2024", 500))

		amount, err := store.GetIncomeForMonth(ctx, "03-2024")
		require.NoError(t, err)
		assert.InDelta(t, 1500, amount, 1e-9)

		// One row per month is an invariant.
		incomes, err := store.GetAllIncomes(ctx)
		require.NoError(t, err)
		assert.Len(t, incomes, 1)
	})

	t.Run("separate months get separate rows", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.AddIncome(ctx, "03-2024", 1000))
		require.NoError(t, store.AddIncome(ctx, "04-2024", 750))

		incomes, err := store.GetAllIncomes(ctx)
		require.NoError(t, err)
		assert.Len(t, incomes, 2)
	})
}

func TestGetIncomeForMonth(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Absence is zero, not an error.
	amount, err := store.GetIncomeForMonth(ctx, "01-2030")
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestGetAllIncomesOrder(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Inserted out of order on purpose; lexical order over MM-YYYY would
	// put 12-2023 first.
	require.NoError(t, store.AddIncome(ctx, "12-2023", 100))
	require.NoError(t, store.AddIncome(ctx, "01-2024", 200))
	require.NoError(t, store.AddIncome(ctx, "11-2023", 300))
	require.NoError(t, store.AddIncome(ctx, "03-2024", 400))

	incomes, err := store.GetAllIncomes(ctx)
	require.NoError(t, err)
	require.Len(t, incomes, 4)

	months := make([]string, len(incomes))
	for i, income := range incomes {
		months[i] = income.Month
	}
	assert.Equal(t, []string{"03-2024", "01-2024", "12-2023", "11-2023"}, months)
}
