package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

func TestSeedCategories(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	categories, err := store.GetCategories(context.Background())
	require.NoError(t, err)

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	assert.Equal(t, model.DefaultCategories, names, "seeds must come back in creation order")
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new category", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "Travel")
		require.NoError(t, err)
		assert.Equal(t, "Travel", cat.Name)
		assert.Positive(t, cat.ID)
	})

	t.Run("trims the name", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		cat, err := store.CreateCategory(ctx, "  Travel  ")
		require.NoError(t, err)
		assert.Equal(t, "Travel", cat.Name)
	})

	t.Run("rejects empty and whitespace-only names", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		before, err := store.GetCategories(ctx)
		require.NoError(t, err)

		for _, name := range []string{"", "   ", "\t"} {
			_, err := store.CreateCategory(ctx, name)
			assert.Error(t, err)
		}

		after, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before), "failed inserts must not create rows")
	})

	t.Run("existing name is an idempotent success", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		first, err := store.CreateCategory(ctx, "Travel")
		require.NoError(t, err)

		before, err := store.GetCategories(ctx)
		require.NoError(t, err)

		second, err := store.CreateCategory(ctx, "Travel")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		after, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before), "duplicate insert must not create a row")
	})

	t.Run("names are case-sensitively unique", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		lower, err := store.CreateCategory(ctx, "travel")
		require.NoError(t, err)
		upper, err := store.CreateCategory(ctx, "Travel")
		require.NoError(t, err)
		assert.NotEqual(t, lower.ID, upper.ID)
	})
}

func TestCategoryLookups(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	cat, err := store.GetCategoryByName(ctx, "Food")
	require.NoError(t, err)
	require.NotNil(t, cat)

	byID, err := store.GetCategoryByID(ctx, cat.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Food", byID.Name)

	// Absence is a normal result, not an error.
	missing, err := store.GetCategoryByName(ctx, "Yachts")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missingID, err := store.GetCategoryByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missingID)
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("missing category fails and changes nothing", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		before, err := store.GetCategories(ctx)
		require.NoError(t, err)

		err = store.DeleteCategory(ctx, "Yachts")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNotFound)

		after, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("reassigns expenses to the fallback category", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		food, err := store.GetCategoryByName(ctx, "Food")
		require.NoError(t, err)
		require.NotNil(t, food)

		expense := &model.Expense{Date: "15-03-2024", CategoryID: food.ID, Description: "lunch", Amount: 50}
		require.NoError(t, store.SaveExpense(ctx, expense))

		require.NoError(t, store.DeleteCategory(ctx, "Food"))

		// The expense survives under the fallback name, and the fallback
		// category itself persists.
		expenses, err := store.GetAllExpenses(ctx)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, model.FallbackCategory, expenses[0].CategoryName)

		fallback, err := store.GetCategoryByName(ctx, model.FallbackCategory)
		require.NoError(t, err)
		assert.NotNil(t, fallback)

		gone, err := store.GetCategoryByName(ctx, "Food")
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("recreates the fallback when it was deleted", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		require.NoError(t, store.DeleteCategory(ctx, model.FallbackCategory))

		missing, err := store.GetCategoryByName(ctx, model.FallbackCategory)
		require.NoError(t, err)
		require.Nil(t, missing)

		// The next deletion needs a fallback target and creates it.
		require.NoError(t, store.DeleteCategory(ctx, "Food"))

		fallback, err := store.GetCategoryByName(ctx, model.FallbackCategory)
		require.NoError(t, err)
		assert.NotNil(t, fallback)
	})

	t.Run("orphaned reference still displays as fallback", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		// An expense whose category row vanished entirely coalesces to the
		// fallback name at display time.
		expense := &model.Expense{Date: "15-03-2024", Description: "mystery", Amount: 10}
		require.NoError(t, store.SaveExpense(ctx, expense))

		expenses, err := store.GetAllExpenses(ctx)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, model.FallbackCategory, expenses[0].CategoryName)
	})
}
