package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
	"github.com/yunz06/quan-li-chi-tieu/internal/storage"
)

func createTestExporter(t *testing.T) (*Exporter, *storage.SQLiteStorage, string) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))

	dir := t.TempDir()
	return NewExporter(store, dir), store, dir
}

func seedMonth(t *testing.T, store *storage.SQLiteStorage) {
	t.Helper()
	ctx := context.Background()

	cat, err := store.GetCategoryByName(ctx, "Food")
	require.NoError(t, err)
	require.NotNil(t, cat)

	require.NoError(t, store.AddIncome(ctx, "03-2024", 1000))
	require.NoError(t, store.SaveExpense(ctx, &model.Expense{
		Date: "15-03-2024", CategoryID: cat.ID, Description: "lunch", Amount: 50,
	}))
	require.NoError(t, store.SaveExpense(ctx, &model.Expense{
		Date: "20-03-2024", CategoryID: cat.ID, Description: "groceries", Amount: 120,
	}))
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("empty month fails with a no-data error", func(t *testing.T) {
		exporter, _, _ := createTestExporter(t)

		_, err := exporter.Export(ctx, "01-2030")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNoData)
	})

	t.Run("rejects a bad month key", func(t *testing.T) {
		exporter, _, _ := createTestExporter(t)

		_, err := exporter.Export(ctx, "2024-03")
		assert.ErrorIs(t, err, common.ErrInvalidMonth)
	})

	t.Run("income alone is enough to export", func(t *testing.T) {
		exporter, store, _ := createTestExporter(t)
		require.NoError(t, store.AddIncome(ctx, "05-2024", 1000))

		path, err := exporter.Export(ctx, "05-2024")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("writes the report sheet", func(t *testing.T) {
		exporter, store, dir := createTestExporter(t)
		seedMonth(t, store)

		path, err := exporter.Export(ctx, "03-2024")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "chi-tieu-03-2024.xlsx"), path)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		sheet := "Month 03-2024"

		title, err := f.GetCellValue(sheet, "A1")
		require.NoError(t, err)
		assert.Equal(t, "EXPENSE REPORT 03-2024", title)

		header, err := f.GetCellValue(sheet, "B5")
		require.NoError(t, err)
		assert.Equal(t, "Category", header)

		// Expense rows are newest first.
		newest, err := f.GetCellValue(sheet, "E6")
		require.NoError(t, err)
		assert.Equal(t, "20-03-2024", newest)
		older, err := f.GetCellValue(sheet, "E7")
		require.NoError(t, err)
		assert.Equal(t, "15-03-2024", older)

		// Footer: total spent and balance.
		label, err := f.GetCellValue(sheet, "C9")
		require.NoError(t, err)
		assert.Equal(t, "TOTAL SPENT", label)
		total, err := f.GetCellValue(sheet, "D9")
		require.NoError(t, err)
		assert.Equal(t, "170", total)

		label, err = f.GetCellValue(sheet, "C10")
		require.NoError(t, err)
		assert.Equal(t, "BALANCE", label)
		balance, err := f.GetCellValue(sheet, "D10")
		require.NoError(t, err)
		assert.Equal(t, "830", balance)
	})

	t.Run("never overwrites an existing report", func(t *testing.T) {
		exporter, store, dir := createTestExporter(t)
		seedMonth(t, store)

		first, err := exporter.Export(ctx, "03-2024")
		require.NoError(t, err)
		second, err := exporter.Export(ctx, "03-2024")
		require.NoError(t, err)
		third, err := exporter.Export(ctx, "03-2024")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, filepath.Join(dir, "chi-tieu-03-2024(1).xlsx"), second)
		assert.Equal(t, filepath.Join(dir, "chi-tieu-03-2024(2).xlsx"), third)
		assert.FileExists(t, first)
	})
}
