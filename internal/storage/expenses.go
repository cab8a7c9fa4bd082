package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

// SaveExpense persists a new expense row and fills in its generated id.
// Expenses are append-only; there is no update operation.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	var categoryID sql.NullInt64
	if expense.CategoryID > 0 {
		categoryID = sql.NullInt64{Int64: expense.CategoryID, Valid: true}
	}

	query := `
		INSERT INTO expenses (date, category_id, description, amount)
		VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, expense.Date, categoryID, expense.Description, expense.Amount)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get expense ID: %w", err)
	}
	expense.ID = id

	slog.Debug("saved expense", "id", id, "date", expense.Date, "amount", expense.Amount)
	return nil
}

// GetAllExpenses returns every expense with its display category name,
// newest first. Expenses whose category was deleted show under the
// fallback category.
func (s *SQLiteStorage) GetAllExpenses(ctx context.Context) ([]model.ExpenseDetail, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT e.id, COALESCE(c.name, ?) AS category, e.description, e.amount, e.date
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id`

	return s.queryExpenseDetails(ctx, query, model.FallbackCategory)
}

// GetExpensesForMonth returns the expenses whose date falls in the given
// MM-YYYY month, newest first.
func (s *SQLiteStorage) GetExpensesForMonth(ctx context.Context, month string) ([]model.ExpenseDetail, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(month, "month"); err != nil {
		return nil, err
	}

	query := `
		SELECT e.id, COALESCE(c.name, ?) AS category, e.description, e.amount, e.date
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE substr(e.date, 4, 7) = ?`

	return s.queryExpenseDetails(ctx, query, model.FallbackCategory, month)
}

func (s *SQLiteStorage) queryExpenseDetails(ctx context.Context, query string, args ...any) ([]model.ExpenseDetail, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var details []model.ExpenseDetail
	for rows.Next() {
		var d model.ExpenseDetail
		var description sql.NullString
		if err := rows.Scan(&d.ID, &d.CategoryName, &description, &d.Amount, &d.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		d.Description = description.String
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	sortNewestFirst(details)
	return details, nil
}

// sortNewestFirst orders expenses by parsed date descending, with id
// descending as the tie-break so same-day entries list most recently
// inserted first. Stored dates never fail to parse; a row that somehow
// does not parse sorts last.
func sortNewestFirst(details []model.ExpenseDetail) {
	type keyedDetail struct {
		key    time.Time
		detail model.ExpenseDetail
	}

	keyed := make([]keyedDetail, len(details))
	for i, d := range details {
		key, _ := model.ParseDate(d.Date)
		keyed[i] = keyedDetail{key: key, detail: d}
	}

	sort.Slice(keyed, func(i, j int) bool {
		if !keyed[i].key.Equal(keyed[j].key) {
			return keyed[i].key.After(keyed[j].key)
		}
		return keyed[i].detail.ID > keyed[j].detail.ID
	})

	for i, k := range keyed {
		details[i] = k.detail
	}
}

// GetMonthTotal returns the sum of expense amounts for a MM-YYYY month,
// or 0 when the month has no expenses.
func (s *SQLiteStorage) GetMonthTotal(ctx context.Context, month string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(month, "month"); err != nil {
		return 0, err
	}

	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE substr(date, 4, 7) = ?`
	if err := s.db.QueryRowContext(ctx, query, month).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to query month total: %w", err)
	}

	return total, nil
}

// GetCategorySummary returns per-category spending totals across all time,
// largest first.
func (s *SQLiteStorage) GetCategorySummary(ctx context.Context) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT COALESCE(c.name, ?) AS category, SUM(e.amount) AS total
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		GROUP BY category
		ORDER BY total DESC`

	return s.queryCategoryTotals(ctx, query, model.FallbackCategory)
}

// GetCategorySummaryForMonth returns per-category spending totals for one
// MM-YYYY month, largest first.
func (s *SQLiteStorage) GetCategorySummaryForMonth(ctx context.Context, month string) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(month, "month"); err != nil {
		return nil, err
	}

	query := `
		SELECT COALESCE(c.name, ?) AS category, SUM(e.amount) AS total
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE substr(e.date, 4, 7) = ?
		GROUP BY category
		ORDER BY total DESC`

	return s.queryCategoryTotals(ctx, query, model.FallbackCategory, month)
}

func (s *SQLiteStorage) queryCategoryTotals(ctx context.Context, query string, args ...any) ([]model.CategoryTotal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	var totals []model.CategoryTotal
	for rows.Next() {
		var t model.CategoryTotal
		if err := rows.Scan(&t.CategoryName, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category summary: %w", err)
	}

	return totals, nil
}
