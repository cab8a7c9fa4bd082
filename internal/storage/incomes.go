package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

// AddIncome records a contribution for a month. A contribution for an
// existing month adds to the stored amount; one row per month is an
// invariant. The additive upsert is a single statement, so two concurrent
// contributions cannot both read the same old amount and lose an update.
// Month format validation is a boundary concern handled by the caller.
func (s *SQLiteStorage) AddIncome(ctx context.Context, month string, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(month, "month"); err != nil {
		return err
	}

	query := `
		INSERT INTO incomes (month, amount)
		VALUES (?, ?)
		ON CONFLICT(month) DO UPDATE SET amount = amount + excluded.amount`

	if _, err := s.db.ExecContext(ctx, query, month, amount); err != nil {
		return fmt.Errorf("failed to add income: %w", err)
	}

	slog.Info("recorded income", "month", month, "amount", amount)
	return nil
}

// GetIncomeForMonth returns the recorded income for a month, or 0 when no
// row exists. Absence is not an error.
func (s *SQLiteStorage) GetIncomeForMonth(ctx context.Context, month string) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(month, "month"); err != nil {
		return 0, err
	}

	var amount float64
	err := s.db.QueryRowContext(ctx, `SELECT amount FROM incomes WHERE month = ?`, month).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query income: %w", err)
	}

	return amount, nil
}

// GetAllIncomes returns every income row, most recent month first. The
// order is derived from the parsed year and month components rather than
// from the stored text, since MM-YYYY does not sort lexically across years.
func (s *SQLiteStorage) GetAllIncomes(ctx context.Context) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, month, amount FROM incomes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	type keyedIncome struct {
		key    time.Time
		income model.Income
	}

	var keyed []keyedIncome
	for rows.Next() {
		var income model.Income
		if err := rows.Scan(&income.ID, &income.Month, &income.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		// Rows only ever carry validated month keys; a row that somehow
		// does not parse sorts last.
		key, _ := model.ParseMonth(income.Month)
		keyed = append(keyed, keyedIncome{key: key, income: income})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incomes: %w", err)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key.After(keyed[j].key)
	})

	incomes := make([]model.Income, len(keyed))
	for i, k := range keyed {
		incomes[i] = k.income
	}
	return incomes, nil
}
