// Package ledger implements the bookkeeping core on top of the storage
// layer: recording income and expenses, and the derived budget check.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
	"github.com/yunz06/quan-li-chi-tieu/internal/service"
)

// BudgetThreshold is the expense-to-income ratio above which a budget
// warning fires.
const BudgetThreshold = 0.9

// Ledger coordinates storage operations and user-facing notifications.
type Ledger struct {
	store    service.Storage
	notifier service.Notifier
}

// New creates a ledger backed by the given storage and notifier.
func New(store service.Storage, notifier service.Notifier) *Ledger {
	return &Ledger{
		store:    store,
		notifier: notifier,
	}
}

// AddIncome validates the month key and records a contribution. A
// contribution for an existing month adds to the stored amount.
func (l *Ledger) AddIncome(ctx context.Context, month string, amount float64) error {
	month = strings.TrimSpace(month)
	if _, err := model.ParseMonth(month); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: income cannot be negative", common.ErrInvalidAmount)
	}

	if err := l.store.AddIncome(ctx, month, amount); err != nil {
		return err
	}

	l.notifier.Confirm(fmt.Sprintf("Recorded %.2f income for %s", amount, month))
	return nil
}

// AddExpense validates the date, persists the expense, and re-runs the
// budget check for the expense's month. The saved expense is returned with
// its generated id.
func (l *Ledger) AddExpense(ctx context.Context, date string, categoryID int64, description string, amount float64) (*model.Expense, error) {
	date = strings.TrimSpace(date)
	day, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: expense cannot be negative", common.ErrInvalidAmount)
	}

	expense := &model.Expense{
		Date:        date,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
	}
	if err := l.store.SaveExpense(ctx, expense); err != nil {
		return nil, err
	}

	l.notifier.Confirm(fmt.Sprintf("Recorded expense #%d: %.2f on %s", expense.ID, expense.Amount, expense.Date))

	// The expense is already persisted; a failed check only costs the
	// warning, so it is logged rather than surfaced.
	month := model.MonthKey(day)
	if _, err := l.CheckBudget(ctx, month); err != nil {
		slog.Warn("budget check failed", "month", month, "error", err)
	}

	return expense, nil
}

// CheckBudget recomputes the spending ratio for a month. It returns the
// alert (nil when spending is within budget) and delivers it through the
// notifier. Months with no recorded income never alert, regardless of
// spending. The check is stateless and safe to re-run on demand.
func (l *Ledger) CheckBudget(ctx context.Context, month string) (*model.BudgetAlert, error) {
	month = strings.TrimSpace(month)
	if _, err := model.ParseMonth(month); err != nil {
		return nil, err
	}

	total, err := l.store.GetMonthTotal(ctx, month)
	if err != nil {
		return nil, err
	}
	income, err := l.store.GetIncomeForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	if income <= 0 {
		return nil, nil
	}

	ratio := total / income
	if ratio <= BudgetThreshold {
		return nil, nil
	}

	alert := &model.BudgetAlert{
		Month:  month,
		Total:  total,
		Income: income,
		Ratio:  ratio,
	}
	l.notifier.BudgetWarning(*alert)
	return alert, nil
}
