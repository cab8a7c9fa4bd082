// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, name string) error

	// Income operations
	AddIncome(ctx context.Context, month string, amount float64) error
	GetIncomeForMonth(ctx context.Context, month string) (float64, error)
	GetAllIncomes(ctx context.Context) ([]model.Income, error)

	// Expense operations
	SaveExpense(ctx context.Context, expense *model.Expense) error
	GetAllExpenses(ctx context.Context) ([]model.ExpenseDetail, error)
	GetExpensesForMonth(ctx context.Context, month string) ([]model.ExpenseDetail, error)
	GetMonthTotal(ctx context.Context, month string) (float64, error)
	GetCategorySummary(ctx context.Context) ([]model.CategoryTotal, error)
	GetCategorySummaryForMonth(ctx context.Context, month string) ([]model.CategoryTotal, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Notifier delivers user-facing events raised by the core. The concrete
// presentation (terminal line, dialog, log entry) lives outside the core.
type Notifier interface {
	// Confirm reports a completed action.
	Confirm(message string)
	// BudgetWarning reports that a month's spending crossed the budget
	// threshold.
	BudgetWarning(alert model.BudgetAlert)
}
