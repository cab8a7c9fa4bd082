package model

// Expense is a single spending record. Expenses are append-only: there is
// no edit operation, and deleting a category repoints its expenses to the
// fallback category instead of deleting them.
type Expense struct {
	Date        string // DD-MM-YYYY
	Description string
	Amount      float64
	ID          int64
	CategoryID  int64
}

// ExpenseDetail is an expense joined with its display category name. The
// name is coalesced to FallbackCategory when the referenced category no
// longer exists.
type ExpenseDetail struct {
	Date         string
	CategoryName string
	Description  string
	Amount       float64
	ID           int64
}

// CategoryTotal is one row of a per-category spending summary.
type CategoryTotal struct {
	CategoryName string
	Total        float64
}

// BudgetAlert describes a month whose spending crossed the warning
// threshold relative to recorded income.
type BudgetAlert struct {
	Month  string
	Total  float64
	Income float64
	Ratio  float64
}

// Percent returns the spending ratio as a percentage.
func (a BudgetAlert) Percent() float64 {
	return a.Ratio * 100
}
