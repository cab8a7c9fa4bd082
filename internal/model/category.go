package model

// FallbackCategory is the always-available category that absorbs expenses
// whose original category was deleted.
const FallbackCategory = "Other"

// DefaultCategories is the set seeded into a fresh database. The fallback
// category is always part of it.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Entertainment",
	"Shopping",
	"Education",
	FallbackCategory,
}

// Category represents an expense category.
type Category struct {
	Name string
	ID   int64
}
