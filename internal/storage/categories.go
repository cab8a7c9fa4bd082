package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

// GetCategories returns all categories in creation order (ascending id),
// not alphabetical.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name
		FROM categories
		ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by its name, or nil when absent.
// A missing category is a normal result, not an error.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name
		FROM categories
		WHERE name = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, name).Scan(&cat.ID, &cat.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// GetCategoryByID returns a category by its id, or nil when absent.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name
		FROM categories
		WHERE id = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(&cat.ID, &cat.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// CreateCategory inserts a category if it is absent. Inserting an existing
// name is a no-op that still reports the live row, so the operation is
// idempotent. The name is trimmed; an empty name fails.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrEmptyString)
	}

	if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name) VALUES (?)`, name); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	cat, err := s.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %q missing after insert", name)
	}

	slog.Info("created category", "name", cat.Name, "id", cat.ID)
	return cat, nil
}

// DeleteCategory removes a category by name. Expenses referencing it are
// reassigned to the fallback category, which is created first when missing.
// The reassignment and the delete run in a single transaction; any failure
// leaves the data untouched.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var targetID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = ?`, name).Scan(&targetID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: category %q", common.ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to query category: %w", err)
	}

	// The fallback category must exist before anything is repointed at it.
	if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name) VALUES (?)`, model.FallbackCategory); err != nil {
		return fmt.Errorf("failed to ensure fallback category: %w", err)
	}

	var fallbackID int64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = ?`, model.FallbackCategory).Scan(&fallbackID); err != nil {
		return fmt.Errorf("failed to query fallback category: %w", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE expenses SET category_id = ? WHERE category_id = ?`, fallbackID, targetID)
	if err != nil {
		return fmt.Errorf("failed to reassign expenses: %w", err)
	}
	reassigned, _ := result.RowsAffected()

	if _, err = tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, targetID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category deletion: %w", err)
	}

	slog.Info("deleted category", "name", name, "reassigned_expenses", reassigned)
	return nil
}
