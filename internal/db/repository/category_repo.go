package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizbank/trivia-api/internal/category"
)

// CategoryRepository is the Postgres-backed category store.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns every category, id-ascending.
func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Get fetches a single category by id.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (category.Category, error) {
	var c category.Category
	err := r.pool.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, category.ErrNotFound
		}
		return category.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Insert persists a new category and returns it with its assigned id.
func (r *CategoryRepository) Insert(ctx context.Context, categoryType string) (category.Category, error) {
	var c category.Category
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (type) VALUES ($1) RETURNING id, type
	`, categoryType).Scan(&c.ID, &c.Type)
	if err != nil {
		return category.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// Delete removes a category by id. Questions tagged with the id are left in
// place; there is no cascade.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrNotFound
	}
	return nil
}
