package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviaworks/trivia-api/internal/trivia"
)

// CategoryRepository implements trivia.CategoryStore over Postgres.
type CategoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

// ListCategories returns every category ordered by id.
func (r *CategoryRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
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

// GetCategory fetches one category; a missing id is trivia.ErrNotFound.
func (r *CategoryRepository) GetCategory(ctx context.Context, id int64) (trivia.Category, error) {
	var c trivia.Category
	err := r.db.QueryRow(ctx, "SELECT id, type FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrNotFound
		}
		return trivia.Category{}, fmt.Errorf("query category %d: %w", id, err)
	}
	return c, nil
}
