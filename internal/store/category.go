package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/blogforge/apiserver/types"
)

// CategoryRepository handles persistence for categories.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]types.Category, error) {
	const query = `SELECT id, name, slug FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []types.Category
	for rows.Next() {
		var category types.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Get(ctx context.Context, id int) (types.Category, error) {
	const query = `SELECT id, name, slug FROM categories WHERE id = $1`
	var category types.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Category{}, ErrNotFound
		}
		return types.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category types.Category) (types.Category, error) {
	const query = `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, category.Name, category.Slug).Scan(&category.ID); err != nil {
		return types.Category{}, mapConflict(err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category types.Category) (types.Category, error) {
	const query = `
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, category.Name, category.Slug, category.ID)
	if err != nil {
		return types.Category{}, mapConflict(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Category{}, err
	}
	if affected == 0 {
		return types.Category{}, ErrNotFound
	}
	return category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM categories WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
