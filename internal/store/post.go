package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogforge/apiserver/types"
)

// PostRepository handles read access to posts. Listings join the author
// and category so the API can render them without extra round trips.
type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]types.PostSummary, int, error) {
	return r.list(ctx, "", offset, limit)
}

// ListByCategory lists posts whose category has the given slug.
func (r *PostRepository) ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]types.PostSummary, int, error) {
	return r.list(ctx, categorySlug, offset, limit)
}

func (r *PostRepository) Get(ctx context.Context, id int) (types.Post, error) {
	const query = `
		SELECT id, title, summary, body, slug, category_id, author_id, created_at, last_updated_at
		FROM posts
		WHERE id = $1`
	var post types.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Summary,
		&post.Body,
		&post.Slug,
		&post.CategoryID,
		&post.AuthorID,
		&post.CreatedAt,
		&post.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Post{}, ErrNotFound
		}
		return types.Post{}, err
	}
	return post, nil
}

func (r *PostRepository) list(ctx context.Context, categorySlug string, offset, limit int) ([]types.PostSummary, int, error) {
	countQuery := `SELECT COUNT(*) FROM posts p`
	listQuery := `
		SELECT p.id, p.title, p.slug, p.last_updated_at,
			c.name,
			u.name || ' (' || u.email || ')'
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.author_id`

	var args []any
	if categorySlug != "" {
		countQuery += ` JOIN categories c ON c.id = p.category_id WHERE c.slug = $1`
		listQuery += ` WHERE c.slug = $1`
		args = append(args, categorySlug)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery += fmt.Sprintf(`
		ORDER BY p.last_updated_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []types.PostSummary
	for rows.Next() {
		var post types.PostSummary
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.LastUpdatedAt,
			&post.Category,
			&post.Author,
		); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	return posts, total, rows.Err()
}
