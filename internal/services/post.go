package services

import (
	"context"

	"github.com/blogforge/apiserver/types"
)

// PostRepository defines read operations for posts.
type PostRepository interface {
	List(ctx context.Context, offset, limit int) ([]types.PostSummary, int, error)
	ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]types.PostSummary, int, error)
	Get(ctx context.Context, id int) (types.Post, error)
}

// PostService encapsulates post use-cases.
type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) List(ctx context.Context, offset, limit int) ([]types.PostSummary, int, error) {
	return s.repo.List(ctx, offset, clampLimit(limit))
}

func (s *PostService) ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]types.PostSummary, int, error) {
	return s.repo.ListByCategory(ctx, categorySlug, offset, clampLimit(limit))
}

func (s *PostService) Get(ctx context.Context, id int) (types.Post, error) {
	return s.repo.Get(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}
