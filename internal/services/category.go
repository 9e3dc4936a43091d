package services

import (
	"context"
	"strings"

	"github.com/blogforge/apiserver/types"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]types.Category, error)
	Get(ctx context.Context, id int) (types.Category, error)
	Create(ctx context.Context, category types.Category) (types.Category, error)
	Update(ctx context.Context, category types.Category) (types.Category, error)
	Delete(ctx context.Context, id int) error
}

// CategoryService encapsulates category use-cases.
type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]types.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (types.Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, category types.Category) (types.Category, error) {
	category.Slug = strings.ToLower(category.Slug)
	return s.repo.Create(ctx, category)
}

func (s *CategoryService) Update(ctx context.Context, category types.Category) (types.Category, error) {
	category.Slug = strings.ToLower(category.Slug)
	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
