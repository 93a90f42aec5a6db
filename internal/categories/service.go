package categories

import (
	"context"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// Service handles category business logic. Mutations are gated by the admin
// role policy at the route level.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

// Get fetches one category.
func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new category.
func (s *Service) Create(ctx context.Context, category Category) (Category, error) {
	category.Slug = shared.Slugify(category.Name)
	return s.repo.Create(ctx, category)
}

// Update renames a category.
func (s *Service) Update(ctx context.Context, id string, category Category) (Category, error) {
	category.Slug = shared.Slugify(category.Name)
	if err := s.repo.Update(ctx, id, category); err != nil {
		return Category{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
