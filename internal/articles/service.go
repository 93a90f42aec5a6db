package articles

import (
	"context"

	"github.com/inkwell-press/inkwell/internal/authz"
	"github.com/inkwell-press/inkwell/internal/shared"
)

// Service handles article business logic.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new article authored by the principal.
func (s *Service) Create(ctx context.Context, principal *shared.Principal, article Article) (Article, error) {
	if principal == nil {
		return Article{}, shared.ErrUnauthenticated
	}
	article.AuthorID = principal.ID
	article.Slug = shared.Slugify(article.Title)
	return s.repo.Create(ctx, article)
}

// List returns articles visible to the principal: admins see everything,
// everyone else sees only their own.
func (s *Service) List(ctx context.Context, principal *shared.Principal, filters ListFilters) ([]Article, shared.Pagination, error) {
	if principal == nil {
		return nil, shared.Pagination{}, shared.ErrUnauthenticated
	}
	if !principal.IsAdmin() {
		filters.AuthorID = principal.ID
	}
	items, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, shared.Pagination{}, err
	}
	return items, shared.NewPagination(filters.Page, filters.PerPage, total), nil
}

// Get fetches one article.
func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	return s.repo.Get(ctx, id)
}

// Update rewrites an article owned by the principal, or any article for an
// admin.
func (s *Service) Update(ctx context.Context, principal *shared.Principal, id string, article Article) (Article, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Article{}, err
	}
	if err := authz.OwnerOrAdmin().Check(principal, existing.AuthorID); err != nil {
		return Article{}, err
	}
	article.Slug = shared.Slugify(article.Title)
	if err := s.repo.Update(ctx, id, article); err != nil {
		return Article{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes an article owned by the principal, or any article for an
// admin.
func (s *Service) Delete(ctx context.Context, principal *shared.Principal, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.OwnerOrAdmin().Check(principal, existing.AuthorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
