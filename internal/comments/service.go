package comments

import (
	"context"

	"github.com/inkwell-press/inkwell/internal/authz"
	"github.com/inkwell-press/inkwell/internal/shared"
)

// Service handles comment business logic.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create attaches a comment from the principal to an article.
func (s *Service) Create(ctx context.Context, principal *shared.Principal, comment Comment) (Comment, error) {
	if principal == nil {
		return Comment{}, shared.ErrUnauthenticated
	}
	comment.UserID = principal.ID
	return s.repo.Create(ctx, comment)
}

// ListByArticle returns all comments on an article.
func (s *Service) ListByArticle(ctx context.Context, articleID string) ([]Comment, error) {
	return s.repo.ListByArticle(ctx, articleID)
}

// Delete removes a comment written by the principal, or any comment for an
// admin.
func (s *Service) Delete(ctx context.Context, principal *shared.Principal, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.OwnerOrAdmin().Check(principal, existing.UserID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
