package users

import (
	"context"
	"fmt"

	"github.com/inkwell-press/inkwell/internal/authz"
	"github.com/inkwell-press/inkwell/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdateRole(ctx context.Context, id string, role int) error
	Delete(ctx context.Context, id string) error
}

// PrincipalInvalidator drops cached principals after account changes.
type PrincipalInvalidator interface {
	Invalidate(ctx context.Context, id string)
}

// Service handles account management business logic. Every operation
// evaluates its policy before touching the repository.
type Service struct {
	repo  RepositoryPort
	cache PrincipalInvalidator
}

// NewService builds a Service instance. The cache may be nil.
func NewService(repo RepositoryPort, cache PrincipalInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns all accounts; admin only.
func (s *Service) List(ctx context.Context, principal *shared.Principal) ([]User, error) {
	if err := authz.RequireAdmin().Check(principal, ""); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Get returns one account, visible to its owner and to admins.
func (s *Service) Get(ctx context.Context, principal *shared.Principal, id string) (User, error) {
	if err := authz.OwnerOrAdmin().Check(principal, id); err != nil {
		return User{}, err
	}
	return s.repo.Get(ctx, id)
}

// UpdateName changes the display name of an account the principal owns or
// administers.
func (s *Service) UpdateName(ctx context.Context, principal *shared.Principal, id, name string) (User, error) {
	if err := authz.OwnerOrAdmin().Check(principal, id); err != nil {
		return User{}, err
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		return User{}, err
	}
	s.invalidate(ctx, id)
	return s.repo.Get(ctx, id)
}

// UpdateRole changes an account's role. Only admins may do this, and only
// on accounts other than their own.
func (s *Service) UpdateRole(ctx context.Context, principal *shared.Principal, id string, role int) (User, error) {
	if err := authz.RequireAdmin().Check(principal, ""); err != nil {
		return User{}, err
	}
	if principal.ID == id {
		return User{}, fmt.Errorf("%w: cannot change own role", shared.ErrForbidden)
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return User{}, err
	}
	s.invalidate(ctx, id)
	return s.repo.Get(ctx, id)
}

// Delete removes an account; admin only.
func (s *Service) Delete(ctx context.Context, principal *shared.Principal, id string) error {
	if err := authz.RequireAdmin().Check(principal, ""); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}
