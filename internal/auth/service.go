package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// Service wraps the token lifecycle: signup, signin, access token refresh
// and refresh token revocation.
type Service struct {
	repo  Repository
	codec *Codec
	cache *PrincipalCache
}

// NewService constructs a new Service. The cache may be nil, in which case
// every authentication resolves the principal from the repository.
func NewService(repo Repository, codec *Codec, cache *PrincipalCache) *Service {
	return &Service{repo: repo, codec: codec, cache: cache}
}

// Codec exposes the token codec for collaborators that only verify tokens.
func (s *Service) Codec() *Codec {
	return s.codec
}

// SignUp registers a new standard-role account.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*User, error) {
	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", shared.ErrDuplicate)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	digest, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.CreateUser(ctx, User{
		Email:        email,
		Name:         name,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", shared.ErrDuplicate)
		}
		return nil, err
	}
	return &user, nil
}

// SignIn validates credentials and mints an access/refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, TokenPair, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, TokenPair{}, shared.ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, TokenPair{}, shared.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *Service) issuePair(ctx context.Context, userID string) (TokenPair, error) {
	access, err := s.codec.IssueAccess(userID)
	if err != nil {
		return TokenPair{}, err
	}
	record, err := s.repo.CreateRefreshToken(ctx, userID, time.Now().Add(s.codec.RefreshTTL()))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.codec.IssueRefresh(record.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh mints a new access token from a valid, unrevoked refresh token.
// The refresh token itself is deliberately not rotated: one ledger row backs
// it until revocation or expiry. See DESIGN.md for why this stays as-is.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	record, err := s.repo.FindRefreshToken(ctx, claims.LedgerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrUnauthenticated
		}
		return "", err
	}
	if record.Revoked {
		return "", shared.ErrTokenRevoked
	}
	if !time.Now().Before(record.ExpiresAt) {
		return "", shared.ErrTokenExpired
	}

	user, err := s.repo.FindUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrUnauthenticated
		}
		return "", err
	}
	return s.codec.IssueAccess(user.ID)
}

// Revoke marks the refresh token's ledger record as revoked. Revoking twice
// yields the same final state; a missing ledger row is NotFound.
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return err
	}
	return s.repo.RevokeRefreshToken(ctx, claims.LedgerID)
}

// Authenticate verifies an access token and resolves its principal. A token
// whose subject no longer exists resolves to Unauthenticated rather than
// NotFound so callers cannot tell a dead token from a deleted account.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*shared.Principal, error) {
	claims, err := s.codec.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, claims.Subject); ok {
			return p, nil
		}
	}

	user, err := s.repo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthenticated
		}
		return nil, err
	}
	principal := &shared.Principal{ID: user.ID, Email: user.Email, Role: user.Role}
	if s.cache != nil {
		s.cache.Set(ctx, principal)
	}
	return principal, nil
}
