package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrInvalidCredentials indicates login failure. It never reveals whether
	// the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a missing, malformed or unverifiable credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrTokenExpired indicates a structurally valid token past its expiry.
	// Clients holding a refresh token may retry the refresh flow on this.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a token that failed signature or structural checks.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenRevoked indicates a refresh token whose ledger record was revoked.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrForbidden indicates an authenticated principal failing policy checks.
	ErrForbidden = errors.New("forbidden")
)
