package auth

import "time"

// User represents a registered account.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshTokenRecord is the persisted ledger entry backing one issued
// refresh token. The record id, not the token bytes, is embedded as the
// token's jid claim, so revoking the row invalidates the token before its
// natural expiry.
type RefreshTokenRecord struct {
	ID        string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool
}

// TokenPair carries the credentials minted by a successful signin.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
