package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// AccessClaims is the fixed claim set of an access token. Subject carries
// the principal id.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// RefreshClaims is the fixed claim set of a refresh token. LedgerID carries
// the id of the RefreshTokenRecord backing it.
type RefreshClaims struct {
	LedgerID string `json:"jid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies the two token kinds with a process-wide secret.
// It is stateless and safe for concurrent use.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewCodec constructs a Codec. The secret is injected once at startup.
func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// AccessTTL returns the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration {
	return c.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime.
func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// IssueAccess mints a short-lived access token for the user.
func (c *Codec) IssueAccess(userID string) (string, error) {
	now := c.now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// IssueRefresh mints a long-lived refresh token referencing a ledger record.
func (c *Codec) IssueRefresh(ledgerID string) (string, error) {
	now := c.now()
	claims := RefreshClaims{
		LedgerID: ledgerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// VerifyAccess checks signature and expiry and returns the claims.
// Expiry and forgery surface as distinct errors because callers react
// differently: an expired access token invites the refresh flow, a
// malformed one is a hard authentication failure.
func (c *Codec) VerifyAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := c.parse(token, claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, shared.ErrTokenInvalid
	}
	return claims, nil
}

// VerifyRefresh checks signature and expiry and returns the claims.
func (c *Codec) VerifyRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := c.parse(token, claims); err != nil {
		return nil, err
	}
	if claims.LedgerID == "" {
		return nil, shared.ErrTokenInvalid
	}
	return claims, nil
}

func (c *Codec) parse(token string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return shared.ErrTokenExpired
		}
		return shared.ErrTokenInvalid
	}
	if !parsed.Valid {
		return shared.ErrTokenInvalid
	}
	return nil
}
