package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/inkwell-press/inkwell/internal/shared"
)

func newTestCodec() *Codec {
	return NewCodec("test-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.IssueAccess("u1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	claims, err := codec.VerifyAccess(token)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("expected subject u1, got %q", claims.Subject)
	}
}

func TestAccessTokenExpiryBoundary(t *testing.T) {
	codec := newTestCodec()
	issuedAt := time.Now()
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.IssueAccess("u1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	// One second before expiry the token is still accepted.
	codec.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	if _, err := codec.VerifyAccess(token); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	// One second after expiry it is rejected as expired, not invalid.
	codec.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	_, err = codec.VerifyAccess(token)
	if !errors.Is(err, shared.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenCarriesLedgerID(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.IssueRefresh("ledger-42")
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	claims, err := codec.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
	if claims.LedgerID != "ledger-42" {
		t.Fatalf("expected ledger id ledger-42, got %q", claims.LedgerID)
	}
}

func TestTamperedTokenIsInvalidNotExpired(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.IssueAccess("u1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"

	_, err = codec.VerifyAccess(tampered)
	if !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if errors.Is(err, shared.ErrTokenExpired) {
		t.Fatalf("tampered token must not be reported as expired")
	}
}

func TestForeignSecretRejected(t *testing.T) {
	codec := newTestCodec()
	other := NewCodec("other-secret", time.Hour, 24*time.Hour)

	token, err := other.IssueAccess("u1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := codec.VerifyAccess(token); !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.IssueRefresh("ledger-1")
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}
	// A refresh token has no subject; verifying it as an access token fails.
	if _, err := codec.VerifyAccess(token); !errors.Is(err, shared.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
