package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/auth"
	"github.com/inkwell-press/inkwell/internal/shared"
)

func newResolverFixture(t *testing.T) (*auth.Service, *stubRepo) {
	t.Helper()
	repo := newStubRepo()
	mr := miniredis.RunT(t)
	cache := auth.NewPrincipalCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return auth.NewService(repo, auth.NewCodec("test-secret", time.Hour, 24*time.Hour), cache), repo
}

func resolveRequest(t *testing.T, service *auth.Service, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var captured *shared.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = shared.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	mw := auth.Middleware{Service: service}
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	decorate(req)
	res := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(res, req)

	if res.Code == http.StatusNoContent {
		require.NotNil(t, captured, "handler ran without a principal in context")
	}
	return res
}

func TestRequireAuthFromCookie(t *testing.T) {
	service, _ := newResolverFixture(t)
	_, err := service.SignUp(context.Background(), "a@x.com", "password1", "Alice")
	require.NoError(t, err)
	_, pair, err := service.SignIn(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	res := resolveRequest(t, service, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: pair.AccessToken})
	})
	assert.Equal(t, http.StatusNoContent, res.Code)
}

func TestRequireAuthFromBearerHeader(t *testing.T) {
	service, _ := newResolverFixture(t)
	_, err := service.SignUp(context.Background(), "a@x.com", "password1", "Alice")
	require.NoError(t, err)
	_, pair, err := service.SignIn(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	res := resolveRequest(t, service, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	})
	assert.Equal(t, http.StatusNoContent, res.Code)
}

func TestRequireAuthCookieWinsOverHeader(t *testing.T) {
	service, _ := newResolverFixture(t)
	_, err := service.SignUp(context.Background(), "a@x.com", "password1", "Alice")
	require.NoError(t, err)
	_, pair, err := service.SignIn(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	// Garbage in the header must not matter while the cookie is valid.
	res := resolveRequest(t, service, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: pair.AccessToken})
		r.Header.Set("Authorization", "Bearer not-a-token")
	})
	assert.Equal(t, http.StatusNoContent, res.Code)
}

func TestRequireAuthMissingCredential(t *testing.T) {
	service, _ := newResolverFixture(t)

	res := resolveRequest(t, service, func(*http.Request) {})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	service, _ := newResolverFixture(t)

	res := resolveRequest(t, service, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRequireAuthWrongScheme(t *testing.T) {
	service, _ := newResolverFixture(t)
	_, err := service.SignUp(context.Background(), "a@x.com", "password1", "Alice")
	require.NoError(t, err)
	_, pair, err := service.SignIn(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	res := resolveRequest(t, service, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic "+pair.AccessToken)
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
