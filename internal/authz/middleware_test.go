package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell-press/inkwell/internal/authz"
	"github.com/inkwell-press/inkwell/internal/shared"
)

func serveWithPolicy(policy authz.Policy, principal *shared.Principal) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := authz.Middleware{}.Require(policy)(next)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	if principal != nil {
		req = req.WithContext(shared.ContextWithPrincipal(req.Context(), principal))
	}
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func TestRequireAllowsMatchingRole(t *testing.T) {
	res := serveWithPolicy(authz.RequireAdmin(), &shared.Principal{ID: "u1", Role: shared.RoleAdmin})
	if res.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.Code)
	}
}

func TestRequireRejectsOtherRoles(t *testing.T) {
	res := serveWithPolicy(authz.RequireAdmin(), &shared.Principal{ID: "u1", Role: 0})
	if res.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.Code)
	}
}

func TestRequireRejectsMissingPrincipal(t *testing.T) {
	res := serveWithPolicy(authz.RequireAdmin(), nil)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}
