package authz

import (
	"log/slog"
	"net/http"

	"github.com/inkwell-press/inkwell/internal/platform/httpx"
	"github.com/inkwell-press/inkwell/internal/shared"
)

// Middleware wires role policies onto HTTP routes. Ownership policies are
// evaluated inside services where the resource owner is known.
type Middleware struct {
	Logger *slog.Logger
}

// Require rejects requests whose principal fails the role policy.
func (m Middleware) Require(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := shared.PrincipalFromContext(r.Context())
			if err := policy.Check(principal, ""); err != nil {
				if m.Logger != nil {
					m.Logger.Debug("policy denied request",
						slog.String("path", r.URL.Path), slog.Any("error", err))
				}
				httpx.RespondError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
