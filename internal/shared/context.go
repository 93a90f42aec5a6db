package shared

import "context"

// Principal describes the authenticated actor attached to a request.
type Principal struct {
	ID    string
	Email string
	Role  int
}

// RoleAdmin is the elevated role; every other value is a standard account.
const RoleAdmin = 1

// IsAdmin reports whether the principal carries the elevated role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type principalContextKey struct{}

// ContextWithPrincipal stores the principal in context.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal from context.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}
