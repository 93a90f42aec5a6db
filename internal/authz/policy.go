// Package authz evaluates role and ownership policies for protected
// operations. Policies are explicit values attached to each operation
// rather than per-route middleware branches.
package authz

import "github.com/inkwell-press/inkwell/internal/shared"

// Policy declares who may perform an operation. An empty role list denies
// every principal, elevated ones included; absence of permission is never
// an implicit allow.
type Policy struct {
	// Roles is the allow-list of role values.
	Roles []int
	// AllowOwner permits the principal when it owns the target resource,
	// regardless of the role list.
	AllowOwner bool
}

// RequireAdmin is the common admin-only policy.
func RequireAdmin() Policy {
	return Policy{Roles: []int{shared.RoleAdmin}}
}

// OwnerOrAdmin permits the resource owner and elevated roles.
func OwnerOrAdmin() Policy {
	return Policy{Roles: []int{shared.RoleAdmin}, AllowOwner: true}
}

// Check evaluates the policy for a principal acting on a resource owned by
// ownerID. Role-only operations pass an empty ownerID. Returns
// ErrUnauthenticated for a missing principal and ErrForbidden on denial.
func (p Policy) Check(principal *shared.Principal, ownerID string) error {
	if principal == nil {
		return shared.ErrUnauthenticated
	}
	if p.AllowOwner && ownerID != "" && ownerID == principal.ID {
		return nil
	}
	for _, role := range p.Roles {
		if role == principal.Role {
			return nil
		}
	}
	return shared.ErrForbidden
}
