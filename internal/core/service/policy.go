package service

import "github.com/sesamelabs/identity-service/internal/core/domain"

// AccessPolicy holds the authorization rules for mutating operations.
// Stateless; callers must only pass claims that already passed token
// verification.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanModify reports whether the caller may mutate the target identity:
// the caller owns it, or the caller is an admin.
func (AccessPolicy) CanModify(caller *domain.SessionClaims, targetID string) bool {
	if caller == nil {
		return false
	}
	return caller.Subject == targetID || caller.Role == domain.RoleAdmin
}

// CanAssignRole reports whether the caller may change anyone's role.
func (AccessPolicy) CanAssignRole(caller *domain.SessionClaims) bool {
	return caller != nil && caller.Role == domain.RoleAdmin
}

// FilterRole returns the role change to apply, or "" when the request must
// be dropped. Unauthorized and unrecognised role values are ignored rather
// than rejected, so responses don't reveal which values exist.
func (p AccessPolicy) FilterRole(caller *domain.SessionClaims, requested string) string {
	if requested == "" || !p.CanAssignRole(caller) || !domain.ValidRole(requested) {
		return ""
	}
	return requested
}

// RequireRole reports whether the caller's role is in the allowed set.
func (AccessPolicy) RequireRole(caller *domain.SessionClaims, allowed ...string) bool {
	if caller == nil {
		return false
	}
	for _, r := range allowed {
		if caller.Role == r {
			return true
		}
	}
	return false
}
