package service

import (
	"testing"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

func claimsFor(subject, role string) *domain.SessionClaims {
	return &domain.SessionClaims{Subject: subject, Username: "u-" + subject, Role: role}
}

func TestAccessPolicy_CanModify(t *testing.T) {
	p := NewAccessPolicy()

	cases := []struct {
		name     string
		caller   *domain.SessionClaims
		targetID string
		want     bool
	}{
		{"owner regardless of role", claimsFor("1", domain.RoleUser), "1", true},
		{"admin regardless of target", claimsFor("1", domain.RoleAdmin), "2", true},
		{"admin on self", claimsFor("1", domain.RoleAdmin), "1", true},
		{"non-owner non-admin", claimsFor("1", domain.RoleUser), "2", false},
		{"nil claims", nil, "1", false},
	}

	for _, tc := range cases {
		if got := p.CanModify(tc.caller, tc.targetID); got != tc.want {
			t.Errorf("%s: CanModify = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAccessPolicy_CanAssignRole(t *testing.T) {
	p := NewAccessPolicy()

	if !p.CanAssignRole(claimsFor("1", domain.RoleAdmin)) {
		t.Errorf("admin should be able to assign roles")
	}
	if p.CanAssignRole(claimsFor("1", domain.RoleUser)) {
		t.Errorf("non-admin should not be able to assign roles")
	}
	if p.CanAssignRole(nil) {
		t.Errorf("nil claims should not be able to assign roles")
	}
}

func TestAccessPolicy_FilterRole(t *testing.T) {
	p := NewAccessPolicy()
	admin := claimsFor("1", domain.RoleAdmin)
	user := claimsFor("1", domain.RoleUser)

	if got := p.FilterRole(admin, domain.RoleAdmin); got != domain.RoleAdmin {
		t.Errorf("admin assigning admin: got %q", got)
	}
	if got := p.FilterRole(admin, domain.RoleUser); got != domain.RoleUser {
		t.Errorf("admin assigning user: got %q", got)
	}
	// unrecognised values are dropped, not rejected
	if got := p.FilterRole(admin, "superuser"); got != "" {
		t.Errorf("unknown role should be dropped, got %q", got)
	}
	// non-admin attempts are dropped regardless of value
	if got := p.FilterRole(user, domain.RoleAdmin); got != "" {
		t.Errorf("non-admin role change should be dropped, got %q", got)
	}
	if got := p.FilterRole(admin, ""); got != "" {
		t.Errorf("empty role should be dropped, got %q", got)
	}
}

func TestAccessPolicy_RequireRole(t *testing.T) {
	p := NewAccessPolicy()

	if !p.RequireRole(claimsFor("1", domain.RoleAdmin), domain.RoleAdmin) {
		t.Errorf("admin should pass an admin gate")
	}
	if p.RequireRole(claimsFor("1", domain.RoleUser), domain.RoleAdmin) {
		t.Errorf("user should not pass an admin gate")
	}
	if !p.RequireRole(claimsFor("1", domain.RoleUser), domain.RoleAdmin, domain.RoleUser) {
		t.Errorf("user should pass a gate allowing both roles")
	}
	if p.RequireRole(nil, domain.RoleAdmin) {
		t.Errorf("nil claims should never pass a gate")
	}
}
