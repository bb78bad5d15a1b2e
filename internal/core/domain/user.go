package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether r is one of the two recognised roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User models a registered identity. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicView strips everything a client must never see. Cached and
// serialized representations go through this, not through User directly.
func (u *User) PublicView() *User {
	if u == nil {
		return nil
	}
	v := *u
	v.PasswordHash = ""
	return &v
}
