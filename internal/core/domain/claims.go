package domain

import "time"

// SessionClaims is the verified payload of a session token: the asserted
// identity plus a snapshot of username and role taken at issuance. The
// snapshot is deliberately not re-read from the store on each request;
// a role change becomes visible when the token expires.
type SessionClaims struct {
	Subject   string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
