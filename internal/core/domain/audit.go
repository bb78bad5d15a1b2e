package domain

import "time"

// AuditAction identifies the kind of authentication event being recorded.
type AuditAction string

const (
	AuditRegister     AuditAction = "register"
	AuditLoginSuccess AuditAction = "login_success"
	AuditLoginFailure AuditAction = "login_failure"
	AuditUserUpdated  AuditAction = "user_updated"
)

// AuthEvent is an append-only audit record of an authentication-relevant
// action. ActorID is empty for failed logins (no verified identity).
type AuthEvent struct {
	Username string
	ActorID  string
	Action   AuditAction
	At       time.Time
}
