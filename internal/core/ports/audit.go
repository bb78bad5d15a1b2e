package ports

import (
	"context"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// AuditService persists a single audit event. Implementations must treat
// failures as non-fatal for the request that produced the event.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository is the append-only store behind the audit service.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditSink accepts events for asynchronous recording. The dispatcher
// implements this; services depend on it rather than on the worker pool.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
