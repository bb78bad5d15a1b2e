package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sesamelabs/identity-service/internal/core/domain"
	"github.com/sesamelabs/identity-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends events to the
// audit repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single audit event.
func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("username", event.Username).
		Str("action", string(event.Action)).
		Msg("audit event recorded")

	return nil
}
