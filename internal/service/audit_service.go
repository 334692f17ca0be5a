package service

import (
	"context"
	"time"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// auditService records audit entries. Always logs; additionally persists to
// PostgreSQL when a repository is configured. Best-effort: a failed write
// never blocks or fails the request being audited.
type auditService struct {
	repo ports.AuditRepository // nil when no database is configured
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.log.Info().
		Str("audit_id", entry.ID.String()).
		Str("action", string(entry.Action)).
		Str("address", entry.Address).
		Int64("amount", entry.Amount).
		Str("outcome", entry.Outcome).
		Str("ip", entry.IPAddress).
		Msg("audit")

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("audit_id", entry.ID.String()).Msg("persisting audit entry failed")
	}
}
