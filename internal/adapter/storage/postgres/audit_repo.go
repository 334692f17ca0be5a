package postgres

import (
	"context"

	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO faucet_audit_logs (id, action, address, amount_zats, txid, outcome, detail, ip_address, created_at)
 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, string(log.Action), log.Address, log.Amount,
		log.TxID, log.Outcome, log.Detail, log.IPAddress, log.CreatedAt,
	)
	return err
}
