package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited faucet action.
type AuditAction string

const (
	AuditActionRequest   AuditAction = "FUND_REQUEST"
	AuditActionAdminFund AuditAction = "ADMIN_FUND"
	AuditActionTransfer  AuditAction = "TRANSFER"
	AuditActionCancel    AuditAction = "CANCEL"
)

// AuditLog records a single audited faucet action. Persisted to PostgreSQL
// when a database is configured, otherwise only logged.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	Action    AuditAction `json:"action"`
	Address   string      `json:"address,omitempty"`
	Amount    int64       `json:"amount,omitempty"` // zatoshi
	TxID      string      `json:"txid,omitempty"`
	Outcome   string      `json:"outcome"` // granted, rejected, failed, ambiguous
	Detail    string      `json:"detail,omitempty"`
	IPAddress string      `json:"ip_address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
