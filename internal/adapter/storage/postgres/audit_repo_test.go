package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"zeckit-faucet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditLog() *domain.AuditLog {
	return &domain.AuditLog{
		ID:        uuid.New(),
		Action:    domain.AuditActionRequest,
		Address:   "tmBsTi2xWTjUdEXnuTceL7fecEQKeWu4u6d",
		Amount:    1_000_000_000,
		TxID:      "3f2a9b8c7d6e5f4a3b2c1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a",
		Outcome:   "granted",
		IPAddress: "10.0.0.1",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := newTestAuditLog()

	mock.ExpectExec("INSERT INTO faucet_audit_logs").
		WithArgs(entry.ID, string(entry.Action), entry.Address, entry.Amount,
			entry.TxID, entry.Outcome, entry.Detail, entry.IPAddress, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_CreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := newTestAuditLog()

	mock.ExpectExec("INSERT INTO faucet_audit_logs").
		WillReturnError(errors.New("connection refused"))

	err = repo.Create(context.Background(), entry)
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
