package ports

import (
	"context"

	"zeckit-faucet/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// SpendRecord holds validated input for recording a spend in the ledger.
// TxID is set for real transfers (observed from the wallet process); when
// empty a deterministic mock id is generated and Mock is forced true.
type SpendRecord struct {
	ToAddress string
	Amount    int64 // zatoshi, > 0
	Memo      string
	TxID      string
	Mock      bool
}

// LedgerService is the authoritative record of faucet funding and spending.
// Every mutating call persists the full wallet state before returning.
type LedgerService interface {
	RecordFunding(ctx context.Context, amount int64, txid, note string) (*domain.FundingEvent, error)
	RecordSpending(ctx context.Context, rec SpendRecord) (*domain.SpendingEvent, error)
	Balance() int64
	Address() string
	History(limit int) []domain.HistoryEntry
	Stats() domain.WalletStats
}

// TransferService drives the multi-phase transfer protocol against the
// shared wallet process. At most one transfer is in flight at a time.
type TransferService interface {
	// Submit enqueues a transfer as a background job. Returns TRF_004 when
	// another transfer is already queued or running.
	Submit(ctx context.Context, req domain.TransferRequest) (*domain.TransferJob, error)
	// Job returns the observable state of a submitted transfer.
	Job(id uuid.UUID) (*domain.TransferJob, error)
	// Cancel aborts a job if it has not yet entered the shield phase.
	// Afterwards funds are in flight and cancellation returns TRF_006.
	Cancel(id uuid.UUID) (*domain.TransferJob, error)
	// Execute runs the protocol synchronously. Used by in-process callers
	// that want the result inline; it honors the same mutual exclusion.
	Execute(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error)
}

// FundingRequest holds validated input for a faucet funding request.
type FundingRequest struct {
	ToAddress string
	Amount    int64 // zatoshi
	Memo      string
	ClientIP  string
}

// FundingOutcome is the result of a funding request. For mock transfers the
// spend is recorded inline and TxID is set; for real transfers Job carries
// the background transfer to poll.
type FundingOutcome struct {
	TxID       string
	Job        *domain.TransferJob
	Amount     int64 // granted amount in zatoshi, after defaulting
	NewBalance int64
}

// FaucetService coordinates the request flow: amount bounds, ledger
// pre-check, transfer execution or simulation, and the audit trail.
type FaucetService interface {
	RequestFunds(ctx context.Context, req FundingRequest) (*FundingOutcome, error)
	TransferStatus(id uuid.UUID) (*domain.TransferJob, error)
	CancelTransfer(ctx context.Context, id uuid.UUID, clientIP string) (*domain.TransferJob, error)
	AdminFund(ctx context.Context, amount int64, note, clientIP string) (*domain.FundingEvent, error)
}

// FixtureService manages the published UA test fixtures.
type FixtureService interface {
	Generate(ctx context.Context, force bool) (*domain.FixtureSet, error)
	Export() domain.FixtureExport
	// PreFund sends amount zatoshi to every unfunded fixture through the
	// ledger, returning per-fixture success.
	PreFund(ctx context.Context, amount int64) map[string]bool
}

// AuditService records audit entries (best-effort, never blocks a request).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
