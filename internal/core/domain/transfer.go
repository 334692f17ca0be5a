package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus is the lifecycle of a background transfer job.
type TransferStatus string

const (
	TransferStatusQueued    TransferStatus = "QUEUED"
	TransferStatusRunning   TransferStatus = "RUNNING"
	TransferStatusSucceeded TransferStatus = "SUCCEEDED"
	TransferStatusFailed    TransferStatus = "FAILED"
	TransferStatusAmbiguous TransferStatus = "AMBIGUOUS"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

// TransferPhase identifies the step of the transfer protocol a job is in.
// Cancellation is honored only while the phase is at most PhaseQuiesce.
type TransferPhase int32

const (
	PhaseQueued TransferPhase = iota
	PhaseQuiesce
	PhaseShield
	PhaseSettle
	PhaseVerify
	PhaseSend
	PhaseDone
)

func (p TransferPhase) String() string {
	switch p {
	case PhaseQueued:
		return "queued"
	case PhaseQuiesce:
		return "quiesce"
	case PhaseShield:
		return "shield"
	case PhaseSettle:
		return "settle"
	case PhaseVerify:
		return "verify"
	case PhaseSend:
		return "send"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// TransferRequest describes one outbound transfer through the wallet process.
type TransferRequest struct {
	ToAddress string
	Amount    int64 // zatoshi
	Memo      string
}

// TransferResult is the successful outcome of the transfer protocol. The
// caller is responsible for recording the spend in the ledger.
type TransferResult struct {
	TxID        string
	CompletedAt time.Time
}

// TransferJob is the observable state of a submitted transfer.
type TransferJob struct {
	ID          uuid.UUID      `json:"id"`
	Request     TransferRequest `json:"-"`
	Status      TransferStatus `json:"status"`
	Phase       string         `json:"phase"`
	TxID        string         `json:"txid,omitempty"`
	ErrorCode   string         `json:"error_code,omitempty"`
	ErrorDetail string         `json:"error,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
