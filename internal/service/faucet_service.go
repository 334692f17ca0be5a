package service

import (
	"context"
	"fmt"
	"time"

	"zeckit-faucet/config"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// faucetService coordinates the request flow: amount bounds, ledger
// pre-check, transfer execution or simulation, and the audit trail.
type faucetService struct {
	cfg       config.FaucetConfig
	ledger    ports.LedgerService
	transfers ports.TransferService
	audit     ports.AuditService
	cooldown  ports.CooldownStore // nil = per-address cooldown disabled
	log       zerolog.Logger
}

// NewFaucetService creates the faucet request coordinator.
func NewFaucetService(cfg config.FaucetConfig, ledger ports.LedgerService, transfers ports.TransferService, audit ports.AuditService, log zerolog.Logger) *faucetService {
	return &faucetService{
		cfg:       cfg,
		ledger:    ledger,
		transfers: transfers,
		audit:     audit,
		log:       log,
	}
}

var _ ports.FaucetService = (*faucetService)(nil)

// UseCooldown enables the per-address cooldown between grants. Call before
// the service starts taking requests.
func (s *faucetService) UseCooldown(store ports.CooldownStore) {
	s.cooldown = store
}

// RequestFunds validates and executes a funding request. In mock mode the
// spend is simulated and recorded inline; otherwise a background transfer job
// is submitted and the spend is recorded when it completes.
func (s *faucetService) RequestFunds(ctx context.Context, req ports.FundingRequest) (*ports.FundingOutcome, error) {
	if req.Amount == 0 {
		req.Amount = domain.Zatoshi(s.cfg.AmountDefault)
	}

	minZats := domain.Zatoshi(s.cfg.AmountMin)
	maxZats := domain.Zatoshi(s.cfg.AmountMax)
	if req.Amount < minZats || req.Amount > maxZats {
		err := apperror.ErrInvalidAmount(fmt.Sprintf(
			"amount must be between %g and %g ZEC", s.cfg.AmountMin, s.cfg.AmountMax))
		s.auditRequest(ctx, req, "", "rejected", err.Message)
		return nil, err
	}

	// Fail fast before touching the wallet process. The ledger re-checks
	// under its own lock when the spend is recorded.
	if balance := s.ledger.Balance(); balance < req.Amount {
		err := apperror.ErrInsufficientBalance(balance, req.Amount)
		s.auditRequest(ctx, req, "", "rejected", err.Message)
		return nil, err
	}

	if err := s.acquireCooldown(ctx, req); err != nil {
		s.auditRequest(ctx, req, "", "rejected", err.Error())
		return nil, err
	}

	if s.cfg.Mock {
		event, err := s.ledger.RecordSpending(ctx, ports.SpendRecord{
			ToAddress: req.ToAddress,
			Amount:    req.Amount,
			Memo:      req.Memo,
		})
		if err != nil {
			s.releaseCooldown(ctx, req.ToAddress)
			s.auditRequest(ctx, req, "", "failed", err.Error())
			return nil, err
		}
		s.auditRequest(ctx, req, event.TxID, "granted", "mock transfer")
		return &ports.FundingOutcome{
			TxID:       event.TxID,
			Amount:     req.Amount,
			NewBalance: s.ledger.Balance(),
		}, nil
	}

	job, err := s.transfers.Submit(ctx, domain.TransferRequest{
		ToAddress: req.ToAddress,
		Amount:    req.Amount,
		Memo:      req.Memo,
	})
	if err != nil {
		s.releaseCooldown(ctx, req.ToAddress)
		s.auditRequest(ctx, req, "", "rejected", err.Error())
		return nil, err
	}

	return &ports.FundingOutcome{
		Job:        job,
		Amount:     req.Amount,
		NewBalance: s.ledger.Balance(),
	}, nil
}

// TransferStatus reports a background transfer job.
func (s *faucetService) TransferStatus(id uuid.UUID) (*domain.TransferJob, error) {
	return s.transfers.Job(id)
}

// CancelTransfer aborts a pending transfer job.
func (s *faucetService) CancelTransfer(ctx context.Context, id uuid.UUID, clientIP string) (*domain.TransferJob, error) {
	job, err := s.transfers.Cancel(id)
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, &domain.AuditLog{
		Action:    domain.AuditActionCancel,
		Address:   job.Request.ToAddress,
		Amount:    job.Request.Amount,
		Outcome:   "cancelled",
		Detail:    fmt.Sprintf("job %s", id),
		IPAddress: clientIP,
	})
	return job, nil
}

// AdminFund records an out-of-band top-up of the faucet wallet.
func (s *faucetService) AdminFund(ctx context.Context, amount int64, note, clientIP string) (*domain.FundingEvent, error) {
	if note == "" {
		note = "admin top-up"
	}
	event, err := s.ledger.RecordFunding(ctx, amount, "", note)
	if err != nil {
		s.audit.Log(ctx, &domain.AuditLog{
			Action:    domain.AuditActionAdminFund,
			Amount:    amount,
			Outcome:   "failed",
			Detail:    err.Error(),
			IPAddress: clientIP,
		})
		return nil, err
	}
	s.audit.Log(ctx, &domain.AuditLog{
		Action:    domain.AuditActionAdminFund,
		Amount:    amount,
		TxID:      event.TxID,
		Outcome:   "granted",
		Detail:    note,
		IPAddress: clientIP,
	})
	return event, nil
}

// HandleTransferComplete is the terminal-state hook for background transfer
// jobs. A successful protocol run is recorded in the ledger here, completing
// the protocol's final phase on behalf of the submitter.
func (s *faucetService) HandleTransferComplete(job domain.TransferJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch job.Status {
	case domain.TransferStatusSucceeded:
		if _, err := s.ledger.RecordSpending(ctx, ports.SpendRecord{
			ToAddress: job.Request.ToAddress,
			Amount:    job.Request.Amount,
			Memo:      job.Request.Memo,
			TxID:      job.TxID,
		}); err != nil {
			// The transfer went through but the ledger write failed. Log
			// loudly; the snapshot will drift until an operator reconciles.
			s.log.Error().Err(err).
				Str("job_id", job.ID.String()).
				Str("txid", job.TxID).
				Msg("transfer succeeded but ledger recording failed")
		}
		s.audit.Log(ctx, &domain.AuditLog{
			Action:  domain.AuditActionTransfer,
			Address: job.Request.ToAddress,
			Amount:  job.Request.Amount,
			TxID:    job.TxID,
			Outcome: "granted",
		})
	case domain.TransferStatusAmbiguous:
		s.audit.Log(ctx, &domain.AuditLog{
			Action:  domain.AuditActionTransfer,
			Address: job.Request.ToAddress,
			Amount:  job.Request.Amount,
			Outcome: "ambiguous",
			Detail:  job.ErrorDetail,
		})
	case domain.TransferStatusFailed:
		s.audit.Log(ctx, &domain.AuditLog{
			Action:  domain.AuditActionTransfer,
			Address: job.Request.ToAddress,
			Amount:  job.Request.Amount,
			Outcome: "failed",
			Detail:  job.ErrorDetail,
		})
	}
}

// acquireCooldown claims the per-address cooldown slot. A Redis failure
// degrades open: a broken cooldown store must not take the faucet down.
func (s *faucetService) acquireCooldown(ctx context.Context, req ports.FundingRequest) error {
	if s.cooldown == nil || s.cfg.CooldownTTL <= 0 {
		return nil
	}
	acquired, retryAfter, err := s.cooldown.Acquire(ctx, req.ToAddress, s.cfg.CooldownTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("cooldown store unavailable, allowing request")
		return nil
	}
	if !acquired {
		return apperror.ErrAddressCooldown(retryAfter)
	}
	return nil
}

func (s *faucetService) releaseCooldown(ctx context.Context, address string) {
	if s.cooldown == nil || s.cfg.CooldownTTL <= 0 {
		return
	}
	if err := s.cooldown.Release(ctx, address); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("cooldown release failed")
	}
}

func (s *faucetService) auditRequest(ctx context.Context, req ports.FundingRequest, txid, outcome, detail string) {
	s.audit.Log(ctx, &domain.AuditLog{
		Action:    domain.AuditActionRequest,
		Address:   req.ToAddress,
		Amount:    req.Amount,
		TxID:      txid,
		Outcome:   outcome,
		Detail:    detail,
		IPAddress: req.ClientIP,
	})
}
