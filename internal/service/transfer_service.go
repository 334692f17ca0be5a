package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"zeckit-faucet/config"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// jobState is the internal mutable record behind a TransferJob. All fields
// are guarded by transferService.mu.
type jobState struct {
	job       domain.TransferJob
	phase     domain.TransferPhase
	cancelled bool
	cancel    context.CancelFunc
}

// transferService runs the multi-phase transfer protocol against the shared
// wallet process. The process cannot serve two transfers at once, so at most
// one job is queued or running; further submissions are rejected as busy.
type transferService struct {
	console   ports.WalletConsole
	cfg       config.WalletConfig
	feeMargin int64
	log       zerolog.Logger

	mu     sync.Mutex
	jobs   map[uuid.UUID]*jobState
	active *jobState
	queue  chan *jobState

	// onComplete is invoked after a job reaches a terminal state. The
	// composition root uses it to record successful spends in the ledger;
	// the orchestrator itself never touches the ledger.
	onComplete func(job domain.TransferJob)
}

// NewTransferService creates the transfer orchestrator. Run must be started
// for background submissions to make progress.
func NewTransferService(console ports.WalletConsole, cfg config.WalletConfig, feeMargin int64, log zerolog.Logger) *transferService {
	return &transferService{
		console:   console,
		cfg:       cfg,
		feeMargin: feeMargin,
		log:       log,
		jobs:      make(map[uuid.UUID]*jobState),
		queue:     make(chan *jobState, 1),
	}
}

var _ ports.TransferService = (*transferService)(nil)

// OnComplete registers the terminal-state hook. Must be called before Run.
func (s *transferService) OnComplete(fn func(job domain.TransferJob)) {
	s.onComplete = fn
}

// Run processes queued jobs until ctx is cancelled. One job at a time.
func (s *transferService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case js := <-s.queue:
			s.runJob(ctx, js)
		}
	}
}

// Submit enqueues a transfer as a background job.
func (s *transferService) Submit(_ context.Context, req domain.TransferRequest) (*domain.TransferJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, apperror.ErrFaucetBusy()
	}

	js := &jobState{
		job: domain.TransferJob{
			ID:          uuid.New(),
			Request:     req,
			Status:      domain.TransferStatusQueued,
			Phase:       domain.PhaseQueued.String(),
			SubmittedAt: time.Now().UTC(),
		},
		phase: domain.PhaseQueued,
	}
	s.jobs[js.job.ID] = js
	s.active = js
	s.queue <- js

	s.log.Info().
		Str("job_id", js.job.ID.String()).
		Str("to", req.ToAddress).
		Int64("amount", req.Amount).
		Msg("transfer job queued")

	snapshot := js.job
	return &snapshot, nil
}

// Job returns the observable state of a submitted transfer.
func (s *transferService) Job(id uuid.UUID) (*domain.TransferJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	js, ok := s.jobs[id]
	if !ok {
		return nil, apperror.ErrTransferNotFound(id.String())
	}
	snapshot := js.job
	return &snapshot, nil
}

// Cancel aborts a job if it has not yet entered the shield phase. Once
// shielding starts, funds may be moving and the protocol must run to a
// terminal state.
func (s *transferService) Cancel(id uuid.UUID) (*domain.TransferJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	js, ok := s.jobs[id]
	if !ok {
		return nil, apperror.ErrTransferNotFound(id.String())
	}

	if terminal(js.job.Status) {
		if js.job.Status == domain.TransferStatusCancelled {
			snapshot := js.job
			return &snapshot, nil
		}
		return nil, apperror.ErrCancelTooLate()
	}
	if js.phase >= domain.PhaseShield {
		return nil, apperror.ErrCancelTooLate()
	}

	js.cancelled = true
	if js.cancel != nil {
		js.cancel()
	}
	if js.job.Status == domain.TransferStatusQueued {
		// Not picked up by the worker yet: finish it here.
		s.finishLocked(js, domain.TransferStatusCancelled, "", apperror.ErrTransferCancelled())
	}

	s.log.Info().Str("job_id", id.String()).Msg("transfer cancellation requested")
	snapshot := js.job
	return &snapshot, nil
}

// Execute runs the protocol synchronously, honoring the same single-transfer
// exclusion as Submit.
func (s *transferService) Execute(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		return nil, apperror.ErrFaucetBusy()
	}
	js := &jobState{
		job: domain.TransferJob{
			ID:          uuid.New(),
			Request:     req,
			Status:      domain.TransferStatusRunning,
			Phase:       domain.PhaseQueued.String(),
			SubmittedAt: time.Now().UTC(),
		},
	}
	s.jobs[js.job.ID] = js
	s.active = js
	s.mu.Unlock()

	txid, err := s.execute(ctx, js)

	s.mu.Lock()
	if err != nil {
		s.finishLocked(js, failureStatus(err), "", err)
	} else {
		s.finishLocked(js, domain.TransferStatusSucceeded, txid, nil)
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &domain.TransferResult{TxID: txid, CompletedAt: time.Now().UTC()}, nil
}

// runJob is the worker-side wrapper around execute for background jobs.
func (s *transferService) runJob(ctx context.Context, js *jobState) {
	s.mu.Lock()
	if js.cancelled || terminal(js.job.Status) {
		if !terminal(js.job.Status) {
			s.finishLocked(js, domain.TransferStatusCancelled, "", apperror.ErrTransferCancelled())
		}
		s.mu.Unlock()
		return
	}
	js.job.Status = domain.TransferStatusRunning
	jobCtx, cancel := context.WithCancel(ctx)
	js.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	txid, err := s.execute(jobCtx, js)

	s.mu.Lock()
	switch {
	case err == nil:
		s.finishLocked(js, domain.TransferStatusSucceeded, txid, nil)
	case js.cancelled && js.phase < domain.PhaseShield:
		s.finishLocked(js, domain.TransferStatusCancelled, "", apperror.ErrTransferCancelled())
	default:
		s.finishLocked(js, failureStatus(err), "", err)
	}
	s.mu.Unlock()
}

// execute walks the protocol phases. It returns the observed txid on success
// and an AppError classifying the failure otherwise. The ledger is never
// touched here: recording the spend is the caller's responsibility.
func (s *transferService) execute(ctx context.Context, js *jobState) (string, error) {
	req := js.job.Request
	log := s.log.With().Str("job_id", js.job.ID.String()).Logger()

	// Phase 1: quiesce. Best-effort; a failed stop only risks noisier output.
	s.setPhase(js, domain.PhaseQuiesce)
	if err := s.withTimeout(ctx, s.cfg.QuiesceTimeout, s.console.StopSync); err != nil {
		log.Warn().Err(err).Msg("sync stop failed, continuing")
	}

	// Cancellation point: after this, funds may start moving.
	s.mu.Lock()
	if js.cancelled {
		s.mu.Unlock()
		return "", apperror.ErrTransferCancelled()
	}
	js.phase = domain.PhaseShield
	js.job.Phase = domain.PhaseShield.String()
	s.mu.Unlock()

	// Phase 2: shield exposed funds into the spendable pool.
	shieldCtx, cancel := context.WithTimeout(ctx, s.cfg.ShieldTimeout)
	shield, err := s.console.Shield(shieldCtx)
	cancel()
	if err != nil {
		return "", err
	}

	// Phase 3: settle. Only needed when shielding actually moved funds.
	if !shield.NoOp {
		s.setPhase(js, domain.PhaseSettle)
		log.Info().Str("shield_txid", shield.TxID).Msg("waiting for shielded funds to settle")
		if err := s.settle(ctx, req.Amount+s.feeMargin); err != nil {
			return "", err
		}
	}

	// Phase 4: verify the spendable pool covers amount plus fee margin.
	s.setPhase(js, domain.PhaseVerify)
	verifyCtx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
	spendable, err := s.console.SpendableBalance(verifyCtx)
	cancel()
	if err != nil {
		return "", err
	}
	required := req.Amount + s.feeMargin
	if spendable < required {
		return "", apperror.ErrInsufficientFunds(spendable, required)
	}

	// Phase 5: send. Timeouts and unparseable output past this point are
	// ambiguous: the transaction may have been broadcast.
	s.setPhase(js, domain.PhaseSend)
	memo := req.Memo
	if !domain.KindOfAddress(req.ToAddress).SupportsMemo() {
		memo = ""
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	txid, err := s.console.Send(sendCtx, req.ToAddress, req.Amount, memo)
	cancel()
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && (appErr.Code == "PRC_001" || appErr.Code == "PRC_003") {
			return "", apperror.ErrAmbiguousOutcome("send phase did not confirm a transaction id", err)
		}
		return "", err
	}

	s.setPhase(js, domain.PhaseDone)
	log.Info().Str("txid", txid).Msg("transfer protocol complete")
	return txid, nil
}

// settle waits for shielded funds to become spendable. With polling enabled
// it checks the spendable pool until the required amount is visible or the
// settle budget runs out; transient query errors are tolerated. With polling
// disabled it falls back to a fixed delay.
func (s *transferService) settle(ctx context.Context, required int64) error {
	if s.cfg.SettlePoll <= 0 {
		select {
		case <-time.After(s.cfg.SettleDelay):
			return nil
		case <-ctx.Done():
			return apperror.ErrProcessTimeout("settle", ctx.Err())
		}
	}

	deadline := time.Now().Add(s.cfg.SettleDelay)
	ticker := time.NewTicker(s.cfg.SettlePoll)
	defer ticker.Stop()

	for {
		pollCtx, cancel := context.WithTimeout(ctx, s.cfg.SettlePoll)
		spendable, err := s.console.SpendableBalance(pollCtx)
		cancel()
		if err == nil && spendable >= required {
			return nil
		}
		if err != nil {
			s.log.Debug().Err(err).Msg("settle poll failed, retrying")
		}

		if time.Now().After(deadline) {
			// Budget exhausted: let the verify phase make the final call.
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return apperror.ErrProcessTimeout("settle", ctx.Err())
		}
	}
}

func (s *transferService) withTimeout(ctx context.Context, d time.Duration, fn func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(callCtx)
}

func (s *transferService) setPhase(js *jobState, phase domain.TransferPhase) {
	s.mu.Lock()
	js.phase = phase
	js.job.Phase = phase.String()
	s.mu.Unlock()
}

// finishLocked moves a job to a terminal state and releases the busy slot.
// Callers must hold s.mu.
func (s *transferService) finishLocked(js *jobState, status domain.TransferStatus, txid string, err error) {
	now := time.Now().UTC()
	js.job.Status = status
	js.job.TxID = txid
	js.job.CompletedAt = &now
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			js.job.ErrorCode = appErr.Code
			js.job.ErrorDetail = appErr.Message
		} else {
			js.job.ErrorCode = "SYS_001"
			js.job.ErrorDetail = err.Error()
		}
	}
	if s.active == js {
		s.active = nil
	}

	s.log.Info().
		Str("job_id", js.job.ID.String()).
		Str("status", string(status)).
		Str("txid", txid).
		Str("error_code", js.job.ErrorCode).
		Msg("transfer job finished")

	if s.onComplete != nil {
		snapshot := js.job
		go s.onComplete(snapshot)
	}
}

func failureStatus(err error) domain.TransferStatus {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "TRF_003":
			return domain.TransferStatusAmbiguous
		case "TRF_005":
			return domain.TransferStatusCancelled
		}
	}
	return domain.TransferStatusFailed
}

func terminal(status domain.TransferStatus) bool {
	switch status {
	case domain.TransferStatusSucceeded, domain.TransferStatusFailed,
		domain.TransferStatusAmbiguous, domain.TransferStatusCancelled:
		return true
	}
	return false
}
