package apperror

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Ledger (WLT) ----

// ErrInsufficientBalance is the ledger-level pre-check failure. No external
// call has been made and no state has changed.
func ErrInsufficientBalance(available, requested int64) *AppError {
	return New("WLT_001",
		fmt.Sprintf("Insufficient faucet balance (available: %d zatoshi, requested: %d zatoshi)", available, requested),
		http.StatusServiceUnavailable)
}

func ErrInvalidAmount(message string) *AppError {
	return New("WLT_002", message, http.StatusBadRequest)
}

func ErrWalletUnavailable() *AppError {
	return New("WLT_003", "Faucet wallet not available", http.StatusServiceUnavailable)
}

// ---- Wallet Process (PRC) ----

// ErrProcessTimeout: the external wallet process did not finish within the
// deadline. Retryable by the caller; process state is unknown.
func ErrProcessTimeout(command string, err error) *AppError {
	return Wrap("PRC_001", fmt.Sprintf("Wallet process timed out running %q", command), http.StatusGatewayTimeout, err)
}

// ErrProcessError: the process exited nonzero. Not retryable without
// investigation; Err carries the captured stderr.
func ErrProcessError(command string, err error) *AppError {
	return Wrap("PRC_002", fmt.Sprintf("Wallet process failed running %q", command), http.StatusBadGateway, err)
}

// ErrProtocolMismatch: the process exited cleanly but its output did not
// contain the expected token. Funds status is unknown; do not assume failure.
func ErrProtocolMismatch(command string, detail string) *AppError {
	return New("PRC_003",
		fmt.Sprintf("Unexpected wallet process output for %q: %s", command, detail),
		http.StatusBadGateway)
}

// ---- Transfer Protocol (TRF) ----

// ErrShieldFailure: pool preparation explicitly failed, distinct from the
// benign "nothing to shield" no-op. Remaining phases were aborted.
func ErrShieldFailure(detail string) *AppError {
	return New("TRF_001", fmt.Sprintf("Shielding funds failed: %s", detail), http.StatusBadGateway)
}

// ErrInsufficientFunds: the external process reported a spendable pool short
// of the requested amount plus fee margin. Distinct from WLT_001 — this one
// reflects the process's own accounting lagging the ledger.
func ErrInsufficientFunds(spendable, required int64) *AppError {
	return New("TRF_002",
		fmt.Sprintf("Spendable pool short: %d zatoshi available, %d zatoshi required", spendable, required),
		http.StatusServiceUnavailable)
}

// ErrAmbiguousOutcome: a timeout or protocol mismatch at or after the send
// phase. Funds may have already moved; the caller must reconcile against the
// external transaction history before retrying.
func ErrAmbiguousOutcome(detail string, err error) *AppError {
	return Wrap("TRF_003", fmt.Sprintf("Transfer outcome ambiguous: %s", detail), http.StatusBadGateway, err)
}

// ErrFaucetBusy: another transfer protocol is in flight on the shared wallet
// process.
func ErrFaucetBusy() *AppError {
	return New("TRF_004", "A transfer is already in progress", http.StatusConflict)
}

func ErrTransferCancelled() *AppError {
	return New("TRF_005", "Transfer cancelled before funds moved", http.StatusConflict)
}

func ErrCancelTooLate() *AppError {
	return New("TRF_006", "Transfer can no longer be cancelled: funds are in flight", http.StatusConflict)
}

func ErrTransferNotFound(id string) *AppError {
	return New("TRF_007", fmt.Sprintf("Transfer %s not found", id), http.StatusNotFound)
}

// ---- Request Validation (REQ) ----

func ErrInvalidAddress(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func Validation(message string) *AppError {
	return New("REQ_002", message, http.StatusBadRequest)
}

func ErrUnauthorized() *AppError {
	return New("REQ_003", "Unauthorized", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ErrAddressCooldown: the destination address received a grant recently and
// is still inside its cooldown window.
func ErrAddressCooldown(retryAfter time.Duration) *AppError {
	return New("RATE_002",
		fmt.Sprintf("Address is cooling down, retry in %s", retryAfter.Round(time.Second)),
		http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrChainNodeError(err error) *AppError {
	return Wrap("SYS_002", "Chain node RPC error", http.StatusBadGateway, err)
}

func ErrPersistenceFailure(err error) *AppError {
	return Wrap("SYS_003", "Wallet snapshot persistence failure", http.StatusInternalServerError, err)
}
