package handler

import (
	"time"

	"zeckit-faucet/internal/adapter/http/dto"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/apperror"
	"zeckit-faucet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FaucetHandler handles funding request endpoints.
type FaucetHandler struct {
	faucetSvc ports.FaucetService
	ledger    ports.LedgerService
}

// NewFaucetHandler creates a new FaucetHandler.
func NewFaucetHandler(faucetSvc ports.FaucetService, ledger ports.LedgerService) *FaucetHandler {
	return &FaucetHandler{faucetSvc: faucetSvc, ledger: ledger}
}

// RequestFunds handles POST /api/v1/faucet/request.
func (h *FaucetHandler) RequestFunds(c *gin.Context) {
	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := dto.ValidateAddress(req.Address); err != nil {
		response.Error(c, err)
		return
	}

	outcome, err := h.faucetSvc.RequestFunds(c.Request.Context(), ports.FundingRequest{
		ToAddress: req.Address,
		Amount:    domain.Zatoshi(req.Amount),
		Memo:      req.Memo,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// A background job means the transfer protocol is still running:
	// the client polls the job until it reaches a terminal state.
	if outcome.Job != nil {
		response.Accepted(c, jobResponse(outcome.Job))
		return
	}

	response.OK(c, dto.FundResponse{
		TxID:       outcome.TxID,
		Address:    req.Address,
		Amount:     domain.ZEC(outcome.Amount),
		AmountZats: outcome.Amount,
		Balance:    domain.ZEC(outcome.NewBalance),
		Mock:       true,
	})
}

// TransferStatus handles GET /api/v1/faucet/request/:id.
func (h *FaucetHandler) TransferStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid job id"))
		return
	}

	job, err := h.faucetSvc.TransferStatus(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, jobResponse(job))
}

// CancelTransfer handles DELETE /api/v1/faucet/request/:id.
func (h *FaucetHandler) CancelTransfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid job id"))
		return
	}

	job, err := h.faucetSvc.CancelTransfer(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, jobResponse(job))
}

// AdminFund handles POST /api/v1/admin/fund.
func (h *FaucetHandler) AdminFund(c *gin.Context) {
	var req dto.AdminFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	event, err := h.faucetSvc.AdminFund(c.Request.Context(), domain.Zatoshi(req.Amount), req.Note, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FundingEventResponse{
		TxID:      event.TxID,
		Amount:    domain.ZEC(event.Amount),
		Note:      event.Note,
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
		Balance:   domain.ZEC(h.ledger.Balance()),
	})
}

func jobResponse(job *domain.TransferJob) dto.TransferJobResponse {
	resp := dto.TransferJobResponse{
		JobID:       job.ID.String(),
		Status:      string(job.Status),
		Phase:       job.Phase,
		TxID:        job.TxID,
		ErrorCode:   job.ErrorCode,
		Error:       job.ErrorDetail,
		SubmittedAt: job.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if job.CompletedAt != nil {
		completed := job.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}
