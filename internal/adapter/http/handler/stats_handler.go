package handler

import (
	"net/http"
	"strconv"
	"time"

	"zeckit-faucet/internal/adapter/http/dto"
	"zeckit-faucet/internal/core/domain"
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

// StatsHandler serves the read-only wallet views.
type StatsHandler struct {
	ledger ports.LedgerService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ledger ports.LedgerService) *StatsHandler {
	return &StatsHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/faucet/balance.
func (h *StatsHandler) GetBalance(c *gin.Context) {
	balance := h.ledger.Balance()
	response.OK(c, dto.BalanceResponse{
		Address:     h.ledger.Address(),
		Balance:     domain.ZEC(balance),
		BalanceZats: balance,
	})
}

// GetAddress handles GET /api/v1/faucet/address.
func (h *StatsHandler) GetAddress(c *gin.Context) {
	response.OK(c, gin.H{"address": h.ledger.Address()})
}

// GetStats handles GET /api/v1/faucet/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := h.ledger.Stats()
	response.OK(c, dto.StatsResponse{
		Address:       stats.Address,
		CreatedAt:     stats.CreatedAt.UTC().Format(time.RFC3339),
		Balance:       domain.ZEC(stats.Balance),
		BalanceZats:   stats.Balance,
		FundingCount:  stats.FundingCount,
		SpendingCount: stats.SpendingCount,
		TotalFunded:   domain.ZEC(stats.TotalFunded),
		TotalSpent:    domain.ZEC(stats.TotalSpent),
	})
}

// GetHistory handles GET /api/v1/faucet/history?limit=N. The limit is
// clamped to [1, 1000]; out-of-range or unparseable values fall back to the
// default rather than erroring.
func (h *StatsHandler) GetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries := h.ledger.History(limit)
	response.OK(c, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// ServiceInfo handles GET / — a small self-describing payload so a curl at
// the root explains where everything lives.
func ServiceInfo(chain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ServiceInfoResponse{
			Service: "zeckit-faucet",
			Chain:   chain,
			Version: "1.0.0",
			Links: map[string]string{
				"request":  "/api/v1/faucet/request",
				"balance":  "/api/v1/faucet/balance",
				"stats":    "/api/v1/faucet/stats",
				"history":  "/api/v1/faucet/history",
				"fixtures": "/api/v1/fixtures",
				"health":   "/health",
			},
		})
	}
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
