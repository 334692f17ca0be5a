package handler

import (
	"zeckit-faucet/internal/core/ports"
	"zeckit-faucet/pkg/response"

	"github.com/gin-gonic/gin"
)

// FixturesHandler serves the published UA test fixtures.
type FixturesHandler struct {
	fixtureSvc ports.FixtureService
}

// NewFixturesHandler creates a new FixturesHandler.
func NewFixturesHandler(fixtureSvc ports.FixtureService) *FixturesHandler {
	return &FixturesHandler{fixtureSvc: fixtureSvc}
}

// GetFixtures handles GET /api/v1/fixtures.
func (h *FixturesHandler) GetFixtures(c *gin.Context) {
	response.OK(c, h.fixtureSvc.Export())
}

// Regenerate handles POST /api/v1/admin/fixtures/regenerate.
func (h *FixturesHandler) Regenerate(c *gin.Context) {
	set, err := h.fixtureSvc.Generate(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, set.Export())
}
