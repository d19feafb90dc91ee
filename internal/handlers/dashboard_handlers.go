package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesos-api/internal/auth"
)

type DashboardHandler struct {
	common *CommonServices
}

func NewDashboardHandler(common *CommonServices) *DashboardHandler {
	return &DashboardHandler{common: common}
}

// GetDashboardMetrics godoc
// @Summary Dashboard metrics
// @Description Returns sales totals, monthly margin history and top suppliers, scoped to the caller's shopper when applicable
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardMetrics
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboardMetrics(c *gin.Context) {
	scope, err := auth.GetShopperScope(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shopper scope"})
		return
	}

	metrics, err := h.common.metrics.GetDashboardMetrics(c.Request.Context(), scope)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to build dashboard metrics", err)
		return
	}

	sendSuccess(c, http.StatusOK, metrics)
}
