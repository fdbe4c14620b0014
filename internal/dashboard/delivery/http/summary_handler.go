package http

import (
	"net/http"

	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the dashboard summary and health probe.
type SummaryHandler struct {
	summaryService service.SummaryService
	logger         *logger.Logger
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService service.SummaryService, logger *logger.Logger) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, logger: logger}
}

// RegisterRoutes registers /health and /summary on the API group.
func (h *SummaryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/summary", h.Summary)
}

// Health godoc
// @Summary Health check
// @Description Database driver, location and reachability
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *SummaryHandler) Health(c echo.Context) error {
	resp := h.summaryService.Health(c.Request().Context())
	if !resp.OK {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Dashboard summary
// @Description Task counts, token usage, recent tasks, cron tasks, order book, performance and signal freshness
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary [get]
func (h *SummaryHandler) Summary(c echo.Context) error {
	resp, err := h.summaryService.Summary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to build summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build summary"})
	}
	return c.JSON(http.StatusOK, resp)
}
