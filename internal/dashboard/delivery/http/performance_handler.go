package http

import (
	"net/http"
	"strconv"

	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PerformanceHandler serves the trade journal and the derived statistics.
type PerformanceHandler struct {
	performanceService service.PerformanceService
	logger             *logger.Logger
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService service.PerformanceService, logger *logger.Logger) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService, logger: logger}
}

// RegisterRoutes registers /journal and /performance on the API group.
func (h *PerformanceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/journal", h.GetJournal)
	g.GET("/performance", h.GetPerformance)
}

// GetJournal godoc
// @Summary Get the trade journal
// @Description Journal entries oldest first, limited to the newest entries when limit is set
// @Tags performance
// @Produce  json
// @Param   limit  query    int false    "Maximum number of entries"
// @Success 200 {array} entity.JournalEntry
// @Router /journal [get]
func (h *PerformanceHandler) GetJournal(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return c.JSON(http.StatusOK, h.performanceService.Journal(c.Request().Context(), limit))
}

// GetPerformance godoc
// @Summary Get performance
// @Description Win rate, expectancy and max drawdown in R multiples
// @Tags performance
// @Produce  json
// @Success 200 {object} entity.Performance
// @Router /performance [get]
func (h *PerformanceHandler) GetPerformance(c echo.Context) error {
	return c.JSON(http.StatusOK, h.performanceService.Performance(c.Request().Context()))
}
