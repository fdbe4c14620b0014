package http

import (
	"net/http"
	"strconv"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// AutopilotHandler triggers autopilot runs and serves the run log.
type AutopilotHandler struct {
	autopilotService  service.AutopilotService
	limiter           *rate.Limiter
	defaultThreshold  float64
	defaultAssignedTo string
	logger            *logger.Logger
}

// NewAutopilotHandler creates a new AutopilotHandler allowing at most runsPerMinute manual runs.
func NewAutopilotHandler(autopilotService service.AutopilotService, runsPerMinute int, defaultThreshold float64, defaultAssignedTo string, logger *logger.Logger) *AutopilotHandler {
	if runsPerMinute <= 0 {
		runsPerMinute = 1
	}
	return &AutopilotHandler{
		autopilotService:  autopilotService,
		limiter:           rate.NewLimiter(rate.Every(time.Minute/time.Duration(runsPerMinute)), 1),
		defaultThreshold:  defaultThreshold,
		defaultAssignedTo: defaultAssignedTo,
		logger:            logger,
	}
}

// RegisterRoutes registers the autopilot routes to the Echo group.
func (h *AutopilotHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/run", h.Run)
	g.GET("/logs", h.GetLogs)
}

// Run godoc
// @Summary Run the autopilot
// @Description Refresh signals, create tasks and orders from opportunities above the threshold, then close orders against the market
// @Tags autopilot
// @Accept  json
// @Produce  json
// @Param   run  body    dto.RunAutopilotRequest   false    "Threshold and assignee overrides"
// @Success 200 {object} entity.AutopilotLogEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /autopilot/run [post]
func (h *AutopilotHandler) Run(c echo.Context) error {
	if !h.limiter.Allow() {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Autopilot run rate limit exceeded"})
	}

	var req dto.RunAutopilotRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
		}
	}

	threshold := h.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	assignedTo := req.AssignedTo
	if assignedTo == "" {
		assignedTo = h.defaultAssignedTo
	}

	entry, err := h.autopilotService.Run(c.Request().Context(), threshold, assignedTo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to run autopilot"})
	}
	return c.JSON(http.StatusOK, entry)
}

// GetLogs godoc
// @Summary Get autopilot runs
// @Description Autopilot run summaries oldest first, limited to the newest runs when limit is set
// @Tags autopilot
// @Produce  json
// @Param   limit  query    int false    "Maximum number of runs"
// @Success 200 {array} entity.AutopilotLogEntry
// @Router /autopilot/logs [get]
func (h *AutopilotHandler) GetLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return c.JSON(http.StatusOK, h.autopilotService.Logs(c.Request().Context(), limit))
}
