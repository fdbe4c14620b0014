package http

import (
	"errors"
	"net/http"
	"strconv"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CronTaskHandler handles HTTP requests for the cron task registry.
type CronTaskHandler struct {
	cronTaskService service.CronTaskService
	logger          *logger.Logger
}

// NewCronTaskHandler creates a new CronTaskHandler.
func NewCronTaskHandler(cronTaskService service.CronTaskService, logger *logger.Logger) *CronTaskHandler {
	return &CronTaskHandler{cronTaskService: cronTaskService, logger: logger}
}

// RegisterRoutes registers the cron task routes to the Echo group.
func (h *CronTaskHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllCronTasks)
	g.POST("", h.CreateCronTask)
	g.PUT("/:id", h.UpdateCronTask)
}

// GetAllCronTasks godoc
// @Summary Get all cron tasks
// @Description Get all cron tasks ordered by name
// @Tags crons
// @Produce  json
// @Success 200 {array} dto.CronTaskResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crons [get]
func (h *CronTaskHandler) GetAllCronTasks(c echo.Context) error {
	cronTasks, err := h.cronTaskService.GetAllCronTasks(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get cron tasks"})
	}
	return c.JSON(http.StatusOK, cronTasks)
}

// CreateCronTask godoc
// @Summary Register a cron task
// @Description Register a cron task of kind task, autopilot, refresh or http
// @Tags crons
// @Accept  json
// @Produce  json
// @Param   cron  body    dto.CreateCronTaskRequest   true    "Cron task to create"
// @Success 201 {object} dto.CronTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crons [post]
func (h *CronTaskHandler) CreateCronTask(c echo.Context) error {
	var req dto.CreateCronTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.cronTaskService.CreateCronTask(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCronTask) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create cron task"})
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateCronTask godoc
// @Summary Update a cron task
// @Description Replace the editable fields of a cron task and reschedule it
// @Tags crons
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Cron task ID"
// @Param   cron  body    dto.UpdateCronTaskRequest   true    "Cron task to update"
// @Success 200 {object} dto.CronTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crons/{id} [put]
func (h *CronTaskHandler) UpdateCronTask(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cron task ID"})
	}

	var req dto.UpdateCronTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.cronTaskService.UpdateCronTask(c.Request().Context(), uint(id), &req)
	switch {
	case errors.Is(err, service.ErrCronTaskNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCronTask):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update cron task"})
	}
	return c.JSON(http.StatusOK, resp)
}
