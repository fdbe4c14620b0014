package http

import (
	"net/http"
	"strconv"
	"strings"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TaskHandler handles HTTP requests for the task registry.
type TaskHandler struct {
	taskService service.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

// RegisterRoutes registers the task routes to the Echo group.
func (h *TaskHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListTasks)
	g.POST("", h.CreateTask)
	g.PUT("/:task_id/status", h.UpdateTaskStatus)
}

// ListTasks godoc
// @Summary List recent tasks
// @Description List tasks ordered by last update, newest first
// @Tags tasks
// @Produce  json
// @Param   limit  query    int false    "Maximum number of tasks (default 20)"
// @Success 200 {array} entity.Task
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	tasks, err := h.taskService.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list tasks"})
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a task
// @Description Create a pending task. An open task with the same title and details is returned instead with created=false.
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task  body    dto.CreateTaskRequest   true    "Task to create"
// @Success 201 {object} dto.CreateTaskResponse
// @Success 200 {object} dto.CreateTaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title is required"})
	}

	task, created, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create task"})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.CreateTaskResponse{Created: created, Task: task})
}

// UpdateTaskStatus godoc
// @Summary Update task status
// @Description Move a task to any allowed status. Unknown statuses and tasks report updated=false.
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task_id  path    string true    "Task ID"
// @Param   status  body    dto.UpdateTaskStatusRequest   true    "New status"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks/{task_id}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	updated, err := h.taskService.SetStatus(c.Request().Context(), c.Param("task_id"), req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update task status"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}
