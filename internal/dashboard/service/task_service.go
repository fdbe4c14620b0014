package service

import (
	"context"
	"strings"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/common"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	defaultRecentTasks = 20
	maxRecentTasks     = 500
)

// TaskService is the task registry.
type TaskService interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*entity.Task, bool, error)
	SetStatus(ctx context.Context, taskID string, status string) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Task, error)
	CountByStatus(ctx context.Context) ([]entity.TaskStatusCount, error)
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, log *logger.Logger) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		logger:   log,
		now:      utils.TimeNow,
	}
}

type taskService struct {
	taskRepo repository.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
}

// CreateTask stores a new pending task unless an open task with the same fingerprint exists.
// A duplicate is not an error: the existing task is returned with created=false.
// A blank title is ignored the same way.
func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*entity.Task, bool, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, false, nil
	}

	fingerprint := Fingerprint(title, req.Details)
	existing, err := s.taskRepo.FindOpenByFingerprint(ctx, fingerprint)
	if err != nil {
		s.logger.Error("Failed to look up task fingerprint", logger.ErrorField(err), logger.StringField("fingerprint", fingerprint))
		return nil, false, err
	}
	if existing != nil {
		s.logger.Debug("Skipping duplicate task",
			logger.StringField("task_id", existing.TaskID),
			logger.StringField("fingerprint", fingerprint))
		return existing, false, nil
	}

	source := req.Source
	if source == "" {
		source = common.SourceManual
	}

	now := s.now()
	task := &entity.Task{
		TaskID:      uuid.NewString(),
		Title:       title,
		Details:     req.Details,
		AssignedBy:  req.AssignedBy,
		AssignedTo:  req.AssignedTo,
		Status:      entity.TaskStatusPending,
		Fingerprint: fingerprint,
		Source:      source,
		Priority:    entity.NormalizePriority(req.Priority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if len(req.Metadata) > 0 {
		task.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task", logger.ErrorField(err), logger.StringField("title", title))
		return nil, false, err
	}

	s.logger.Info("Task created",
		logger.StringField("task_id", task.TaskID),
		logger.StringField("source", task.Source),
		logger.StringField("assigned_to", task.AssignedTo))
	return task, true, nil
}

// SetStatus moves a task to status. Unknown statuses and unknown tasks are silently ignored.
func (s *taskService) SetStatus(ctx context.Context, taskID string, status string) (bool, error) {
	newStatus := entity.TaskStatus(strings.ToLower(strings.TrimSpace(status)))
	if !newStatus.IsValid() {
		s.logger.Debug("Ignoring invalid task status", logger.StringField("task_id", taskID), logger.StringField("status", status))
		return false, nil
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, taskID, newStatus, s.now())
	if err != nil {
		s.logger.Error("Failed to update task status", logger.ErrorField(err), logger.StringField("task_id", taskID))
		return false, err
	}
	if updated {
		s.logger.Info("Task status updated", logger.StringField("task_id", taskID), logger.StringField("status", string(newStatus)))
	}
	return updated, nil
}

// ListRecent returns the most recently updated tasks.
func (s *taskService) ListRecent(ctx context.Context, limit int) ([]entity.Task, error) {
	if limit <= 0 {
		limit = defaultRecentTasks
	}
	if limit > maxRecentTasks {
		limit = maxRecentTasks
	}
	return s.taskRepo.FindRecent(ctx, limit)
}

// CountByStatus returns the status histogram, largest first.
func (s *taskService) CountByStatus(ctx context.Context) ([]entity.TaskStatusCount, error) {
	return s.taskRepo.CountByStatus(ctx)
}
