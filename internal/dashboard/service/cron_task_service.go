package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrCronTaskNotFound is returned when the requested cron task does not exist.
	ErrCronTaskNotFound = errors.New("cron task not found")
	// ErrInvalidCronTask wraps validation failures of a cron task request.
	ErrInvalidCronTask = errors.New("invalid cron task")
)

// NewCronParser returns the five-field parser shared by the registry and the scheduler.
func NewCronParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// CronTaskService defines the interface for managing cron tasks.
type CronTaskService interface {
	CreateCronTask(ctx context.Context, req *dto.CreateCronTaskRequest) (*dto.CronTaskResponse, error)
	GetAllCronTasks(ctx context.Context) ([]*dto.CronTaskResponse, error)
	UpdateCronTask(ctx context.Context, id uint, req *dto.UpdateCronTaskRequest) (*dto.CronTaskResponse, error)
	CronRows(ctx context.Context) ([]dto.CronRow, error)
}

// NewCronTaskService creates a new cron task service.
func NewCronTaskService(cronTaskRepo repository.CronTaskRepository, log *logger.Logger) CronTaskService {
	return &cronTaskService{
		cronTaskRepo: cronTaskRepo,
		logger:       log,
		cronParser:   NewCronParser(),
		now:          utils.TimeNow,
	}
}

type cronTaskService struct {
	cronTaskRepo repository.CronTaskRepository
	logger       *logger.Logger
	cronParser   cron.Parser
	now          func() time.Time
}

// CreateCronTask validates and registers a cron task, scheduling its first run.
func (s *cronTaskService) CreateCronTask(ctx context.Context, req *dto.CreateCronTaskRequest) (*dto.CronTaskResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	cronTask := &entity.CronTask{
		Name:        strings.TrimSpace(req.Name),
		CronExpr:    strings.TrimSpace(req.CronExpr),
		Active:      active,
		OwnerUserID: req.OwnerUserID,
		TaskRef:     req.TaskRef,
		Kind:        entity.CronTaskKind(strings.ToLower(strings.TrimSpace(req.Kind))),
	}
	if len(req.Payload) > 0 {
		cronTask.Payload = datatypes.JSON(req.Payload)
	}
	if err := s.prepare(cronTask); err != nil {
		return nil, err
	}

	if err := s.cronTaskRepo.Create(ctx, cronTask); err != nil {
		s.logger.Error("Failed to create cron task", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Cron task created successfully", logger.Field("cron_task_id", cronTask.ID), logger.StringField("name", cronTask.Name))
	return mapToCronTaskResponse(cronTask), nil
}

// GetAllCronTasks retrieves all cron tasks ordered by name.
func (s *cronTaskService) GetAllCronTasks(ctx context.Context) ([]*dto.CronTaskResponse, error) {
	cronTasks, err := s.cronTaskRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all cron tasks", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.CronTaskResponse, 0, len(cronTasks))
	for i := range cronTasks {
		responses = append(responses, mapToCronTaskResponse(&cronTasks[i]))
	}
	return responses, nil
}

// UpdateCronTask replaces the editable fields of a cron task and reschedules it.
func (s *cronTaskService) UpdateCronTask(ctx context.Context, id uint, req *dto.UpdateCronTaskRequest) (*dto.CronTaskResponse, error) {
	cronTask, err := s.cronTaskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCronTaskNotFound
		}
		s.logger.Error("Failed to find cron task for update", logger.ErrorField(err), logger.Field("cron_task_id", id))
		return nil, err
	}

	cronTask.Name = strings.TrimSpace(req.Name)
	cronTask.CronExpr = strings.TrimSpace(req.CronExpr)
	cronTask.Active = req.Active
	cronTask.OwnerUserID = req.OwnerUserID
	cronTask.TaskRef = req.TaskRef
	cronTask.Kind = entity.CronTaskKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	cronTask.Payload = nil
	if len(req.Payload) > 0 {
		cronTask.Payload = datatypes.JSON(req.Payload)
	}
	if err := s.prepare(cronTask); err != nil {
		return nil, err
	}

	if err := s.cronTaskRepo.Update(ctx, cronTask); err != nil {
		s.logger.Error("Failed to update cron task", logger.ErrorField(err), logger.Field("cron_task_id", id))
		return nil, err
	}

	s.logger.Info("Cron task updated successfully", logger.Field("cron_task_id", id))
	return mapToCronTaskResponse(cronTask), nil
}

// CronRows renders the registry for the dashboard. Missing owner and task reference show as "-".
func (s *cronTaskService) CronRows(ctx context.Context) ([]dto.CronRow, error) {
	cronTasks, err := s.cronTaskRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all cron tasks", logger.ErrorField(err))
		return nil, err
	}

	rows := make([]dto.CronRow, 0, len(cronTasks))
	for _, c := range cronTasks {
		rows = append(rows, dto.CronRow{
			Name:        c.Name,
			CronExpr:    c.CronExpr,
			Active:      c.Active,
			OwnerUserID: dashIfEmpty(c.OwnerUserID),
			TaskRef:     dashIfEmpty(c.TaskRef),
			UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

// prepare validates the task and computes its next execution.
func (s *cronTaskService) prepare(cronTask *entity.CronTask) error {
	if cronTask.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCronTask)
	}
	if cronTask.Kind == "" {
		cronTask.Kind = entity.CronTaskKindTask
	}
	switch cronTask.Kind {
	case entity.CronTaskKindTask, entity.CronTaskKindAutopilot, entity.CronTaskKindRefresh, entity.CronTaskKindHTTP:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidCronTask, cronTask.Kind)
	}

	schedule, err := s.cronParser.Parse(cronTask.CronExpr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCronTask, err)
	}
	cronTask.NextExecution.Time = schedule.Next(s.now())
	cronTask.NextExecution.Valid = true
	return nil
}

func mapToCronTaskResponse(c *entity.CronTask) *dto.CronTaskResponse {
	return &dto.CronTaskResponse{
		ID:            c.ID,
		Name:          c.Name,
		CronExpr:      c.CronExpr,
		Active:        c.Active,
		OwnerUserID:   c.OwnerUserID,
		TaskRef:       c.TaskRef,
		Kind:          string(c.Kind),
		Payload:       []byte(c.Payload),
		NextExecution: c.NextExecution,
		LastExecution: c.LastExecution,
		LastStatus:    string(c.LastStatus),
		LastOutput:    c.LastOutput,
		UpdatedAt:     c.UpdatedAt,
	}
}

func dashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
