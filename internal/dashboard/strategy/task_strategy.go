package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/common"
	"agent-ops-dashboard/pkg/logger"
)

// TaskStrategy files a task named after the cron task's task_ref every time it fires.
// Deduplication means a task still pending from the previous firing is not filed again.
type TaskStrategy struct {
	tasks  TaskCreator
	logger *logger.Logger
}

// NewTaskStrategy creates a new TaskStrategy.
func NewTaskStrategy(tasks TaskCreator, log *logger.Logger) CronTaskStrategy {
	return &TaskStrategy{tasks: tasks, logger: log}
}

// GetType returns the cron task kind this strategy handles.
func (s *TaskStrategy) GetType() entity.CronTaskKind {
	return entity.CronTaskKindTask
}

// Execute creates the task described by the cron task.
func (s *TaskStrategy) Execute(ctx context.Context, cronTask *entity.CronTask) (string, error) {
	var payload dto.TaskCronPayload
	if len(cronTask.Payload) > 0 {
		if err := json.Unmarshal(cronTask.Payload, &payload); err != nil {
			s.logger.Error("Failed to unmarshal cron task payload", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
			return "", fmt.Errorf("failed to unmarshal cron task payload: %w", err)
		}
	}

	title := strings.TrimSpace(cronTask.TaskRef)
	if title == "" {
		title = cronTask.Name
	}

	task, created, err := s.tasks.CreateTask(ctx, dto.CreateTaskRequest{
		Title:      title,
		Details:    payload.Details,
		AssignedTo: cronTask.OwnerUserID,
		AssignedBy: common.AssignedByCron,
		Priority:   payload.Priority,
		Source:     common.SourceCron,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}
	if task == nil {
		return "skipped: empty title", nil
	}
	if !created {
		return fmt.Sprintf("duplicate of %s", task.TaskID), nil
	}
	return fmt.Sprintf("created %s", task.TaskID), nil
}
