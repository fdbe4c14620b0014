package strategy

import (
	"context"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/entity"
)

// CronTaskStrategy defines the interface for the different cron task kinds.
type CronTaskStrategy interface {
	Execute(ctx context.Context, cronTask *entity.CronTask) (string, error)
	GetType() entity.CronTaskKind
}

// TaskCreator is the slice of the task registry the task strategy needs.
type TaskCreator interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*entity.Task, bool, error)
}

// AutopilotRunner is the slice of the autopilot service the autopilot strategy needs.
type AutopilotRunner interface {
	Run(ctx context.Context, threshold float64, assignedTo string) (entity.AutopilotLogEntry, error)
}
