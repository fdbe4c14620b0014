package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

// AutopilotStrategy runs one autopilot pass on schedule.
type AutopilotStrategy struct {
	runner            AutopilotRunner
	defaultThreshold  float64
	defaultAssignedTo string
	logger            *logger.Logger
}

// NewAutopilotStrategy creates a new AutopilotStrategy. The defaults apply when the payload omits them.
func NewAutopilotStrategy(runner AutopilotRunner, defaultThreshold float64, defaultAssignedTo string, log *logger.Logger) CronTaskStrategy {
	return &AutopilotStrategy{
		runner:            runner,
		defaultThreshold:  defaultThreshold,
		defaultAssignedTo: defaultAssignedTo,
		logger:            log,
	}
}

// GetType returns the cron task kind this strategy handles.
func (s *AutopilotStrategy) GetType() entity.CronTaskKind {
	return entity.CronTaskKindAutopilot
}

// Execute runs the autopilot and reports the run counters.
func (s *AutopilotStrategy) Execute(ctx context.Context, cronTask *entity.CronTask) (string, error) {
	var payload dto.AutopilotCronPayload
	if len(cronTask.Payload) > 0 {
		if err := json.Unmarshal(cronTask.Payload, &payload); err != nil {
			s.logger.Error("Failed to unmarshal cron task payload", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
			return "", fmt.Errorf("failed to unmarshal cron task payload: %w", err)
		}
	}

	threshold := s.defaultThreshold
	if payload.Threshold != nil {
		threshold = *payload.Threshold
	}
	assignedTo := payload.AssignedTo
	if assignedTo == "" {
		assignedTo = s.defaultAssignedTo
	}

	entry, err := s.runner.Run(ctx, threshold, assignedTo)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tasks=%d orders=%d closed=%d top=%d",
		entry.CreatedTasks, entry.CreatedOrders, entry.ClosedOrders, entry.TopCount), nil
}
