package service

import (
	"context"
	"fmt"
	"time"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/dashboard/strategy"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"

	"github.com/robfig/cron/v3"
)

const maxLastOutput = 2000

// SchedulerService polls the cron task registry and runs due tasks.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessDue(ctx context.Context) int
}

// NewSchedulerService creates a new scheduler service dispatching to the given strategies.
func NewSchedulerService(cronTaskRepo repository.CronTaskRepository, strategies []strategy.CronTaskStrategy, log *logger.Logger, pollingInterval time.Duration) SchedulerService {
	byKind := make(map[entity.CronTaskKind]strategy.CronTaskStrategy, len(strategies))
	for _, st := range strategies {
		byKind[st.GetType()] = st
	}
	return &schedulerService{
		cronTaskRepo:    cronTaskRepo,
		strategies:      byKind,
		logger:          log,
		pollingInterval: pollingInterval,
		cronParser:      NewCronParser(),
		now:             utils.TimeNow,
	}
}

type schedulerService struct {
	cronTaskRepo    repository.CronTaskRepository
	strategies      map[entity.CronTaskKind]strategy.CronTaskStrategy
	logger          *logger.Logger
	pollingInterval time.Duration
	cronParser      cron.Parser
	now             func() time.Time
}

// Start begins the periodic polling loop and returns when ctx is done.
func (s *schedulerService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	s.logger.Info("Scheduler service started", logger.Field("polling_interval", s.pollingInterval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			s.ProcessDue(ctx)
		}
	}
}

// ProcessDue runs every due cron task once and returns how many were run.
func (s *schedulerService) ProcessDue(ctx context.Context) int {
	cronTasks, err := s.cronTaskRepo.FindDue(ctx, s.now())
	if err != nil {
		s.logger.Error("Failed to find due cron tasks", logger.ErrorField(err))
		return 0
	}

	for i := range cronTasks {
		s.execute(ctx, &cronTasks[i])
	}
	return len(cronTasks)
}

func (s *schedulerService) execute(ctx context.Context, cronTask *entity.CronTask) {
	now := s.now()

	output, err := s.dispatch(ctx, cronTask)
	if err != nil {
		s.logger.Error("Cron task failed", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID), logger.StringField("name", cronTask.Name))
		cronTask.LastStatus = entity.CronStatusFailed
		output = err.Error()
	} else {
		s.logger.Info("Cron task completed", logger.Field("cron_task_id", cronTask.ID), logger.StringField("name", cronTask.Name))
		cronTask.LastStatus = entity.CronStatusCompleted
	}
	cronTask.LastOutput = utils.TruncateHead(output, maxLastOutput)
	cronTask.LastExecution.Time = now
	cronTask.LastExecution.Valid = true

	// Update the schedule for the next run. An expression that no longer parses deactivates the task.
	schedule, err := s.cronParser.Parse(cronTask.CronExpr)
	if err != nil {
		s.logger.Error("Failed to parse cron expression", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
		cronTask.Active = false
		cronTask.NextExecution.Valid = false
	} else {
		cronTask.NextExecution.Time = schedule.Next(now)
		cronTask.NextExecution.Valid = true
	}

	if err := s.cronTaskRepo.Update(ctx, cronTask); err != nil {
		s.logger.Error("Failed to update cron task", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
	}
}

// dispatch runs the strategy for the task's kind. A panicking strategy is reported as a failure
// so the polling loop keeps running.
func (s *schedulerService) dispatch(ctx context.Context, cronTask *entity.CronTask) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic in cron task", logger.Field("cron_task_id", cronTask.ID), logger.Field("panic", r))
			output, err = "", fmt.Errorf("cron task panicked: %v", r)
		}
	}()

	st, ok := s.strategies[cronTask.Kind]
	if !ok {
		return "", fmt.Errorf("no strategy for cron task kind %q", cronTask.Kind)
	}
	return st.Execute(ctx, cronTask)
}
