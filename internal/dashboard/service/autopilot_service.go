package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/launcher"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/common"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/telegram"
	"agent-ops-dashboard/pkg/utils"
)

// States in which an opportunity also opens a simulated order.
var tradableStates = map[string]bool{
	"READY":     true,
	"TRIGGERED": true,
}

// AutopilotService turns high-scoring opportunities into tasks and simulated orders.
type AutopilotService interface {
	Run(ctx context.Context, threshold float64, assignedTo string) (entity.AutopilotLogEntry, error)
	Logs(ctx context.Context, limit int) []entity.AutopilotLogEntry
	Last(ctx context.Context) *entity.AutopilotLogEntry
}

// AutopilotDeps groups the collaborators of the autopilot service.
type AutopilotDeps struct {
	Tasks           TaskService
	Orders          OrderService
	Signals         repository.SignalsRepository
	RunLog          repository.AutopilotLogRepository
	Events          repository.EventRepository
	Notifier        telegram.Notifier
	Launcher        launcher.Launcher
	RefreshCommands []launcher.Command
}

// NewAutopilotService creates a new autopilot service.
func NewAutopilotService(deps AutopilotDeps, log *logger.Logger) AutopilotService {
	return &autopilotService{
		deps:   deps,
		logger: log,
		now:    utils.TimeNow,
	}
}

type autopilotService struct {
	deps   AutopilotDeps
	logger *logger.Logger
	now    func() time.Time
}

// Run executes one orchestrator pass: refresh, open phase, close phase, log.
// Per-opportunity failures are logged and skipped; only a failure to persist the run log is returned.
func (s *autopilotService) Run(ctx context.Context, threshold float64, assignedTo string) (entity.AutopilotLogEntry, error) {
	threshold = ClampThreshold(threshold)
	s.refresh(ctx)

	snapshot := s.deps.Signals.Load(ctx)
	entry := entity.AutopilotLogEntry{
		Threshold:  threshold,
		AssignedTo: assignedTo,
		TopCount:   len(snapshot.TopOpportunities),
	}

	// Open phase.
	for _, opp := range snapshot.TopOpportunities {
		score := float64(opp.Score)
		if score < threshold {
			continue
		}
		ticker := normalizeTicker(opp.Ticker)
		if ticker == "" {
			continue
		}

		_, created, err := s.deps.Tasks.CreateTask(ctx, opportunityTask(opp, ticker, assignedTo))
		if err != nil {
			s.logger.Error("Failed to create autopilot task", logger.ErrorField(err), logger.StringField("ticker", ticker))
		} else if created {
			entry.CreatedTasks++
		}

		if !tradableStates[strings.ToUpper(strings.TrimSpace(opp.State))] {
			continue
		}
		var entryPrice *float64
		if price, ok := opp.Price(); ok {
			entryPrice = &price
		}
		opened, err := s.deps.Orders.OpenPending(ctx, ticker, score, opp.State, entryPrice)
		if err != nil {
			s.logger.Error("Failed to open autopilot order", logger.ErrorField(err), logger.StringField("ticker", ticker))
			continue
		}
		if opened {
			entry.CreatedOrders++
		}
	}

	// Close phase. Orders opened above are eligible when the same snapshot already crosses their levels.
	closed, err := s.deps.Orders.AutoCloseFromMarket(ctx, snapshot)
	if err != nil {
		s.logger.Error("Failed to auto-close orders", logger.ErrorField(err))
	}
	entry.ClosedOrders = closed
	entry.Ts = s.now()

	if err := s.deps.RunLog.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to append autopilot log", logger.ErrorField(err))
		return entry, fmt.Errorf("failed to append autopilot log: %w", err)
	}

	if err := s.deps.Events.PublishAutopilotRun(ctx, entry); err != nil {
		s.logger.Warn("Failed to publish autopilot run event", logger.ErrorField(err))
	}
	if entry.CreatedTasks+entry.CreatedOrders+entry.ClosedOrders > 0 {
		if err := s.deps.Notifier.SendMessage(telegram.FormatAutopilotRunForTelegram(entry)); err != nil {
			s.logger.Warn("Failed to send autopilot notification", logger.ErrorField(err))
		}
	}

	s.logger.Info("Autopilot run finished",
		logger.Float64Field("threshold", threshold),
		logger.IntField("top_count", entry.TopCount),
		logger.IntField("created_tasks", entry.CreatedTasks),
		logger.IntField("created_orders", entry.CreatedOrders),
		logger.IntField("closed_orders", entry.ClosedOrders))
	return entry, nil
}

// Logs returns the newest limit run entries, oldest first. A non-positive limit returns everything.
func (s *autopilotService) Logs(ctx context.Context, limit int) []entity.AutopilotLogEntry {
	entries := s.deps.RunLog.LoadAll(ctx)
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func (s *autopilotService) Last(ctx context.Context) *entity.AutopilotLogEntry {
	entries := s.deps.RunLog.LoadAll(ctx)
	if len(entries) == 0 {
		return nil
	}
	last := entries[len(entries)-1]
	return &last
}

// refresh runs every configured refresh command. Failures never stop the run.
func (s *autopilotService) refresh(ctx context.Context) {
	for _, cmd := range s.deps.RefreshCommands {
		if _, err := s.deps.Launcher.Run(ctx, cmd); err != nil {
			s.logger.Warn("Refresh command failed", logger.ErrorField(err), logger.StringField("name", cmd.Name))
		}
	}
}

// ClampThreshold bounds a score threshold to [0, 100].
func ClampThreshold(threshold float64) float64 {
	switch {
	case threshold < 0:
		return 0
	case threshold > 100:
		return 100
	}
	return threshold
}

// opportunityTask builds the task for one opportunity. Title and details embed score and reasons,
// so a changed score or reason list yields a new fingerprint.
func opportunityTask(opp entity.Opportunity, ticker, assignedTo string) dto.CreateTaskRequest {
	score := formatScore(float64(opp.Score))
	state := strings.ToUpper(strings.TrimSpace(opp.State))
	if state == "" {
		state = "-"
	}

	reasons := make([]string, 0, len(opp.Reasons))
	for _, r := range opp.Reasons {
		if r = strings.TrimSpace(r); r != "" {
			reasons = append(reasons, r)
		}
	}
	reasonText := "sin razones"
	if len(reasons) > 0 {
		reasonText = strings.Join(reasons, "; ")
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"ticker":  ticker,
		"score":   float64(opp.Score),
		"state":   state,
		"reasons": reasons,
	})

	return dto.CreateTaskRequest{
		Title:      fmt.Sprintf("Revisar oportunidad %s (score %s)", ticker, score),
		Details:    fmt.Sprintf("Estado: %s. Score: %s. Razones: %s.", state, score, reasonText),
		AssignedTo: assignedTo,
		AssignedBy: common.AssignedByAutopilot,
		Priority:   string(entity.TaskPriorityHigh),
		Source:     common.SourceAutoSignals,
		Metadata:   metadata,
	}
}

func formatScore(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
