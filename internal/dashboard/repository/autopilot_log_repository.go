package repository

import (
	"context"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

// AutopilotLogRepository stores one summary per orchestrator run.
type AutopilotLogRepository interface {
	Append(ctx context.Context, entry entity.AutopilotLogEntry) error
	LoadAll(ctx context.Context) []entity.AutopilotLogEntry
}

type autopilotLogRepository struct {
	entries *cappedLog[entity.AutopilotLogEntry]
}

// NewAutopilotLogRepository creates a run log that keeps the newest maxEntries runs.
func NewAutopilotLogRepository(path string, maxEntries int, log *logger.Logger) AutopilotLogRepository {
	return &autopilotLogRepository{entries: newCappedLog[entity.AutopilotLogEntry](path, maxEntries, log)}
}

func (r *autopilotLogRepository) Append(ctx context.Context, entry entity.AutopilotLogEntry) error {
	return r.entries.append(entry)
}

func (r *autopilotLogRepository) LoadAll(ctx context.Context) []entity.AutopilotLogEntry {
	return r.entries.loadAll()
}
