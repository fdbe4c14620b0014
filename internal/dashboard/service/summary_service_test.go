package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryAndHealth(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, xyzSnapshot)

	_, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)

	db := newTestDB(t)
	tasks := f.tasks
	tokens := NewTokenService(repository.NewTokenUsageRepository(db.DB), log)
	_, err = tokens.Record(ctx, "gpt-small", 10, 5)
	require.NoError(t, err)

	svc := NewSummaryService(SummaryDeps{
		DB:          db,
		Tasks:       tasks,
		Tokens:      tokens,
		CronTasks:   NewCronTaskService(repository.NewCronTaskRepository(db.DB), log),
		Orders:      f.orders.service,
		Performance: NewPerformanceService(f.orders.service, f.orders.journal),
		Signals:     NewSignalsService(repository.NewSignalsRepository(f.snapshotPath, time.Minute, log), 20),
		Autopilot:   f.service,
	}, log)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.TaskCounts, 1)
	assert.Equal(t, int64(1), summary.TaskCounts[0].Count)
	require.Len(t, summary.TokenByModel, 1)
	assert.Equal(t, int64(15), summary.TokenByModel[0].Total)
	assert.Len(t, summary.RecentTasks, 1)
	assert.Empty(t, summary.CronRows)
	assert.Equal(t, dto.OrdersSummary{Pending: 1, Completed: 0}, summary.Orders)
	assert.Equal(t, 2, summary.Signals.TopCount)
	require.NotNil(t, summary.LastRun)
	assert.Equal(t, 1, summary.LastRun.CreatedOrders)

	health := svc.Health(ctx)
	assert.True(t, health.OK)
	assert.Equal(t, "sqlite", health.DBDriver)
	assert.True(t, health.Exists)
	assert.Equal(t, filepath.Base(db.Path), filepath.Base(health.DBPath))
}
