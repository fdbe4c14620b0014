package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCronTaskService(t *testing.T) (*cronTaskService, repository.CronTaskRepository) {
	t.Helper()
	repo := repository.NewCronTaskRepository(newTestDB(t).DB)
	svc := NewCronTaskService(repo, logger.NewNop()).(*cronTaskService)
	svc.now = fixedClock(time.Date(2026, 3, 2, 15, 7, 0, 0, time.UTC))
	return svc, repo
}

func TestCreateCronTaskSchedulesNextExecution(t *testing.T) {
	svc, _ := newCronTaskService(t)

	resp, err := svc.CreateCronTask(context.Background(), &dto.CreateCronTaskRequest{
		Name:     "autopilot-cada-15",
		CronExpr: "*/15 * * * *",
		Kind:     "Autopilot",
		Payload:  json.RawMessage(`{"threshold": 70}`),
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, "autopilot", resp.Kind)
	require.True(t, resp.NextExecution.Valid)
	assert.Equal(t, time.Date(2026, 3, 2, 15, 15, 0, 0, time.UTC), resp.NextExecution.Time.UTC())
	assert.JSONEq(t, `{"threshold": 70}`, string(resp.Payload))
}

func TestCreateCronTaskValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateCronTaskRequest
	}{
		{name: "missing name", req: dto.CreateCronTaskRequest{CronExpr: "@hourly"}},
		{name: "bad expression", req: dto.CreateCronTaskRequest{Name: "x", CronExpr: "every minute"}},
		{name: "unknown kind", req: dto.CreateCronTaskRequest{Name: "x", CronExpr: "@daily", Kind: "shell"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCronTaskService(t)
			_, err := svc.CreateCronTask(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidCronTask)
		})
	}
}

func TestUpdateCronTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCronTaskService(t)

	created, err := svc.CreateCronTask(ctx, &dto.CreateCronTaskRequest{Name: "daily-review", CronExpr: "0 9 * * *", TaskRef: "Revisar cartera"})
	require.NoError(t, err)

	updated, err := svc.UpdateCronTask(ctx, created.ID, &dto.UpdateCronTaskRequest{
		Name:     "daily-review",
		CronExpr: "0 18 * * *",
		Active:   false,
		TaskRef:  "Revisar cartera",
		Kind:     "task",
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "0 18 * * *", updated.CronExpr)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), updated.NextExecution.Time.UTC())

	_, err = svc.UpdateCronTask(ctx, 999, &dto.UpdateCronTaskRequest{Name: "x", CronExpr: "@daily"})
	assert.ErrorIs(t, err, ErrCronTaskNotFound)
}

func TestCronRowsOrderedByNameWithDashes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCronTaskService(t)

	for _, req := range []dto.CreateCronTaskRequest{
		{Name: "zeta", CronExpr: "@hourly", OwnerUserID: "ana", TaskRef: "sync"},
		{Name: "alpha", CronExpr: "@daily"},
	} {
		_, err := svc.CreateCronTask(ctx, &req)
		require.NoError(t, err)
	}

	rows, err := svc.CronRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0].Name)
	assert.Equal(t, "-", rows[0].OwnerUserID)
	assert.Equal(t, "-", rows[0].TaskRef)
	assert.Equal(t, "zeta", rows[1].Name)
	assert.Equal(t, "ana", rows[1].OwnerUserID)
}
