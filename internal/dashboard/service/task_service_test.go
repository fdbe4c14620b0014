package service

import (
	"context"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) *taskService {
	t.Helper()
	db := newTestDB(t)
	return NewTaskService(repository.NewTaskRepository(db.DB), logger.NewNop()).(*taskService)
}

func TestCreateTaskDeduplicatesOpenTasks(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	first, created, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Buy AAPL", Details: "d", AssignedTo: "ops"})
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, entity.TaskStatusPending, first.Status)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	dup, created, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "  buy   AAPL ", Details: "D"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.TaskID, dup.TaskID)

	tasks, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestCreateTaskAllowedAgainAfterDone(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	first, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Buy AAPL", Details: "d"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, first.TaskID, "done")
	require.NoError(t, err)
	require.True(t, updated)

	second, created, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Buy AAPL", Details: "d"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.TaskID, second.TaskID)

	tasks, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestCreateTaskRunningTaskStillBlocksDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	first, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Rebalance"})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, first.TaskID, "running")
	require.NoError(t, err)

	_, created, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "rebalance"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCreateTaskDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	task, created, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Check logs", Priority: "urgent"})
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, entity.TaskPriorityMedium, task.Priority)
	assert.Equal(t, "manual", task.Source)
	assert.Equal(t, Fingerprint("Check logs", ""), task.Fingerprint)
}

func TestCreateTaskBlankTitleIsNoop(t *testing.T) {
	svc := newTaskService(t)

	task, created, err := svc.CreateTask(context.Background(), dto.CreateTaskRequest{Title: "   "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, task)
}

func TestSetStatusRejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	task, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Deploy"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, task.TaskID, "archived")
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = svc.SetStatus(ctx, "missing", "done")
	require.NoError(t, err)
	assert.False(t, updated)

	stored, err := svc.taskRepo.FindByTaskID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, stored.Status)
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	task, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "Deploy"})
	require.NoError(t, err)

	for _, status := range []string{"cancelled", "pending", "blocked", "DONE"} {
		updated, err := svc.SetStatus(ctx, task.TaskID, status)
		require.NoError(t, err)
		assert.True(t, updated, status)
	}

	stored, err := svc.taskRepo.FindByTaskID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, stored.Status)
}

func TestListRecentOrdersByUpdatedAt(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i, title := range []string{"one", "two", "three"} {
		svc.now = fixedClock(base.Add(time.Duration(i) * time.Minute))
		task, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, task.TaskID)
	}

	svc.now = fixedClock(base.Add(time.Hour))
	_, err := svc.SetStatus(ctx, ids[0], "running")
	require.NoError(t, err)

	tasks, err := svc.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, ids[0], tasks[0].TaskID)
	assert.Equal(t, ids[2], tasks[1].TaskID)
}

func TestCountByStatusLargestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTaskService(t)

	for _, title := range []string{"a", "b", "c"} {
		_, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: title})
		require.NoError(t, err)
	}
	task, _, err := svc.CreateTask(ctx, dto.CreateTaskRequest{Title: "d"})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, task.TaskID, "done")
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, entity.TaskStatusCount{Status: "pending", Count: 3}, counts[0])
	assert.Equal(t, entity.TaskStatusCount{Status: "done", Count: 1}, counts[1])
}
