package repository

import (
	"context"
	"testing"

	"agent-ops-dashboard/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNoopEventRepository(t *testing.T) {
	events := NewNoopEventRepository()
	assert.NoError(t, events.PublishAutopilotRun(context.Background(), entity.AutopilotLogEntry{CreatedTasks: 1}))
	assert.NoError(t, events.PublishOrderClosed(context.Background(), entity.Order{ID: "o-1"}))
}
