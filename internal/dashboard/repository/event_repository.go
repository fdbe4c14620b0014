package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/common"

	"github.com/redis/go-redis/v9"
)

// EventRepository fans autopilot activity out to downstream consumers.
type EventRepository interface {
	PublishAutopilotRun(ctx context.Context, entry entity.AutopilotLogEntry) error
	PublishOrderClosed(ctx context.Context, order entity.Order) error
}

type redisEventRepository struct {
	client       *redis.Client
	streamMaxLen int64
}

// NewRedisEventRepository publishes events to Redis streams trimmed to streamMaxLen.
func NewRedisEventRepository(client *redis.Client, streamMaxLen int64) EventRepository {
	return &redisEventRepository{client: client, streamMaxLen: streamMaxLen}
}

func (r *redisEventRepository) PublishAutopilotRun(ctx context.Context, entry entity.AutopilotLogEntry) error {
	return r.publish(ctx, common.RedisStreamAutopilotRun, entry)
}

func (r *redisEventRepository) PublishOrderClosed(ctx context.Context, order entity.Order) error {
	return r.publish(ctx, common.RedisStreamOrderClosed, order)
}

func (r *redisEventRepository) publish(ctx context.Context, stream string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", stream, err)
	}
	return r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: r.streamMaxLen,
		Approx: true,
	}).Err()
}

type noopEventRepository struct{}

// NewNoopEventRepository is used when Redis is disabled.
func NewNoopEventRepository() EventRepository {
	return noopEventRepository{}
}

func (noopEventRepository) PublishAutopilotRun(context.Context, entity.AutopilotLogEntry) error {
	return nil
}

func (noopEventRepository) PublishOrderClosed(context.Context, entity.Order) error {
	return nil
}
