package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

const maxResponseBody = 2000

// HTTPPayload is the payload of an http cron task, typically a webhook to another agent.
type HTTPPayload struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
	Body    json.RawMessage   `json:"body"`
}

// HTTPStrategy calls a URL when the cron task fires.
type HTTPStrategy struct {
	client *http.Client
	logger *logger.Logger
}

// NewHTTPStrategy creates a new HTTPStrategy with the given request timeout.
func NewHTTPStrategy(timeout time.Duration, log *logger.Logger) CronTaskStrategy {
	return &HTTPStrategy{client: &http.Client{Timeout: timeout}, logger: log}
}

// GetType returns the cron task kind this strategy handles.
func (s *HTTPStrategy) GetType() entity.CronTaskKind {
	return entity.CronTaskKindHTTP
}

// Execute performs the request and returns the start of the response body.
// A status of 400 or above is an error.
func (s *HTTPStrategy) Execute(ctx context.Context, cronTask *entity.CronTask) (string, error) {
	var payload HTTPPayload
	if err := json.Unmarshal(cronTask.Payload, &payload); err != nil {
		s.logger.Error("Failed to unmarshal cron task payload", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
		return "", fmt.Errorf("failed to unmarshal cron task payload: %w", err)
	}
	method := strings.ToUpper(strings.TrimSpace(payload.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(payload.Body) > 0 {
		body = bytes.NewReader(payload.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, payload.URL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range payload.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("Failed to execute HTTP request", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
		return "", fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return string(bodyBytes), fmt.Errorf("http request failed with status code %d", resp.StatusCode)
	}

	s.logger.Info("HTTP cron task executed", logger.Field("cron_task_id", cronTask.ID), logger.IntField("status_code", resp.StatusCode))
	return string(bodyBytes), nil
}
