package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"agent-ops-dashboard/internal/dashboard/launcher"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

// RefreshPayload describes an ad-hoc command for a refresh cron task.
type RefreshPayload struct {
	Path    string   `json:"path"`
	Args    []string `json:"args"`
	Dir     string   `json:"dir"`
	Timeout string   `json:"timeout"`
}

// RefreshStrategy runs an external refresh command. task_ref selects a configured command by
// name; otherwise the payload describes the command.
type RefreshStrategy struct {
	launcher launcher.Launcher
	commands map[string]launcher.Command
	logger   *logger.Logger
}

// NewRefreshStrategy creates a new RefreshStrategy over the configured commands.
func NewRefreshStrategy(l launcher.Launcher, commands []launcher.Command, log *logger.Logger) CronTaskStrategy {
	byName := make(map[string]launcher.Command, len(commands))
	for _, c := range commands {
		byName[c.Name] = c
	}
	return &RefreshStrategy{launcher: l, commands: byName, logger: log}
}

// GetType returns the cron task kind this strategy handles.
func (s *RefreshStrategy) GetType() entity.CronTaskKind {
	return entity.CronTaskKindRefresh
}

// Execute runs the command and returns the tail of its output.
func (s *RefreshStrategy) Execute(ctx context.Context, cronTask *entity.CronTask) (string, error) {
	cmd, err := s.resolve(cronTask)
	if err != nil {
		s.logger.Error("Failed to resolve refresh command", logger.ErrorField(err), logger.Field("cron_task_id", cronTask.ID))
		return "", err
	}
	return s.launcher.Run(ctx, cmd)
}

func (s *RefreshStrategy) resolve(cronTask *entity.CronTask) (launcher.Command, error) {
	if ref := strings.TrimSpace(cronTask.TaskRef); ref != "" {
		if cmd, ok := s.commands[ref]; ok {
			return cmd, nil
		}
	}

	if len(cronTask.Payload) == 0 {
		return launcher.Command{}, fmt.Errorf("no refresh command named %q", cronTask.TaskRef)
	}
	var payload RefreshPayload
	if err := json.Unmarshal(cronTask.Payload, &payload); err != nil {
		return launcher.Command{}, fmt.Errorf("failed to unmarshal cron task payload: %w", err)
	}
	if payload.Path == "" {
		return launcher.Command{}, fmt.Errorf("refresh payload has no path")
	}

	cmd := launcher.Command{
		Name: cronTask.Name,
		Path: payload.Path,
		Args: payload.Args,
		Dir:  payload.Dir,
	}
	if payload.Timeout != "" {
		timeout, err := time.ParseDuration(payload.Timeout)
		if err != nil {
			return launcher.Command{}, fmt.Errorf("invalid refresh timeout: %w", err)
		}
		cmd.Timeout = timeout
	}
	return cmd, nil
}
