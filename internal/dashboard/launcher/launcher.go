package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"
)

// DefaultTimeout bounds a command that did not configure its own timeout.
const DefaultTimeout = 2 * time.Minute

// maxOutput is how much combined output is kept for logs and cron task status.
const maxOutput = 2000

// Command describes one external executable.
type Command struct {
	Name    string
	Path    string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// Launcher runs external refresh and ingest processes.
type Launcher interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

type processLauncher struct {
	log *logger.Logger
}

// New creates a Launcher backed by os/exec.
func New(log *logger.Logger) Launcher {
	return &processLauncher{log: log}
}

// Run executes cmd under its timeout and returns the tail of its combined output.
// A non-zero exit, a missing executable and a timeout are all returned as errors.
func (l *processLauncher) Run(ctx context.Context, cmd Command) (string, error) {
	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(runCtx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	// Children that inherit the output pipes must not keep Wait blocked past the deadline.
	c.WaitDelay = 2 * time.Second
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &out

	start := time.Now()
	err := c.Run()
	output := utils.TruncateTail(strings.TrimSpace(out.String()), maxOutput)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("%s timed out after %s", cmd.Name, timeout)
	}
	if err != nil {
		return output, fmt.Errorf("%s failed: %w", cmd.Name, err)
	}

	l.log.Debug("External process finished",
		logger.StringField("name", cmd.Name),
		logger.Field("duration", time.Since(start)))
	return output, nil
}
