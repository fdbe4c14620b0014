package launcher

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestRunCapturesOutput(t *testing.T) {
	sh := requireShell(t)
	l := New(logger.NewNop())

	out, err := l.Run(context.Background(), Command{Name: "echo", Path: sh, Args: []string{"-c", "echo refreshed"}})

	require.NoError(t, err)
	assert.Equal(t, "refreshed", out)
}

func TestRunKeepsOutputTailValidUTF8(t *testing.T) {
	sh := requireShell(t)
	l := New(logger.NewNop())

	script := `i=0; while [ $i -lt 1500 ]; do printf 'á'; i=$((i+1)); done; printf x`
	out, err := l.Run(context.Background(), Command{Name: "accents", Path: sh, Args: []string{"-c", script}})

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), maxOutput)
	assert.True(t, strings.HasSuffix(out, "áx"))
}

func TestRunReportsNonZeroExit(t *testing.T) {
	sh := requireShell(t)
	l := New(logger.NewNop())

	_, err := l.Run(context.Background(), Command{Name: "fail", Path: sh, Args: []string{"-c", "exit 3"}})

	assert.Error(t, err)
}

func TestRunReportsTimeout(t *testing.T) {
	sh := requireShell(t)
	l := New(logger.NewNop())

	_, err := l.Run(context.Background(), Command{
		Name:    "slow",
		Path:    sh,
		Args:    []string{"-c", "exec sleep 5"},
		Timeout: 50 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestRunReportsMissingExecutable(t *testing.T) {
	l := New(logger.NewNop())

	_, err := l.Run(context.Background(), Command{Name: "missing", Path: "/nonexistent/refresh-signals"})

	assert.Error(t, err)
}
