package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/launcher"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xyzSnapshot = `{
  "generated_at": "2026-03-02T14:55:00Z",
  "top_opportunities": [
    {"ticker": "XYZ", "score": 65, "state": "READY", "regularMarketPrice": 50, "reasons": ["breakout", "volumen alto"]},
    {"ticker": "LOW", "score": 40, "state": "READY", "regularMarketPrice": 10}
  ],
  "market": [
    {"ticker": "XYZ", "regularMarketPrice": 50},
    {"ticker": "LOW", "regularMarketPrice": 10}
  ]
}`

type autopilotFixture struct {
	service      *autopilotService
	tasks        *taskService
	orders       *orderFixture
	launcher     *fakeLauncher
	snapshotPath string
}

func newAutopilotFixture(t *testing.T) *autopilotFixture {
	t.Helper()
	log := logger.NewNop()
	orders := newOrderFixture(t)
	tasks := newTaskService(t)
	fake := &fakeLauncher{err: errors.New("signals-refresh failed: exit status 1")}
	snapshotPath := filepath.Join(orders.dir, "signals_latest.json")

	svc := NewAutopilotService(AutopilotDeps{
		Tasks:    tasks,
		Orders:   orders.service,
		Signals:  repository.NewSignalsRepository(snapshotPath, time.Minute, log),
		RunLog:   repository.NewAutopilotLogRepository(filepath.Join(orders.dir, "autopilot_log.json"), 500, log),
		Events:   orders.events,
		Notifier: orders.notifier,
		Launcher: fake,
		RefreshCommands: []launcher.Command{
			{Name: "signals-refresh", Path: "python3"},
			{Name: "cards-generate", Path: "python3"},
		},
	}, log).(*autopilotService)
	svc.now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))

	return &autopilotFixture{service: svc, tasks: tasks, orders: orders, launcher: fake, snapshotPath: snapshotPath}
}

func (f *autopilotFixture) writeSnapshot(t *testing.T, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.snapshotPath, []byte(body), 0o644))
}

func TestAutopilotRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, xyzSnapshot)

	entry, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.CreatedTasks)
	assert.Equal(t, 1, entry.CreatedOrders)
	assert.Equal(t, 0, entry.ClosedOrders)
	assert.Equal(t, 2, entry.TopCount)
	assert.Equal(t, 60.0, entry.Threshold)
	assert.Equal(t, []string{"signals-refresh", "cards-generate"}, f.launcher.calls)

	tasks, err := f.tasks.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, entity.TaskPriorityHigh, tasks[0].Priority)
	assert.Equal(t, "auto-signals", tasks[0].Source)
	assert.Equal(t, "trader-agent", tasks[0].AssignedTo)
	assert.Contains(t, tasks[0].Title, "XYZ")
	assert.Contains(t, tasks[0].Title, "65")
	assert.Contains(t, tasks[0].Details, "breakout; volumen alto")
	assert.JSONEq(t, `{"ticker":"XYZ","score":65,"state":"READY","reasons":["breakout","volumen alto"]}`, string(tasks[0].Metadata))

	book := f.orders.service.Book(ctx)
	require.Len(t, book.Pending, 1)
	assert.Equal(t, "XYZ", book.Pending[0].Ticker)
	assert.Equal(t, 50.0, *book.Pending[0].EntryPrice)
	assert.Equal(t, 53.0, *book.Pending[0].TargetPrice)
	assert.Equal(t, 48.5, *book.Pending[0].StopPrice)

	second, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedTasks)
	assert.Equal(t, 0, second.CreatedOrders)

	tasks, err = f.tasks.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Len(t, f.orders.service.Book(ctx).Pending, 1)

	logs := f.service.Logs(ctx, 0)
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].CreatedTasks)
	assert.Equal(t, 0, logs[1].CreatedTasks)
	assert.True(t, second.Ts.Equal(logs[1].Ts))
	last := f.service.Last(ctx)
	require.NotNil(t, last)
	assert.Equal(t, logs[1].CreatedOrders, last.CreatedOrders)
	assert.Len(t, f.orders.events.runs, 2)
	// Only the first run had activity worth notifying.
	assert.Len(t, f.orders.notifier.messages, 1)
}

func TestAutopilotClosesSameRunOnGap(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, `{
	  "generated_at": "2026-03-02T14:55:00Z",
	  "top_opportunities": [{"ticker": "GAP", "score": "90", "state": "triggered", "regularMarketPrice": 100}],
	  "market": [{"ticker": "GAP", "regularMarketPrice": 110}]
	}`)

	entry, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.CreatedOrders)
	assert.Equal(t, 1, entry.ClosedOrders)

	book := f.orders.service.Book(ctx)
	assert.Empty(t, book.Pending)
	require.Len(t, book.Completed, 1)
	assert.Equal(t, entity.ResultWon, *book.Completed[0].Result)
}

func TestAutopilotNonTradableStateCreatesTaskOnly(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, `{"top_opportunities": [{"ticker": "WAIT", "score": 80, "state": "WATCH", "regularMarketPrice": 20}]}`)

	entry, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.CreatedTasks)
	assert.Equal(t, 0, entry.CreatedOrders)
	assert.Empty(t, f.orders.service.Book(ctx).Pending)
}

func TestAutopilotChangedReasonsCreateNewTask(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, `{"top_opportunities": [{"ticker": "XYZ", "score": 65, "state": "WATCH", "reasons": ["a"]}]}`)

	_, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)

	f.writeSnapshot(t, `{"top_opportunities": [{"ticker": "XYZ", "score": 65, "state": "WATCH", "reasons": ["a", "b2"]}]}`)
	entry, err := f.service.Run(ctx, 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.CreatedTasks)
}

func TestAutopilotNonFiniteSnapshotValues(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	f.writeSnapshot(t, `{"top_opportunities": [{"ticker": "INF", "score": 90, "state": "READY", "regularMarketPrice": "Infinity"}]}`)

	var entry entity.AutopilotLogEntry
	require.NotPanics(t, func() {
		var err error
		entry, err = f.service.Run(ctx, 60, "trader-agent")
		require.NoError(t, err)
	})
	assert.Equal(t, 1, entry.CreatedOrders)
	pending := f.orders.service.Book(ctx).Pending
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].EntryPrice)
}

func TestAutopilotScoreThresholdBounds(t *testing.T) {
	tests := []struct {
		name      string
		score     string
		threshold float64
	}{
		{name: "nan score at top threshold", score: `"NaN"`, threshold: 100},
		{name: "negative score at zero threshold", score: `-5`, threshold: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAutopilotFixture(t)
			f.writeSnapshot(t, `{"top_opportunities": [{"ticker": "ODD", "score": `+tt.score+`, "state": "READY", "regularMarketPrice": 10}]}`)

			entry, err := f.service.Run(context.Background(), tt.threshold, "trader-agent")
			require.NoError(t, err)
			assert.Equal(t, 0, entry.CreatedTasks)
			assert.Equal(t, 0, entry.CreatedOrders)
		})
	}
}

func TestAutopilotMissingSnapshot(t *testing.T) {
	f := newAutopilotFixture(t)

	entry, err := f.service.Run(context.Background(), 60, "trader-agent")
	require.NoError(t, err)
	assert.Equal(t, entity.AutopilotLogEntry{
		Ts:         f.service.now(),
		Threshold:  60,
		AssignedTo: "trader-agent",
	}, entry)
}

func TestClampThreshold(t *testing.T) {
	assert.Equal(t, 0.0, ClampThreshold(-5))
	assert.Equal(t, 100.0, ClampThreshold(140))
	assert.Equal(t, 72.5, ClampThreshold(72.5))
}

func TestAutopilotLogsLimit(t *testing.T) {
	ctx := context.Background()
	f := newAutopilotFixture(t)
	assert.Nil(t, f.service.Last(ctx))

	for i := 0; i < 3; i++ {
		_, err := f.service.Run(ctx, float64(50+i), "trader-agent")
		require.NoError(t, err)
	}

	logs := f.service.Logs(ctx, 2)
	require.Len(t, logs, 2)
	assert.Equal(t, 51.0, logs[0].Threshold)
	assert.Equal(t, 52.0, logs[1].Threshold)
}
