package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/launcher"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/database"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(database.Config{Driver: database.DriverSQLite, Path: filepath.Join(t.TempDir(), "registry.db")})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db.DB))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return nil
}

type recordingEvents struct {
	mu     sync.Mutex
	runs   []entity.AutopilotLogEntry
	closed []entity.Order
}

func (e *recordingEvents) PublishAutopilotRun(_ context.Context, entry entity.AutopilotLogEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runs = append(e.runs, entry)
	return nil
}

func (e *recordingEvents) PublishOrderClosed(_ context.Context, order entity.Order) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = append(e.closed, order)
	return nil
}

type fakeLauncher struct {
	calls []string
	err   error
}

func (l *fakeLauncher) Run(_ context.Context, cmd launcher.Command) (string, error) {
	l.calls = append(l.calls, cmd.Name)
	return "", l.err
}

type orderFixture struct {
	dir      string
	service  *orderService
	journal  repository.TradeJournalRepository
	events   *recordingEvents
	notifier *recordingNotifier
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNop()
	journal := repository.NewTradeJournalRepository(filepath.Join(dir, "trade_journal.json"), 2000, log)
	events := &recordingEvents{}
	notifier := &recordingNotifier{}
	svc := NewOrderService(
		repository.NewOrderBookRepository(filepath.Join(dir, "paper_orders.json"), log),
		journal,
		events,
		notifier,
		log,
	).(*orderService)
	svc.now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
	return &orderFixture{dir: dir, service: svc, journal: journal, events: events, notifier: notifier}
}

func ptr(v float64) *float64 {
	return &v
}

func newCronTaskRepo(t *testing.T) repository.CronTaskRepository {
	t.Helper()
	return repository.NewCronTaskRepository(newTestDB(t).DB)
}
