package service

import (
	"context"
	"os"

	"agent-ops-dashboard/internal/dashboard/dto"
	"agent-ops-dashboard/pkg/database"
	"agent-ops-dashboard/pkg/logger"
)

// SummaryService assembles the dashboard payload and the health probe.
type SummaryService interface {
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
	Health(ctx context.Context) dto.HealthResponse
}

// SummaryDeps groups the services the summary reads from.
type SummaryDeps struct {
	DB          *database.DB
	Tasks       TaskService
	Tokens      TokenService
	CronTasks   CronTaskService
	Orders      OrderService
	Performance PerformanceService
	Signals     SignalsService
	Autopilot   AutopilotService
}

// NewSummaryService creates a new summary service.
func NewSummaryService(deps SummaryDeps, log *logger.Logger) SummaryService {
	return &summaryService{deps: deps, logger: log}
}

type summaryService struct {
	deps   SummaryDeps
	logger *logger.Logger
}

// Summary returns task counts, token totals per model, the 20 most recent tasks, cron rows,
// the order book counts, performance, snapshot freshness and the last autopilot run.
func (s *summaryService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	counts, err := s.deps.Tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := s.deps.Tokens.SummaryByModel(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.deps.Tasks.ListRecent(ctx, defaultRecentTasks)
	if err != nil {
		return nil, err
	}
	cronRows, err := s.deps.CronTasks.CronRows(ctx)
	if err != nil {
		return nil, err
	}

	book := s.deps.Orders.Book(ctx)
	view := s.deps.Signals.Latest(ctx)

	return &dto.SummaryResponse{
		TaskCounts:   counts,
		TokenByModel: tokens,
		RecentTasks:  recent,
		CronRows:     cronRows,
		Orders: dto.OrdersSummary{
			Pending:   len(book.Pending),
			Completed: len(book.Completed),
		},
		Performance: s.deps.Performance.Performance(ctx),
		Signals: dto.SignalsFreshness{
			GeneratedAt:  view.Snapshot.GeneratedAt,
			FreshnessMin: view.FreshnessMin,
			Stale:        view.Stale,
			TopCount:     len(view.Snapshot.TopOpportunities),
		},
		LastRun: s.deps.Autopilot.Last(ctx),
	}, nil
}

// Health reports the database driver and whether it is reachable. For sqlite it also reports
// whether the database file exists.
func (s *summaryService) Health(ctx context.Context) dto.HealthResponse {
	db := s.deps.DB
	resp := dto.HealthResponse{OK: true, DBDriver: db.Driver, DBPath: db.Path}

	if db.Driver == database.DriverSQLite {
		_, err := os.Stat(db.Path)
		resp.Exists = err == nil
	}
	if err := db.Ping(); err != nil {
		s.logger.Warn("Database ping failed", logger.ErrorField(err))
		resp.OK = false
		resp.DBError = err.Error()
		return resp
	}
	if db.Driver != database.DriverSQLite {
		resp.Exists = true
	}
	return resp
}
