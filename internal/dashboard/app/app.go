// Package app wires the dashboard's stores, services and strategies from configuration.
// The HTTP server and the autopilot CLI share it.
package app

import (
	"fmt"
	"time"

	"agent-ops-dashboard/internal/dashboard/config"
	"agent-ops-dashboard/internal/dashboard/launcher"
	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/dashboard/service"
	"agent-ops-dashboard/internal/dashboard/strategy"
	"agent-ops-dashboard/pkg/database"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/redis"
	"agent-ops-dashboard/pkg/telegram"
)

const httpStrategyTimeout = 30 * time.Second

// App holds the initialised services.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	DB     *database.DB

	Tasks       service.TaskService
	Tokens      service.TokenService
	CronTasks   service.CronTaskService
	Orders      service.OrderService
	Signals     service.SignalsService
	Performance service.PerformanceService
	Autopilot   service.AutopilotService
	Summary     service.SummaryService
	Scheduler   service.SchedulerService

	redisClient *redis.Client
}

// New opens the database and optional Redis connection and builds every service.
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.NewDB(database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate || db.Driver == database.DriverSQLite {
		if err := repository.AutoMigrate(db.DB); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	a := &App{Config: cfg, Logger: log, DB: db}

	events := repository.NewNoopEventRepository()
	if cfg.Redis.Enabled {
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		a.redisClient = client
		events = repository.NewRedisEventRepository(client.Client, cfg.Redis.StreamMaxLen)
	}

	notifier := telegram.NewNoopNotifier()
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize telegram notifier: %w", err)
		}
	}

	// Repositories
	taskRepo := repository.NewTaskRepository(db.DB)
	tokenRepo := repository.NewTokenUsageRepository(db.DB)
	cronTaskRepo := repository.NewCronTaskRepository(db.DB)
	orderRepo := repository.NewOrderBookRepository(cfg.Storage.OrdersPath, log)
	journalRepo := repository.NewTradeJournalRepository(cfg.Storage.JournalPath, cfg.Storage.JournalMaxEntries, log)
	runLogRepo := repository.NewAutopilotLogRepository(cfg.Storage.AutopilotLogPath, cfg.Storage.AutopilotLogMaxEntries, log)
	signalsRepo := repository.NewSignalsRepository(cfg.Signals.SnapshotPath, cfg.Signals.CacheTTL, log)

	// Services
	procLauncher := launcher.New(log)
	refreshCommands := RefreshCommands(cfg.Autopilot.RefreshCommands)

	a.Tasks = service.NewTaskService(taskRepo, log)
	a.Tokens = service.NewTokenService(tokenRepo, log)
	a.CronTasks = service.NewCronTaskService(cronTaskRepo, log)
	a.Orders = service.NewOrderService(orderRepo, journalRepo, events, notifier, log)
	a.Signals = service.NewSignalsService(signalsRepo, cfg.Signals.StaleAfterMinutes)
	a.Performance = service.NewPerformanceService(a.Orders, journalRepo)
	a.Autopilot = service.NewAutopilotService(service.AutopilotDeps{
		Tasks:           a.Tasks,
		Orders:          a.Orders,
		Signals:         signalsRepo,
		RunLog:          runLogRepo,
		Events:          events,
		Notifier:        notifier,
		Launcher:        procLauncher,
		RefreshCommands: refreshCommands,
	}, log)
	a.Summary = service.NewSummaryService(service.SummaryDeps{
		DB:          db,
		Tasks:       a.Tasks,
		Tokens:      a.Tokens,
		CronTasks:   a.CronTasks,
		Orders:      a.Orders,
		Performance: a.Performance,
		Signals:     a.Signals,
		Autopilot:   a.Autopilot,
	}, log)

	pollingInterval, err := time.ParseDuration(cfg.Scheduler.PollingInterval)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid polling interval: %w", err)
	}
	a.Scheduler = service.NewSchedulerService(cronTaskRepo, []strategy.CronTaskStrategy{
		strategy.NewTaskStrategy(a.Tasks, log),
		strategy.NewAutopilotStrategy(a.Autopilot, cfg.Autopilot.Threshold, cfg.Autopilot.AssignedTo, log),
		strategy.NewRefreshStrategy(procLauncher, refreshCommands, log),
		strategy.NewHTTPStrategy(httpStrategyTimeout, log),
	}, log, pollingInterval)

	return a, nil
}

// RefreshCommands converts the configured refresh commands to launcher commands.
func RefreshCommands(cmds []config.RefreshCommand) []launcher.Command {
	out := make([]launcher.Command, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, launcher.Command{
			Name:    c.Name,
			Path:    c.Path,
			Args:    c.Args,
			Dir:     c.Dir,
			Timeout: c.Timeout,
		})
	}
	return out
}

// Close releases the Redis and database connections.
func (a *App) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Warn("Failed to close redis client", logger.ErrorField(err))
		}
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Warn("Failed to close database", logger.ErrorField(err))
	}
}
