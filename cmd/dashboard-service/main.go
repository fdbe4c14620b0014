package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agent-ops-dashboard/internal/dashboard/app"
	"agent-ops-dashboard/internal/dashboard/config"
	delivery "agent-ops-dashboard/internal/dashboard/delivery/http"
	_ "agent-ops-dashboard/internal/dashboard/docs"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard API and the cron task scheduler",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewWithFile(cfg.Logger.Level, cfg.Logger.Encoding, logger.FileOptions{
		Path:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service", logger.StringField("name", cfg.App.Name), logger.StringField("env", cfg.App.Env))

	a, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize dashboard", logger.ErrorField(err))
	}
	defer a.Close()

	if cfg.Scheduler.Enabled {
		utils.GoSafe(func() { a.Scheduler.Start(ctx) })
	}

	e := echo.New()
	e.HideBanner = true

	apiV1 := e.Group("/api/v1")
	delivery.NewSummaryHandler(a.Summary, appLogger).RegisterRoutes(apiV1)
	delivery.NewPerformanceHandler(a.Performance, appLogger).RegisterRoutes(apiV1)
	delivery.NewTaskHandler(a.Tasks, appLogger).RegisterRoutes(apiV1.Group("/tasks"))
	delivery.NewTokenHandler(a.Tokens, appLogger).RegisterRoutes(apiV1.Group("/tokens"))
	delivery.NewCronTaskHandler(a.CronTasks, appLogger).RegisterRoutes(apiV1.Group("/crons"))
	delivery.NewOrderHandler(a.Orders, a.Signals, appLogger).RegisterRoutes(apiV1.Group("/orders"))
	delivery.NewSignalsHandler(a.Signals).RegisterRoutes(apiV1.Group("/signals"))
	delivery.NewAutopilotHandler(a.Autopilot, cfg.Autopilot.MaxRunsPerMinute, cfg.Autopilot.Threshold, cfg.Autopilot.AssignedTo, appLogger).
		RegisterRoutes(apiV1.Group("/autopilot"))

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.StringField("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Agent Ops Dashboard API
// @version 1.0
// @description Task registry, token accounting, cron tasks, simulated orders and the signals autopilot.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
