package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agent-ops-dashboard/internal/dashboard/app"
	"agent-ops-dashboard/internal/dashboard/config"
	"agent-ops-dashboard/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	threshold  float64
	assignedTo string
)

// withApp loads configuration, builds the app and runs fn with a signal-aware context.
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, "console")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	a, err := app.New(cfg, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one autopilot pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			t := a.Config.Autopilot.Threshold
			if cmd.Flags().Changed("threshold") {
				t = threshold
			}
			who := a.Config.Autopilot.AssignedTo
			if assignedTo != "" {
				who = assignedTo
			}
			entry, err := a.Autopilot.Run(ctx, t, who)
			if err != nil {
				return err
			}
			return printJSON(entry)
		})
	},
}

var closeOrderCmd = &cobra.Command{
	Use:   "close-order <order-id> <result>",
	Short: "Complete a pending order with ganada, perdida, neutral or simulada",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			order, err := a.Orders.CompleteManually(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(order)
		})
	},
}

var autoCloseCmd = &cobra.Command{
	Use:   "auto-close",
	Short: "Close pending orders against the latest market snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			closed, err := a.Orders.AutoCloseFromMarket(ctx, a.Signals.Latest(ctx).Snapshot)
			if err != nil {
				return err
			}
			fmt.Printf("Closed %d orders.\n", closed)
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			return printJSON(a.Performance.Performance(ctx))
		})
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "autopilot", SilenceUsage: true}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	runCmd.Flags().Float64VarP(&threshold, "threshold", "t", 60, "Minimum opportunity score, clamped to [0, 100]")
	runCmd.Flags().StringVarP(&assignedTo, "assigned-to", "a", "", "Assignee of created tasks")

	rootCmd.AddCommand(runCmd, closeOrderCmd, autoCloseCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing autopilot CLI: %s\n", err)
		os.Exit(1)
	}
}
