package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agent-ops-dashboard",
	Short: "Operations dashboard for agent tasks, token usage, cron tasks and the signals autopilot",
	Long: `The dashboard ships as three binaries:

  dashboard-service serve   HTTP API and cron task scheduler
  autopilot run             one autopilot pass from the command line
  migrate up|down           postgres schema migrations`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
