package config

import (
	"time"

	"agent-ops-dashboard/pkg/config"
)

// Storage holds the locations of the file-backed stores.
type Storage struct {
	OrdersPath             string `mapstructure:"orders_path"`
	JournalPath            string `mapstructure:"journal_path"`
	AutopilotLogPath       string `mapstructure:"autopilot_log_path"`
	JournalMaxEntries      int    `mapstructure:"journal_max_entries"`
	AutopilotLogMaxEntries int    `mapstructure:"autopilot_log_max_entries"`
}

// Signals holds the snapshot reader configuration.
type Signals struct {
	SnapshotPath      string        `mapstructure:"snapshot_path"`
	StaleAfterMinutes int           `mapstructure:"stale_after_minutes"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
}

// RefreshCommand is an external executable run before every autopilot pass.
type RefreshCommand struct {
	Name    string        `mapstructure:"name"`
	Path    string        `mapstructure:"path"`
	Args    []string      `mapstructure:"args"`
	Dir     string        `mapstructure:"dir"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Autopilot holds the orchestrator defaults.
type Autopilot struct {
	Threshold        float64          `mapstructure:"threshold"`
	AssignedTo       string           `mapstructure:"assigned_to"`
	MaxRunsPerMinute int              `mapstructure:"max_runs_per_minute"`
	RefreshCommands  []RefreshCommand `mapstructure:"refresh_commands"`
}

// Scheduler holds the cron task poller configuration.
type Scheduler struct {
	Enabled         bool   `mapstructure:"enabled"`
	PollingInterval string `mapstructure:"polling_interval"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Storage   Storage         `mapstructure:"storage"`
	Signals   Signals         `mapstructure:"signals"`
	Autopilot Autopilot       `mapstructure:"autopilot"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Telegram  Telegram        `mapstructure:"telegram"`
}

// Load loads the dashboard configuration from the given path and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "agent-ops-dashboard"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = "json"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "data/agent_activity_registry.db"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Redis.StreamMaxLen == 0 {
		c.Redis.StreamMaxLen = 1000
	}
	if c.Storage.OrdersPath == "" {
		c.Storage.OrdersPath = "data/paper_orders.json"
	}
	if c.Storage.JournalPath == "" {
		c.Storage.JournalPath = "data/trade_journal.json"
	}
	if c.Storage.AutopilotLogPath == "" {
		c.Storage.AutopilotLogPath = "data/autopilot_log.json"
	}
	if c.Storage.JournalMaxEntries <= 0 {
		c.Storage.JournalMaxEntries = 2000
	}
	if c.Storage.AutopilotLogMaxEntries <= 0 {
		c.Storage.AutopilotLogMaxEntries = 500
	}
	if c.Signals.SnapshotPath == "" {
		c.Signals.SnapshotPath = "data/signals_latest.json"
	}
	if c.Signals.StaleAfterMinutes <= 0 {
		c.Signals.StaleAfterMinutes = 20
	}
	if c.Signals.CacheTTL <= 0 {
		c.Signals.CacheTTL = 5 * time.Minute
	}
	if c.Autopilot.Threshold == 0 {
		c.Autopilot.Threshold = 60
	}
	if c.Autopilot.AssignedTo == "" {
		c.Autopilot.AssignedTo = "trader-agent"
	}
	if c.Autopilot.MaxRunsPerMinute <= 0 {
		c.Autopilot.MaxRunsPerMinute = 6
	}
	for i := range c.Autopilot.RefreshCommands {
		if c.Autopilot.RefreshCommands[i].Timeout <= 0 {
			c.Autopilot.RefreshCommands[i].Timeout = 2 * time.Minute
		}
	}
	if c.Scheduler.PollingInterval == "" {
		c.Scheduler.PollingInterval = "30s"
	}
}
