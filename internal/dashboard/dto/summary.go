package dto

import (
	"encoding/json"

	"agent-ops-dashboard/internal/entity"
)

// SignalsResponse is the snapshot together with its freshness.
type SignalsResponse struct {
	GeneratedAt      *string              `json:"generated_at"`
	FreshnessMin     *int                 `json:"freshness_min"`
	Stale            bool                 `json:"stale"`
	TopOpportunities []entity.Opportunity `json:"top_opportunities"`
	Market           []entity.MarketQuote `json:"market"`
	Macro            json.RawMessage      `json:"macro,omitempty" swaggertype:"object"`
	News             json.RawMessage      `json:"news,omitempty" swaggertype:"object"`
}

// CronRow is a cron task rendered for the dashboard, with missing values shown as "-".
type CronRow struct {
	Name        string `json:"name"`
	CronExpr    string `json:"cron_expr"`
	Active      bool   `json:"active"`
	OwnerUserID string `json:"owner_user_id"`
	TaskRef     string `json:"task_ref"`
	UpdatedAt   string `json:"updated_at"`
}

// OrdersSummary counts the order book.
type OrdersSummary struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// SummaryResponse is the dashboard payload.
type SummaryResponse struct {
	TaskCounts   []entity.TaskStatusCount   `json:"task_counts"`
	TokenByModel []entity.TokenUsageByModel `json:"token_by_model"`
	RecentTasks  []entity.Task              `json:"recent_tasks"`
	CronRows     []CronRow                  `json:"cron_rows"`
	Orders       OrdersSummary              `json:"orders"`
	Performance  entity.Performance         `json:"performance"`
	Signals      SignalsFreshness           `json:"signals"`
	LastRun      *entity.AutopilotLogEntry  `json:"last_autopilot_run"`
}

// SignalsFreshness is the short freshness view shown on the dashboard.
type SignalsFreshness struct {
	GeneratedAt  *string `json:"generated_at"`
	FreshnessMin *int    `json:"freshness_min"`
	Stale        bool    `json:"stale"`
	TopCount     int     `json:"top_count"`
}

// HealthResponse mirrors the service health probe.
type HealthResponse struct {
	OK       bool   `json:"ok"`
	DBDriver string `json:"db_driver"`
	DBPath   string `json:"db_path,omitempty"`
	Exists   bool   `json:"exists"`
	DBError  string `json:"db_error,omitempty"`
}
