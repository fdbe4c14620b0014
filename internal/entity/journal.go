package entity

import "time"

// JournalEntry is the immutable record of one order closure.
type JournalEntry struct {
	Ts        time.Time   `json:"ts"`
	OrderID   string      `json:"order_id"`
	Ticker    string      `json:"ticker"`
	State     string      `json:"state"`
	Score     float64     `json:"score"`
	Result    OrderResult `json:"result"`
	RMultiple float64     `json:"r_multiple"`
}

// AutopilotLogEntry summarises one orchestrator run.
type AutopilotLogEntry struct {
	Ts            time.Time `json:"ts"`
	Threshold     float64   `json:"threshold"`
	AssignedTo    string    `json:"assigned_to"`
	CreatedTasks  int       `json:"created_tasks"`
	CreatedOrders int       `json:"created_orders"`
	ClosedOrders  int       `json:"closed_orders"`
	TopCount      int       `json:"top_count"`
}

// Performance is the aggregate derived from completed orders and the journal.
type Performance struct {
	TotalClosed    int     `json:"total_closed"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Neutral        int     `json:"neutral"`
	WinRate        float64 `json:"win_rate"`
	ExpectancyR    float64 `json:"expectancy_r"`
	MaxDrawdownR   float64 `json:"max_drawdown_r"`
	JournalEntries int     `json:"journal_entries"`
}
