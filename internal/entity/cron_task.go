package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// CronTaskKind selects the strategy used when a cron task fires.
type CronTaskKind string

const (
	CronTaskKindTask      CronTaskKind = "task"
	CronTaskKindAutopilot CronTaskKind = "autopilot"
	CronTaskKindRefresh   CronTaskKind = "refresh"
	CronTaskKindHTTP      CronTaskKind = "http"
)

// CronExecutionStatus is the outcome of the last dispatch.
type CronExecutionStatus string

const (
	CronStatusCompleted CronExecutionStatus = "completed"
	CronStatusFailed    CronExecutionStatus = "failed"
)

// CronTask is a registered recurring job.
type CronTask struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	Name          string              `gorm:"not null" json:"name"`
	CronExpr      string              `gorm:"not null" json:"cron_expr"`
	Active        bool                `gorm:"not null" json:"active"`
	OwnerUserID   string              `json:"owner_user_id"`
	TaskRef       string              `json:"task_ref"`
	Kind          CronTaskKind        `gorm:"not null;default:task" json:"kind"`
	Payload       datatypes.JSON      `json:"payload,omitempty"`
	LastExecution sql.NullTime        `json:"last_execution"`
	NextExecution sql.NullTime        `json:"next_execution"`
	LastStatus    CronExecutionStatus `json:"last_status"`
	LastOutput    string              `json:"last_output"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (CronTask) TableName() string {
	return "cron_tasks"
}
