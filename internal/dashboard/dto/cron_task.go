package dto

import (
	"database/sql"
	"encoding/json"
	"time"
)

// CreateCronTaskRequest defines the DTO for registering a cron task.
type CreateCronTaskRequest struct {
	Name        string          `json:"name"`
	CronExpr    string          `json:"cron_expr"`
	Active      *bool           `json:"active"`
	OwnerUserID string          `json:"owner_user_id"`
	TaskRef     string          `json:"task_ref"`
	Kind        string          `json:"kind"`
	Payload     json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
}

// UpdateCronTaskRequest defines the DTO for updating a cron task.
type UpdateCronTaskRequest struct {
	Name        string          `json:"name"`
	CronExpr    string          `json:"cron_expr"`
	Active      bool            `json:"active"`
	OwnerUserID string          `json:"owner_user_id"`
	TaskRef     string          `json:"task_ref"`
	Kind        string          `json:"kind"`
	Payload     json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
}

// CronTaskResponse is the DTO for API responses containing cron task details.
type CronTaskResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	CronExpr      string          `json:"cron_expr"`
	Active        bool            `json:"active"`
	OwnerUserID   string          `json:"owner_user_id"`
	TaskRef       string          `json:"task_ref"`
	Kind          string          `json:"kind"`
	Payload       json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
	NextExecution sql.NullTime    `json:"next_execution" swaggertype:"string" format:"date-time"`
	LastExecution sql.NullTime    `json:"last_execution" swaggertype:"string" format:"date-time"`
	LastStatus    string          `json:"last_status"`
	LastOutput    string          `json:"last_output"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AutopilotCronPayload is the payload of an autopilot cron task.
type AutopilotCronPayload struct {
	Threshold  *float64 `json:"threshold"`
	AssignedTo string   `json:"assigned_to"`
}

// TaskCronPayload is the optional payload of a task cron task.
type TaskCronPayload struct {
	Details  string `json:"details"`
	Priority string `json:"priority"`
}
