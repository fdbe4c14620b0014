package entity

import (
	"time"

	"gorm.io/datatypes"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusBlocked   TaskStatus = "blocked"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// IsValid reports whether s is one of the allowed statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusRunning, TaskStatusDone, TaskStatusBlocked, TaskStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether a task in this status blocks a duplicate from being created.
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusPending || s == TaskStatusRunning
}

// TaskPriority is the urgency label of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "baja"
	TaskPriorityMedium TaskPriority = "media"
	TaskPriorityHigh   TaskPriority = "alta"
)

// NormalizePriority maps unknown values to media.
func NormalizePriority(p string) TaskPriority {
	switch TaskPriority(p) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return TaskPriority(p)
	}
	return TaskPriorityMedium
}

// Task is a unit of work assigned to a human or an agent.
type Task struct {
	ID          uint           `gorm:"primaryKey" json:"-"`
	TaskID      string         `gorm:"uniqueIndex;not null" json:"task_id"`
	Title       string         `gorm:"not null" json:"title"`
	Details     string         `json:"details"`
	AssignedBy  string         `json:"assigned_by"`
	AssignedTo  string         `json:"assigned_to"`
	Status      TaskStatus     `gorm:"index;not null" json:"status"`
	Fingerprint string         `gorm:"index;not null" json:"fingerprint"`
	Source      string         `json:"source"`
	Priority    TaskPriority   `json:"priority"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskStatusCount is one row of the grouped status count.
type TaskStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"c"`
}
