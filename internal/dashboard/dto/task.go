package dto

import (
	"encoding/json"

	"agent-ops-dashboard/internal/entity"
)

// CreateTaskRequest is the DTO for creating a task.
type CreateTaskRequest struct {
	Title      string          `json:"title"`
	Details    string          `json:"details"`
	AssignedTo string          `json:"assigned_to"`
	AssignedBy string          `json:"assigned_by"`
	Priority   string          `json:"priority"`
	Source     string          `json:"source"`
	Metadata   json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// CreateTaskResponse reports the stored task and whether it was newly created.
type CreateTaskResponse struct {
	Created bool         `json:"created"`
	Task    *entity.Task `json:"task,omitempty"`
}

// UpdateTaskStatusRequest is the DTO for a status transition.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
