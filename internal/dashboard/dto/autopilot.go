package dto

// RunAutopilotRequest is the DTO for triggering an autopilot pass.
type RunAutopilotRequest struct {
	Threshold  *float64 `json:"threshold"`
	AssignedTo string   `json:"assigned_to"`
}
