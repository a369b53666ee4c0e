package dto

import (
	"transaction-analyzer/internal/models"
)

// SwitchTabRequest is the body of PUT /api/dashboard/tab.
type SwitchTabRequest struct {
	Tab string `json:"tab" validate:"required,tab"`
}

// ActionAccepted answers an action that was started and will settle in the
// background.
type ActionAccepted struct {
	Action     string `json:"action"`
	ResourceID string `json:"resource_id,omitempty"`
	Status     string `json:"status"`
}

// ActionLogQuery filters GET /api/actions.
type ActionLogQuery struct {
	Action  string
	Outcome string
	Limit   int
}

// ActionLogList is the response of GET /api/actions.
type ActionLogList struct {
	Actions []models.ActionLog `json:"actions"`
	Count   int                `json:"count"`
}

// DashboardResponse is the view-model plus the current button captions.
type DashboardResponse struct {
	models.DashboardState
	Labels map[string]string `json:"labels"`
}

func NewDashboardResponse(state models.DashboardState) DashboardResponse {
	return DashboardResponse{DashboardState: state, Labels: state.ButtonLabels()}
}

// UploadFile is a CSV file read fully into memory before the upload starts,
// so the source (a request body or a local file) can be released at once.
type UploadFile struct {
	Name string
	Data []byte
}
