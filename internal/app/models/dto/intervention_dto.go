package dto

import (
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/pkg/helpers"
)

// CreateInterventionRequest is the body of POST /student/{id}/intervention
type CreateInterventionRequest struct {
	Recommendation string  `json:"recommendation" binding:"required" example:"Place on academic watch and recommend optional tutoring."`
	Notes          *string `json:"notes" example:"Called parents"`
}

// UpdateInterventionRequest is the body of PUT /intervention/{id}; both fields are optional
type UpdateInterventionRequest struct {
	Status *string `json:"status" binding:"omitempty,max=50" example:"Completed"`
	Notes  *string `json:"notes" example:"Attended two tutoring sessions"`
}

// InterventionResponse is one entry of a student's intervention history
type InterventionResponse struct {
	ID             int64   `json:"id" example:"1"`
	Recommendation string  `json:"recommendation"`
	Status         string  `json:"status" example:"Pending"`
	Notes          *string `json:"notes"`
	CreatedAt      string  `json:"created_at" example:"2025-04-23 12:01"`
}

// NewInterventionResponse converts a model into its response form
func NewInterventionResponse(i *models.Intervention) InterventionResponse {
	return InterventionResponse{
		ID:             i.ID,
		Recommendation: i.Recommendation,
		Status:         i.Status,
		Notes:          i.Notes,
		CreatedAt:      helpers.FormatTimestamp(i.CreatedAt),
	}
}

// NewInterventionListResponse converts a list of models, never returning nil
func NewInterventionListResponse(list []*models.Intervention) []InterventionResponse {
	out := make([]InterventionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, NewInterventionResponse(i))
	}
	return out
}
