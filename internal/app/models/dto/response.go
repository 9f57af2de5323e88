package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Student updated successfully"`
}

// CreatedResponse is returned when a record is created
type CreatedResponse struct {
	Message string `json:"message" example:"Student added successfully"`
	ID      int64  `json:"id" example:"1"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
