package dto

// PredictionResponse is the risk assessment for one student
type PredictionResponse struct {
	StudentID       int64  `json:"student_id" example:"1"`
	StudentName     string `json:"student_name" example:"Jane Doe"`
	Prediction      int    `json:"prediction" example:"1"`
	PredictionLabel string `json:"prediction_label" example:"At Risk"`
	Recommendation  string `json:"recommendation"`
	Explanation     string `json:"explanation"`
}
