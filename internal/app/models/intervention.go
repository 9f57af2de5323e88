package models

import "time"

// DefaultInterventionStatus is assigned to newly logged interventions
const DefaultInterventionStatus = "Pending"

// Intervention defines a remedial action logged against a student
type Intervention struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	StudentID      int64     `json:"student_id" db:"student_id" example:"3"`
	Recommendation string    `json:"recommendation" db:"recommendation"`
	Status         string    `json:"status" db:"status" example:"Pending"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
