package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username     string    `json:"username" db:"username" example:"advisor1"`                // Unique login name
	PasswordHash string    `json:"-" db:"password_hash"`                                     // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Registration time
}
