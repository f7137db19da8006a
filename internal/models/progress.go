package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressDB tracks how far a user got through a material
type ProgressDB struct {
	ProgressID           uuid.UUID `json:"id" db:"progress_id"`                              // Primary key
	UserID               uuid.UUID `json:"user_id" db:"user_id"`                             // Reader
	MaterialID           uuid.UUID `json:"material_id" db:"material_id"`                     // Material being read
	PagesRead            int       `json:"pages_read" db:"pages_read"`                       // Pages read so far
	TimeSpent            int       `json:"time_spent" db:"time_spent"`                       // Cumulative seconds spent
	CompletionPercentage float64   `json:"completion_percentage" db:"completion_percentage"` // 0-100
	LastAccessed         time.Time `json:"last_accessed" db:"last_accessed"`                 // Last interaction
	CreatedAt            time.Time `json:"created_at" db:"created_at"`                       // Creation timestamp
}
