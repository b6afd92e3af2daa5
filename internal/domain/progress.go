package domain

import (
	"time"

	"github.com/google/uuid"
)

// Progress is uniquely keyed by (user_id, problem_id); re-importing the same
// source record overwrites the row instead of duplicating it.
type Progress struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	ProblemID int       `gorm:"primaryKey;column:problem_id" json:"problem_id"`

	Status       string  `gorm:"not null;default:'todo';column:status" json:"status"`
	BestAccuracy float64 `gorm:"not null;default:0;column:best_accuracy" json:"best_accuracy"`
	TimeSpent    int     `gorm:"not null;default:0;column:time_spent" json:"time_spent"`

	LastSubmission *time.Time `gorm:"column:last_submission" json:"last_submission,omitempty"`
	SolvedAt       *time.Time `gorm:"column:solved_at" json:"solved_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Progress) TableName() string { return "progress" }
