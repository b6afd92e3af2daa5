package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the public profile row keyed by the destination identity id.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Username  string    `gorm:"column:username" json:"username"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	PhotoURL  string    `gorm:"column:photo_url" json:"photo_url"`
	Bio       string    `gorm:"column:bio" json:"bio"`
	Role      string    `gorm:"column:role" json:"role"`

	TotalPoints     int     `gorm:"not null;default:0;column:total_points" json:"total_points"`
	ProblemsSolved  int     `gorm:"not null;default:0;column:problems_solved" json:"problems_solved"`
	CurrentStreak   int     `gorm:"not null;default:0;column:current_streak" json:"current_streak"`
	AverageAccuracy float64 `gorm:"not null;default:0;column:average_accuracy" json:"average_accuracy"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }
