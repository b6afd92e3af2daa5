package domain

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	Plan   string    `gorm:"not null;column:plan" json:"plan"`
	Active bool      `gorm:"not null;default:false;column:active" json:"active"`

	StartedAt time.Time  `gorm:"not null;column:started_at" json:"started_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscription" }
