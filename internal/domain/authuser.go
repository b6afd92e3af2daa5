package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is a row in the destination identity system. The migration only
// ever creates or resolves these by email; legacy ids are carried along as
// metadata so a provisioned identity can be traced back to the source system.
type AuthUser struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash   string    `gorm:"not null;column:password_hash" json:"-"`
	EmailConfirmed bool      `gorm:"not null;default:false;column:email_confirmed" json:"email_confirmed"`
	LegacyID       string    `gorm:"index;column:legacy_id" json:"legacy_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (AuthUser) TableName() string { return "auth_user" }
