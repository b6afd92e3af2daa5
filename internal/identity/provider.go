// Package identity is the destination identity-provisioning boundary:
// create-or-resolve an identity by email. The migration depends only on
// this capability shape, not on a specific identity backend.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// ErrEmailTaken reports that the destination already holds an identity for
// the email. Callers fall back to re-resolving by email instead of
// aborting.
var ErrEmailTaken = errors.New("identity email already taken")

// TempPassword is assigned when the export carries no usable credential.
// Migrated users reset it through the normal recovery flow.
const TempPassword = "TemporaryPass123!"

type NewIdentity struct {
	Email    string
	Password string // legacy bcrypt hash or empty
	LegacyID string
}

type Provider interface {
	FindByEmail(ctx context.Context, tx *gorm.DB, email string) (uuid.UUID, bool, error)
	Create(ctx context.Context, tx *gorm.DB, in NewIdentity) (uuid.UUID, error)
}

type provider struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProvider(db *gorm.DB, baseLog *logger.Logger) Provider {
	return &provider{db: db, log: baseLog.With("service", "IdentityProvider")}
}

func (p *provider) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (uuid.UUID, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = p.db
	}

	var row types.AuthUser
	err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return row.ID, true, nil
}

func (p *provider) Create(ctx context.Context, tx *gorm.DB, in NewIdentity) (uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = p.db
	}

	hash, err := passwordHash(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	row := &types.AuthUser{
		ID:             uuid.New(),
		Email:          in.Email,
		PasswordHash:   hash,
		EmailConfirmed: true,
		LegacyID:       in.LegacyID,
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, ErrEmailTaken
	}
	return row.ID, nil
}

// passwordHash reuses a legacy bcrypt hash verbatim and otherwise hashes
// the temporary password.
func passwordHash(legacy string) (string, error) {
	if strings.HasPrefix(legacy, "$2a$") || strings.HasPrefix(legacy, "$2b$") || strings.HasPrefix(legacy, "$2y$") {
		return legacy, nil
	}
	raw, err := bcrypt.GenerateFromPassword([]byte(TempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
