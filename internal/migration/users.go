package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/identity"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// UserMigrator resolves-or-creates a destination identity for each source
// user and upserts the matching profile row. Every successful resolution
// grows the identity map; email is the durable natural key because the
// destination does not recognize legacy ids.
type UserMigrator struct {
	provider identity.Provider
	profiles repos.ProfileRepo
	ids      *idmap.Map
	log      *logger.Logger
}

func NewUserMigrator(provider identity.Provider, profiles repos.ProfileRepo, ids *idmap.Map, baseLog *logger.Logger) *UserMigrator {
	return &UserMigrator{
		provider: provider,
		profiles: profiles,
		ids:      ids,
		log:      baseLog.With("phase", "users"),
	}
}

func (m *UserMigrator) Run(ctx context.Context, users []dump.SourceUser) Summary {
	var sum Summary

	for _, u := range users {
		if u.Email == "" {
			m.log.Warn("skipping user without email", "legacy_id", u.LegacyID)
			sum.Add(OutcomeSkipped)
			continue
		}

		destID, err := m.resolve(ctx, u)
		if err != nil {
			m.log.Error("failed to provision identity", "email", u.Email, "error", err)
			sum.Add(OutcomeFailed)
			continue
		}

		// Record the mapping before the profile write: a failed profile
		// upsert is retryable, but downstream phases still need the id.
		m.ids.Put(u.LegacyID, destID)

		if err := m.profiles.Upsert(ctx, nil, profileRow(destID, u)); err != nil {
			m.log.Error("failed to upsert profile", "email", u.Email, "user_id", destID, "error", err)
			sum.Add(OutcomeFailed)
			continue
		}
		sum.Add(OutcomeMigrated)
	}

	m.log.Info("user migration finished",
		"processed", sum.Processed,
		"migrated", sum.Migrated,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"mapped", m.ids.Len(),
	)
	return sum
}

// resolve finds an existing identity by email, otherwise provisions one.
// A create that loses to an already-registered identity falls back to
// re-resolving by email rather than aborting.
func (m *UserMigrator) resolve(ctx context.Context, u dump.SourceUser) (uuid.UUID, error) {
	id, found, err := m.provider.FindByEmail(ctx, nil, u.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if found {
		return id, nil
	}

	id, err = m.provider.Create(ctx, nil, identity.NewIdentity{
		Email:    u.Email,
		Password: u.Password,
		LegacyID: u.LegacyID,
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, identity.ErrEmailTaken) {
		return uuid.Nil, err
	}

	m.log.Info("identity already registered, re-resolving", "email", u.Email)
	id, found, err = m.provider.FindByEmail(ctx, nil, u.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if !found {
		return uuid.Nil, identity.ErrEmailTaken
	}
	return id, nil
}

func profileRow(destID uuid.UUID, u dump.SourceUser) *types.User {
	return &types.User{
		ID:        destID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhotoURL:  u.PhotoURL,
		Bio:       u.Bio,
		Role:      u.Role,

		TotalPoints:     u.TotalPoints,
		ProblemsSolved:  u.ProblemsSolved,
		CurrentStreak:   u.CurrentStreak,
		AverageAccuracy: u.AverageAccuracy,
	}
}
