package migration_test

import (
	"context"
	"testing"

	"github.com/codeascent/coursemigrate/internal/data/repos/testutil"
	"github.com/codeascent/coursemigrate/internal/data/repos/user"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/identity"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/migration"
)

func TestUserMigratorRun(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	provider := identity.NewProvider(db, log)
	profiles := user.NewProfileRepo(db, log)
	ids := idmap.New()
	ctx := context.Background()

	users := []dump.SourceUser{
		{LegacyID: "legacy-1", Email: "one@example.com", Username: "one", TotalPoints: 100},
		{LegacyID: "legacy-2", Email: "two@example.com", Username: "two"},
		{LegacyID: "legacy-3"}, // partial auth record, no email
	}

	m := migration.NewUserMigrator(provider, profiles, ids, log)
	sum := m.Run(ctx, users)

	if sum.Processed != 3 || sum.Migrated != 2 || sum.Skipped != 1 || sum.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if ids.Len() != 2 {
		t.Fatalf("id map has %d entries, want 2", ids.Len())
	}
	if _, ok := ids.Get("legacy-3"); ok {
		t.Fatalf("skipped user must not be mapped")
	}

	destID, ok := ids.Get("legacy-1")
	if !ok {
		t.Fatalf("legacy-1 not mapped")
	}
	rows, err := profiles.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("get profiles: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d profiles, want 2", len(rows))
	}
	for _, row := range rows {
		if row.ID == destID && row.TotalPoints != 100 {
			t.Fatalf("profile fields not carried: %+v", row)
		}
	}
}

func TestUserMigratorRerunIsStable(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	provider := identity.NewProvider(db, log)
	profiles := user.NewProfileRepo(db, log)
	ctx := context.Background()

	users := []dump.SourceUser{
		{LegacyID: "legacy-1", Email: "one@example.com"},
	}

	ids := idmap.New()
	migration.NewUserMigrator(provider, profiles, ids, log).Run(ctx, users)
	firstID, _ := ids.Get("legacy-1")

	// Second run against the same destination, fresh map, as a re-run of
	// the whole job would do.
	rerunIDs := idmap.New()
	sum := migration.NewUserMigrator(provider, profiles, rerunIDs, log).Run(ctx, users)
	if sum.Migrated != 1 || sum.Failed != 0 {
		t.Fatalf("rerun summary: %+v", sum)
	}

	secondID, ok := rerunIDs.Get("legacy-1")
	if !ok || secondID != firstID {
		t.Fatalf("rerun resolved a different identity: %s vs %s", secondID, firstID)
	}

	count, err := profiles.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rerun duplicated profiles: count = %d", count)
	}
}

func TestUserMigratorResolvesPreexistingIdentity(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	provider := identity.NewProvider(db, log)
	profiles := user.NewProfileRepo(db, log)
	ids := idmap.New()
	ctx := context.Background()

	existing := testutil.SeedIdentity(t, ctx, db, "already@example.com")

	sum := migration.NewUserMigrator(provider, profiles, ids, log).Run(ctx, []dump.SourceUser{
		{LegacyID: "legacy-1", Email: "already@example.com"},
	})
	if sum.Migrated != 1 || sum.Failed != 0 {
		t.Fatalf("summary: %+v", sum)
	}

	mapped, ok := ids.Get("legacy-1")
	if !ok || mapped != existing.ID {
		t.Fatalf("expected mapping to existing identity %s, got %s", existing.ID, mapped)
	}
}
