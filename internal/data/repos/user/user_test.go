package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codeascent/coursemigrate/internal/data/repos/testutil"
	"github.com/codeascent/coursemigrate/internal/data/repos/user"
	types "github.com/codeascent/coursemigrate/internal/domain"
)

func TestProfileUpsertOverwrites(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewProfileRepo(db, testutil.Logger(t))
	ctx := context.Background()
	id := uuid.New()

	if err := repo.Upsert(ctx, nil, &types.User{ID: id, Email: "a@example.com", TotalPoints: 10}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, nil, &types.User{ID: id, Email: "a@example.com", TotalPoints: 250, Role: "admin"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].TotalPoints != 250 || rows[0].Role != "admin" {
		t.Fatalf("row not overwritten: %+v", rows[0])
	}
}

func TestProfileGetByIDsEmpty(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewProfileRepo(db, testutil.Logger(t))

	rows, err := repo.GetByIDs(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

func TestProgressUpsertBatchCompositeKey(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewProgressRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()

	first := []*types.Progress{
		{UserID: userID, ProblemID: 1, Status: "attempted", TimeSpent: 30},
		{UserID: userID, ProblemID: 2, Status: "todo"},
	}
	if err := repo.UpsertBatch(ctx, nil, first); err != nil {
		t.Fatalf("first batch: %v", err)
	}

	solvedAt := time.Date(2023, 11, 4, 10, 0, 0, 0, time.UTC)
	second := []*types.Progress{
		{UserID: userID, ProblemID: 1, Status: "solved", TimeSpent: 600, SolvedAt: &solvedAt},
	}
	if err := repo.UpsertBatch(ctx, nil, second); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2 (re-import must overwrite, not duplicate)", count)
	}

	rows, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	for _, row := range rows {
		if row.ProblemID != 1 {
			continue
		}
		if row.Status != "solved" || row.TimeSpent != 600 || row.SolvedAt == nil {
			t.Fatalf("row not overwritten: %+v", row)
		}
	}
}

func TestProgressUpsertBatchEmpty(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewProgressRepo(db, testutil.Logger(t))

	if err := repo.UpsertBatch(context.Background(), nil, nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}
}

func TestSubscriptionUpsertBatch(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewSubscriptionRepo(db, testutil.Logger(t))
	ctx := context.Background()
	userID := uuid.New()
	started := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.UpsertBatch(ctx, nil, []*types.Subscription{
		{UserID: userID, Plan: "free", Active: false, StartedAt: started},
	}); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if err := repo.UpsertBatch(ctx, nil, []*types.Subscription{
		{UserID: userID, Plan: "pro", Active: true, StartedAt: started},
	}); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	rows, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Plan != "pro" || !rows[0].Active {
		t.Fatalf("row not overwritten: %+v", rows[0])
	}
}

func TestProblemUpsertBatch(t *testing.T) {
	db := testutil.DB(t)
	repo := user.NewProblemRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if err := repo.UpsertBatch(ctx, nil, []*types.Problem{
		{ID: 1, Title: "Two Sum", Language: "javascript"},
		{ID: 1001, Title: "Course Problem", Language: "python", IsCourseProblem: true},
	}); err != nil {
		t.Fatalf("batch: %v", err)
	}

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}
