package catalog_test

import (
	"context"
	"testing"

	"github.com/codeascent/coursemigrate/internal/data/repos/catalog"
	"github.com/codeascent/coursemigrate/internal/data/repos/testutil"
	types "github.com/codeascent/coursemigrate/internal/domain"
)

func TestCourseUpsertOverwrites(t *testing.T) {
	db := testutil.DB(t)
	repo := catalog.NewCourseRepo(db, testutil.Logger(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, nil, &types.Course{ID: "course-1", Title: "Old Title"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, nil, &types.Course{ID: "course-1", Title: "New Title", Category: "dsa"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	row, err := repo.GetByID(ctx, nil, "course-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Title != "New Title" || row.Category != "dsa" {
		t.Fatalf("row not overwritten: %+v", row)
	}

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestPhaseGetByCourseIDOrdering(t *testing.T) {
	db := testutil.DB(t)
	repo := catalog.NewPhaseRepo(db, testutil.Logger(t))
	ctx := context.Background()

	// Inserted out of order on purpose.
	for _, p := range []*types.CoursePhase{
		{ID: "p-3", CourseID: "course-1", Title: "Third", Seq: 3},
		{ID: "p-1", CourseID: "course-1", Title: "First", Seq: 1},
		{ID: "p-2", CourseID: "course-1", Title: "Second", Seq: 2},
		{ID: "other", CourseID: "course-2", Title: "Elsewhere", Seq: 1},
	} {
		if err := repo.Upsert(ctx, nil, p); err != nil {
			t.Fatalf("upsert %s: %v", p.ID, err)
		}
	}

	phases, err := repo.GetByCourseID(ctx, nil, "course-1")
	if err != nil {
		t.Fatalf("get by course: %v", err)
	}
	if len(phases) != 3 {
		t.Fatalf("got %d phases, want 3", len(phases))
	}
	for i, p := range phases {
		if p.Seq != i+1 {
			t.Fatalf("phase %d out of order: seq %d", i, p.Seq)
		}
	}
}

func TestPhaseUpsertIgnoreDuplicates(t *testing.T) {
	db := testutil.DB(t)
	repo := catalog.NewPhaseRepo(db, testutil.Logger(t))
	ctx := context.Background()

	original := &types.CoursePhase{ID: "p-1", CourseID: "course-1", Title: "Original", Seq: 1}
	if err := repo.Upsert(ctx, nil, original); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dup := &types.CoursePhase{ID: "p-1", CourseID: "course-9", Title: "Replacement", Seq: 5}
	if err := repo.UpsertIgnoreDuplicates(ctx, nil, dup); err != nil {
		t.Fatalf("conflict-ignore upsert: %v", err)
	}

	phases, err := repo.GetByCourseID(ctx, nil, "course-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(phases) != 1 || phases[0].Title != "Original" {
		t.Fatalf("existing row was overwritten: %+v", phases)
	}
}

func TestTopicGetByPhaseID(t *testing.T) {
	db := testutil.DB(t)
	repo := catalog.NewTopicRepo(db, testutil.Logger(t))
	ctx := context.Background()

	for _, topic := range []*types.CourseTopic{
		{ID: "t-2", CourseID: "course-1", PhaseID: "p-1", Title: "B", Seq: 2},
		{ID: "t-1", CourseID: "course-1", PhaseID: "p-1", Title: "A", Seq: 1},
		{ID: "t-9", CourseID: "course-1", PhaseID: "p-2", Title: "C", Seq: 1},
	} {
		if err := repo.Upsert(ctx, nil, topic); err != nil {
			t.Fatalf("upsert %s: %v", topic.ID, err)
		}
	}

	topics, err := repo.GetByPhaseID(ctx, nil, "p-1")
	if err != nil {
		t.Fatalf("get by phase: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].ID != "t-1" || topics[1].ID != "t-2" {
		t.Fatalf("topics out of order: %+v", topics)
	}
}
