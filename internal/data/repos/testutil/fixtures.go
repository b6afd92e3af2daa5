package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
)

func SeedIdentity(tb testing.TB, ctx context.Context, gdb *gorm.DB, email string) *types.AuthUser {
	tb.Helper()
	row := &types.AuthUser{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   "$2a$10$fixturefixturefixturefixturefixturefixture",
		EmailConfirmed: true,
	}
	if err := gdb.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed identity: %v", err)
	}
	return row
}

func SeedProfile(tb testing.TB, ctx context.Context, gdb *gorm.DB, id uuid.UUID, email string) *types.User {
	tb.Helper()
	row := &types.User{ID: id, Email: email, Role: "user"}
	if err := gdb.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return row
}

// SourceCourse builds a dump subtree with the given topic counts, one
// phase per entry.
func SourceCourse(id, title string, topicCounts ...int) dump.SourceCourse {
	course := dump.SourceCourse{LegacyID: id, Title: title}
	for i, n := range topicCounts {
		phase := dump.SourcePhase{
			LegacyID: fmt.Sprintf("%s-phase-%d", id, i+1),
			Title:    fmt.Sprintf("%s phase %d", title, i+1),
		}
		for j := 0; j < n; j++ {
			phase.Topics = append(phase.Topics, dump.SourceTopic{
				LegacyID: fmt.Sprintf("%s-topic-%d", phase.LegacyID, j+1),
				Title:    fmt.Sprintf("topic %d", j+1),
				Type:     "reading",
			})
		}
		course.Phases = append(course.Phases, phase)
	}
	return course
}
