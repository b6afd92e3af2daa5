package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/codeascent/coursemigrate/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Destination identity system.
		&types.AuthUser{},

		// Profiles + commerce.
		&types.User{},
		&types.Subscription{},

		// Course catalog (legacy string ids preserved as PKs).
		&types.Course{},
		&types.CoursePhase{},
		&types.CourseTopic{},

		// Problem bank + per-user progress.
		&types.Problem{},
		&types.Progress{},
	)
}

func EnsureProgressIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_progress_user_problem
		ON progress (user_id, problem_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_progress_user_problem: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_course_topic_phase
		ON course_topic (phase_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_course_topic_phase: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureProgressIndexes(s.db); err != nil {
		s.log.Error("Progress index migration failed", "error", err)
		return err
	}
	return nil
}
