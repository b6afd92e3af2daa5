package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type ProgressRepo interface {
	// UpsertBatch writes one chunk keyed on the composite
	// (user_id, problem_id); re-imports overwrite rather than duplicate.
	UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Progress) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Progress, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	repoLog := baseLog.With("repo", "ProgressRepo")
	return &progressRepo{db: db, log: repoLog}
}

func (r *progressRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Progress) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "problem_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status",
				"best_accuracy",
				"time_spent",
				"last_submission",
				"solved_at",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *progressRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Progress
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *progressRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Progress{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
