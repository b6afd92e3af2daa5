package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type ProblemRepo interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Problem) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Problem, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type problemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProblemRepo(db *gorm.DB, baseLog *logger.Logger) ProblemRepo {
	repoLog := baseLog.With("repo", "ProblemRepo")
	return &problemRepo{db: db, log: repoLog}
}

func (r *problemRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Problem) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"language",
				"difficulty",
				"category",
				"description",
				"input_format",
				"output_format",
				"examples",
				"test_cases",
				"solution_template",
				"hints",
				"is_course_problem",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *problemRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Problem
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *problemRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Problem{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
