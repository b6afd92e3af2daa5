package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type PhaseRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, phase *types.CoursePhase) error
	// UpsertIgnoreDuplicates inserts the phase and silently skips it when a
	// row with the same id already exists. Used by the repair path so
	// re-runs never overwrite already-correct rows.
	UpsertIgnoreDuplicates(ctx context.Context, tx *gorm.DB, phase *types.CoursePhase) error
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID string) ([]*types.CoursePhase, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CoursePhase, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type phaseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhaseRepo(db *gorm.DB, baseLog *logger.Logger) PhaseRepo {
	repoLog := baseLog.With("repo", "PhaseRepo")
	return &phaseRepo{db: db, log: repoLog}
}

func (r *phaseRepo) Upsert(ctx context.Context, tx *gorm.DB, phase *types.CoursePhase) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"course_id",
				"title",
				"seq",
				"updated_at",
			}),
		}).
		Create(phase).Error
}

func (r *phaseRepo) UpsertIgnoreDuplicates(ctx context.Context, tx *gorm.DB, phase *types.CoursePhase) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(phase).Error
}

func (r *phaseRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID string) ([]*types.CoursePhase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CoursePhase
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *phaseRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CoursePhase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CoursePhase
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *phaseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CoursePhase{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
