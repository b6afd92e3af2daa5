package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type TopicRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, topic *types.CourseTopic) error
	UpsertIgnoreDuplicates(ctx context.Context, tx *gorm.DB, topic *types.CourseTopic) error
	GetByPhaseID(ctx context.Context, tx *gorm.DB, phaseID string) ([]*types.CourseTopic, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CourseTopic, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	repoLog := baseLog.With("repo", "TopicRepo")
	return &topicRepo{db: db, log: repoLog}
}

func (r *topicRepo) Upsert(ctx context.Context, tx *gorm.DB, topic *types.CourseTopic) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"course_id",
				"phase_id",
				"title",
				"type",
				"content",
				"video_url",
				"questions",
				"diagram",
				"seo_title",
				"seo_description",
				"seo_keywords",
				"seq",
				"updated_at",
			}),
		}).
		Create(topic).Error
}

func (r *topicRepo) UpsertIgnoreDuplicates(ctx context.Context, tx *gorm.DB, topic *types.CourseTopic) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(topic).Error
}

func (r *topicRepo) GetByPhaseID(ctx context.Context, tx *gorm.DB, phaseID string) ([]*types.CourseTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseTopic
	if err := transaction.WithContext(ctx).
		Where("phase_id = ?", phaseID).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *topicRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CourseTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseTopic
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *topicRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CourseTopic{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
