package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type SubscriptionRepo interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Subscription) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Subscription, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	repoLog := baseLog.With("repo", "SubscriptionRepo")
	return &subscriptionRepo{db: db, log: repoLog}
}

func (r *subscriptionRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, rows []*types.Subscription) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"plan",
				"active",
				"started_at",
				"expires_at",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *subscriptionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Subscription, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Subscription
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *subscriptionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
