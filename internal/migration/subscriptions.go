package migration

import (
	"context"
	"time"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// SubscriptionImporter carries plan records over for users that migrated.
// Subscription documents are keyed by the owning user's legacy id, so an
// unmapped owner means the whole record is dropped.
type SubscriptionImporter struct {
	subs repos.SubscriptionRepo
	ids  *idmap.Map
	log  *logger.Logger

	now func() time.Time
}

func NewSubscriptionImporter(subs repos.SubscriptionRepo, ids *idmap.Map, baseLog *logger.Logger) *SubscriptionImporter {
	return &SubscriptionImporter{
		subs: subs,
		ids:  ids,
		log:  baseLog.With("phase", "subscriptions"),
		now:  time.Now,
	}
}

func (m *SubscriptionImporter) Run(ctx context.Context, records []dump.SourceSubscription) BatchSummary {
	var sum BatchSummary

	valid := make([]*types.Subscription, 0, len(records))
	for _, rec := range records {
		destID, ok := m.ids.Get(rec.LegacyUserID)
		if !ok {
			m.log.Debug("dropping subscription for unmapped user", "legacy_user_id", rec.LegacyUserID)
			sum.Dropped++
			continue
		}

		startedAt := m.now().UTC()
		if rec.StartedAt.Valid {
			startedAt = rec.StartedAt.Time
		}
		valid = append(valid, &types.Subscription{
			UserID:    destID,
			Plan:      rec.Plan,
			Active:    rec.Active,
			StartedAt: startedAt,
			ExpiresAt: rec.ExpiresAt.Ptr(),
		})
	}

	if len(valid) > 0 {
		if err := m.subs.UpsertBatch(ctx, nil, valid); err != nil {
			m.log.Error("subscription upsert failed", "size", len(valid), "error", err)
			sum.FailedChunks++
		} else {
			sum.Imported = len(valid)
		}
	}

	m.log.Info("subscription import finished",
		"source_records", len(records),
		"imported", sum.Imported,
		"dropped", sum.Dropped,
	)
	return sum
}
