package migration

import (
	"context"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// ProgressChunkSize keeps each upsert under the destination API's payload
// limits. Chunks flush sequentially; throughput is not the point of a
// one-time job.
const ProgressChunkSize = 100

type ProgressImporter struct {
	progress repos.ProgressRepo
	ids      *idmap.Map
	log      *logger.Logger
}

func NewProgressImporter(progress repos.ProgressRepo, ids *idmap.Map, baseLog *logger.Logger) *ProgressImporter {
	return &ProgressImporter{
		progress: progress,
		ids:      ids,
		log:      baseLog.With("phase", "progress"),
	}
}

func (m *ProgressImporter) Run(ctx context.Context, records []dump.SourceProgress) BatchSummary {
	var sum BatchSummary

	valid := make([]*types.Progress, 0, len(records))
	for _, rec := range records {
		destID, ok := m.ids.Get(rec.LegacyUserID)
		if !ok {
			// Owner never migrated; dropping is the contract, not an error.
			m.log.Debug("dropping progress for unmapped user", "legacy_user_id", rec.LegacyUserID)
			sum.Dropped++
			continue
		}
		valid = append(valid, &types.Progress{
			UserID:       destID,
			ProblemID:    rec.ProblemID.Int(),
			Status:       rec.Status,
			BestAccuracy: rec.BestAccuracy,
			TimeSpent:    rec.TimeSpent,

			LastSubmission: rec.LastSub.Ptr(),
			SolvedAt:       rec.SolvedAt.Ptr(),
		})
	}

	for offset := 0; offset < len(valid); offset += ProgressChunkSize {
		end := offset + ProgressChunkSize
		if end > len(valid) {
			end = len(valid)
		}
		chunk := valid[offset:end]
		if err := m.progress.UpsertBatch(ctx, nil, chunk); err != nil {
			m.log.Error("progress chunk insert failed", "offset", offset, "size", len(chunk), "error", err)
			sum.FailedChunks++
			continue
		}
		sum.Imported += len(chunk)
	}

	m.log.Info("progress import finished",
		"source_records", len(records),
		"imported", sum.Imported,
		"dropped", sum.Dropped,
		"failed_chunks", sum.FailedChunks,
	)
	return sum
}
