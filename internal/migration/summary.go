package migration

// Outcome classifies what happened to a single source record. The
// continue-past-failures policy of every phase loop is expressed through
// these values instead of suppressed errors: skips are structural
// conditions inherent to the data, failures are destination writes that
// can be retried manually.
type Outcome int

const (
	OutcomeMigrated Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// Summary aggregates per-item outcomes for one phase.
type Summary struct {
	Processed int
	Migrated  int
	Skipped   int
	Failed    int
}

func (s *Summary) Add(o Outcome) {
	s.Processed++
	switch o {
	case OutcomeMigrated:
		s.Migrated++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// ContentSummary extends the course-level outcomes with the child row
// totals, since a single course fans out into many phase/topic writes.
type ContentSummary struct {
	Courses        Summary
	PhasesUpserted int
	TopicsUpserted int
}

// BatchSummary reports a chunked import: records dropped before batching,
// records written, and chunks whose flush failed.
type BatchSummary struct {
	Dropped      int
	Imported     int
	FailedChunks int
}
