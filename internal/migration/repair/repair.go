// Package repair re-attaches content subtrees from the dump onto a
// specific destination course after the primary migration produced an
// empty or mismatched target. It is re-entrant: writes use
// conflict-ignore semantics so a second run never errors on rows that are
// already there.
package repair

import (
	"context"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/migration"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type Summary struct {
	Targets        int
	Repaired       int
	Unrepaired     int
	PhasesUpserted int
	TopicsUpserted int
}

type Tool struct {
	phases repos.PhaseRepo
	topics repos.TopicRepo
	log    *logger.Logger
}

func NewTool(phases repos.PhaseRepo, topics repos.TopicRepo, baseLog *logger.Logger) *Tool {
	return &Tool{
		phases: phases,
		topics: topics,
		log:    baseLog.With("phase", "repair"),
	}
}

func (t *Tool) Run(ctx context.Context, courses []dump.SourceCourse, targets []Target) Summary {
	var sum Summary

	for _, target := range targets {
		sum.Targets++
		targetLog := t.log.With("dest_course_id", target.DestCourseID)

		source, found := t.findSource(target, courses, targetLog)
		if !found {
			targetLog.Warn("no source course with content matches target; leaving unrepaired",
				"source_title", target.SourceTitle)
			sum.Unrepaired++
			continue
		}

		targetLog.Info("found source course",
			"source_id", source.LegacyID,
			"source_title", source.Title,
			"phases", len(source.Phases),
		)

		phases, topics := t.reparent(ctx, source, target.DestCourseID, targetLog)
		sum.PhasesUpserted += phases
		sum.TopicsUpserted += topics
		sum.Repaired++

		targetLog.Info("target repaired", "phases", phases, "topics", topics)
	}

	t.log.Info("repair finished",
		"targets", sum.Targets,
		"repaired", sum.Repaired,
		"unrepaired", sum.Unrepaired,
	)
	return sum
}

// findSource applies the matching rules in order, first match wins:
// a legacy-id match with at least one phase, then an exact title match
// with at least one phase. Every candidate considered is logged because
// titles are not guaranteed unique across sources.
func (t *Tool) findSource(target Target, courses []dump.SourceCourse, targetLog *logger.Logger) (dump.SourceCourse, bool) {
	for _, c := range courses {
		if !target.MatchesID(c.LegacyID) {
			continue
		}
		targetLog.Info("candidate by id", "source_id", c.LegacyID, "title", c.Title, "phases", len(c.Phases))
		if len(c.Phases) > 0 {
			return c, true
		}
	}

	targetLog.Warn("id match failed or empty, trying title match", "source_title", target.SourceTitle)
	for _, c := range courses {
		if c.Title != target.SourceTitle {
			continue
		}
		targetLog.Info("candidate by title", "source_id", c.LegacyID, "title", c.Title, "phases", len(c.Phases))
		if len(c.Phases) > 0 {
			return c, true
		}
	}
	return dump.SourceCourse{}, false
}

// reparent upserts every phase/topic of the source subtree against the
// target destination course id. Conflicting ids are skipped, which trades
// correctness on cross-source id collision for safe re-runs.
func (t *Tool) reparent(ctx context.Context, source dump.SourceCourse, destCourseID string, targetLog *logger.Logger) (int, int) {
	phasesUpserted := 0
	topicsUpserted := 0

	for i, phase := range source.Phases {
		row := migration.PhaseRow(phase, destCourseID, i+1)
		if err := t.phases.UpsertIgnoreDuplicates(ctx, nil, row); err != nil {
			targetLog.Error("failed to upsert phase", "phase_id", phase.LegacyID, "error", err)
			continue
		}
		phasesUpserted++

		for j, topic := range phase.Topics {
			topicRow := migration.TopicRow(topic, destCourseID, phase.LegacyID, j+1)
			if err := t.topics.UpsertIgnoreDuplicates(ctx, nil, topicRow); err != nil {
				targetLog.Error("failed to upsert topic", "topic_id", topic.LegacyID, "error", err)
				continue
			}
			topicsUpserted++
		}
	}
	return phasesUpserted, topicsUpserted
}
