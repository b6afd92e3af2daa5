package migration

import (
	"context"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// ContentMigrator flattens each course -> phase -> topic subtree into
// three sets of relational upserts. Legacy ids become destination primary
// keys, and every level gets an explicit 1-based seq because the source
// ordering exists only as array position.
type ContentMigrator struct {
	courses repos.CourseRepo
	phases  repos.PhaseRepo
	topics  repos.TopicRepo
	log     *logger.Logger
}

func NewContentMigrator(courses repos.CourseRepo, phases repos.PhaseRepo, topics repos.TopicRepo, baseLog *logger.Logger) *ContentMigrator {
	return &ContentMigrator{
		courses: courses,
		phases:  phases,
		topics:  topics,
		log:     baseLog.With("phase", "content"),
	}
}

func (m *ContentMigrator) Run(ctx context.Context, courses []dump.SourceCourse) ContentSummary {
	var sum ContentSummary

	for _, course := range courses {
		courseLog := m.log.With("course_id", course.LegacyID)

		if err := m.courses.Upsert(ctx, nil, CourseRow(course)); err != nil {
			courseLog.Error("failed to upsert course", "title", course.Title, "error", err)
			sum.Courses.Add(OutcomeFailed)
			// Children are still attempted; the course row may simply be
			// stale rather than absent.
		} else {
			sum.Courses.Add(OutcomeMigrated)
		}

		if len(course.Phases) == 0 {
			courseLog.Warn("no phases found for course", "title", course.Title)
			continue
		}

		for i, phase := range course.Phases {
			row := PhaseRow(phase, course.LegacyID, i+1)
			if err := m.phases.Upsert(ctx, nil, row); err != nil {
				courseLog.Error("failed to upsert phase", "phase_id", phase.LegacyID, "error", err)
				continue
			}
			sum.PhasesUpserted++

			if len(phase.Topics) == 0 {
				courseLog.Warn("no topics found for phase", "phase_id", phase.LegacyID, "title", phase.Title)
				continue
			}

			for j, topic := range phase.Topics {
				topicRow := TopicRow(topic, course.LegacyID, phase.LegacyID, j+1)
				if err := m.topics.Upsert(ctx, nil, topicRow); err != nil {
					courseLog.Error("failed to upsert topic", "topic_id", topic.LegacyID, "error", err)
					continue
				}
				sum.TopicsUpserted++
			}
		}
	}

	m.log.Info("content migration finished",
		"courses", sum.Courses.Processed,
		"courses_failed", sum.Courses.Failed,
		"phases", sum.PhasesUpserted,
		"topics", sum.TopicsUpserted,
	)
	return sum
}

// Row builders are shared with the repair tool, which re-parents the same
// source shapes onto a different destination course id.

func CourseRow(c dump.SourceCourse) *types.Course {
	return &types.Course{
		ID:          c.LegacyID,
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Category:    c.Category,
		Difficulty:  c.Difficulty,
		Duration:    c.Duration,
		IsPremium:   c.IsPremium,
		CoverImage:  c.CoverImage,
	}
}

func PhaseRow(p dump.SourcePhase, courseID string, seq int) *types.CoursePhase {
	return &types.CoursePhase{
		ID:       p.LegacyID,
		CourseID: courseID,
		Title:    p.Title,
		Seq:      seq,
	}
}

func TopicRow(t dump.SourceTopic, courseID, phaseID string, seq int) *types.CourseTopic {
	return &types.CourseTopic{
		ID:       t.LegacyID,
		CourseID: courseID,
		PhaseID:  phaseID,
		Title:    t.Title,
		Type:     t.Type,
		Content:  t.Content,
		VideoURL: t.VideoURL,

		Questions:      jsonColumn(t.Questions),
		Diagram:        t.Diagram,
		SeoTitle:       t.SeoTitle,
		SeoDescription: t.SeoDescription,
		SeoKeywords:    jsonColumn(t.SeoKeywords),

		Seq: seq,
	}
}
