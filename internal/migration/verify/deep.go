package verify

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// PointsTolerance bounds the allowed drift between source and destination
// total points. Points earned after cutover are legitimate, so only
// larger gaps are flagged.
const PointsTolerance = 50

// Deep performs field-level comparison for users, existence/status
// comparison for progress, and structural (child-count) comparison for
// the content tree.
type Deep struct {
	profiles repos.ProfileRepo
	progress repos.ProgressRepo
	courses  repos.CourseRepo
	phases   repos.PhaseRepo
	topics   repos.TopicRepo
	ids      *idmap.Map
	log      *logger.Logger
}

func NewDeep(r *repos.Repos, ids *idmap.Map, baseLog *logger.Logger) *Deep {
	return &Deep{
		profiles: r.Profile,
		progress: r.Progress,
		courses:  r.Course,
		phases:   r.Phase,
		topics:   r.Topic,
		ids:      ids,
		log:      baseLog.With("phase", "verify_deep"),
	}
}

func (v *Deep) Run(ctx context.Context, d *dump.Dump) (*Report, error) {
	report := &Report{}

	if err := v.verifyUsers(ctx, d.Users, report); err != nil {
		return nil, fmt.Errorf("verify users: %w", err)
	}
	if err := v.verifyProgress(ctx, d.Progress, report); err != nil {
		return nil, fmt.Errorf("verify progress: %w", err)
	}
	if err := v.verifyContent(ctx, d.Courses, report); err != nil {
		return nil, fmt.Errorf("verify content: %w", err)
	}
	return report, nil
}

func (v *Deep) verifyUsers(ctx context.Context, users []dump.SourceUser, report *Report) error {
	v.log.Info("verifying users", "count", len(users))

	rows, err := v.profiles.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*types.User, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	report.Users.Total = len(users)
	for _, src := range users {
		if src.Email == "" {
			// Partial auth records never migrated; nothing to compare.
			continue
		}

		destID, ok := v.ids.Get(src.LegacyID)
		if !ok {
			report.Users.Missing++
			report.Users.Errors = append(report.Users.Errors,
				fmt.Sprintf("missing id map entry for %s (%s)", src.Email, src.LegacyID))
			continue
		}

		dest, ok := byID[destID]
		if !ok {
			report.Users.Missing++
			report.Users.Errors = append(report.Users.Errors,
				fmt.Sprintf("user not found in destination: %s (id: %s)", src.Email, destID))
			continue
		}

		var discrepancies []string
		if dest.Email != src.Email {
			discrepancies = append(discrepancies,
				fmt.Sprintf("email mismatch: %s vs %s", src.Email, dest.Email))
		}
		if dest.Role != src.Role {
			discrepancies = append(discrepancies,
				fmt.Sprintf("role mismatch: %s vs %s", src.Role, dest.Role))
		}
		if math.Abs(float64(dest.TotalPoints-src.TotalPoints)) > PointsTolerance {
			discrepancies = append(discrepancies,
				fmt.Sprintf("points mismatch: %d vs %d", src.TotalPoints, dest.TotalPoints))
		}

		if len(discrepancies) > 0 {
			report.Users.Mismatched++
			report.Users.Errors = append(report.Users.Errors,
				fmt.Sprintf("user %s: %s", src.Email, strings.Join(discrepancies, ", ")))
		}
	}
	return nil
}

func (v *Deep) verifyProgress(ctx context.Context, records []dump.SourceProgress, report *Report) error {
	v.log.Info("verifying progress records", "count", len(records))

	rows, err := v.progress.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	byKey := make(map[string]*types.Progress, len(rows))
	for _, row := range rows {
		byKey[progressKey(row.UserID, row.ProblemID)] = row
	}

	report.Progress.Total = len(records)
	for _, src := range records {
		destID, ok := v.ids.Get(src.LegacyUserID)
		if !ok {
			// Owner did not migrate; the importer dropped this on purpose.
			continue
		}

		dest, ok := byKey[progressKey(destID, src.ProblemID.Int())]
		if !ok {
			// Only meaningful state counts as missing; 'todo' rows may
			// simply never have been written.
			if src.Status == "solved" || src.TimeSpent > 0 {
				report.Progress.Missing++
				report.Progress.Errors = append(report.Progress.Errors,
					fmt.Sprintf("missing progress: user %s problem %d", destID, src.ProblemID.Int()))
			}
			continue
		}

		if src.Status == "solved" && dest.Status != "solved" {
			report.Progress.Mismatched++
			report.Progress.Errors = append(report.Progress.Errors,
				fmt.Sprintf("status mismatch: user %s problem %d (source: %s vs dest: %s)",
					destID, src.ProblemID.Int(), src.Status, dest.Status))
		}
	}
	return nil
}

func (v *Deep) verifyContent(ctx context.Context, courses []dump.SourceCourse, report *Report) error {
	v.log.Info("verifying courses and content", "count", len(courses))

	destCourses, err := v.courses.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	destPhases, err := v.phases.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	destTopics, err := v.topics.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	v.log.Info("fetched destination content",
		"courses", len(destCourses), "phases", len(destPhases), "topics", len(destTopics))

	courseByID := make(map[string]*types.Course, len(destCourses))
	for _, c := range destCourses {
		courseByID[c.ID] = c
	}
	phasesByCourse := make(map[string][]*types.CoursePhase)
	for _, p := range destPhases {
		phasesByCourse[p.CourseID] = append(phasesByCourse[p.CourseID], p)
	}
	topicsByPhase := make(map[string][]*types.CourseTopic)
	for _, t := range destTopics {
		topicsByPhase[t.PhaseID] = append(topicsByPhase[t.PhaseID], t)
	}

	report.Courses.Total = len(courses)
	for _, src := range courses {
		if _, ok := courseByID[src.LegacyID]; !ok {
			report.Courses.Missing++
			report.Courses.Errors = append(report.Courses.Errors,
				fmt.Sprintf("missing course: %s (%s)", src.Title, src.LegacyID))
			continue
		}
		if len(src.Phases) == 0 {
			continue
		}

		coursePhases := phasesByCourse[src.LegacyID]
		if len(coursePhases) != len(src.Phases) {
			report.Content.Errors = append(report.Content.Errors,
				fmt.Sprintf("phase count mismatch for %s: source %d vs dest %d",
					src.Title, len(src.Phases), len(coursePhases)))
		}

		for _, srcPhase := range src.Phases {
			report.Content.PhasesChecked++

			destPhase := findPhaseByID(coursePhases, srcPhase.LegacyID)
			if destPhase == nil {
				// Ids can diverge when a phase was re-created by hand;
				// a title match suppresses the discrepancy.
				if findPhaseByTitle(coursePhases, srcPhase.Title) == nil {
					report.Content.Errors = append(report.Content.Errors,
						fmt.Sprintf("missing phase in %s: %s", src.Title, srcPhase.Title))
				}
				continue
			}

			if len(srcPhase.Topics) > 0 {
				phaseTopics := topicsByPhase[destPhase.ID]
				if len(phaseTopics) != len(srcPhase.Topics) {
					report.Content.Errors = append(report.Content.Errors,
						fmt.Sprintf("topic count mismatch for %s > %s: source %d vs dest %d",
							src.Title, srcPhase.Title, len(srcPhase.Topics), len(phaseTopics)))
				}
				report.Content.TopicsChecked += len(srcPhase.Topics)
			}
		}
	}
	return nil
}

func progressKey(userID uuid.UUID, problemID int) string {
	return fmt.Sprintf("%s_%d", userID, problemID)
}

func findPhaseByID(phases []*types.CoursePhase, id string) *types.CoursePhase {
	for _, p := range phases {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findPhaseByTitle(phases []*types.CoursePhase, title string) *types.CoursePhase {
	for _, p := range phases {
		if p.Title == title {
			return p
		}
	}
	return nil
}
