package verify

import (
	"context"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// CountReport is the shallow, advisory count comparison per entity type.
type CountReport struct {
	SourceUsers    int   `json:"source_users"`
	DestUsers      int64 `json:"dest_users"`
	SourceCourses  int   `json:"source_courses"`
	DestCourses    int64 `json:"dest_courses"`
	SourceProgress int   `json:"source_progress"`
	DestProgress   int64 `json:"dest_progress"`
}

func (r CountReport) UsersMatch() bool   { return int64(r.SourceUsers) == r.DestUsers }
func (r CountReport) CoursesMatch() bool { return int64(r.SourceCourses) == r.DestCourses }

// ProgressMatch is advisory only: destination progress legitimately runs
// short when users without resolvable identities were filtered upstream.
func (r CountReport) ProgressMatch() bool { return int64(r.SourceProgress) == r.DestProgress }

type Shallow struct {
	profiles repos.ProfileRepo
	courses  repos.CourseRepo
	progress repos.ProgressRepo
	log      *logger.Logger
}

func NewShallow(profiles repos.ProfileRepo, courses repos.CourseRepo, progress repos.ProgressRepo, baseLog *logger.Logger) *Shallow {
	return &Shallow{
		profiles: profiles,
		courses:  courses,
		progress: progress,
		log:      baseLog.With("phase", "verify_shallow"),
	}
}

func (v *Shallow) Run(ctx context.Context, d *dump.Dump) (CountReport, error) {
	report := CountReport{
		SourceUsers:    len(d.Users),
		SourceCourses:  len(d.Courses),
		SourceProgress: len(d.Progress),
	}

	var err error
	if report.DestUsers, err = v.profiles.Count(ctx, nil); err != nil {
		return report, err
	}
	if report.DestCourses, err = v.courses.Count(ctx, nil); err != nil {
		return report, err
	}
	if report.DestProgress, err = v.progress.Count(ctx, nil); err != nil {
		return report, err
	}

	v.log.Info("count comparison",
		"source_users", report.SourceUsers, "dest_users", report.DestUsers,
		"source_courses", report.SourceCourses, "dest_courses", report.DestCourses,
		"source_progress", report.SourceProgress, "dest_progress", report.DestProgress,
	)
	return report, nil
}
