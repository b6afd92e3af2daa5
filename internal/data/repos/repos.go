package repos

import (
	"gorm.io/gorm"

	"github.com/codeascent/coursemigrate/internal/data/repos/catalog"
	"github.com/codeascent/coursemigrate/internal/data/repos/user"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

type CourseRepo = catalog.CourseRepo
type PhaseRepo = catalog.PhaseRepo
type TopicRepo = catalog.TopicRepo

type ProfileRepo = user.ProfileRepo
type ProgressRepo = user.ProgressRepo
type SubscriptionRepo = user.SubscriptionRepo
type ProblemRepo = user.ProblemRepo

// Repos bundles every repository a phase constructor can need; one bundle
// is built per process in app.New.
type Repos struct {
	Course CourseRepo
	Phase  PhaseRepo
	Topic  TopicRepo

	Profile      ProfileRepo
	Progress     ProgressRepo
	Subscription SubscriptionRepo
	Problem      ProblemRepo
}

func New(db *gorm.DB, baseLog *logger.Logger) *Repos {
	return &Repos{
		Course: catalog.NewCourseRepo(db, baseLog),
		Phase:  catalog.NewPhaseRepo(db, baseLog),
		Topic:  catalog.NewTopicRepo(db, baseLog),

		Profile:      user.NewProfileRepo(db, baseLog),
		Progress:     user.NewProgressRepo(db, baseLog),
		Subscription: user.NewSubscriptionRepo(db, baseLog),
		Problem:      user.NewProblemRepo(db, baseLog),
	}
}
