package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/codeascent/coursemigrate/internal/app"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/migration"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	log := application.Log.With("tool", "migrate")
	ctx := context.Background()
	cfg := application.Cfg

	d, err := dump.Load(cfg.DumpFile)
	if err != nil {
		if errors.Is(err, dump.ErrSourceUnavailable) {
			log.Error("could not read dump file, run export first", "error", err)
		} else {
			log.Error("load dump", "error", err)
		}
		application.Close()
		os.Exit(1)
	}
	log.Info("loaded dump",
		"users", len(d.Users),
		"courses", len(d.Courses),
		"progress", len(d.Progress),
		"subscriptions", len(d.Subscriptions),
	)

	// Problems live outside the dump; a missing bank file is tolerated.
	problems, err := dump.LoadProblems(cfg.ProblemDataFile, cfg.CourseProblemDataFile)
	if err != nil {
		log.Error("load problem bank", "error", err)
		application.Close()
		os.Exit(1)
	}
	problemImporter := migration.NewProblemImporter(application.Repos.Problem, log)
	problemImporter.Run(ctx, problems)

	contentMigrator := migration.NewContentMigrator(
		application.Repos.Course,
		application.Repos.Phase,
		application.Repos.Topic,
		log,
	)
	contentMigrator.Run(ctx, d.Courses)

	ids := idmap.New()
	userMigrator := migration.NewUserMigrator(application.Identity, application.Repos.Profile, ids, log)
	userMigrator.Run(ctx, d.Users)
	if err := ids.Persist(cfg.IDMapFile); err != nil {
		log.Error("persist id map", "file", cfg.IDMapFile, "error", err)
	} else {
		log.Info("id map saved", "file", cfg.IDMapFile, "entries", ids.Len())
	}

	progressImporter := migration.NewProgressImporter(application.Repos.Progress, ids, log)
	progressImporter.Run(ctx, d.Progress)

	subscriptionImporter := migration.NewSubscriptionImporter(application.Repos.Subscription, ids, log)
	subscriptionImporter.Run(ctx, d.Subscriptions)

	log.Info("migration complete")
}
