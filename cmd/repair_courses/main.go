package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codeascent/coursemigrate/internal/app"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/migration/repair"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	log := application.Log.With("tool", "repair_courses")
	ctx := context.Background()
	cfg := application.Cfg

	targets, err := repair.LoadTargets(cfg.RepairTargetsFile)
	if err != nil {
		log.Error("load repair targets", "error", err)
		application.Close()
		os.Exit(1)
	}

	d, err := dump.Load(cfg.DumpFile)
	if err != nil {
		log.Error("load dump", "error", err)
		application.Close()
		os.Exit(1)
	}
	log.Info("loaded dump", "courses", len(d.Courses), "targets", len(targets))

	tool := repair.NewTool(application.Repos.Phase, application.Repos.Topic, log)
	sum := tool.Run(ctx, d.Courses, targets)

	log.Info("repair complete",
		"repaired", sum.Repaired,
		"unrepaired", sum.Unrepaired,
		"phases", sum.PhasesUpserted,
		"topics", sum.TopicsUpserted,
	)
}
