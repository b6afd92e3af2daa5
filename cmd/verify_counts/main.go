package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codeascent/coursemigrate/internal/app"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/migration/verify"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	log := application.Log.With("tool", "verify_counts")
	ctx := context.Background()

	d, err := dump.Load(application.Cfg.DumpFile)
	if err != nil {
		log.Error("load dump", "error", err)
		application.Close()
		os.Exit(1)
	}

	shallow := verify.NewShallow(
		application.Repos.Profile,
		application.Repos.Course,
		application.Repos.Progress,
		log,
	)
	report, err := shallow.Run(ctx, d)
	if err != nil {
		log.Error("count queries failed", "error", err)
		application.Close()
		os.Exit(1)
	}

	fmt.Println("--- Record Counts ---")
	fmt.Printf("Source Users:    %d | Destination Users:    %d\n", report.SourceUsers, report.DestUsers)
	fmt.Printf("Source Courses:  %d | Destination Courses:  %d\n", report.SourceCourses, report.DestCourses)
	fmt.Printf("Source Progress: %d | Destination Progress: %d\n", report.SourceProgress, report.DestProgress)

	fmt.Println("\n--- Result ---")
	if report.UsersMatch() && report.CoursesMatch() {
		fmt.Println("Counts match. (A progress gap is expected when invalid users were filtered.)")
	} else {
		fmt.Println("Counts do not match. Please investigate.")
	}
}
