package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codeascent/coursemigrate/internal/app"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/idmap"
	"github.com/codeascent/coursemigrate/internal/migration/verify"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	log := application.Log.With("tool", "verify_deep")
	ctx := context.Background()
	cfg := application.Cfg

	d, err := dump.Load(cfg.DumpFile)
	if err != nil {
		log.Error("load dump", "error", err)
		application.Close()
		os.Exit(1)
	}
	ids, err := idmap.Load(cfg.IDMapFile)
	if err != nil {
		log.Error("load id map, run the migration first", "error", err)
		application.Close()
		os.Exit(1)
	}

	deep := verify.NewDeep(application.Repos, ids, log)
	report, err := deep.Run(ctx, d)
	if err != nil {
		log.Error("deep verification failed", "error", err)
		application.Close()
		os.Exit(1)
	}

	if err := report.WriteFile(cfg.ReportFile); err != nil {
		log.Error("persist report", "error", err)
	} else {
		log.Info("report saved", "file", cfg.ReportFile)
	}

	printReport(report)
}

func printReport(report *verify.Report) {
	fmt.Println("\nUsers:")
	fmt.Printf("  Total: %d\n", report.Users.Total)
	fmt.Printf("  Missing: %d\n", report.Users.Missing)
	fmt.Printf("  Mismatched: %d\n", report.Users.Mismatched)
	printErrors(report.Users.Errors, 5)

	fmt.Println("\nProgress:")
	fmt.Printf("  Total source records: %d\n", report.Progress.Total)
	fmt.Printf("  Missing (significant): %d\n", report.Progress.Missing)
	fmt.Printf("  Mismatched: %d\n", report.Progress.Mismatched)
	printErrors(report.Progress.Errors, 5)

	fmt.Println("\nCourses & Content:")
	fmt.Printf("  Courses checked: %d (missing: %d)\n", report.Courses.Total, report.Courses.Missing)
	fmt.Printf("  Phases checked: %d\n", report.Content.PhasesChecked)
	fmt.Printf("  Topics checked: %d\n", report.Content.TopicsChecked)
	printErrors(report.Content.Errors, 10)

	fmt.Println("\n========================================")
	if report.Passed() {
		fmt.Println("VERIFICATION PASSED: data appears to be fully migrated.")
	} else {
		fmt.Println("VERIFICATION FAILED: discrepancies found.")
	}
}

func printErrors(errs []string, limit int) {
	if len(errs) == 0 {
		return
	}
	fmt.Printf("  Errors (first %d of %d):\n", min(limit, len(errs)), len(errs))
	for i, e := range errs {
		if i >= limit {
			break
		}
		fmt.Printf("  - %s\n", e)
	}
}
