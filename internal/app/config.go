package app

import (
	"github.com/codeascent/coursemigrate/internal/platform/envutil"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

// Config names every artifact the pipeline reads or writes. Store
// credentials come separately through the POSTGRES_* variables consumed
// by the db package.
type Config struct {
	DumpFile          string
	IDMapFile         string
	ReportFile        string
	RepairTargetsFile string

	ProblemDataFile       string
	CourseProblemDataFile string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		DumpFile:          envutil.String("DUMP_FILE", "firebase_dump.json"),
		IDMapFile:         envutil.String("ID_MAP_FILE", "id_map.json"),
		ReportFile:        envutil.String("REPORT_FILE", "verification_report.json"),
		RepairTargetsFile: envutil.String("REPAIR_TARGETS_FILE", "repair_targets.yaml"),

		ProblemDataFile:       envutil.String("PROBLEM_DATA_FILE", "problemData.json"),
		CourseProblemDataFile: envutil.String("COURSE_PROBLEM_DATA_FILE", "courseProblemData.json"),
	}
	log.Debug("loaded config",
		"dump_file", cfg.DumpFile,
		"id_map_file", cfg.IDMapFile,
		"report_file", cfg.ReportFile,
	)
	return cfg
}
