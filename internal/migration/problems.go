package migration

import (
	"context"

	"github.com/codeascent/coursemigrate/internal/data/repos"
	types "github.com/codeascent/coursemigrate/internal/domain"
	"github.com/codeascent/coursemigrate/internal/dump"
	"github.com/codeascent/coursemigrate/internal/platform/logger"
)

const ProblemChunkSize = 50

// CourseProblemIDFloor: the legacy bank numbers standalone problems below
// 1001 and course-attached problems from 1001 up.
const CourseProblemIDFloor = 1001

type ProblemImporter struct {
	problems repos.ProblemRepo
	log      *logger.Logger
}

func NewProblemImporter(problems repos.ProblemRepo, baseLog *logger.Logger) *ProblemImporter {
	return &ProblemImporter{
		problems: problems,
		log:      baseLog.With("phase", "problems"),
	}
}

func (m *ProblemImporter) Run(ctx context.Context, problems []dump.SourceProblem) BatchSummary {
	var sum BatchSummary

	rows := make([]*types.Problem, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, problemRow(p))
	}

	for offset := 0; offset < len(rows); offset += ProblemChunkSize {
		end := offset + ProblemChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[offset:end]
		if err := m.problems.UpsertBatch(ctx, nil, chunk); err != nil {
			m.log.Error("problem chunk insert failed", "offset", offset, "size", len(chunk), "error", err)
			sum.FailedChunks++
			continue
		}
		sum.Imported += len(chunk)
	}

	m.log.Info("problem import finished",
		"source_records", len(problems),
		"imported", sum.Imported,
		"failed_chunks", sum.FailedChunks,
	)
	return sum
}

func problemRow(p dump.SourceProblem) *types.Problem {
	id := p.ID.Int()
	return &types.Problem{
		ID:         id,
		Title:      p.Title,
		Language:   defaultString(p.Language, "javascript"),
		Difficulty: p.Difficulty,
		Category:   p.Category,

		Description:  p.ProblemStatement,
		InputFormat:  p.InputFormat,
		OutputFormat: p.OutputFormat,

		Examples:         jsonColumn(p.Examples),
		TestCases:        jsonColumn(p.TestCases),
		SolutionTemplate: solutionTemplate(p),
		Hints:            jsonColumn(p.Hints),

		IsCourseProblem: id >= CourseProblemIDFloor,
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// The legacy bank stores solutions as arbitrary JSON (per-language map or
// plain string); the destination keeps the serialized form.
func solutionTemplate(p dump.SourceProblem) string {
	if len(p.Solution) == 0 || string(p.Solution) == "null" {
		return ""
	}
	return string(p.Solution)
}
