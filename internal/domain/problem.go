package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Problem struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null;column:title" json:"title"`
	Language   string `gorm:"column:language" json:"language"`
	Difficulty string `gorm:"column:difficulty" json:"difficulty"`
	Category   string `gorm:"column:category" json:"category"`

	Description  string `gorm:"column:description" json:"description"`
	InputFormat  string `gorm:"column:input_format" json:"input_format"`
	OutputFormat string `gorm:"column:output_format" json:"output_format"`

	Examples         datatypes.JSON `gorm:"column:examples" json:"examples"`
	TestCases        datatypes.JSON `gorm:"column:test_cases" json:"test_cases"`
	SolutionTemplate string         `gorm:"column:solution_template" json:"solution_template"`
	Hints            datatypes.JSON `gorm:"column:hints" json:"hints"`

	// Course problems are numbered from 1001 up in the legacy bank.
	IsCourseProblem bool `gorm:"not null;default:false;column:is_course_problem" json:"is_course_problem"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Problem) TableName() string { return "problem" }
