package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Course keeps the legacy string identifier as its primary key so the three
// catalog levels stay re-joinable by plain id equality after migration.
type Course struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Icon        string `gorm:"column:icon" json:"icon"`
	Category    string `gorm:"column:category" json:"category"`
	Difficulty  string `gorm:"column:difficulty" json:"difficulty"`
	Duration    string `gorm:"column:duration" json:"duration"`
	IsPremium   bool   `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	CoverImage  string `gorm:"column:cover_image" json:"cover_image"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "course" }

type CoursePhase struct {
	ID       string `gorm:"primaryKey" json:"id"`
	CourseID string `gorm:"not null;index;column:course_id" json:"course_id"`
	Title    string `gorm:"not null;column:title" json:"title"`
	// Seq is 1-based array position from the source export; the destination
	// store has no implicit ordering.
	Seq int `gorm:"not null;column:seq" json:"seq"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CoursePhase) TableName() string { return "course_phase" }

type CourseTopic struct {
	ID       string `gorm:"primaryKey" json:"id"`
	CourseID string `gorm:"index;column:course_id" json:"course_id"`
	PhaseID  string `gorm:"not null;index;column:phase_id" json:"phase_id"`
	Title    string `gorm:"not null;column:title" json:"title"`
	Type     string `gorm:"column:type" json:"type"`
	Content  string `gorm:"column:content" json:"content"`
	VideoURL string `gorm:"column:video_url" json:"video_url"`

	Questions      datatypes.JSON `gorm:"column:questions" json:"questions"`
	Diagram        string         `gorm:"column:diagram" json:"diagram"`
	SeoTitle       string         `gorm:"column:seo_title" json:"seo_title"`
	SeoDescription string         `gorm:"column:seo_description" json:"seo_description"`
	SeoKeywords    datatypes.JSON `gorm:"column:seo_keywords" json:"seo_keywords"`

	Seq int `gorm:"not null;column:seq" json:"seq"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CourseTopic) TableName() string { return "course_topic" }
