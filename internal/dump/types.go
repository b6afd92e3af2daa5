package dump

import "encoding/json"

// Source records mirror the legacy export document shapes. They are read
// once per run and never mutated; all normalization of the loosely-typed
// fields happens here at the boundary.

type SourceUser struct {
	LegacyID  string `json:"_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PhotoURL  string `json:"photoUrl"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`

	TotalPoints     int     `json:"totalPoints"`
	ProblemsSolved  int     `json:"problemsSolved"`
	CurrentStreak   int     `json:"currentStreak"`
	AverageAccuracy float64 `json:"averageAccuracy"`

	// Legacy bcrypt hash when the export carries one; not usable directly by
	// the destination identity system.
	Password string `json:"password"`
}

type SourceCourse struct {
	LegacyID    string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    string        `json:"category"`
	Difficulty  string        `json:"difficulty"`
	Duration    string        `json:"duration"`
	IsPremium   bool          `json:"isPremium"`
	CoverImage  string        `json:"coverImage"`
	Phases      []SourcePhase `json:"phases"`
}

type SourcePhase struct {
	LegacyID string        `json:"_id"`
	Title    string        `json:"title"`
	Topics   []SourceTopic `json:"topics"`
}

type SourceTopic struct {
	LegacyID string `json:"_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`

	Questions      json.RawMessage `json:"questions"`
	Diagram        string          `json:"diagram"`
	SeoTitle       string          `json:"seoTitle"`
	SeoDescription string          `json:"seoDescription"`
	SeoKeywords    json.RawMessage `json:"seoKeywords"`
}

type SourceProgress struct {
	LegacyUserID string   `json:"userId"`
	ProblemID    FlexInt  `json:"problemId"`
	Status       string   `json:"status"`
	BestAccuracy float64  `json:"bestAccuracy"`
	TimeSpent    int      `json:"timeSpent"`
	LastSub      FlexTime `json:"lastSubmission"`
	SolvedAt     FlexTime `json:"solvedAt"`
}

// SourceSubscription documents are keyed by the owning user's legacy id.
type SourceSubscription struct {
	LegacyUserID string   `json:"_id"`
	Plan         string   `json:"plan"`
	Active       bool     `json:"active"`
	StartedAt    FlexTime `json:"startedAt"`
	ExpiresAt    FlexTime `json:"expiresAt"`
}

type Dump struct {
	Users         []SourceUser         `json:"users"`
	Progress      []SourceProgress     `json:"progress"`
	Subscriptions []SourceSubscription `json:"subscriptions"`
	Courses       []SourceCourse       `json:"courses"`
	ExportedAt    string               `json:"exportedAt"`
}
