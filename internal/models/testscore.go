package models

import "time"

const (
	TestPre     = "pre"
	TestPost    = "post"
	TestDelayed = "delayed"
)

// ValidTestType reports whether t is one of the three study test types.
func ValidTestType(t string) bool {
	return t == TestPre || t == TestPost || t == TestDelayed
}

// ScoreSet holds the fixed dimension scores of one proficiency test.
type ScoreSet struct {
	Vocabulary  float64 `bson:"vocabulary" json:"vocabulary"`
	Collocation float64 `bson:"collocation" json:"collocation"`
	Frequency   float64 `bson:"frequency" json:"frequency"`
	Diversity   float64 `bson:"diversity" json:"diversity"`
	Complexity  float64 `bson:"complexity" json:"complexity"`
	Hedging     float64 `bson:"hedging" json:"hedging"`
	Coherence   float64 `bson:"coherence" json:"coherence"`
}

// TestScore is one row per (user, testType). A unique compound index on
// those two fields backs the upsert-on-resubmission behavior.
type TestScore struct {
	ID          string    `bson:"_id,omitempty" json:"-"`
	UserID      string    `bson:"user_id" json:"userId"`
	TestType    string    `bson:"test_type" json:"testType"`
	Scores      ScoreSet  `bson:"scores" json:"scores"`
	CompletedAt time.Time `bson:"completed_at" json:"completedAt"`
}
