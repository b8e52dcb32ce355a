package models

import "time"

type TrainingMode string

const (
	TrainingModeReview    TrainingMode = "review"
	TrainingModeNew       TrainingMode = "new"
	TrainingModeDifficult TrainingMode = "difficult"
	TrainingModeMixed     TrainingMode = "mixed"
)

func (m TrainingMode) Valid() bool {
	switch m {
	case TrainingModeReview, TrainingModeNew, TrainingModeDifficult, TrainingModeMixed:
		return true
	}
	return false
}

// TrainingWord is a word projected together with its progress fields.
// Progress fields stay zero-valued for words never answered.
type TrainingWord struct {
	WordID         int64      `db:"word_id" json:"word_id"`
	WordText       string     `db:"word_text" json:"word_text"`
	Translation    string     `db:"translation" json:"translation"`
	Transcription  *string    `db:"transcription" json:"transcription,omitempty"`
	Example        *string    `db:"example" json:"example,omitempty"`
	KnowledgeLevel int        `db:"knowledge_level" json:"knowledge_level"`
	TotalAttempts  int        `db:"total_attempts" json:"total_attempts"`
	CorrectAnswers int        `db:"correct_answers" json:"correct_answers"`
	NextReview     *time.Time `db:"next_review" json:"next_review,omitempty"`
}

type DailyPlan struct {
	ReviewWords    []TrainingWord `json:"review_words"`
	NewWords       []TrainingWord `json:"new_words"`
	DifficultWords []TrainingWord `json:"difficult_words"`
	Stats          DailyStats     `json:"stats"`
}

type DailyStats struct {
	TotalReviewCount    int        `json:"total_review_count"`
	TotalNewCount       int        `json:"total_new_count"`
	TotalDifficultCount int        `json:"total_difficult_count"`
	CompletedToday      int        `json:"completed_today"`
	CurrentStreak       int        `json:"current_streak"`
	LastPracticeDate    *time.Time `json:"last_practice_date,omitempty"`
}
