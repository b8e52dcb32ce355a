package models

import "time"

// LearningProgress is the scheduling state for one (user, word) pair.
// A word without a row has never been answered and counts as new.
type LearningProgress struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	WordID         int64     `db:"word_id" json:"word_id"`
	KnowledgeLevel int       `db:"knowledge_level" json:"knowledge_level"`
	TotalAttempts  int       `db:"total_attempts" json:"total_attempts"`
	CorrectAnswers int       `db:"correct_answers" json:"correct_answers"`
	LastPracticed  time.Time `db:"last_practiced" json:"last_practiced"`
	NextReview     time.Time `db:"next_review" json:"next_review"`
}

// ResponseQuality is the user's self-reported recall difficulty for one attempt.
type ResponseQuality int

const (
	QualityAgain ResponseQuality = iota // total failure
	QualityHard
	QualityGood
	QualityEasy
)

func (q ResponseQuality) Valid() bool {
	return q >= QualityAgain && q <= QualityEasy
}
