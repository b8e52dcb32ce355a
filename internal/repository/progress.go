package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
)

// difficult rows: fully forgotten, or under a 50% success rate once the
// word has been attempted more than twice.
const difficultPredicate = `(lp.knowledge_level = 0 OR (lp.total_attempts > 2 AND lp.correct_answers < lp.total_attempts / 2))`

type ProgressR struct {
	db     QueryI
	driver string
}

func NewProgressRepository(db QueryI, driver string) *ProgressR {
	return &ProgressR{db: db, driver: driver}
}

func (p *ProgressR) ByUserAndWord(ctx context.Context, userID, wordID int64) (models.LearningProgress, error) {
	query := `
		SELECT id, user_id, word_id, knowledge_level, total_attempts, correct_answers, last_practiced, next_review
		FROM learning_progress
		WHERE user_id = $1 AND word_id = $2
	`

	var progress models.LearningProgress
	err := p.db.GetContext(ctx, &progress, query, userID, wordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LearningProgress{}, fmt.Errorf("progress for user %d word %d: %w", userID, wordID, ErrNotFound)
		}
		return models.LearningProgress{}, fmt.Errorf("failed to get progress: %w", err)
	}

	return progress, nil
}

// Upsert writes the full scheduling state for one (user, word) pair,
// creating the row on the first answer.
func (p *ProgressR) Upsert(ctx context.Context, progress models.LearningProgress) (models.LearningProgress, error) {
	query := `
		INSERT INTO learning_progress (user_id, word_id, knowledge_level, total_attempts, correct_answers, last_practiced, next_review)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			knowledge_level = EXCLUDED.knowledge_level,
			total_attempts = EXCLUDED.total_attempts,
			correct_answers = EXCLUDED.correct_answers,
			last_practiced = EXCLUDED.last_practiced,
			next_review = EXCLUDED.next_review
		RETURNING id
	`

	var id int64
	err := p.db.GetContext(ctx, &id, query,
		progress.UserID, progress.WordID, progress.KnowledgeLevel,
		progress.TotalAttempts, progress.CorrectAnswers, progress.LastPracticed, progress.NextReview)
	if err != nil {
		return models.LearningProgress{}, fmt.Errorf("failed to upsert progress: %w", err)
	}

	progress.ID = id

	return progress, nil
}

// DueWords returns due progress rows joined with their words, most overdue first.
func (p *ProgressR) DueWords(ctx context.Context, userID int64, now time.Time, limit int) ([]models.TrainingWord, error) {
	query := `
		SELECT
			w.id AS word_id,
			w.word_text,
			w.translation,
			w.transcription,
			w.example,
			lp.knowledge_level,
			lp.total_attempts,
			lp.correct_answers,
			lp.next_review
		FROM learning_progress lp
		JOIN words w ON w.id = lp.word_id
		WHERE lp.user_id = $1 AND lp.next_review <= $2
		ORDER BY lp.next_review ASC
		LIMIT $3
	`

	words := make([]models.TrainingWord, 0, limit)
	err := p.db.SelectContext(ctx, &words, query, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due words for user %d: %w", userID, err)
	}

	return words, nil
}

func (p *ProgressR) DueCount(ctx context.Context, userID int64, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM learning_progress WHERE user_id = $1 AND next_review <= $2`

	var total int
	err := p.db.GetContext(ctx, &total, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count due words for user %d: %w", userID, err)
	}

	return total, nil
}

func (p *ProgressR) DifficultWords(ctx context.Context, userID int64, limit int) ([]models.TrainingWord, error) {
	query := `
		SELECT
			w.id AS word_id,
			w.word_text,
			w.translation,
			w.transcription,
			w.example,
			lp.knowledge_level,
			lp.total_attempts,
			lp.correct_answers,
			lp.next_review
		FROM learning_progress lp
		JOIN words w ON w.id = lp.word_id
		WHERE lp.user_id = $1 AND ` + difficultPredicate + `
		ORDER BY lp.knowledge_level ASC
		LIMIT $2
	`

	words := make([]models.TrainingWord, 0, limit)
	err := p.db.SelectContext(ctx, &words, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get difficult words for user %d: %w", userID, err)
	}

	return words, nil
}

func (p *ProgressR) ProgressedCount(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM learning_progress WHERE user_id = $1`

	var total int
	err := p.db.GetContext(ctx, &total, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count progress rows for user %d: %w", userID, err)
	}

	return total, nil
}

func (p *ProgressR) CompletedTodayCount(ctx context.Context, userID int64, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM learning_progress WHERE user_id = $1 AND last_practiced >= $2`

	var total int
	err := p.db.GetContext(ctx, &total, query, userID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed words for user %d: %w", userID, err)
	}

	return total, nil
}

func (p *ProgressR) LastPracticed(ctx context.Context, userID int64) (*time.Time, error) {
	query := `SELECT MAX(last_practiced) FROM learning_progress WHERE user_id = $1`

	var last sql.NullTime
	err := p.db.GetContext(ctx, &last, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last practice date for user %d: %w", userID, err)
	}

	if !last.Valid {
		return nil, nil
	}

	return &last.Time, nil
}

// PracticeDates returns the most recent distinct practice days, newest
// first, bounded at limit. The bound is a deliberate lookback window for
// streak calculation, not pagination.
func (p *ProgressR) PracticeDates(ctx context.Context, userID int64, limit int) ([]time.Time, error) {
	// DATE() yields a date value on postgres and a text day on sqlite;
	// selecting text on both keeps the scan uniform.
	var query string
	if p.driver == "sqlite" {
		query = `
			SELECT DISTINCT DATE(last_practiced) AS day
			FROM learning_progress
			WHERE user_id = $1
			ORDER BY day DESC
			LIMIT $2
		`
	} else {
		query = `
			SELECT DISTINCT DATE(last_practiced)::TEXT AS day
			FROM learning_progress
			WHERE user_id = $1
			ORDER BY day DESC
			LIMIT $2
		`
	}

	days := make([]string, 0, limit)
	err := p.db.SelectContext(ctx, &days, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get practice dates for user %d: %w", userID, err)
	}

	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		date, err := time.ParseInLocation(time.DateOnly, day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse practice date %q: %w", day, err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}
