package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
)

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

func (w *WordsR) CreateWord(ctx context.Context, word models.Word, now time.Time) (models.Word, error) {
	query := `
		INSERT INTO words (dictionary_id, user_id, word_text, translation, transcription, example, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := w.db.GetContext(ctx, &created, query,
		word.DictionaryID, word.UserID, word.WordText, word.Translation, word.Transcription, word.Example, now)
	if err != nil {
		return models.Word{}, fmt.Errorf("failed to create word: %w", err)
	}

	word.ID = created.ID
	word.CreatedAt = created.CreatedAt

	return word, nil
}

func (w *WordsR) WordByID(ctx context.Context, userID, wordID int64) (models.Word, error) {
	query := `
		SELECT id, dictionary_id, user_id, word_text, translation, transcription, example, created_at
		FROM words
		WHERE id = $1 AND user_id = $2
	`

	var word models.Word
	err := w.db.GetContext(ctx, &word, query, wordID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, fmt.Errorf("word %d for user %d: %w", wordID, userID, ErrNotFound)
		}
		return models.Word{}, fmt.Errorf("failed to get word %d: %w", wordID, err)
	}

	return word, nil
}

func (w *WordsR) Words(ctx context.Context, userID int64, dictionaryID *int64) ([]models.Word, error) {
	query := `
		SELECT id, dictionary_id, user_id, word_text, translation, transcription, example, created_at
		FROM words
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if dictionaryID != nil {
		query += ` AND dictionary_id = $2`
		args = append(args, *dictionaryID)
	}
	query += ` ORDER BY created_at ASC`

	words := make([]models.Word, 0)
	err := w.db.SelectContext(ctx, &words, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list words for user %d: %w", userID, err)
	}

	return words, nil
}

func (w *WordsR) DeleteWord(ctx context.Context, userID, wordID int64) error {
	query := `DELETE FROM words WHERE id = $1 AND user_id = $2`

	res, err := w.db.ExecContext(ctx, query, wordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete word %d: %w", wordID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("word %d for user %d: %w", wordID, userID, ErrNotFound)
	}

	return nil
}

// NewWords returns words the user has never answered, oldest first.
func (w *WordsR) NewWords(ctx context.Context, userID int64, dictionaryID *int64, limit int) ([]models.TrainingWord, error) {
	query := `
		SELECT
			w.id AS word_id,
			w.word_text,
			w.translation,
			w.transcription,
			w.example,
			0 AS knowledge_level,
			0 AS total_attempts,
			0 AS correct_answers,
			NULL AS next_review
		FROM words w
		LEFT JOIN learning_progress lp ON lp.word_id = w.id AND lp.user_id = w.user_id
		WHERE w.user_id = $1
			AND lp.id IS NULL
	`
	args := []interface{}{userID}

	if dictionaryID != nil {
		query += ` AND w.dictionary_id = $2
		ORDER BY w.created_at ASC
		LIMIT $3`
		args = append(args, *dictionaryID, limit)
	} else {
		query += ` ORDER BY w.created_at ASC
		LIMIT $2`
		args = append(args, limit)
	}

	words := make([]models.TrainingWord, 0, limit)
	err := w.db.SelectContext(ctx, &words, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get new words for user %d: %w", userID, err)
	}

	return words, nil
}

func (w *WordsR) WordCount(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE user_id = $1`

	var total int
	err := w.db.GetContext(ctx, &total, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count words for user %d: %w", userID, err)
	}

	return total, nil
}
