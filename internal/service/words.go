package service

import (
	"context"
	"errors"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	"github.com/lexitrain/lexitrain/internal/repository"
	"go.uber.org/zap"
)

type WordS struct {
	repo WordRI
	log  *zap.Logger
}

func NewWordService(repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		repo: repo,
		log:  log,
	}
}

func (w *WordS) CreateWord(ctx context.Context, word models.Word, now time.Time) (models.Word, error) {
	created, err := w.repo.CreateWord(ctx, word, now)
	if err != nil {
		w.log.Error("failed to create word", zap.Int64("user_id", word.UserID), zap.Error(err))
		return models.Word{}, err
	}
	return created, nil
}

func (w *WordS) Words(ctx context.Context, userID int64, dictionaryID *int64) ([]models.Word, error) {
	return w.repo.Words(ctx, userID, dictionaryID)
}

// DeleteWord removes a word; the progress row, if any, goes with it.
func (w *WordS) DeleteWord(ctx context.Context, userID, wordID int64) error {
	err := w.repo.DeleteWord(ctx, userID, wordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWordNotFound
		}
		return err
	}
	return nil
}
