package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	"go.uber.org/zap"
)

type TrainingS struct {
	repo  ProgressRI
	words WordRI
	log   *zap.Logger
}

func NewTrainingService(repo ProgressRI, words WordRI, log *zap.Logger) *TrainingS {
	return &TrainingS{
		repo:  repo,
		words: words,
		log:   log,
	}
}

// SelectWords picks a training batch for the given mode and shuffles it.
// The shuffle only randomizes presentation order; category selection stays
// deterministic and nothing is written.
func (s *TrainingS) SelectWords(ctx context.Context, userID int64, mode models.TrainingMode, dictionaryID *int64, limit int, now time.Time) ([]models.TrainingWord, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	words, err := s.selectByMode(ctx, userID, mode, dictionaryID, limit, now)
	if err != nil {
		s.log.Error("failed to select training words",
			zap.Int64("user_id", userID), zap.String("mode", string(mode)), zap.Error(err))
		return nil, err
	}

	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	return words, nil
}

func (s *TrainingS) selectByMode(ctx context.Context, userID int64, mode models.TrainingMode, dictionaryID *int64, limit int, now time.Time) ([]models.TrainingWord, error) {
	switch mode {
	case models.TrainingModeReview:
		return s.repo.DueWords(ctx, userID, now, limit)
	case models.TrainingModeDifficult:
		return s.repo.DifficultWords(ctx, userID, limit)
	case models.TrainingModeNew:
		return s.words.NewWords(ctx, userID, dictionaryID, limit)
	default:
		// mixed: half due reviews, the rest new words
		reviewLimit := limit / 2

		due, err := s.repo.DueWords(ctx, userID, now, reviewLimit)
		if err != nil {
			return nil, err
		}

		fresh, err := s.words.NewWords(ctx, userID, dictionaryID, limit-reviewLimit)
		if err != nil {
			return nil, err
		}

		return append(due, fresh...), nil
	}
}
