package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	"github.com/lexitrain/lexitrain/internal/repository"
	"github.com/lexitrain/lexitrain/internal/storage/cache"
	"go.uber.org/zap"
)

const (
	// retry delay after a failed recall
	againRetryDelay = 5 * time.Minute
	// interval stretch for a confident recall
	easyBonus = 1.5
	// levels past the table share the longest interval
	maxIntervalDays = 30
)

// intervalDays maps a knowledge level to its review interval in days.
var intervalDays = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
}

func baseInterval(level int) time.Duration {
	days, ok := intervalDays[level]
	if !ok {
		days = maxIntervalDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// Apply advances the scheduling state for one answer. Pure: the result
// depends only on the arguments, and the input state is left untouched.
// A zero-valued state stands for a word answered for the first time.
func Apply(progress models.LearningProgress, quality models.ResponseQuality, now time.Time) models.LearningProgress {
	progress.TotalAttempts++
	progress.LastPracticed = now

	switch quality {
	case models.QualityAgain:
		// forgot completely: back to level 0, re-teach almost immediately
		progress.KnowledgeLevel = 0
		progress.NextReview = now.Add(againRetryDelay)
	case models.QualityHard:
		progress.CorrectAnswers++
		progress.NextReview = now.Add(24 * time.Hour)
	case models.QualityGood:
		progress.CorrectAnswers++
		progress.KnowledgeLevel++
		progress.NextReview = now.Add(baseInterval(progress.KnowledgeLevel))
	case models.QualityEasy:
		progress.CorrectAnswers++
		progress.KnowledgeLevel += 2
		progress.NextReview = now.Add(time.Duration(float64(baseInterval(progress.KnowledgeLevel)) * easyBonus))
	}

	return progress
}

type ProgressS struct {
	repo  ProgressRI
	words WordRI
	locks *cache.ProgressLocks
	log   *zap.Logger
}

func NewProgressService(repo ProgressRI, words WordRI, locks *cache.ProgressLocks, log *zap.Logger) *ProgressS {
	return &ProgressS{
		repo:  repo,
		words: words,
		locks: locks,
		log:   log,
	}
}

// UpdateProgress records one answer for a word and returns the stored
// scheduling state. Updates for the same (user, word) pair are serialized
// so concurrent answers cannot lose each other's writes.
func (s *ProgressS) UpdateProgress(ctx context.Context, userID, wordID int64, quality models.ResponseQuality, now time.Time) (models.LearningProgress, error) {
	if !quality.Valid() {
		return models.LearningProgress{}, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	if _, err := s.words.WordByID(ctx, userID, wordID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.LearningProgress{}, ErrWordNotFound
		}
		return models.LearningProgress{}, err
	}

	unlock := s.locks.Lock(userID, wordID)
	defer unlock()

	current, err := s.repo.ByUserAndWord(ctx, userID, wordID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return models.LearningProgress{}, err
		}
		current = models.LearningProgress{UserID: userID, WordID: wordID}
	}

	updated, err := s.repo.Upsert(ctx, Apply(current, quality, now))
	if err != nil {
		s.log.Error("failed to store progress",
			zap.Int64("user_id", userID), zap.Int64("word_id", wordID), zap.Error(err))
		return models.LearningProgress{}, err
	}

	return updated, nil
}
