package service

import (
	"context"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	"go.uber.org/zap"
)

// difficultCap bounds the difficult bucket regardless of caller limits.
const difficultCap = 10

type PlanS struct {
	repo  ProgressRI
	words WordRI
	log   *zap.Logger
}

func NewPlanService(repo ProgressRI, words WordRI, log *zap.Logger) *PlanS {
	return &PlanS{
		repo:  repo,
		words: words,
		log:   log,
	}
}

// ComposePlan partitions the user's vocabulary into capped review / new /
// difficult buckets and attaches uncapped stats. Read-only: composing the
// same plan twice without intervening answers yields identical results.
func (s *PlanS) ComposePlan(ctx context.Context, userID int64, now time.Time, newWordsLimit, reviewLimit int) (models.DailyPlan, error) {
	reviewWords, err := s.repo.DueWords(ctx, userID, now, reviewLimit)
	if err != nil {
		return models.DailyPlan{}, err
	}

	newWords, err := s.words.NewWords(ctx, userID, nil, newWordsLimit)
	if err != nil {
		return models.DailyPlan{}, err
	}

	difficultWords, err := s.repo.DifficultWords(ctx, userID, difficultCap)
	if err != nil {
		return models.DailyPlan{}, err
	}

	stats, err := s.composeStats(ctx, userID, now)
	if err != nil {
		s.log.Error("failed to compose plan stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.DailyPlan{}, err
	}
	stats.TotalDifficultCount = len(difficultWords)

	return models.DailyPlan{
		ReviewWords:    reviewWords,
		NewWords:       newWords,
		DifficultWords: difficultWords,
		Stats:          stats,
	}, nil
}

func (s *PlanS) composeStats(ctx context.Context, userID int64, now time.Time) (models.DailyStats, error) {
	dueCount, err := s.repo.DueCount(ctx, userID, now)
	if err != nil {
		return models.DailyStats{}, err
	}

	wordCount, err := s.words.WordCount(ctx, userID)
	if err != nil {
		return models.DailyStats{}, err
	}

	progressedCount, err := s.repo.ProgressedCount(ctx, userID)
	if err != nil {
		return models.DailyStats{}, err
	}

	completedToday, err := s.repo.CompletedTodayCount(ctx, userID, dateOnly(now))
	if err != nil {
		return models.DailyStats{}, err
	}

	practiceDates, err := s.repo.PracticeDates(ctx, userID, streakLookbackDays)
	if err != nil {
		return models.DailyStats{}, err
	}

	lastPracticed, err := s.repo.LastPracticed(ctx, userID)
	if err != nil {
		return models.DailyStats{}, err
	}

	return models.DailyStats{
		TotalReviewCount: dueCount,
		TotalNewCount:    wordCount - progressedCount,
		CompletedToday:   completedToday,
		CurrentStreak:    CalculateStreak(practiceDates, now),
		LastPracticeDate: lastPracticed,
	}, nil
}
