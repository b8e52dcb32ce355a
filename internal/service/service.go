package service

import (
	"context"
	"errors"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	"github.com/lexitrain/lexitrain/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	ErrWordNotFound   = errors.New("word not found")
	ErrInvalidQuality = errors.New("invalid response quality")
	ErrInvalidMode    = errors.New("invalid training mode")
)

type WordRI interface {
	CreateWord(ctx context.Context, word models.Word, now time.Time) (models.Word, error)
	WordByID(ctx context.Context, userID, wordID int64) (models.Word, error)
	Words(ctx context.Context, userID int64, dictionaryID *int64) ([]models.Word, error)
	DeleteWord(ctx context.Context, userID, wordID int64) error
	NewWords(ctx context.Context, userID int64, dictionaryID *int64, limit int) ([]models.TrainingWord, error)
	WordCount(ctx context.Context, userID int64) (int, error)
}

type ProgressRI interface {
	ByUserAndWord(ctx context.Context, userID, wordID int64) (models.LearningProgress, error)
	Upsert(ctx context.Context, progress models.LearningProgress) (models.LearningProgress, error)
	DueWords(ctx context.Context, userID int64, now time.Time, limit int) ([]models.TrainingWord, error)
	DueCount(ctx context.Context, userID int64, now time.Time) (int, error)
	DifficultWords(ctx context.Context, userID int64, limit int) ([]models.TrainingWord, error)
	ProgressedCount(ctx context.Context, userID int64) (int, error)
	CompletedTodayCount(ctx context.Context, userID int64, since time.Time) (int, error)
	LastPracticed(ctx context.Context, userID int64) (*time.Time, error)
	PracticeDates(ctx context.Context, userID int64, limit int) ([]time.Time, error)
}

type RepositoryI interface {
	WordRI
	ProgressRI
}

type Service struct {
	*WordS
	*ProgressS
	*PlanS
	*TrainingS
}

func InitServices(repo RepositoryI, locks *cache.ProgressLocks, log *zap.Logger) *Service {
	return &Service{
		WordS:     NewWordService(repo, log),
		ProgressS: NewProgressService(repo, repo, locks, log),
		PlanS:     NewPlanService(repo, repo, log),
		TrainingS: NewTrainingService(repo, repo, log),
	}
}
