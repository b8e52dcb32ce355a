package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lexitrain/lexitrain/internal/config"
	"github.com/lexitrain/lexitrain/internal/models"
	"go.uber.org/zap"
)

type WordSI interface {
	CreateWord(ctx context.Context, word models.Word, now time.Time) (models.Word, error)
	Words(ctx context.Context, userID int64, dictionaryID *int64) ([]models.Word, error)
	DeleteWord(ctx context.Context, userID, wordID int64) error
}

type ProgressSI interface {
	UpdateProgress(ctx context.Context, userID, wordID int64, quality models.ResponseQuality, now time.Time) (models.LearningProgress, error)
}

type PlanSI interface {
	ComposePlan(ctx context.Context, userID int64, now time.Time, newWordsLimit, reviewLimit int) (models.DailyPlan, error)
}

type TrainingSI interface {
	SelectWords(ctx context.Context, userID int64, mode models.TrainingMode, dictionaryID *int64, limit int, now time.Time) ([]models.TrainingWord, error)
}

type ServiceI interface {
	WordSI
	ProgressSI
	PlanSI
	TrainingSI
}

type Server struct {
	echo    *echo.Echo
	service ServiceI
	log     *zap.Logger
	addr    string
}

func NewServer(cfg config.HTTPConfig, service ServiceI, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:    e,
		service: service,
		log:     log,
		addr:    cfg.Host + ":" + cfg.Port,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api/v1", userIdentity)

	api.POST("/progress", s.updateProgress)
	api.GET("/plan", s.dailyPlan)
	api.GET("/training/words", s.trainingWords)

	api.POST("/words", s.createWord)
	api.GET("/words", s.listWords)
	api.DELETE("/words/:id", s.deleteWord)
}

func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
