package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lexitrain/lexitrain/internal/models"
	"github.com/lexitrain/lexitrain/internal/service"
	"github.com/lexitrain/lexitrain/pkg/validator"
	"go.uber.org/zap"
)

const (
	defaultNewWordsLimit = 10
	defaultReviewLimit   = 20
	defaultTrainingLimit = 10
)

type errorResponse struct {
	Error string `json:"error"`
}

type updateProgressRequest struct {
	WordID  int64 `json:"word_id" validate:"required,min=1"`
	Quality *int  `json:"quality" validate:"required,min=0,max=3"`
}

// POST /api/v1/progress
func (s *Server) updateProgress(c echo.Context) error {
	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if err := validator.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	progress, err := s.service.UpdateProgress(
		c.Request().Context(), userID(c), req.WordID,
		models.ResponseQuality(*req.Quality), time.Now().UTC())
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, progress)
}

// GET /api/v1/plan
func (s *Server) dailyPlan(c echo.Context) error {
	newLimit, err := queryInt(c, "new_limit", defaultNewWordsLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid new_limit"})
	}

	reviewLimit, err := queryInt(c, "review_limit", defaultReviewLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid review_limit"})
	}

	plan, err := s.service.ComposePlan(c.Request().Context(), userID(c), time.Now().UTC(), newLimit, reviewLimit)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}

// GET /api/v1/training/words
func (s *Server) trainingWords(c echo.Context) error {
	mode := models.TrainingMode(c.QueryParam("mode"))
	if mode == "" {
		mode = models.TrainingModeMixed
	}

	limit, err := queryInt(c, "limit", defaultTrainingLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
	}

	dictionaryID, err := queryID(c, "dictionary_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid dictionary_id"})
	}

	words, err := s.service.SelectWords(c.Request().Context(), userID(c), mode, dictionaryID, limit, time.Now().UTC())
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, words)
}

type createWordRequest struct {
	DictionaryID  int64   `json:"dictionary_id" validate:"required,min=1"`
	WordText      string  `json:"word_text" validate:"required"`
	Translation   string  `json:"translation" validate:"required"`
	Transcription *string `json:"transcription"`
	Example       *string `json:"example"`
}

// POST /api/v1/words
func (s *Server) createWord(c echo.Context) error {
	var req createWordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if err := validator.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	word, err := s.service.CreateWord(c.Request().Context(), models.Word{
		DictionaryID:  req.DictionaryID,
		UserID:        userID(c),
		WordText:      req.WordText,
		Translation:   req.Translation,
		Transcription: req.Transcription,
		Example:       req.Example,
	}, time.Now().UTC())
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, word)
}

// GET /api/v1/words
func (s *Server) listWords(c echo.Context) error {
	dictionaryID, err := queryID(c, "dictionary_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid dictionary_id"})
	}

	words, err := s.service.Words(c.Request().Context(), userID(c), dictionaryID)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, words)
}

// DELETE /api/v1/words/:id
func (s *Server) deleteWord(c echo.Context) error {
	wordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || wordID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid word id"})
	}

	if err := s.service.DeleteWord(c.Request().Context(), userID(c), wordID); err != nil {
		return s.handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrWordNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidQuality), errors.Is(err, service.ErrInvalidMode):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.Error("request failed",
			zap.String("path", c.Path()), zap.Int64("user_id", userID(c)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New("must be a positive integer")
	}

	return value, nil
}

func queryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return nil, errors.New("must be a positive integer")
	}

	return &value, nil
}
