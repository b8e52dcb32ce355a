package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	mock_service "github.com/lexitrain/lexitrain/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrainingServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *TrainingS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return &TrainingS{
		repo:  repo,
		words: repo,
		log:   zap.NewNop(),
	}
}

func trainingWords(ids ...int64) []models.TrainingWord {
	words := make([]models.TrainingWord, 0, len(ids))
	for _, id := range ids {
		words = append(words, models.TrainingWord{WordID: id})
	}
	return words
}

func wordIDs(words []models.TrainingWord) map[int64]bool {
	ids := make(map[int64]bool, len(words))
	for _, w := range words {
		ids[w.WordID] = true
	}
	return ids
}

func TestTrainingS_SelectWords(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	dictID := int64(3)

	type args struct {
		userID       int64
		mode         models.TrainingMode
		dictionaryID *int64
		limit        int
	}
	tests := []struct {
		name     string
		args     args
		f        func(*mock_service.MockRepositoryI)
		wantIDs  map[int64]bool
		wantSize int
		wantErr  error
	}{
		{
			name: "review mode returns due words",
			args: args{userID: 1, mode: models.TrainingModeReview, limit: 5},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DueWords(gomock.Any(), int64(1), now, 5).Return(trainingWords(1, 2, 3), nil)
			},
			wantIDs:  map[int64]bool{1: true, 2: true, 3: true},
			wantSize: 3,
		},
		{
			name: "difficult mode returns difficult words",
			args: args{userID: 1, mode: models.TrainingModeDifficult, limit: 5},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DifficultWords(gomock.Any(), int64(1), 5).Return(trainingWords(4, 5), nil)
			},
			wantIDs:  map[int64]bool{4: true, 5: true},
			wantSize: 2,
		},
		{
			name: "new mode honors dictionary scope",
			args: args{userID: 1, mode: models.TrainingModeNew, dictionaryID: &dictID, limit: 5},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().NewWords(gomock.Any(), int64(1), &dictID, 5).Return(trainingWords(6), nil)
			},
			wantIDs:  map[int64]bool{6: true},
			wantSize: 1,
		},
		{
			name: "mixed mode splits the limit",
			args: args{userID: 1, mode: models.TrainingModeMixed, limit: 7},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DueWords(gomock.Any(), int64(1), now, 3).Return(trainingWords(1, 2, 3), nil)
				mri.EXPECT().NewWords(gomock.Any(), int64(1), gomock.Nil(), 4).Return(trainingWords(7, 8, 9, 10), nil)
			},
			wantIDs:  map[int64]bool{1: true, 2: true, 3: true, 7: true, 8: true, 9: true, 10: true},
			wantSize: 7,
		},
		{
			name:    "invalid mode",
			args:    args{userID: 1, mode: models.TrainingMode("cram"), limit: 5},
			wantErr: ErrInvalidMode,
		},
		{
			name: "repository error propagates",
			args: args{userID: 1, mode: models.TrainingModeReview, limit: 5},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().DueWords(gomock.Any(), int64(1), now, 5).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newTrainingServiceMock(t, ctrl, tt.f)

			got, err := svc.SelectWords(context.Background(), tt.args.userID, tt.args.mode, tt.args.dictionaryID, tt.args.limit, now)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidMode) {
					assert.ErrorIs(t, err, ErrInvalidMode)
				}
				return
			}

			require.NoError(t, err)
			// the shuffle only reorders: membership and size must hold
			assert.Len(t, got, tt.wantSize)
			assert.Equal(t, tt.wantIDs, wordIDs(got))
		})
	}
}
