package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lexitrain/lexitrain/internal/models"
	mock_repository "github.com/lexitrain/lexitrain/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execResult struct {
	rows int64
}

func (r execResult) LastInsertId() (int64, error) { return 0, nil }
func (r execResult) RowsAffected() (int64, error) { return r.rows, nil }

func newWordsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *WordsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &WordsR{db: db}
}

func TestWordsR_CreateWord(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	word := models.Word{
		DictionaryID: 3,
		UserID:       1,
		WordText:     "apple",
		Translation:  "яблоко",
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						created := dest.(*struct {
							ID        int64     `db:"id"`
							CreatedAt time.Time `db:"created_at"`
						})
						created.ID = 11
						created.CreatedAt = now
						return nil
					})
			},
			wantID: 11,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, tt.f)

			got, err := repo.CreateWord(context.Background(), word, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, now, got.CreatedAt)
			assert.Equal(t, word.WordText, got.WordText)
		})
	}
}

func TestWordsR_WordByID(t *testing.T) {
	t.Parallel()

	stored := models.Word{ID: 42, DictionaryID: 3, UserID: 1, WordText: "apple", Translation: "яблоко"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Word
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&stored), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Word) = stored
						return nil
					})
			},
			want: stored,
		},
		{
			name: "foreign word maps to not found",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
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

			repo := newWordsMock(t, ctrl, tt.f)

			got, err := repo.WordByID(context.Background(), 1, 42)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsR_DeleteWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(execResult{rows: 1}, nil)
			},
		},
		{
			name: "nothing deleted maps to not found",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(execResult{rows: 0}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
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

			repo := newWordsMock(t, ctrl, tt.f)

			err := repo.DeleteWord(context.Background(), 1, 42)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestWordsR_NewWords(t *testing.T) {
	t.Parallel()

	expected := []models.TrainingWord{{WordID: 2, WordText: "pear", Translation: "груша"}}
	dictID := int64(3)

	tests := []struct {
		name         string
		dictionaryID *int64
		f            func(t *testing.T, mqi *mock_repository.MockQueryI)
		want         []models.TrainingWord
		wantErr      bool
	}{
		{
			name: "unscoped",
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expected), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						require.Len(t, args, 2) // user id + limit
						slice := dest.(*[]models.TrainingWord)
						*slice = append(*slice, expected...)
						return nil
					})
			},
			want: expected,
		},
		{
			name:         "dictionary scoped",
			dictionaryID: &dictID,
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expected), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						require.Len(t, args, 3) // user id + dictionary id + limit
						assert.Equal(t, dictID, args[1])
						slice := dest.(*[]models.TrainingWord)
						*slice = append(*slice, expected...)
						return nil
					})
			},
			want: expected,
		},
		{
			name: "db error",
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mock_repository.NewMockQueryI(ctrl)
			tt.f(t, db)
			repo := NewWordsRepository(db)

			got, err := repo.NewWords(context.Background(), 1, tt.dictionaryID, 5)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsR_WordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    int
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				var total int
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&total), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*int) = 15
						return nil
					})
			},
			want: 15,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, tt.f)

			got, err := repo.WordCount(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
