package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound marks a lookup that matched no rows for the caller.
var ErrNotFound = errors.New("not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*WordsR
	*ProgressR
}

func NewRepository(db QueryI, driver string) Repository {
	return Repository{
		WordsR:    NewWordsRepository(db),
		ProgressR: NewProgressRepository(db, driver),
	}
}
