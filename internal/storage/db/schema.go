package db

import "github.com/jmoiron/sqlx"

const postgresSchema = `
CREATE TABLE IF NOT EXISTS words (
	id BIGSERIAL PRIMARY KEY,
	dictionary_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	word_text TEXT NOT NULL,
	translation TEXT NOT NULL,
	transcription TEXT,
	example TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_words_user ON words (user_id, created_at);

CREATE TABLE IF NOT EXISTS learning_progress (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	word_id BIGINT NOT NULL REFERENCES words (id) ON DELETE CASCADE,
	knowledge_level INT NOT NULL DEFAULT 0,
	total_attempts INT NOT NULL DEFAULT 0,
	correct_answers INT NOT NULL DEFAULT 0,
	last_practiced TIMESTAMPTZ NOT NULL,
	next_review TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, word_id)
);

CREATE INDEX IF NOT EXISTS idx_progress_due ON learning_progress (user_id, next_review);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	word_text TEXT NOT NULL,
	translation TEXT NOT NULL,
	transcription TEXT,
	example TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_words_user ON words (user_id, created_at);

CREATE TABLE IF NOT EXISTS learning_progress (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	word_id INTEGER NOT NULL REFERENCES words (id) ON DELETE CASCADE,
	knowledge_level INTEGER NOT NULL DEFAULT 0,
	total_attempts INTEGER NOT NULL DEFAULT 0,
	correct_answers INTEGER NOT NULL DEFAULT 0,
	last_practiced TIMESTAMP NOT NULL,
	next_review TIMESTAMP NOT NULL,
	UNIQUE (user_id, word_id)
);

CREATE INDEX IF NOT EXISTS idx_progress_due ON learning_progress (user_id, next_review);
`

func ensureSchema(db *sqlx.DB, driver string) error {
	schema := postgresSchema
	if driver == "sqlite" {
		schema = sqliteSchema
	}
	_, err := db.Exec(schema)
	return err
}
