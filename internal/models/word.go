package models

import (
	"time"
)

type Word struct {
	ID            int64     `db:"id" json:"id"`
	DictionaryID  int64     `db:"dictionary_id" json:"dictionary_id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	WordText      string    `db:"word_text" json:"word_text"`
	Translation   string    `db:"translation" json:"translation"`
	Transcription *string   `db:"transcription" json:"transcription,omitempty"`
	Example       *string   `db:"example" json:"example,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
