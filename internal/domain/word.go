package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/mikra-api/internal/hebrew"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTextEmpty is returned when a word has no Hebrew text.
	ErrWordTextEmpty = errors.New("word text cannot be empty")

	// ErrWordTextNotHebrew is returned when a word's text contains no
	// Hebrew code point at all.
	ErrWordTextNotHebrew = errors.New("word text must contain Hebrew")
)

// Word is a canonical vocabulary item. The Hebrew text (vocalized surface
// form) is the natural key; the gematria values are a pure function of the
// text and are computed once, at construction.
type Word struct {
	ID              uuid.UUID       `json:"id"`
	HebrewText      string          `json:"hebrew_text"`
	Transliteration string          `json:"transliteration,omitempty"`
	Gematria        hebrew.Gematria `json:"gematria"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewWord creates a Word for the given Hebrew text, generating its ID and
// computing the gematria values. Returns an error if validation fails.
func NewWord(hebrewText string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:         uuid.New(),
		HebrewText: hebrewText,
		Gematria:   hebrew.Calculate(hebrewText),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.HebrewText == "" {
		return ErrWordTextEmpty
	}

	if !hebrew.ContainsHebrew(w.HebrewText) {
		return ErrWordTextNotHebrew
	}

	return nil
}
