package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedWord-specific validation errors
var (
	// ErrWordIDEmpty is returned when a saved word ID is empty or nil.
	ErrWordIDEmpty = errors.New("saved word ID cannot be empty")

	// ErrWordUserIDEmpty is returned when a saved word's user ID is empty or nil.
	ErrWordUserIDEmpty = errors.New("saved word user ID cannot be empty")

	// ErrWordTextEmpty is returned when the word text is empty.
	ErrWordTextEmpty = errors.New("word cannot be empty")

	// ErrWordLanguageEmpty is returned when either language code is missing.
	ErrWordLanguageEmpty = errors.New("saved word language codes cannot be empty")
)

// SavedWord is a word a user has saved for study. The identity
// (user, word, learning language, native language) is unique; the row is
// created on first save or first review and never mutated afterwards
// except for the IsKnown flag, which removes the word from scheduling
// and practice entirely.
type SavedWord struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Word             string    `json:"word"`
	LearningLanguage string    `json:"learning_language"`
	NativeLanguage   string    `json:"native_language"`
	IsKnown          bool      `json:"is_known"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewSavedWord creates a new SavedWord owned by the given user.
// The word text is trimmed and lowercased so the uniqueness constraint
// is case-insensitive. Returns an error if validation fails.
func NewSavedWord(userID uuid.UUID, word, learningLanguage, nativeLanguage string) (*SavedWord, error) {
	saved := &SavedWord{
		ID:               uuid.New(),
		UserID:           userID,
		Word:             strings.ToLower(strings.TrimSpace(word)),
		LearningLanguage: learningLanguage,
		NativeLanguage:   nativeLanguage,
		IsKnown:          false,
		CreatedAt:        time.Now().UTC(),
	}

	if err := saved.Validate(); err != nil {
		return nil, err
	}

	return saved, nil
}

// Validate checks if the SavedWord has valid data.
// Returns an error if any field fails validation.
func (w *SavedWord) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.UserID == uuid.Nil {
		return ErrWordUserIDEmpty
	}

	if strings.TrimSpace(w.Word) == "" {
		return ErrWordTextEmpty
	}

	if w.LearningLanguage == "" || w.NativeLanguage == "" {
		return ErrWordLanguageEmpty
	}

	return nil
}
