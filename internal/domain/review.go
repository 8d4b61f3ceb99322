package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewEvent-specific validation errors
var (
	// ErrReviewIDEmpty is returned when a review event ID is empty or nil.
	ErrReviewIDEmpty = errors.New("review ID cannot be empty")

	// ErrReviewWordIDEmpty is returned when a review event's word ID is empty or nil.
	ErrReviewWordIDEmpty = errors.New("review word ID cannot be empty")

	// ErrReviewTimeZero is returned when a review event has no timestamp.
	ErrReviewTimeZero = errors.New("review timestamp cannot be zero")

	// ErrNextReviewNotAfter is returned when the denormalized next review date
	// does not fall after the review itself.
	ErrNextReviewNotAfter = errors.New("next review date must be after the review timestamp")
)

// ReviewEvent is one answer in a saved word's append-only review history.
// NextReviewDate is denormalized at insert time from the entire history
// including this event; the value on the most recent event is the
// authoritative "when is this word due" answer for the word.
type ReviewEvent struct {
	ID             uuid.UUID `json:"id"`
	WordID         uuid.UUID `json:"word_id"`
	Response       bool      `json:"response"` // true = correct, false = incorrect
	ReviewedAt     time.Time `json:"reviewed_at"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// NewReviewEvent creates a review event for the given word. The caller
// supplies the computed next review date; the scheduler is the only
// component that should produce it.
func NewReviewEvent(wordID uuid.UUID, response bool, reviewedAt, nextReviewDate time.Time) (*ReviewEvent, error) {
	event := &ReviewEvent{
		ID:             uuid.New(),
		WordID:         wordID,
		Response:       response,
		ReviewedAt:     reviewedAt.UTC(),
		NextReviewDate: nextReviewDate.UTC(),
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the ReviewEvent has valid data.
// Returns an error if any field fails validation.
func (e *ReviewEvent) Validate() error {
	if e.ID == uuid.Nil {
		return ErrReviewIDEmpty
	}

	if e.WordID == uuid.Nil {
		return ErrReviewWordIDEmpty
	}

	if e.ReviewedAt.IsZero() {
		return ErrReviewTimeZero
	}

	if !e.NextReviewDate.After(e.ReviewedAt) {
		return ErrNextReviewNotAfter
	}

	return nil
}
