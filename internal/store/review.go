package store

import (
	"context"
	"database/sql"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/google/uuid"
)

// ReviewStore defines the interface for the append-only review history.
type ReviewStore interface {
	// Create appends a review event to a word's history. The event carries
	// the next_review_date the scheduler computed from the full history;
	// callers insert it inside the same transaction that holds the row
	// lock on the saved word.
	Create(ctx context.Context, event *domain.ReviewEvent) error

	// ListByWord retrieves a word's full review history ordered by
	// reviewed_at ascending, the order the scheduling engine requires.
	// An empty history is a valid result, not an error.
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.ReviewEvent, error)

	// WithTx returns a new ReviewStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
