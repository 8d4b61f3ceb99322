package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/google/uuid"
)

// WordStore defines the interface for saved word persistence, including
// the due-word selection queries the scheduler and batch assembler share.
type WordStore interface {
	// Create saves a new word for a user.
	// Returns ErrWordExists if the user already saved this word for the
	// same language pair.
	Create(ctx context.Context, word *domain.SavedWord) error

	// GetByID retrieves a saved word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error)

	// GetForUpdate retrieves a saved word and takes a row-level lock on it
	// (SELECT ... FOR UPDATE). Only meaningful on a store bound to a
	// transaction via WithTx; the lock is held until the transaction ends
	// and serializes concurrent review submissions for the same word.
	// Returns ErrWordNotFound if the word does not exist.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error)

	// ListByUser retrieves all of a user's saved words, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)

	// MarkKnown flags a saved word as known, removing it from scheduling
	// and batch assembly entirely.
	// Returns ErrWordNotFound if the word does not exist.
	MarkKnown(ctx context.Context, id uuid.UUID) error

	// Delete removes a saved word and its review history.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindDue returns up to limit of the user's words that are due for
	// review at the given instant: words that are not known AND (have no
	// reviews and were created at least gracePeriod ago, OR whose latest
	// review's next_review_date has passed). Words whose text appears in
	// exclude are skipped. Results are ordered most-overdue first.
	FindDue(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
		gracePeriod time.Duration,
		limit int,
		exclude []string,
	) ([]domain.SavedWord, error)

	// CountDue returns the number of the user's words that are due for
	// review at the given instant, using the same predicate as FindDue.
	CountDue(
		ctx context.Context,
		userID uuid.UUID,
		now time.Time,
		gracePeriod time.Duration,
	) (int, error)

	// WithTx returns a new WordStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) WordStore
}
