package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// ReviewStore implements store.ReviewStore using PostgreSQL.
type ReviewStore struct {
	db store.DBTX
}

// Ensure ReviewStore implements store.ReviewStore
var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore creates a PostgreSQL implementation of store.ReviewStore.
func NewReviewStore(db store.DBTX) *ReviewStore {
	return &ReviewStore{db: db}
}

// WithTx returns a ReviewStore bound to the given transaction.
func (s *ReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &ReviewStore{db: tx}
}

// Create implements store.ReviewStore.Create
func (s *ReviewStore) Create(ctx context.Context, event *domain.ReviewEvent) error {
	log := logger.FromContext(ctx)

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO reviews (id, word_id, response, reviewed_at, next_review_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.WordID,
		event.Response,
		event.ReviewedAt,
		event.NextReviewDate,
	)
	if err != nil {
		log.Error("failed to create review event",
			"word_id", event.WordID,
			"error", err)
		return MapError(err)
	}

	return nil
}

// ListByWord implements store.ReviewStore.ListByWord. Events come back
// ordered by reviewed_at ascending, the order the scheduler consumes.
func (s *ReviewStore) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.ReviewEvent, error) {
	query := `
		SELECT id, word_id, response, reviewed_at, next_review_date
		FROM reviews
		WHERE word_id = $1
		ORDER BY reviewed_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query review history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []domain.ReviewEvent
	for rows.Next() {
		var event domain.ReviewEvent
		if err := rows.Scan(
			&event.ID,
			&event.WordID,
			&event.Response,
			&event.ReviewedAt,
			&event.NextReviewDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return events, nil
}
