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

// notSavedFilter excludes bundle words the user has already saved for the
// current learning language, plus any explicitly excluded word texts.
// Parameter positions are shared by both sampling queries:
// $1 = user ID, $2 = learning language, $3 = exclusion list.
const notSavedFilter = `
	  bw.word <> ALL($3)
	  AND NOT EXISTS (
		SELECT 1 FROM saved_words sw
		WHERE sw.user_id = $1
		  AND sw.learning_language = $2
		  AND sw.word = bw.word
	  )
`

// BundleStore implements store.BundleStore using PostgreSQL. Sampling
// uses ORDER BY random(); bundles are small curated lists so the full
// sort is cheap and keeps the query trivially correct.
type BundleStore struct {
	db store.DBTX
}

// Ensure BundleStore implements store.BundleStore
var _ store.BundleStore = (*BundleStore)(nil)

// NewBundleStore creates a PostgreSQL implementation of store.BundleStore.
func NewBundleStore(db store.DBTX) *BundleStore {
	return &BundleStore{db: db}
}

// GetByName implements store.BundleStore.GetByName
func (s *BundleStore) GetByName(ctx context.Context, name string) (*domain.Bundle, error) {
	query := `
		SELECT id, name, COALESCE(level, '')
		FROM bundles
		WHERE name = $1
	`

	var bundle domain.Bundle
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&bundle.ID,
		&bundle.Name,
		&bundle.Level,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrBundleNotFound
		}
		return nil, MapError(err)
	}

	return &bundle, nil
}

// SampleWords implements store.BundleStore.SampleWords
func (s *BundleStore) SampleWords(
	ctx context.Context,
	bundleName string,
	userID uuid.UUID,
	learningLanguage string,
	limit int,
	exclude []string,
) ([]string, error) {
	log := logger.FromContext(ctx)

	bundle, err := s.GetByName(ctx, bundleName)
	if err != nil {
		return nil, err
	}

	if exclude == nil {
		exclude = []string{}
	}

	query := `
		SELECT bw.word
		FROM bundle_words bw
		WHERE bw.bundle_id = $4
		  AND ` + notSavedFilter + `
		ORDER BY random()
		LIMIT $5
	`

	rows, err := s.db.QueryContext(ctx, query, userID, learningLanguage, exclude, bundle.ID, limit)
	if err != nil {
		log.Error("failed to sample bundle words",
			"bundle", bundleName,
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to sample bundle words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectStrings(rows)
}

// SampleAnyWords implements store.BundleStore.SampleAnyWords
func (s *BundleStore) SampleAnyWords(
	ctx context.Context,
	userID uuid.UUID,
	learningLanguage string,
	limit int,
	exclude []string,
) ([]string, error) {
	log := logger.FromContext(ctx)

	if exclude == nil {
		exclude = []string{}
	}

	query := `
		SELECT DISTINCT ON (bw.word) bw.word
		FROM bundle_words bw
		WHERE ` + notSavedFilter + `
		ORDER BY bw.word, random()
	`

	// DISTINCT ON forces word ordering, so shuffle and cap in an outer query.
	query = `SELECT word FROM (` + query + `) corpus ORDER BY random() LIMIT $4`

	rows, err := s.db.QueryContext(ctx, query, userID, learningLanguage, exclude, limit)
	if err != nil {
		log.Error("failed to sample corpus words",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to sample corpus words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectStrings(rows)
}

// collectStrings drains a single-column text result set.
func collectStrings(rows *sql.Rows) ([]string, error) {
	var words []string

	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating word rows: %w", err)
	}

	return words, nil
}
