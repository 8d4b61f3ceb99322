package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// dueFromClause is the single definition of "due for review": the word is
// not known AND (it has never been reviewed and its creation grace period
// has passed, OR its latest review's next_review_date is in the past).
// Parameters: $1 = user ID, $2 = grace cutoff (now - grace period),
// $3 = now. Both FindDue and CountDue reuse this fragment verbatim so the
// due list and the due count can never disagree.
const dueFromClause = `
	FROM saved_words sw
	LEFT JOIN LATERAL (
		SELECT r.next_review_date
		FROM reviews r
		WHERE r.word_id = sw.id
		ORDER BY r.reviewed_at DESC
		LIMIT 1
	) latest ON TRUE
	WHERE sw.user_id = $1
	  AND sw.is_known = FALSE
	  AND (
		(latest.next_review_date IS NULL AND sw.created_at <= $2)
		OR latest.next_review_date <= $3
	  )
`

// WordStore implements store.WordStore using PostgreSQL.
type WordStore struct {
	db store.DBTX
}

// Ensure WordStore implements store.WordStore
var _ store.WordStore = (*WordStore)(nil)

// NewWordStore creates a PostgreSQL implementation of store.WordStore.
func NewWordStore(db store.DBTX) *WordStore {
	return &WordStore{db: db}
}

// WithTx returns a WordStore bound to the given transaction.
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &WordStore{db: tx}
}

// Create implements store.WordStore.Create
func (s *WordStore) Create(ctx context.Context, word *domain.SavedWord) error {
	log := logger.FromContext(ctx)

	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO saved_words (id, user_id, word, learning_language, native_language, is_known, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		word.ID,
		word.UserID,
		word.Word,
		word.LearningLanguage,
		word.NativeLanguage,
		word.IsKnown,
		word.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create saved word",
			"user_id", word.UserID,
			"error", err)
		return MapUniqueViolation(err, store.ErrWordExists)
	}

	return nil
}

// GetByID implements store.WordStore.GetByID
func (s *WordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error) {
	query := `
		SELECT id, user_id, word, learning_language, native_language, is_known, created_at
		FROM saved_words
		WHERE id = $1
	`
	return s.scanWord(s.db.QueryRowContext(ctx, query, id))
}

// GetForUpdate implements store.WordStore.GetForUpdate. The FOR UPDATE
// lock serializes concurrent review submissions for the same word; it is
// only effective when the store is bound to a transaction.
func (s *WordStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error) {
	query := `
		SELECT id, user_id, word, learning_language, native_language, is_known, created_at
		FROM saved_words
		WHERE id = $1
		FOR UPDATE
	`
	return s.scanWord(s.db.QueryRowContext(ctx, query, id))
}

// ListByUser implements store.WordStore.ListByUser
func (s *WordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	query := `
		SELECT id, user_id, word, learning_language, native_language, is_known, created_at
		FROM saved_words
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectWords(rows)
}

// MarkKnown implements store.WordStore.MarkKnown
func (s *WordStore) MarkKnown(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE saved_words SET is_known = TRUE WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// Delete implements store.WordStore.Delete. Review history rows are
// removed by the ON DELETE CASCADE on reviews.word_id.
func (s *WordStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM saved_words WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// FindDue implements store.WordStore.FindDue
func (s *WordStore) FindDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	gracePeriod time.Duration,
	limit int,
	exclude []string,
) ([]domain.SavedWord, error) {
	log := logger.FromContext(ctx)

	if exclude == nil {
		exclude = []string{}
	}

	query := `
		SELECT sw.id, sw.user_id, sw.word, sw.learning_language, sw.native_language, sw.is_known, sw.created_at
	` + dueFromClause + `
		  AND sw.word <> ALL($4)
		ORDER BY COALESCE(latest.next_review_date, sw.created_at) ASC
		LIMIT $5
	`

	rows, err := s.db.QueryContext(ctx, query,
		userID,
		now.Add(-gracePeriod),
		now,
		exclude,
		limit,
	)
	if err != nil {
		log.Error("failed to query due words",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to query due words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectWords(rows)
}

// CountDue implements store.WordStore.CountDue
func (s *WordStore) CountDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	gracePeriod time.Duration,
) (int, error) {
	query := `SELECT count(*)` + dueFromClause

	var count int
	err := s.db.QueryRowContext(ctx, query,
		userID,
		now.Add(-gracePeriod),
		now,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count due words: %w", err)
	}

	return count, nil
}

// scanWord scans a single saved word row, mapping sql.ErrNoRows to
// store.ErrWordNotFound.
func (s *WordStore) scanWord(row *sql.Row) (*domain.SavedWord, error) {
	var word domain.SavedWord

	err := row.Scan(
		&word.ID,
		&word.UserID,
		&word.Word,
		&word.LearningLanguage,
		&word.NativeLanguage,
		&word.IsKnown,
		&word.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}

	return &word, nil
}

// collectWords drains a saved word result set.
func collectWords(rows *sql.Rows) ([]domain.SavedWord, error) {
	var words []domain.SavedWord

	for rows.Next() {
		var word domain.SavedWord
		if err := rows.Scan(
			&word.ID,
			&word.UserID,
			&word.Word,
			&word.LearningLanguage,
			&word.NativeLanguage,
			&word.IsKnown,
			&word.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan saved word row: %w", err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved word rows: %w", err)
	}

	return words, nil
}
