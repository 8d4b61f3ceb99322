package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := MapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "saved_words_identity_key"}
		err := MapError(fmt.Errorf("insert failed: %w", pgErr))
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("foreign key violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "reviews_word_id_fkey"}
		err := MapError(pgErr)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := errors.New("connection refused")
		assert.Equal(t, original, MapError(original))
	})
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	err := MapUniqueViolation(pgErr, store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	other := errors.New("network down")
	assert.Equal(t, other, MapUniqueViolation(other, store.ErrEmailExists))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrWordNotFound))

	err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrWordNotFound)
	assert.ErrorIs(t, err, store.ErrWordNotFound)

	err = CheckRowsAffected(fakeResult{err: errors.New("driver broke")}, store.ErrWordNotFound)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
