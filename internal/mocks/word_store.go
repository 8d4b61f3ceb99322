package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// MockWordStore implements store.WordStore for testing.
type MockWordStore struct {
	CreateFn       func(ctx context.Context, word *domain.SavedWord) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error)
	GetForUpdateFn func(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error)
	ListByUserFn   func(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)
	MarkKnownFn    func(ctx context.Context, id uuid.UUID) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	FindDueFn      func(ctx context.Context, userID uuid.UUID, now time.Time, gracePeriod time.Duration, limit int, exclude []string) ([]domain.SavedWord, error)
	CountDueFn     func(ctx context.Context, userID uuid.UUID, now time.Time, gracePeriod time.Duration) (int, error)

	// Default responses when no Fn is set
	Word  *domain.SavedWord
	Words []domain.SavedWord
	Count int
	Err   error
}

var _ store.WordStore = (*MockWordStore)(nil)

func (m *MockWordStore) Create(ctx context.Context, word *domain.SavedWord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, word)
	}
	return m.Err
}

func (m *MockWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Word, m.Err
}

func (m *MockWordStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return m.Word, m.Err
}

func (m *MockWordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Words, m.Err
}

func (m *MockWordStore) MarkKnown(ctx context.Context, id uuid.UUID) error {
	if m.MarkKnownFn != nil {
		return m.MarkKnownFn(ctx, id)
	}
	return m.Err
}

func (m *MockWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockWordStore) FindDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	gracePeriod time.Duration,
	limit int,
	exclude []string,
) ([]domain.SavedWord, error) {
	if m.FindDueFn != nil {
		return m.FindDueFn(ctx, userID, now, gracePeriod, limit, exclude)
	}
	return m.Words, m.Err
}

func (m *MockWordStore) CountDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	gracePeriod time.Duration,
) (int, error) {
	if m.CountDueFn != nil {
		return m.CountDueFn(ctx, userID, now, gracePeriod)
	}
	return m.Count, m.Err
}

func (m *MockWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return m
}
