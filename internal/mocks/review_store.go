package mocks

import (
	"context"
	"database/sql"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// MockReviewStore implements store.ReviewStore for testing.
type MockReviewStore struct {
	CreateFn     func(ctx context.Context, event *domain.ReviewEvent) error
	ListByWordFn func(ctx context.Context, wordID uuid.UUID) ([]domain.ReviewEvent, error)

	// Default responses when no Fn is set
	Events []domain.ReviewEvent
	Err    error

	// Created collects events passed to Create for verification.
	Created []*domain.ReviewEvent
}

var _ store.ReviewStore = (*MockReviewStore)(nil)

func (m *MockReviewStore) Create(ctx context.Context, event *domain.ReviewEvent) error {
	m.Created = append(m.Created, event)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, event)
	}
	return m.Err
}

func (m *MockReviewStore) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.ReviewEvent, error) {
	if m.ListByWordFn != nil {
		return m.ListByWordFn(ctx, wordID)
	}
	return m.Events, m.Err
}

func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return m
}
