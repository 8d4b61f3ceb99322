package mocks

import (
	"context"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// MockBundleStore implements store.BundleStore for testing.
type MockBundleStore struct {
	GetByNameFn      func(ctx context.Context, name string) (*domain.Bundle, error)
	SampleWordsFn    func(ctx context.Context, bundleName string, userID uuid.UUID, learningLanguage string, limit int, exclude []string) ([]string, error)
	SampleAnyWordsFn func(ctx context.Context, userID uuid.UUID, learningLanguage string, limit int, exclude []string) ([]string, error)

	// Default responses when no Fn is set
	Bundle      *domain.Bundle
	SampledText []string
	Err         error
}

var _ store.BundleStore = (*MockBundleStore)(nil)

func (m *MockBundleStore) GetByName(ctx context.Context, name string) (*domain.Bundle, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return m.Bundle, m.Err
}

func (m *MockBundleStore) SampleWords(
	ctx context.Context,
	bundleName string,
	userID uuid.UUID,
	learningLanguage string,
	limit int,
	exclude []string,
) ([]string, error) {
	if m.SampleWordsFn != nil {
		return m.SampleWordsFn(ctx, bundleName, userID, learningLanguage, limit, exclude)
	}
	return m.SampledText, m.Err
}

func (m *MockBundleStore) SampleAnyWords(
	ctx context.Context,
	userID uuid.UUID,
	learningLanguage string,
	limit int,
	exclude []string,
) ([]string, error) {
	if m.SampleAnyWordsFn != nil {
		return m.SampleAnyWordsFn(ctx, userID, learningLanguage, limit, exclude)
	}
	return m.SampledText, m.Err
}
