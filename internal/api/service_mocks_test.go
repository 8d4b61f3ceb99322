package api

import (
	"context"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/service/batch"
	"github.com/dstrickland/wordsmith-api/internal/service/review"
	"github.com/dstrickland/wordsmith-api/internal/service/word"
	"github.com/google/uuid"
)

// mockWordService implements word.Service for handler tests.
type mockWordService struct {
	SaveWordFn   func(ctx context.Context, userID uuid.UUID, text string) (*domain.SavedWord, error)
	GetWordFn    func(ctx context.Context, userID, wordID uuid.UUID) (*domain.SavedWord, error)
	ListWordsFn  func(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)
	DeleteWordFn func(ctx context.Context, userID, wordID uuid.UUID) error
	MarkKnownFn  func(ctx context.Context, userID, wordID uuid.UUID) error

	// Default responses when no Fn is set
	Word  *domain.SavedWord
	Words []domain.SavedWord
	Err   error
}

var _ word.Service = (*mockWordService)(nil)

func (m *mockWordService) SaveWord(ctx context.Context, userID uuid.UUID, text string) (*domain.SavedWord, error) {
	if m.SaveWordFn != nil {
		return m.SaveWordFn(ctx, userID, text)
	}
	return m.Word, m.Err
}

func (m *mockWordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.SavedWord, error) {
	if m.GetWordFn != nil {
		return m.GetWordFn(ctx, userID, wordID)
	}
	return m.Word, m.Err
}

func (m *mockWordService) ListWords(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	if m.ListWordsFn != nil {
		return m.ListWordsFn(ctx, userID)
	}
	return m.Words, m.Err
}

func (m *mockWordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if m.DeleteWordFn != nil {
		return m.DeleteWordFn(ctx, userID, wordID)
	}
	return m.Err
}

func (m *mockWordService) MarkKnown(ctx context.Context, userID, wordID uuid.UUID) error {
	if m.MarkKnownFn != nil {
		return m.MarkKnownFn(ctx, userID, wordID)
	}
	return m.Err
}

// mockReviewService implements review.Service for handler tests.
type mockReviewService struct {
	SubmitReviewFn   func(ctx context.Context, userID, wordID uuid.UUID, response bool) (*domain.ReviewEvent, error)
	NextReviewFn     func(ctx context.Context, userID, wordID uuid.UUID) (time.Time, error)
	ForecastFn       func(ctx context.Context, userID, wordID uuid.UUID, steps int) ([]time.Time, error)
	RetentionCurveFn func(ctx context.Context, userID, wordID uuid.UUID, days int) ([]review.RetentionSample, error)
	DueCountFn       func(ctx context.Context, userID uuid.UUID) (int, error)

	// Default responses when no Fn is set
	Event   *domain.ReviewEvent
	Next    time.Time
	Dates   []time.Time
	Samples []review.RetentionSample
	Due     int
	Err     error
}

var _ review.Service = (*mockReviewService)(nil)

func (m *mockReviewService) SubmitReview(ctx context.Context, userID, wordID uuid.UUID, response bool) (*domain.ReviewEvent, error) {
	if m.SubmitReviewFn != nil {
		return m.SubmitReviewFn(ctx, userID, wordID, response)
	}
	return m.Event, m.Err
}

func (m *mockReviewService) NextReview(ctx context.Context, userID, wordID uuid.UUID) (time.Time, error) {
	if m.NextReviewFn != nil {
		return m.NextReviewFn(ctx, userID, wordID)
	}
	return m.Next, m.Err
}

func (m *mockReviewService) Forecast(ctx context.Context, userID, wordID uuid.UUID, steps int) ([]time.Time, error) {
	if m.ForecastFn != nil {
		return m.ForecastFn(ctx, userID, wordID, steps)
	}
	return m.Dates, m.Err
}

func (m *mockReviewService) RetentionCurve(ctx context.Context, userID, wordID uuid.UUID, days int) ([]review.RetentionSample, error) {
	if m.RetentionCurveFn != nil {
		return m.RetentionCurveFn(ctx, userID, wordID, days)
	}
	return m.Samples, m.Err
}

func (m *mockReviewService) DueCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.DueCountFn != nil {
		return m.DueCountFn(ctx, userID)
	}
	return m.Due, m.Err
}

// mockBatchService implements batch.Service for handler tests.
type mockBatchService struct {
	AssembleBatchFn func(ctx context.Context, userID uuid.UUID, requestedCount int, excludeWords []string) ([]batch.BatchItem, error)

	// Default responses when no Fn is set
	Items []batch.BatchItem
	Err   error
}

var _ batch.Service = (*mockBatchService)(nil)

func (m *mockBatchService) AssembleBatch(ctx context.Context, userID uuid.UUID, requestedCount int, excludeWords []string) ([]batch.BatchItem, error) {
	if m.AssembleBatchFn != nil {
		return m.AssembleBatchFn(ctx, userID, requestedCount, excludeWords)
	}
	return m.Items, m.Err
}
