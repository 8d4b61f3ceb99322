// Package review implements review submission and the read-side
// scheduling operations: next-review preview, forecast projection,
// retention curve sampling and due counting.
//
// Review submission is the one write path in the system and runs in a
// single transaction: the saved word row is locked, the full history is
// read, the next review date is recomputed from history plus the new
// event, and the event is appended. The lock serializes concurrent
// submissions for the same word so the denormalized next_review_date on
// the latest event always reflects the complete history.
package review

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/domain/srs"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/service"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// RetentionSample is one point on a word's projected retention curve.
type RetentionSample struct {
	Date      time.Time `json:"date"`
	Retention float64   `json:"retention"`
}

// Service defines the review and scheduling operations.
type Service interface {
	// SubmitReview records an answer for one of the user's words and
	// returns the created event carrying the recomputed next review date.
	// Returns service.ErrNotOwned for another user's word and
	// service.ErrWordKnown for a word that has left scheduling.
	SubmitReview(ctx context.Context, userID, wordID uuid.UUID, response bool) (*domain.ReviewEvent, error)

	// NextReview computes the word's next review date from its current
	// history without recording anything.
	NextReview(ctx context.Context, userID, wordID uuid.UUID) (time.Time, error)

	// Forecast projects the word's next `steps` review dates assuming all
	// future answers are correct.
	Forecast(ctx context.Context, userID, wordID uuid.UUID, steps int) ([]time.Time, error)

	// RetentionCurve samples the word's modeled retention once per day
	// from now through `days` days ahead (days+1 samples).
	RetentionCurve(ctx context.Context, userID, wordID uuid.UUID, days int) ([]RetentionSample, error)

	// DueCount reports how many of the user's words are currently due.
	DueCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type serviceImpl struct {
	db          *sql.DB
	wordStore   store.WordStore
	reviewStore store.ReviewStore
	srsService  srs.Service
	logger      *slog.Logger

	// timeFunc and runTx are injectable for testing.
	timeFunc func() time.Time
	runTx    func(ctx context.Context, fn store.TxFn) error
}

// Ensure serviceImpl implements Service
var _ Service = (*serviceImpl)(nil)

// NewService creates a review service.
func NewService(
	db *sql.DB,
	wordStore store.WordStore,
	reviewStore store.ReviewStore,
	srsService srs.Service,
	log *slog.Logger,
) Service {
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service requires a word store")
	}
	if reviewStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service requires a review store")
	}
	if srsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service requires an srs service")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service requires a logger")
	}

	s := &serviceImpl{
		db:          db,
		wordStore:   wordStore,
		reviewStore: reviewStore,
		srsService:  srsService,
		logger:      log.With(slog.String("component", "review_service")),
		timeFunc:    time.Now,
	}
	s.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, s.db, fn)
	}
	return s
}

// SubmitReview implements Service.SubmitReview
func (s *serviceImpl) SubmitReview(
	ctx context.Context,
	userID, wordID uuid.UUID,
	response bool,
) (*domain.ReviewEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var event *domain.ReviewEvent
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		wordStore := s.wordStore.WithTx(tx)
		reviewStore := s.reviewStore.WithTx(tx)

		word, err := wordStore.GetForUpdate(ctx, wordID)
		if err != nil {
			return err
		}

		if word.UserID != userID {
			return service.ErrNotOwned
		}

		if word.IsKnown {
			return service.ErrWordKnown
		}

		events, err := reviewStore.ListByWord(ctx, wordID)
		if err != nil {
			return fmt.Errorf("failed to load review history: %w", err)
		}

		now := s.timeFunc().UTC()
		history := append(toSRSHistory(events), srs.Review{
			ReviewedAt: now,
			Correct:    response,
		})

		next := s.srsService.NextReviewDate(history, word.CreatedAt)

		event, err = domain.NewReviewEvent(wordID, response, now, next)
		if err != nil {
			return err
		}

		return reviewStore.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	log.Debug("recorded review",
		slog.String("word_id", wordID.String()),
		slog.Bool("response", response),
		slog.Time("next_review_date", event.NextReviewDate))

	return event, nil
}

// NextReview implements Service.NextReview
func (s *serviceImpl) NextReview(ctx context.Context, userID, wordID uuid.UUID) (time.Time, error) {
	word, history, err := s.loadWordHistory(ctx, userID, wordID)
	if err != nil {
		return time.Time{}, err
	}

	return s.srsService.NextReviewDate(history, word.CreatedAt), nil
}

// Forecast implements Service.Forecast
func (s *serviceImpl) Forecast(ctx context.Context, userID, wordID uuid.UUID, steps int) ([]time.Time, error) {
	word, history, err := s.loadWordHistory(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	return s.srsService.Forecast(history, word.CreatedAt, steps)
}

// RetentionCurve implements Service.RetentionCurve
func (s *serviceImpl) RetentionCurve(
	ctx context.Context,
	userID, wordID uuid.UUID,
	days int,
) ([]RetentionSample, error) {
	if days < 0 {
		return nil, fmt.Errorf("retention curve days must not be negative")
	}

	word, history, err := s.loadWordHistory(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	now := s.timeFunc().UTC()
	samples := make([]RetentionSample, 0, days+1)
	for i := 0; i <= days; i++ {
		target := now.AddDate(0, 0, i)
		samples = append(samples, RetentionSample{
			Date:      target,
			Retention: s.srsService.Retention(history, target, word.CreatedAt),
		})
	}

	return samples, nil
}

// DueCount implements Service.DueCount
func (s *serviceImpl) DueCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.wordStore.CountDue(ctx, userID, s.timeFunc().UTC(), s.srsService.GracePeriod())
}

// loadWordHistory fetches a word, checks ownership and converts its
// review history to the engine's representation.
func (s *serviceImpl) loadWordHistory(
	ctx context.Context,
	userID, wordID uuid.UUID,
) (*domain.SavedWord, []srs.Review, error) {
	word, err := s.wordStore.GetByID(ctx, wordID)
	if err != nil {
		return nil, nil, err
	}

	if word.UserID != userID {
		return nil, nil, service.ErrNotOwned
	}

	events, err := s.reviewStore.ListByWord(ctx, wordID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load review history: %w", err)
	}

	return word, toSRSHistory(events), nil
}

// toSRSHistory converts stored review events to the pure engine's input.
func toSRSHistory(events []domain.ReviewEvent) []srs.Review {
	history := make([]srs.Review, 0, len(events)+1)
	for _, event := range events {
		history = append(history, srs.Review{
			ReviewedAt: event.ReviewedAt,
			Correct:    event.Response,
		})
	}
	return history
}
