// Package word implements saved word management: saving new words for a
// user's language pair, listing, deleting and marking words as known.
package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/service"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// Service defines operations on a user's saved words.
type Service interface {
	// SaveWord saves a new word for the user, using the language pair from
	// the user's profile. Returns store.ErrWordExists if the word is
	// already saved.
	SaveWord(ctx context.Context, userID uuid.UUID, text string) (*domain.SavedWord, error)

	// GetWord retrieves one of the user's saved words.
	// Returns service.ErrNotOwned if the word belongs to another user.
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.SavedWord, error)

	// ListWords retrieves all of the user's saved words, newest first.
	ListWords(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)

	// DeleteWord removes one of the user's saved words and its history.
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error

	// MarkKnown removes a word from scheduling and practice permanently.
	MarkKnown(ctx context.Context, userID, wordID uuid.UUID) error
}

type serviceImpl struct {
	userStore store.UserStore
	wordStore store.WordStore
	logger    *slog.Logger
}

// Ensure serviceImpl implements Service
var _ Service = (*serviceImpl)(nil)

// NewService creates a word management service.
func NewService(userStore store.UserStore, wordStore store.WordStore, log *slog.Logger) Service {
	if userStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word service requires a user store")
	}
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word service requires a word store")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word service requires a logger")
	}

	return &serviceImpl{
		userStore: userStore,
		wordStore: wordStore,
		logger:    log.With(slog.String("component", "word_service")),
	}
}

// SaveWord implements Service.SaveWord
func (s *serviceImpl) SaveWord(ctx context.Context, userID uuid.UUID, text string) (*domain.SavedWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	saved, err := domain.NewSavedWord(userID, text, user.LearningLanguage, user.NativeLanguage)
	if err != nil {
		return nil, err
	}

	if err := s.wordStore.Create(ctx, saved); err != nil {
		return nil, err
	}

	log.Debug("saved new word",
		slog.String("user_id", userID.String()),
		slog.String("word_id", saved.ID.String()))

	return saved, nil
}

// GetWord implements Service.GetWord
func (s *serviceImpl) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.SavedWord, error) {
	word, err := s.wordStore.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	if word.UserID != userID {
		return nil, service.ErrNotOwned
	}

	return word, nil
}

// ListWords implements Service.ListWords
func (s *serviceImpl) ListWords(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	return s.wordStore.ListByUser(ctx, userID)
}

// DeleteWord implements Service.DeleteWord
func (s *serviceImpl) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if _, err := s.GetWord(ctx, userID, wordID); err != nil {
		return err
	}

	return s.wordStore.Delete(ctx, wordID)
}

// MarkKnown implements Service.MarkKnown
func (s *serviceImpl) MarkKnown(ctx context.Context, userID, wordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetWord(ctx, userID, wordID); err != nil {
		return err
	}

	if err := s.wordStore.MarkKnown(ctx, wordID); err != nil {
		return err
	}

	log.Debug("marked word as known",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))

	return nil
}
