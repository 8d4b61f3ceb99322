// Package batch implements priority batch assembly: filling a requested
// number of review questions from four ordered tiers (due words, the
// user's active bundle, the everyday bundle, random corpus words), with
// one shared exclusion set propagated across tiers so no word appears
// twice. Each selected word resolves to a question through the external
// question provider; a per-word provider failure drops that word only.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/config"
	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/generation"
	"github.com/dstrickland/wordsmith-api/internal/platform/logger"
	"github.com/dstrickland/wordsmith-api/internal/store"
	"github.com/google/uuid"
)

// Service assembles priority batches of review questions.
type Service interface {
	// AssembleBatch builds a batch of up to requestedCount question items
	// for the user, excluding the given word texts. The count is clamped
	// to [1, max]; a batch shorter than requested means the corpus is
	// exhausted, not an error.
	AssembleBatch(ctx context.Context, userID uuid.UUID, requestedCount int, excludeWords []string) ([]BatchItem, error)
}

type serviceImpl struct {
	userStore store.UserStore
	provider  generation.QuestionProvider
	sources   []wordSource
	maxSize   int
	logger    *slog.Logger
}

// Ensure serviceImpl implements Service
var _ Service = (*serviceImpl)(nil)

// NewService creates a batch assembly service with the standard tier
// order: due, active bundle, everyday bundle, random corpus.
func NewService(
	userStore store.UserStore,
	wordStore store.WordStore,
	bundleStore store.BundleStore,
	provider generation.QuestionProvider,
	gracePeriod time.Duration,
	cfg config.BatchConfig,
	log *slog.Logger,
) Service {
	if userStore == nil || wordStore == nil || bundleStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("batch service requires user, word and bundle stores")
	}
	if provider == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("batch service requires a question provider")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("batch service requires a logger")
	}

	maxSize := cfg.MaxSize
	if maxSize < 1 {
		maxSize = 20
	}

	sources := []wordSource{
		&dueSource{
			wordStore:   wordStore,
			gracePeriod: gracePeriod,
			timeFunc:    time.Now,
		},
		&bundleSource{
			bundleStore: bundleStore,
			tier:        TierBundle,
			bundleName:  func(user *domain.User) string { return user.ActiveBundle },
		},
		&bundleSource{
			bundleStore: bundleStore,
			tier:        TierEveryday,
			bundleName:  func(user *domain.User) string { return cfg.EverydayBundle },
		},
		&randomSource{
			bundleStore: bundleStore,
		},
	}

	return &serviceImpl{
		userStore: userStore,
		provider:  provider,
		sources:   sources,
		maxSize:   maxSize,
		logger:    log.With(slog.String("component", "batch_service")),
	}
}

// AssembleBatch implements Service.AssembleBatch
func (s *serviceImpl) AssembleBatch(
	ctx context.Context,
	userID uuid.UUID,
	requestedCount int,
	excludeWords []string,
) ([]BatchItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count := clamp(requestedCount, 1, s.maxSize)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	exclude := make(map[string]struct{}, len(excludeWords)+count)
	for _, word := range excludeWords {
		normalized := strings.ToLower(strings.TrimSpace(word))
		if normalized != "" {
			exclude[normalized] = struct{}{}
		}
	}

	items := make([]BatchItem, 0, count)
	for _, source := range s.sources {
		need := count - len(items)
		if need == 0 {
			break
		}

		// A tier may propose words whose questions fail to resolve, so
		// keep draining it until it is exhausted or the batch is full.
		for need > 0 {
			candidates, err := source.fetch(ctx, user, need, exclude)
			if err != nil {
				return nil, fmt.Errorf("tier %s failed: %w", source.name(), err)
			}
			if len(candidates) == 0 {
				break
			}

			// A source that only re-proposes excluded words makes no
			// progress; treat it as exhausted.
			seenBefore := len(exclude)

			for _, res := range s.resolve(ctx, user, candidates, exclude) {
				if res.err != nil {
					log.Warn("dropping word after question resolution failure",
						slog.String("word", res.item.Word),
						slog.String("tier", string(res.item.Tier)),
						slog.String("error", res.err.Error()))
					continue
				}
				items = append(items, res.item)
			}

			if len(exclude) == seenBefore {
				break
			}

			need = count - len(items)
		}

		log.Debug("tier drained",
			slog.String("tier", string(source.name())),
			slog.Int("selected", len(items)),
			slog.Int("requested", count))
	}

	return items, nil
}

// resolve turns candidates into batch items via the question provider.
// Every candidate is marked excluded whether or not resolution succeeds,
// so failed words are never re-proposed by a later tier.
func (s *serviceImpl) resolve(
	ctx context.Context,
	user *domain.User,
	candidates []candidate,
	exclude map[string]struct{},
) []result {
	results := make([]result, 0, len(candidates))

	for _, cand := range candidates {
		if _, seen := exclude[cand.word]; seen {
			continue
		}
		exclude[cand.word] = struct{}{}

		question, err := s.provider.GetOrGenerateQuestion(
			ctx,
			cand.word,
			user.LearningLanguage,
			user.NativeLanguage,
			generation.DefaultQuestionType,
		)
		if err == nil && !question.Valid() {
			err = fmt.Errorf("%w: provider returned unusable question", generation.ErrInvalidResponse)
		}

		results = append(results, result{
			item: BatchItem{
				Word:     cand.word,
				WordID:   cand.wordID,
				Tier:     cand.tier,
				Question: question,
			},
			err: err,
		})
	}

	return results
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
