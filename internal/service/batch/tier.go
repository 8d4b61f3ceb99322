package batch

import (
	"context"
	"errors"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/dstrickland/wordsmith-api/internal/store"
)

// wordSource is one priority tier's selection strategy. Implementations
// return up to `need` candidates not present in the exclusion set; an
// empty slice means the tier is exhausted for this request. Sources must
// not mutate the exclusion set.
type wordSource interface {
	// name identifies the tier in logs.
	name() Tier

	// fetch proposes candidates for the user.
	fetch(ctx context.Context, user *domain.User, need int, exclude map[string]struct{}) ([]candidate, error)
}

// excludeList flattens the exclusion set for store queries.
func excludeList(exclude map[string]struct{}) []string {
	words := make([]string, 0, len(exclude))
	for word := range exclude {
		words = append(words, word)
	}
	return words
}

// dueSource selects the user's own saved words that are due for review,
// most overdue first. This is the highest-priority tier.
type dueSource struct {
	wordStore   store.WordStore
	gracePeriod time.Duration
	timeFunc    func() time.Time
}

func (s *dueSource) name() Tier { return TierDue }

func (s *dueSource) fetch(
	ctx context.Context,
	user *domain.User,
	need int,
	exclude map[string]struct{},
) ([]candidate, error) {
	words, err := s.wordStore.FindDue(ctx, user.ID, s.timeFunc().UTC(), s.gracePeriod, need, excludeList(exclude))
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(words))
	for _, word := range words {
		candidates = append(candidates, candidate{
			word:   word.Word,
			wordID: word.ID,
			tier:   TierDue,
		})
	}
	return candidates, nil
}

// bundleSource selects new words from a named curated bundle that the
// user has not saved yet. It backs both the active-bundle tier and the
// everyday tier; a missing bundle exhausts the tier instead of failing
// the batch.
type bundleSource struct {
	bundleStore store.BundleStore
	tier        Tier

	// bundleName resolves the bundle per user: the active test-prep
	// bundle for TierBundle, the configured everyday bundle otherwise.
	bundleName func(user *domain.User) string
}

func (s *bundleSource) name() Tier { return s.tier }

func (s *bundleSource) fetch(
	ctx context.Context,
	user *domain.User,
	need int,
	exclude map[string]struct{},
) ([]candidate, error) {
	name := s.bundleName(user)
	if name == "" {
		return nil, nil
	}

	words, err := s.bundleStore.SampleWords(ctx, name, user.ID, user.LearningLanguage, need, excludeList(exclude))
	if err != nil {
		if errors.Is(err, store.ErrBundleNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return textCandidates(words, s.tier), nil
}

// randomSource samples from the whole bundle corpus. It is the last
// resort; when it comes back empty the corpus is exhausted and a short
// batch is the correct outcome.
type randomSource struct {
	bundleStore store.BundleStore
}

func (s *randomSource) name() Tier { return TierRandom }

func (s *randomSource) fetch(
	ctx context.Context,
	user *domain.User,
	need int,
	exclude map[string]struct{},
) ([]candidate, error) {
	words, err := s.bundleStore.SampleAnyWords(ctx, user.ID, user.LearningLanguage, need, excludeList(exclude))
	if err != nil {
		return nil, err
	}

	return textCandidates(words, TierRandom), nil
}

func textCandidates(words []string, tier Tier) []candidate {
	candidates := make([]candidate, 0, len(words))
	for _, word := range words {
		candidates = append(candidates, candidate{word: word, tier: tier})
	}
	return candidates
}
