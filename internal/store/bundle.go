package store

import (
	"context"

	"github.com/dstrickland/wordsmith-api/internal/domain"
	"github.com/google/uuid"
)

// BundleStore defines read access to the curated shared vocabulary lists
// that feed the bundle, everyday and random batch tiers. Bundles are
// seeded by migrations and never written at runtime, so there are no
// mutation methods and no WithTx variant.
type BundleStore interface {
	// GetByName retrieves a bundle by its (lowercase) name.
	// Returns ErrBundleNotFound if no such bundle exists.
	GetByName(ctx context.Context, name string) (*domain.Bundle, error)

	// SampleWords returns up to limit random words from the named bundle
	// that the user has not already saved for the given learning language
	// and whose text does not appear in exclude.
	// Returns ErrBundleNotFound if no such bundle exists.
	SampleWords(
		ctx context.Context,
		bundleName string,
		userID uuid.UUID,
		learningLanguage string,
		limit int,
		exclude []string,
	) ([]string, error)

	// SampleAnyWords returns up to limit random words drawn from the whole
	// bundle corpus, with the same user/exclusion filtering as SampleWords.
	// This backs the last-resort random tier.
	SampleAnyWords(
		ctx context.Context,
		userID uuid.UUID,
		learningLanguage string,
		limit int,
		exclude []string,
	) ([]string, error)
}
