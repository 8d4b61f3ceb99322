package batch

import (
	"github.com/dstrickland/wordsmith-api/internal/generation"
	"github.com/google/uuid"
)

// Tier identifies which priority tier contributed a word to a batch.
type Tier string

const (
	// TierDue holds the user's own saved words that are due for review.
	TierDue Tier = "due"

	// TierBundle holds new words from the user's active test-prep bundle.
	TierBundle Tier = "bundle"

	// TierEveryday holds new words from the curated everyday bundle.
	TierEveryday Tier = "everyday"

	// TierRandom holds words sampled from the whole bundle corpus.
	TierRandom Tier = "random"
)

// BatchItem is one ready-to-show entry in an assembled batch: a word, the
// tier that selected it, and its resolved question.
type BatchItem struct {
	// Word is the (lowercase) word text.
	Word string `json:"word"`

	// WordID is set only for saved words from the due tier; words pulled
	// from bundles have no saved_words row yet.
	WordID uuid.UUID `json:"word_id,omitempty"`

	// Tier records which priority tier selected the word.
	Tier Tier `json:"tier"`

	// Question is the exercise resolved through the question provider.
	Question *generation.Question `json:"question"`
}

// candidate is a word a tier proposes before question resolution.
type candidate struct {
	word   string
	wordID uuid.UUID
	tier   Tier
}

// result pairs a candidate with the outcome of question resolution. A
// failed result drops the word from the batch; it never aborts assembly.
type result struct {
	item BatchItem
	err  error
}
