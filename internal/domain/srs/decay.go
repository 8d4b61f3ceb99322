package srs

import (
	"math"
	"time"
)

// Review is a single entry in a word's review history: when the learner
// answered and whether the answer was correct. Histories are always
// ordered by ReviewedAt ascending.
type Review struct {
	ReviewedAt time.Time
	Correct    bool
}

// decayRate returns the decay constant k for a maturity of elapsedDays
// whole days. Negative values are clamped to zero. Within the bucket
// table the rate is a simple lookup; beyond the last bucket the final
// rate halves once per TailHalvingDays, so sufficiently mature memories
// decay arbitrarily slowly.
func decayRate(elapsedDays int, params *Params) float64 {
	if elapsedDays < 0 {
		elapsedDays = 0
	}

	for _, bucket := range params.Buckets {
		if elapsedDays < bucket.MaxDays {
			return bucket.Rate
		}
	}

	last := params.Buckets[len(params.Buckets)-1]
	return math.Ldexp(last.Rate, -(elapsedDays / params.TailHalvingDays))
}

// fractionalDays returns the elapsed time from one instant to another in
// days, clamped to >= 0.
func fractionalDays(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

// wholeDays returns the elapsed whole days from one instant to another,
// clamped to >= 0.
func wholeDays(from, to time.Time) int {
	return int(fractionalDays(from, to))
}

// sameCalendarDay reports whether two instants fall on the same UTC
// calendar day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// assertChronological panics if the history is not sorted by ReviewedAt
// ascending or if the first event precedes the word's creation. These are
// caller contract breaches (a bug upstream), not runtime conditions to
// recover from.
func assertChronological(history []Review, createdAt time.Time) {
	prev := createdAt
	for _, review := range history {
		if review.ReviewedAt.Before(prev) {
			// ALLOW-PANIC: Caller contract violation, not a recoverable error
			panic("srs: review history must be sorted by ReviewedAt ascending and start after creation")
		}
		prev = review.ReviewedAt
	}
}
