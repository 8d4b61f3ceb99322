package srs

import (
	"math"
	"time"
)

// maxIntervalDays bounds a single scheduling interval at ten years.
const maxIntervalDays = 3650

// nextReviewDate computes when a word should next be shown, given its
// full review history and creation time.
//
// A word with no history is due after the configured grace period. For a
// reviewed word the decay rate comes from the maturity gap between the
// last two events (or creation and the first review); an incorrect last
// answer resets the gap to the fastest bucket regardless of its actual
// length. The interval is the smallest whole number of days n >= 1 at
// which projected retention stays at or above the configured threshold:
//
//	n = ceil(-ln(threshold) / k)
//
// Because k strictly decreases with maturity and failures reset it,
// failures always schedule tomorrow-scale and unbroken success streaks
// produce geometrically growing intervals, unbounded via the tail
// halving rule.
//
// The history must be sorted by ReviewedAt ascending with createdAt
// preceding the first event; a violation panics.
//
// Intervals are capped at maxIntervalDays: the tail-halved rate for an
// extremely mature word can underflow toward zero, where -ln(threshold)/k
// no longer fits in an int. Past a ten-year horizon the exact date does
// not matter.
func nextReviewDate(history []Review, createdAt time.Time, params *Params) time.Time {
	assertChronological(history, createdAt)

	if len(history) == 0 {
		return createdAt.Add(params.GracePeriod)
	}

	last := history[len(history)-1]
	previous := createdAt
	if len(history) > 1 {
		previous = history[len(history)-2].ReviewedAt
	}

	var rate float64
	if last.Correct {
		rate = decayRate(wholeDays(previous, last.ReviewedAt), params)
	} else {
		// Failure resets maturity to the fastest bucket.
		rate = decayRate(0, params)
	}

	interval := math.Ceil(-math.Log(params.RetentionThreshold) / rate)
	days := 1
	if interval >= maxIntervalDays {
		days = maxIntervalDays
	} else if interval > 1 {
		days = int(interval)
	}

	return last.ReviewedAt.AddDate(0, 0, days)
}
