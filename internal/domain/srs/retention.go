package srs

import (
	"math"
	"time"
)

// retention computes the modeled probability, in [0,1], that the learner
// still remembers a word at the target instant.
//
// The curve is piecewise exponential. Walking the history up to the
// target, each event establishes a base value and a forward decay rate:
//   - a correct answer resets the base to 1.0 and picks the rate from the
//     maturity gap that produced the event (time since the previous event,
//     or since creation for the first review);
//   - an incorrect answer keeps the curve continuous: the base is the
//     retention value in force immediately before the failure, but the
//     forward rate resets to the fastest bucket, so what happens next
//     decays as if the memory were brand new.
//
// The creation instant acts as the initial event with base 1.0 and the
// fastest bucket's rate. Rule order follows the scheduling contract:
// before creation the word does not exist (0.0); on the creation calendar
// day with no history the word is considered fully known (1.0).
//
// This function is pure and total for well-formed inputs; it backs both
// scheduling and the user-facing retention chart.
func retention(history []Review, target, createdAt time.Time, params *Params) float64 {
	assertChronological(history, createdAt)

	if target.Before(createdAt) {
		return 0.0
	}

	if len(history) == 0 && sameCalendarDay(target, createdAt) {
		return 1.0
	}

	base := 1.0
	rate := decayRate(0, params)
	lastAt := createdAt

	for _, review := range history {
		if review.ReviewedAt.After(target) {
			break
		}

		gap := fractionalDays(lastAt, review.ReviewedAt)
		if review.Correct {
			base = 1.0
			rate = decayRate(int(gap), params)
		} else {
			// The visible curve continues from its pre-failure value;
			// only the forward-looking bucket resets.
			base = clamp01(base * math.Exp(-rate*gap))
			rate = decayRate(0, params)
		}
		lastAt = review.ReviewedAt
	}

	elapsed := fractionalDays(lastAt, target)
	return clamp01(base * math.Exp(-rate*elapsed))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
