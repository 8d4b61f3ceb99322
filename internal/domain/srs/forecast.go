package srs

import "time"

// forecast projects the next `steps` due dates for a word under the
// assumption that every future answer is correct. It repeatedly applies
// the scheduler to a working copy of the history, appending each
// projected date as a successful review before computing the next one.
//
// The projection is ephemeral: nothing is persisted and no storage is
// consulted, which is what makes study-plan previews cheap. The returned
// sequence always has exactly `steps` entries and is strictly increasing
// in time; its first element equals the word's real next review date.
func forecast(history []Review, createdAt time.Time, steps int, params *Params) []time.Time {
	working := make([]Review, len(history), len(history)+steps)
	copy(working, history)

	projected := make([]time.Time, 0, steps)
	for i := 0; i < steps; i++ {
		next := nextReviewDate(working, createdAt, params)
		projected = append(projected, next)
		working = append(working, Review{ReviewedAt: next, Correct: true})
	}

	return projected
}
