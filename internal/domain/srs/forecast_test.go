package srs

import (
	"testing"
	"time"
)

var forecastEpoch = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestForecastLengthAndOrdering(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	history := []Review{
		{ReviewedAt: forecastEpoch.Add(day(1)), Correct: true},
		{ReviewedAt: forecastEpoch.Add(day(4)), Correct: true},
	}

	const steps = 10
	projected := forecast(history, forecastEpoch, steps, params)

	if len(projected) != steps {
		t.Fatalf("Expected exactly %d projected dates, got %d", steps, len(projected))
	}

	for i := 1; i < len(projected); i++ {
		if !projected[i].After(projected[i-1]) {
			t.Errorf("Projection not strictly increasing at step %d: %v then %v",
				i, projected[i-1], projected[i])
		}
	}
}

func TestForecastFirstMatchesScheduler(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	history := []Review{
		{ReviewedAt: forecastEpoch.Add(day(2)), Correct: true},
	}

	projected := forecast(history, forecastEpoch, 3, params)
	expected := nextReviewDate(history, forecastEpoch, params)

	if !projected[0].Equal(expected) {
		t.Errorf("First projected date %v should equal the scheduler's %v", projected[0], expected)
	}
}

func TestForecastDoesNotMutateHistory(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	history := []Review{
		{ReviewedAt: forecastEpoch.Add(day(1)), Correct: true},
	}
	original := history[0]

	forecast(history, forecastEpoch, 5, params)

	if history[0] != original || len(history) != 1 {
		t.Error("Forecast mutated the caller's history")
	}
}

func TestForecastBrandNewWord(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	projected := forecast(nil, forecastEpoch, 4, params)

	// First exposure lands after the grace period; the rest follow the
	// scheduler under assumed success.
	if !projected[0].Equal(forecastEpoch.Add(params.GracePeriod)) {
		t.Errorf("Expected first projection at creation + grace period, got %v", projected[0])
	}

	for i := 1; i < len(projected); i++ {
		if !projected[i].After(projected[i-1]) {
			t.Errorf("Projection not strictly increasing at step %d", i)
		}
	}
}
