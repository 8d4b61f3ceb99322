package srs

import (
	"math"
	"testing"
	"time"
)

var retentionEpoch = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

func day(n float64) time.Duration {
	return time.Duration(n * 24 * float64(time.Hour))
}

func TestRetentionBeforeCreation(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	got := retention(nil, retentionEpoch.Add(-time.Hour), retentionEpoch, params)
	if got != 0.0 {
		t.Errorf("Expected 0.0 before creation, got %v", got)
	}
}

func TestRetentionOnCreationDay(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Same calendar day, no history: the word was just saved and counts
	// as fully known.
	got := retention(nil, retentionEpoch.Add(3*time.Hour), retentionEpoch, params)
	if got != 1.0 {
		t.Errorf("Expected 1.0 on the creation day with empty history, got %v", got)
	}
}

func TestRetentionDecaysFromCreation(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// A day and a half after creation with no reviews: decay from the
	// creation instant at the fastest bucket.
	target := retentionEpoch.Add(day(1.5))
	expected := math.Exp(-0.45 * 1.5)

	got := retention(nil, target, retentionEpoch, params)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRetentionAfterSuccess(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// One correct review two days after creation; measure one day later.
	// The gap that produced the event is two days, so the forward rate is
	// still the fastest bucket.
	history := []Review{
		{ReviewedAt: retentionEpoch.Add(day(2)), Correct: true},
	}
	target := retentionEpoch.Add(day(3))
	expected := math.Exp(-0.45 * 1)

	got := retention(history, target, retentionEpoch, params)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRetentionFailureKeepsCurveContinuous(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Correct at day 1, incorrect at day 3. A failure must not snap the
	// visible curve: retention immediately after the failure equals the
	// value immediately before it.
	history := []Review{
		{ReviewedAt: retentionEpoch.Add(day(1)), Correct: true},
		{ReviewedAt: retentionEpoch.Add(day(3)), Correct: false},
	}

	preFailure := retention(history[:1], retentionEpoch.Add(day(3)), retentionEpoch, params)
	atFailure := retention(history, retentionEpoch.Add(day(3)), retentionEpoch, params)
	if math.Abs(preFailure-atFailure) > 1e-9 {
		t.Errorf("Failure broke the curve: before %v, after %v", preFailure, atFailure)
	}

	// One day after the failure the curve decays from the pre-failure
	// value at the fastest bucket.
	expected := preFailure * math.Exp(-0.45*1)
	got := retention(history, retentionEpoch.Add(day(4)), retentionEpoch, params)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %v one day after failure, got %v", expected, got)
	}
}

func TestRetentionBounds(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	histories := [][]Review{
		nil,
		{{ReviewedAt: retentionEpoch.Add(day(1)), Correct: true}},
		{
			{ReviewedAt: retentionEpoch.Add(day(1)), Correct: true},
			{ReviewedAt: retentionEpoch.Add(day(5)), Correct: false},
			{ReviewedAt: retentionEpoch.Add(day(6)), Correct: true},
		},
	}

	for _, history := range histories {
		for h := -24; h <= 24*400; h += 13 {
			target := retentionEpoch.Add(time.Duration(h) * time.Hour)
			got := retention(history, target, retentionEpoch, params)
			if got < 0.0 || got > 1.0 {
				t.Fatalf("Retention out of bounds at %v: %v", target, got)
			}
		}
	}
}

func TestRetentionMonotonicDecay(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	history := []Review{
		{ReviewedAt: retentionEpoch.Add(day(2)), Correct: true},
	}

	// With no events between samples, retention never increases.
	prev := retention(history, retentionEpoch.Add(day(2)), retentionEpoch, params)
	for h := 1; h <= 24*60; h++ {
		target := retentionEpoch.Add(day(2)).Add(time.Duration(h) * time.Hour)
		got := retention(history, target, retentionEpoch, params)
		if got > prev+1e-12 {
			t.Fatalf("Retention increased without a review at %v: %v > %v", target, got, prev)
		}
		prev = got
	}
}
