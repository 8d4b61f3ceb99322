package srs

import (
	"math"
	"testing"
)

func TestDecayRateBuckets(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		days     int
		expected float64
	}{
		{name: "negative days clamp to fastest bucket", days: -3, expected: 0.45},
		{name: "day zero is the fastest bucket", days: 0, expected: 0.45},
		{name: "day six still in the first week", days: 6, expected: 0.45},
		{name: "second week", days: 7, expected: 0.18},
		{name: "end of second week", days: 13, expected: 0.18},
		{name: "third bucket", days: 14, expected: 0.09},
		{name: "end of third bucket", days: 27, expected: 0.09},
		{name: "fourth bucket", days: 28, expected: 0.035},
		{name: "end of fourth bucket", days: 55, expected: 0.035},
		{name: "fifth bucket", days: 56, expected: 0.015},
		{name: "end of fifth bucket", days: 111, expected: 0.015},
		{name: "first halving", days: 112, expected: 0.0075},
		{name: "between halvings", days: 150, expected: 0.0075},
		{name: "second halving", days: 224, expected: 0.00375},
		{name: "third halving", days: 336, expected: 0.001875},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate := decayRate(tc.days, params)
			if math.Abs(rate-tc.expected) > 1e-12 {
				t.Errorf("Expected rate %v for %d days, got %v", tc.expected, tc.days, rate)
			}
		})
	}
}

func TestDecayRateMonotonicallyDecreasing(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	prev := decayRate(0, params)
	for d := 1; d <= 500; d++ {
		rate := decayRate(d, params)
		if rate > prev {
			t.Fatalf("Decay rate increased at day %d: %v > %v", d, rate, prev)
		}
		prev = rate
	}
}
