package srs

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrNilParams      = errors.New("srs params cannot be nil")
	ErrInvalidSteps   = errors.New("forecast steps must be at least 1")
	ErrInvalidHistory = errors.New("review history must be chronologically ordered")
)

// Service defines the interface for retention and scheduling operations.
// All methods are pure functions over the supplied history: the service
// holds no mutable state and is safe for concurrent use from any number
// of goroutines.
type Service interface {
	// Retention returns the modeled recall probability for a word at the
	// target instant, in [0,1].
	Retention(history []Review, target, createdAt time.Time) float64

	// NextReviewDate computes the authoritative next due timestamp from
	// the full review history and the word's creation time.
	NextReviewDate(history []Review, createdAt time.Time) time.Time

	// Forecast projects exactly `steps` strictly increasing future due
	// dates assuming all future answers are correct.
	Forecast(history []Review, createdAt time.Time, steps int) ([]time.Time, error)

	// GracePeriod reports the configured interval between saving a word
	// and its first scheduled exposure. The due-word predicate uses it to
	// decide when a never-reviewed word becomes due.
	GracePeriod() time.Duration
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom
// parameters. Panics if the parameter set is nil or structurally invalid;
// parameters come from startup configuration, so a bad set is a boot-time
// bug rather than a runtime condition.
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic(ErrNilParams)
	}
	if err := params.Validate(); err != nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic(err)
	}

	return &defaultService{
		params: params,
	}
}

// Retention implements the Service interface.
func (s *defaultService) Retention(history []Review, target, createdAt time.Time) float64 {
	return retention(history, target, createdAt, s.params)
}

// NextReviewDate implements the Service interface.
func (s *defaultService) NextReviewDate(history []Review, createdAt time.Time) time.Time {
	return nextReviewDate(history, createdAt, s.params)
}

// Forecast implements the Service interface.
func (s *defaultService) Forecast(history []Review, createdAt time.Time, steps int) ([]time.Time, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}

	return forecast(history, createdAt, steps, s.params), nil
}

// GracePeriod implements the Service interface.
func (s *defaultService) GracePeriod() time.Duration {
	return s.params.GracePeriod
}
