package srs

import (
	"errors"
	"time"
)

// Params-specific validation errors
var (
	ErrNoBuckets           = errors.New("at least one decay bucket is required")
	ErrBucketsNotAscending = errors.New("decay bucket bounds must be strictly ascending")
	ErrRatesNotDecreasing  = errors.New("decay rates must strictly decrease with maturity")
	ErrInvalidThreshold    = errors.New("retention threshold must be in (0, 1)")
	ErrInvalidGracePeriod  = errors.New("grace period must be positive")
	ErrInvalidHalving      = errors.New("tail halving period must be positive")
)

// DecayBucket maps a maturity range to an exponential decay constant.
// A gap of d whole days falls into the first bucket whose MaxDays
// exceeds d.
type DecayBucket struct {
	// MaxDays is the exclusive upper bound of the bucket in whole days.
	MaxDays int

	// Rate is the decay constant k applied per elapsed day.
	Rate float64
}

// Params defines all configurable parameters for the scheduling algorithm.
// Instances are immutable after construction and injected into the engine,
// so tests can supply alternate parameter sets.
type Params struct {
	// Buckets is the maturity table, ordered by ascending MaxDays with
	// strictly decreasing rates: the longer a memory has survived
	// unreinforced, the slower it decays.
	Buckets []DecayBucket

	// TailHalvingDays controls decay beyond the last bucket: the final
	// bucket's rate is halved once per TailHalvingDays of maturity, so
	// intervals eventually grow without bound.
	TailHalvingDays int

	// RetentionThreshold is the minimum acceptable recall probability
	// before a word must be re-shown.
	RetentionThreshold float64

	// GracePeriod is the interval between saving a word and its first
	// scheduled exposure.
	GracePeriod time.Duration
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	RetentionThreshold float64
	GracePeriod        time.Duration
	TailHalvingDays    int
}

// NewDefaultParams creates a new Params instance with the default
// week-bucket decay table.
func NewDefaultParams() *Params {
	return &Params{
		Buckets: []DecayBucket{
			{MaxDays: 7, Rate: 0.45},
			{MaxDays: 14, Rate: 0.18},
			{MaxDays: 28, Rate: 0.09},
			{MaxDays: 56, Rate: 0.035},
			{MaxDays: 112, Rate: 0.015},
		},
		TailHalvingDays:    112,
		RetentionThreshold: 0.65,
		GracePeriod:        24 * time.Hour,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Fields left at their zero value retain the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.RetentionThreshold > 0 {
		params.RetentionThreshold = config.RetentionThreshold
	}
	if config.GracePeriod > 0 {
		params.GracePeriod = config.GracePeriod
	}
	if config.TailHalvingDays > 0 {
		params.TailHalvingDays = config.TailHalvingDays
	}

	return params
}

// Validate checks the structural invariants of the parameter set:
// a total order on buckets and monotonically decreasing rates.
func (p *Params) Validate() error {
	if len(p.Buckets) == 0 {
		return ErrNoBuckets
	}

	for i := 1; i < len(p.Buckets); i++ {
		if p.Buckets[i].MaxDays <= p.Buckets[i-1].MaxDays {
			return ErrBucketsNotAscending
		}
		if p.Buckets[i].Rate >= p.Buckets[i-1].Rate {
			return ErrRatesNotDecreasing
		}
	}

	if p.RetentionThreshold <= 0 || p.RetentionThreshold >= 1 {
		return ErrInvalidThreshold
	}

	if p.GracePeriod <= 0 {
		return ErrInvalidGracePeriod
	}

	if p.TailHalvingDays <= 0 {
		return ErrInvalidHalving
	}

	return nil
}
