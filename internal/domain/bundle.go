package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Bundle-specific validation errors
var (
	// ErrBundleIDEmpty is returned when a bundle ID is empty or nil.
	ErrBundleIDEmpty = errors.New("bundle ID cannot be empty")

	// ErrBundleNameEmpty is returned when a bundle name is empty.
	ErrBundleNameEmpty = errors.New("bundle name cannot be empty")
)

// EverydayBundleName is the curated fallback bundle the batch assembler
// samples from when a user has no active test-prep bundle, or when the
// active bundle is exhausted.
const EverydayBundleName = "everyday"

// Bundle is a curated, shared vocabulary list (e.g. a TOEFL level),
// independent of any individual user's saved words. Bundles feed the
// Bundle, Everyday and Random tiers of batch assembly.
type Bundle struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Level string    `json:"level,omitempty"` // Optional difficulty level within the bundle family
}

// NewBundle creates a bundle with the given name and optional level.
func NewBundle(name, level string) (*Bundle, error) {
	bundle := &Bundle{
		ID:    uuid.New(),
		Name:  strings.ToLower(strings.TrimSpace(name)),
		Level: level,
	}

	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	return bundle, nil
}

// Validate checks if the Bundle has valid data.
func (b *Bundle) Validate() error {
	if b.ID == uuid.Nil {
		return ErrBundleIDEmpty
	}

	if b.Name == "" {
		return ErrBundleNameEmpty
	}

	return nil
}
