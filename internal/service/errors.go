// Package service provides application-level services for words, reviews and batches.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with fmt.Errorf("...: %w", err)
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrWordKnown indicates an operation targeted a word the user has marked
	// as known; known words have left the scheduling system entirely.
	ErrWordKnown = errors.New("word is marked as known")
)
