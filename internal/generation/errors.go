package generation

import "errors"

// Common errors returned by question providers
var (
	// ErrGenerationFailed is returned when question generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate question for word")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that did not resolve within the retry budget
	ErrTransientFailure = errors.New("transient error during question generation")

	// ErrInvalidConfig is returned when the provider configuration is invalid
	ErrInvalidConfig = errors.New("invalid question provider configuration")

	// ErrEmptyWord is returned when a question is requested for an empty word
	ErrEmptyWord = errors.New("word cannot be empty")
)
