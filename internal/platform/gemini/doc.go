// Package gemini implements the generation.QuestionProvider interface
// with Google's Gemini API (google.golang.org/genai). API calls use
// exponential backoff with jitter for transient failures; safety blocks
// and malformed responses are permanent and never retried.
package gemini
