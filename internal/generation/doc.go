// Package generation defines the boundary between the application core
// and the external question-generation service. The batch assembler and
// API handlers depend only on the QuestionProvider interface declared
// here; the Gemini-backed implementation lives in
// internal/platform/gemini.
package generation
