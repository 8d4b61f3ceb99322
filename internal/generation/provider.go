package generation

import (
	"context"
	"strings"
)

// QuestionType selects the kind of exercise generated for a word.
type QuestionType string

const (
	// QuestionTypeTranslate asks the learner to translate the word into
	// their native language.
	QuestionTypeTranslate QuestionType = "translate"

	// QuestionTypeDefinition asks the learner to pick or recall the word's
	// definition in the learning language.
	QuestionTypeDefinition QuestionType = "definition"

	// QuestionTypeCloze asks the learner to fill the word into an example
	// sentence.
	QuestionTypeCloze QuestionType = "cloze"
)

// DefaultQuestionType is used when a caller does not care which exercise
// kind it gets.
const DefaultQuestionType = QuestionTypeTranslate

// Question is a single generated exercise for a word.
type Question struct {
	Word         string       `json:"word"`
	QuestionType QuestionType `json:"question_type"`
	Prompt       string       `json:"prompt"`
	Answer       string       `json:"answer"`
	Choices      []string     `json:"choices,omitempty"`
	Definition   string       `json:"definition,omitempty"`
	Example      string       `json:"example,omitempty"`
}

// Valid reports whether the question carries the minimum content needed
// to show it to a learner.
func (q *Question) Valid() bool {
	return q != nil &&
		strings.TrimSpace(q.Word) != "" &&
		strings.TrimSpace(q.Prompt) != "" &&
		strings.TrimSpace(q.Answer) != ""
}

// QuestionProvider produces a review question for a word, generating one
// through an external language model (or serving a cached copy) as the
// implementation sees fit.
//
// Callers must treat a returned error as "this word has no question right
// now": the batch assembler drops the word and never retries. Any
// retrying happens inside the implementation.
type QuestionProvider interface {
	GetOrGenerateQuestion(
		ctx context.Context,
		word string,
		learningLanguage string,
		nativeLanguage string,
		questionType QuestionType,
	) (*Question, error)
}
