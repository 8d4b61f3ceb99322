package mocks

import (
	"context"
	"sync"

	"github.com/dstrickland/wordsmith-api/internal/generation"
)

// MockQuestionProvider implements generation.QuestionProvider for testing.
type MockQuestionProvider struct {
	GetOrGenerateQuestionFn func(ctx context.Context, word, learningLanguage, nativeLanguage string, questionType generation.QuestionType) (*generation.Question, error)

	// Default responses when no Fn is set
	Question *generation.Question
	Err      error

	mu    sync.Mutex
	calls []string
}

var _ generation.QuestionProvider = (*MockQuestionProvider)(nil)

func (m *MockQuestionProvider) GetOrGenerateQuestion(
	ctx context.Context,
	word string,
	learningLanguage string,
	nativeLanguage string,
	questionType generation.QuestionType,
) (*generation.Question, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()

	if m.GetOrGenerateQuestionFn != nil {
		return m.GetOrGenerateQuestionFn(ctx, word, learningLanguage, nativeLanguage, questionType)
	}

	if m.Question != nil {
		q := *m.Question
		q.Word = word
		return &q, m.Err
	}

	if m.Err != nil {
		return nil, m.Err
	}

	// Default: a minimal valid question for the word.
	return &generation.Question{
		Word:         word,
		QuestionType: questionType,
		Prompt:       "Translate '" + word + "'",
		Answer:       "answer-" + word,
	}, nil
}

// Calls returns the words questions were requested for, in order.
func (m *MockQuestionProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
