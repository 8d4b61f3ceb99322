package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"github.com/dstrickland/wordsmith-api/internal/config"
	"github.com/dstrickland/wordsmith-api/internal/generation"
	"google.golang.org/genai"
)

// questionPromptTemplate instructs the model to return a single JSON
// object matching questionSchema. The response MIME type is forced to
// JSON so no markdown fences need stripping.
const questionPromptTemplate = `You are a vocabulary tutor helping someone who speaks {{.NativeLanguage}} learn {{.LearningLanguage}}.

Create one "{{.QuestionType}}" exercise for the {{.LearningLanguage}} word "{{.Word}}".

Exercise kinds:
- "translate": ask for the word's translation into {{.NativeLanguage}}; the answer is the translation.
- "definition": ask what the word means; the answer is a short {{.LearningLanguage}} definition.
- "cloze": write a {{.LearningLanguage}} sentence using the word, blank the word out with "____", and make the answer the word itself.

Respond with a single JSON object with these fields:
- "prompt": the question shown to the learner
- "answer": the expected answer
- "choices": three plausible but wrong alternatives (may be empty)
- "definition": a short definition of the word in {{.LearningLanguage}}
- "example": an example sentence using the word

Return only the JSON object.`

// Provider implements generation.QuestionProvider using the Gemini API.
type Provider struct {
	logger         *slog.Logger
	config         config.LLMConfig
	promptTemplate *template.Template
	client         *genai.Client

	// generate performs a single model call and returns the raw response
	// text. Swapped out in tests so the retry and parsing logic can run
	// without network access.
	generate func(ctx context.Context, prompt string) (string, error)
}

// Ensure Provider implements generation.QuestionProvider
var _ generation.QuestionProvider = (*Provider)(nil)

// NewProvider creates a Gemini-backed question provider.
func NewProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := template.New("question").Parse(questionPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	provider := &Provider{
		logger:         logger.With(slog.String("component", "gemini_provider")),
		config:         cfg,
		promptTemplate: promptTemplate,
		client:         client,
	}
	provider.generate = provider.callModel

	return provider, nil
}

// GetOrGenerateQuestion implements generation.QuestionProvider.
func (p *Provider) GetOrGenerateQuestion(
	ctx context.Context,
	word string,
	learningLanguage string,
	nativeLanguage string,
	questionType generation.QuestionType,
) (*generation.Question, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, generation.ErrEmptyWord
	}

	if questionType == "" {
		questionType = generation.DefaultQuestionType
	}

	prompt, err := p.createPrompt(word, learningLanguage, nativeLanguage, questionType)
	if err != nil {
		return nil, err
	}

	schema, err := p.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	question := &generation.Question{
		Word:         word,
		QuestionType: questionType,
		Prompt:       schema.Prompt,
		Answer:       schema.Answer,
		Choices:      schema.Choices,
		Definition:   schema.Definition,
		Example:      schema.Example,
	}

	if !question.Valid() {
		return nil, fmt.Errorf("%w: question missing prompt or answer", generation.ErrInvalidResponse)
	}

	return question, nil
}

// createPrompt renders the prompt template for a word.
func (p *Provider) createPrompt(
	word, learningLanguage, nativeLanguage string,
	questionType generation.QuestionType,
) (string, error) {
	data := promptData{
		Word:             word,
		LearningLanguage: learningLanguage,
		NativeLanguage:   nativeLanguage,
		QuestionType:     string(questionType),
	}

	var buf bytes.Buffer
	if err := p.promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// callModel performs a single Gemini API call and returns the raw
// response text. Permanent failures come back wrapping
// generation.ErrContentBlocked or generation.ErrInvalidResponse; anything
// else is treated as transient by the retry loop.
func (p *Provider) callModel(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.config.ModelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	return text, nil
}

// callWithRetry calls the model with exponential backoff and jitter,
// retrying only transient failures, and parses the JSON response.
func (p *Provider) callWithRetry(ctx context.Context, prompt string) (*questionSchema, error) {
	maxRetries := p.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseDelaySeconds := p.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		p.logger.DebugContext(ctx, "calling Gemini API",
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		text, err := p.generate(ctx, prompt)
		if err == nil {
			var schema questionSchema
			if jsonErr := json.Unmarshal([]byte(text), &schema); jsonErr != nil {
				return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
					generation.ErrInvalidResponse, jsonErr)
			}
			return &schema, nil
		}

		p.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"error", err)

		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return nil, err
		}

		if attempt >= maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}
