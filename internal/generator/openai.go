package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quizforge/backend/internal/domain/quiz"
)

// ErrNoCredential is returned when no API key has been supplied. The
// caller should prompt for one before retrying generation.
var ErrNoCredential = errors.New("no API credential configured")

// KeyFunc supplies the current API credential. It is read on every call so
// a key saved mid-session takes effect without a restart.
type KeyFunc func(ctx context.Context) (string, error)

// OpenAIGenerator produces questions through an OpenAI-compatible
// chat-completions endpoint.
type OpenAIGenerator struct {
	baseURL string // e.g. "https://api.openai.com/v1"
	model   string
	key     KeyFunc
}

// Compile-time check: *OpenAIGenerator satisfies the Generator interface.
var _ Generator = (*OpenAIGenerator)(nil)

// NewOpenAI creates a generator for the given endpoint and model. key must
// not be nil.
func NewOpenAI(baseURL, model string, key KeyFunc) *OpenAIGenerator {
	return &OpenAIGenerator{
		baseURL: baseURL,
		model:   model,
		key:     key,
	}
}

// questionSeparator delimits individual questions in a batch response.
const questionSeparator = "---"

// Generate issues one chat-completion request per requested kind and
// splits each response into raw per-question strings. A kind with a zero
// count issues no request.
func (g *OpenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	var resp GenerateResponse

	kinds := []struct {
		kind  quiz.Kind
		count int
		out   *[]string
	}{
		{quiz.KindFillBlank, req.Counts.FillBlank, &resp.FillBlank},
		{quiz.KindChoice, req.Counts.Choice, &resp.Choice},
		{quiz.KindTrueFalse, req.Counts.TrueFalse, &resp.TrueFalse},
	}

	for _, k := range kinds {
		if k.count == 0 {
			continue
		}
		raw, err := g.complete(ctx, buildGeneratePrompt(k.kind, k.count, req.Text))
		if err != nil {
			return GenerateResponse{}, err
		}
		*k.out = splitQuestions(raw)
	}

	return resp, nil
}

// Regenerate requests a single replacement question. The original prompt
// is included so the model produces a different question over the same
// grounding text.
func (g *OpenAIGenerator) Regenerate(ctx context.Context, req RegenerateRequest) (string, error) {
	return g.complete(ctx, buildRegeneratePrompt(req))
}

// complete runs one chat-completion round trip and returns the raw text.
func (g *OpenAIGenerator) complete(ctx context.Context, prompt string) (string, error) {
	apiKey, err := g.key(ctx)
	if err != nil {
		return "", &CallError{Reason: "loading credential", Wrapped: err}
	}
	if apiKey == "" {
		return "", ErrNoCredential
	}

	cfg := openai.DefaultConfig(apiKey)
	if g.baseURL != "" {
		cfg.BaseURL = g.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &CallError{Reason: "chat completion request", Wrapped: err}
	}
	if len(resp.Choices) == 0 {
		return "", &CallError{Reason: "model returned no choices"}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &CallError{Reason: "model returned empty content"}
	}
	return content, nil
}

// splitQuestions cuts a batch response at separator lines and drops empty
// pieces.
func splitQuestions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, questionSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ============================================================================
// Prompt builders. Short and directive, ending with the exact output
// format so it is the last thing the model sees.
// ============================================================================

func buildGeneratePrompt(kind quiz.Kind, count int, text string) string {
	var instructions string
	switch kind {
	case quiz.KindFillBlank:
		instructions = `Write fill-in-the-blank questions. Each question is one sentence from the text with the key term replaced by "____".`
	case quiz.KindChoice:
		instructions = `Write multiple-choice questions. Each question has exactly four options labeled "A." through "D." on separate lines, with exactly one correct option.`
	case quiz.KindTrueFalse:
		instructions = `Write true/false statements about the text. The answer is exactly "True" or "False".`
	}

	return fmt.Sprintf(`You are generating study questions from a document excerpt.

%s

RULES:
- Write exactly %d questions, in English.
- Base every question only on the TEXT below.
- End every question with a line "Answer: <the correct answer>".
- Separate questions with a line containing only "%s".
- No numbering, no commentary, no markdown.

TEXT:
%s`, instructions, count, questionSeparator, text)
}

func buildRegeneratePrompt(req RegenerateRequest) string {
	var format string
	switch quiz.Kind(req.Kind) {
	case quiz.KindChoice:
		format = `The question has exactly four options labeled "A." through "D." on separate lines.`
	case quiz.KindTrueFalse:
		format = `The question is a true/false statement and the answer is exactly "True" or "False".`
	default:
		format = `The question is a fill-in-the-blank sentence with the key term replaced by "____".`
	}

	return fmt.Sprintf(`You are replacing one study question with a fresh one on the same material.

%s

RULES:
- Write exactly one new question, different from the previous one.
- Base it only on the TEXT below.
- End with a line "Answer: <the correct answer>".
- No commentary, no markdown.

PREVIOUS QUESTION:
%s

TEXT:
%s`, format, req.OriginalPrompt, req.Context)
}
