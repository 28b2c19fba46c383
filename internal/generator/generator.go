package generator

import (
	"context"
	"fmt"

	"github.com/quizforge/backend/internal/plan"
)

// GenerateRequest asks for a batch of questions grounded in one text chunk.
type GenerateRequest struct {
	Text   string
	Counts plan.Counts
}

// GenerateResponse carries one raw question string per requested question,
// grouped by kind. Counts are best-effort: the model may under-deliver and
// callers must tolerate that.
type GenerateResponse struct {
	FillBlank []string
	Choice    []string
	TrueFalse []string
}

// RegenerateRequest asks for a single replacement question of the same
// kind, grounded in the original question's source chunk.
type RegenerateRequest struct {
	Kind           string
	OriginalPrompt string
	Context        string
}

// Generator produces raw question strings from a hosted model.
// Implementations call an LLM endpoint or return canned results (for tests
// and for running without a credential).
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Regenerate(ctx context.Context, req RegenerateRequest) (string, error)
}

// CallError is returned when the generation call itself fails so the
// caller can distinguish "model produced unusable text" from "endpoint was
// unreachable".
type CallError struct {
	Reason  string
	Wrapped error
}

func (e *CallError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation call failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation call failed: %s", e.Reason)
}

func (e *CallError) Unwrap() error {
	return e.Wrapped
}
