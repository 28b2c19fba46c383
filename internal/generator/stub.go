package generator

import (
	"context"
	"fmt"
	"strings"
)

// Stub produces deterministic canned questions derived from the chunk
// text. It backs local development without a credential and keeps tests
// independent of any network endpoint.
type Stub struct {
	// FailGenerate and FailRegenerate make the next matching call return
	// a CallError, for exercising failure paths.
	FailGenerate   bool
	FailRegenerate bool
}

var _ Generator = (*Stub)(nil)

func (s *Stub) Generate(_ context.Context, req GenerateRequest) (GenerateResponse, error) {
	if s.FailGenerate {
		return GenerateResponse{}, &CallError{Reason: "stub configured to fail"}
	}

	topic := firstWords(req.Text, 4)
	var resp GenerateResponse

	for i := 0; i < req.Counts.FillBlank; i++ {
		resp.FillBlank = append(resp.FillBlank,
			fmt.Sprintf("The passage about %s mentions ____ (item %d).\nAnswer: term%d", topic, i+1, i+1))
	}
	for i := 0; i < req.Counts.Choice; i++ {
		resp.Choice = append(resp.Choice,
			fmt.Sprintf("Which statement about %s is correct (item %d)?\nA. first\nB. second\nC. third\nD. fourth\nAnswer: B. second", topic, i+1))
	}
	for i := 0; i < req.Counts.TrueFalse; i++ {
		resp.TrueFalse = append(resp.TrueFalse,
			fmt.Sprintf("The passage about %s covers item %d.\nAnswer: True", topic, i+1))
	}

	return resp, nil
}

func (s *Stub) Regenerate(_ context.Context, req RegenerateRequest) (string, error) {
	if s.FailRegenerate {
		return "", &CallError{Reason: "stub configured to fail"}
	}

	topic := firstWords(req.Context, 4)
	switch req.Kind {
	case "multiple_choice":
		return fmt.Sprintf("A fresh question about %s?\nA. one\nB. two\nC. three\nD. four\nAnswer: C. three", topic), nil
	case "true_false":
		return fmt.Sprintf("A fresh statement about %s.\nAnswer: False", topic), nil
	default:
		return fmt.Sprintf("A fresh blank about %s: ____.\nAnswer: fresh", topic), nil
	}
}

func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	if len(words) == 0 {
		return "the document"
	}
	return strings.Join(words, " ")
}
