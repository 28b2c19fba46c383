package api

import (
	"errors"
	"net/http"

	"github.com/quizforge/backend/internal/domain/quiz"
	"github.com/quizforge/backend/internal/plan"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateRequest struct {
	FillBlank int `json:"fill_blank"`
	Choice    int `json:"multiple_choice"`
	TrueFalse int `json:"true_false"`
}

func (r *GenerateRequest) Validate() error {
	if r.FillBlank < 0 || r.Choice < 0 || r.TrueFalse < 0 {
		return errors.New("question counts must not be negative")
	}
	if r.FillBlank+r.Choice+r.TrueFalse > 100 {
		return errors.New("at most 100 questions per run")
	}
	return nil
}

type QuestionSetResponse struct {
	FillBlank []QuestionResponse `json:"fill_blank"`
	Choice    []QuestionResponse `json:"multiple_choice"`
	TrueFalse []QuestionResponse `json:"true_false"`
}

type QuestionResponse struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer"`
}

func toSetResponse(set *quiz.Set) QuestionSetResponse {
	return QuestionSetResponse{
		FillBlank: toQuestionResponses(set.FillBlank),
		Choice:    toQuestionResponses(set.Choice),
		TrueFalse: toQuestionResponses(set.TrueFalse),
	}
}

func toQuestionResponses(qs []quiz.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(qs))
	for i, q := range qs {
		out[i] = QuestionResponse{
			ID:      q.ID,
			Kind:    string(q.Kind),
			Prompt:  q.Prompt,
			Options: q.Options,
			Answer:  q.Answer,
		}
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /generate
func (h *Handler) generateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	set, err := h.svc.Generate(ctx, plan.Counts{
		FillBlank: req.FillBlank,
		Choice:    req.Choice,
		TrueFalse: req.TrueFalse,
	})
	if h.handlePipelineError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, toSetResponse(set))
}

// GET /questions
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Snapshot()
	respondJSON(w, http.StatusOK, toSetResponse(snap.Questions))
}
