package api

import (
	"errors"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.Answer == "" {
		return errors.New("answer is required")
	}
	return nil
}

type SubmitAnswerResponse struct {
	Status string `json:"status"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// PUT /questions/{questionID}/answer
//
// Records the user's answer. If the set was already graded, the stored
// result is invalidated until the next grading pass.
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if h.handlePipelineError(w, h.svc.SetAnswer(questionID, req.Answer)) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{Status: "recorded"})
}

// POST /questions/{questionID}/regenerate
//
// Replaces the question's content in place, preserving its identity and
// source context. On failure the original question is untouched.
func (h *Handler) regenerateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := r.PathValue("questionID")

	updated, err := h.svc.Regenerate(ctx, questionID)
	if h.handlePipelineError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, QuestionResponse{
		ID:      updated.ID,
		Kind:    string(updated.Kind),
		Prompt:  updated.Prompt,
		Options: updated.Options,
		Answer:  updated.Answer,
	})
}
