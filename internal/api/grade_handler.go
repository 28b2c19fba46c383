package api

import (
	"net/http"

	"github.com/quizforge/backend/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type GradeResponse struct {
	TotalCorrect   int             `json:"total_correct"`
	TotalQuestions int             `json:"total_questions"`
	Percent        int             `json:"percent"`
	PerQuestion    map[string]bool `json:"per_question"`
}

func toGradeResponse(result *quiz.Result) GradeResponse {
	return GradeResponse{
		TotalCorrect:   result.TotalCorrect,
		TotalQuestions: result.TotalQuestions,
		Percent:        result.Percent(),
		PerQuestion:    result.PerQuestion,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /grade
//
// Grades every question in the set against the current answers. Questions
// without an answer count as incorrect. Grading an empty set yields zero
// totals and 0%.
func (h *Handler) gradeAnswers(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Grade()
	respondJSON(w, http.StatusOK, toGradeResponse(result))
}
