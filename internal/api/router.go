// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches every handler to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Document pipeline
	mux.HandleFunc("POST /documents", h.uploadDocument)
	mux.HandleFunc("POST /generate", h.generateQuestions)
	mux.HandleFunc("POST /reset", h.resetSession)

	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("PUT /questions/{questionID}/answer", h.submitAnswer)
	mux.HandleFunc("POST /questions/{questionID}/regenerate", h.regenerateQuestion)

	// Grading
	mux.HandleFunc("POST /grade", h.gradeAnswers)

	// Export
	mux.HandleFunc("GET /export", h.exportSnapshot)

	// Credential
	mux.HandleFunc("PUT /credential", h.saveCredential)
	mux.HandleFunc("GET /credential", h.credentialStatus)
	mux.HandleFunc("DELETE /credential", h.deleteCredential)
}
