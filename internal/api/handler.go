// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizforge/backend/internal/extract"
	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/service"
	"github.com/quizforge/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	svc    *service.QuizService
	creds  *store.CredentialStore
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.QuizService, creds *store.CredentialStore, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		creds:  creds,
		logger: logger,
	}
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handlePipelineError maps pipeline errors to HTTP responses. Returns true
// if an error was handled (caller should return). User-facing messages
// name the failure category only, never credentials or file paths.
func (h *Handler) handlePipelineError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respondError(w, http.StatusUnsupportedMediaType, "unsupported document format")
	case errors.Is(err, extract.ErrExtractionTimeout):
		respondError(w, http.StatusRequestTimeout, "document extraction timed out")
	case errors.Is(err, extract.ErrExtractionFailed):
		respondError(w, http.StatusUnprocessableEntity, "document could not be read")
	case errors.Is(err, generator.ErrNoCredential):
		respondError(w, http.StatusPreconditionFailed, "no API credential configured")
	case errors.Is(err, service.ErrNoDocument):
		respondError(w, http.StatusBadRequest, "no document uploaded")
	case errors.Is(err, service.ErrRegenerationInFlight):
		respondError(w, http.StatusConflict, "regeneration already in progress")
	case errors.Is(err, service.ErrRegenerationFailed):
		respondError(w, http.StatusBadGateway, "regeneration failed")
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "question not found")
	case errors.Is(err, store.ErrStaleEpoch):
		respondError(w, http.StatusConflict, "session was reset during the operation")
	default:
		var callErr *generator.CallError
		if errors.As(err, &callErr) {
			h.logger.Error("generation call failed", "error", err)
			respondError(w, http.StatusBadGateway, "generation call failed")
			return true
		}
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
