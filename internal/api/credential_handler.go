package api

import (
	"errors"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type SaveCredentialRequest struct {
	APIKey string `json:"api_key"`
}

func (r *SaveCredentialRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("api_key is required")
	}
	return nil
}

// CredentialStatusResponse reports only whether a key is present. The key
// itself is never echoed back.
type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// PUT /credential
func (h *Handler) saveCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveCredentialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.creds.SaveAPIKey(ctx, req.APIKey); err != nil {
		h.logger.Error("failed to save credential", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save credential")
		return
	}

	respondJSON(w, http.StatusOK, CredentialStatusResponse{Configured: true})
}

// GET /credential
func (h *Handler) credentialStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, err := h.creds.APIKey(ctx)
	if err != nil {
		h.logger.Error("failed to load credential", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load credential")
		return
	}

	respondJSON(w, http.StatusOK, CredentialStatusResponse{Configured: key != ""})
}

// DELETE /credential
func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.creds.DeleteAPIKey(ctx); err != nil {
		h.logger.Error("failed to delete credential", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete credential")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
