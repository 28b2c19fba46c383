package api

import (
	"io"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

// maxUploadBytes bounds the multipart body a single upload may carry.
const maxUploadBytes = 32 << 20 // 32 MB

type UploadDocumentResponse struct {
	Chunks    int  `json:"chunks"`
	Pages     int  `json:"pages,omitempty"`
	TextLen   int  `json:"text_len"`
	Truncated bool `json:"truncated"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /documents
//
// Accepts a multipart form with a single "file" field. Uploading a new
// document resets all quiz state for the session.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	// Page progress surfaces through the request log; a client that needs
	// live feedback can poll or switch to a streaming transport later.
	progress := func(page, total int) {
		h.logger.Info("extracting page", "page", page, "total", total)
	}

	info, err := h.svc.UploadDocument(ctx, header.Filename, data, progress)
	if h.handlePipelineError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, UploadDocumentResponse{
		Chunks:    info.Chunks,
		Pages:     info.Pages,
		TextLen:   info.TextLen,
		Truncated: info.Truncated,
	})
}

// POST /reset
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset()
	w.WriteHeader(http.StatusNoContent)
}
