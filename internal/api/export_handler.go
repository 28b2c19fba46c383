package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

// ExportData is the read-only snapshot external formatters consume to
// produce TXT/MD/PDF/DOCX files. The pipeline itself defines no file
// format beyond this JSON shape.
type ExportData struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Questions  QuestionSetResponse `json:"questions"`
	Grade      *GradeResponse      `json:"grade,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /export
func (h *Handler) exportSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Snapshot()

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Questions:  toSetResponse(snap.Questions),
	}
	if snap.Result != nil {
		grade := toGradeResponse(snap.Result)
		exportData.Grade = &grade
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=quizforge-export.json")
	json.NewEncoder(w).Encode(exportData)
}
