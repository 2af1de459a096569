package handlers

import (
	"FoodTracker/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler - заметки к продуктам.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

// Create - POST /food/{id}/notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	n, err := h.NoteService.Create(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// List - GET /food/{id}/notes, новые первыми
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// Delete - DELETE /notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.NoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	writeMessage(w, "Note deleted successfully")
}
