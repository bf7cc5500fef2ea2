package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quillhq/quill/internal/api/dto"
	"github.com/quillhq/quill/internal/api/middleware"
	"github.com/quillhq/quill/internal/database/models"
	"github.com/quillhq/quill/internal/notes"
)

type NoteHandler struct {
	notes *notes.Service
}

func NewNoteHandler(noteService *notes.Service) *NoteHandler {
	return &NoteHandler{notes: noteService}
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	TenantID  string `json:"tenant_id"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func noteToResponse(note *models.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		TenantID:  note.TenantID.String(),
		UserID:    note.UserID.String(),
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

// List handles GET /notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	result, err := h.notes.List(r.Context(), tenantID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list notes"})
		return
	}

	response := make([]NoteResponse, len(result))
	for i := range result {
		response[i] = noteToResponse(&result[i])
	}

	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	userID := middleware.GetUserID(r.Context())

	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	note, err := h.notes.Create(r.Context(), tenantID, userID, notes.CreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, notes.ErrQuotaExceeded):
			writeJSON(w, http.StatusForbidden, dto.ErrorResponse{Error: "Note limit reached for free plan"})
		case errors.Is(err, notes.ErrEmptyTitle), errors.Is(err, notes.ErrEmptyContent):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create note"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, noteToResponse(note))
}

// Get handles GET /notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable ID can never match a note; treat it like any other miss.
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
		return
	}

	note, err := h.notes.Get(r.Context(), tenantID, noteID)
	if err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get note"})
		return
	}

	writeJSON(w, http.StatusOK, noteToResponse(note))
}

// Update handles PUT /notes/{id}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
		return
	}

	var req dto.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	note, err := h.notes.Update(r.Context(), tenantID, noteID, notes.UpdateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, notes.ErrNoteNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
		case errors.Is(err, notes.ErrEmptyTitle), errors.Is(err, notes.ErrEmptyContent):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update note"})
		}
		return
	}

	writeJSON(w, http.StatusOK, noteToResponse(note))
}

// Delete handles DELETE /notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
		return
	}

	if err := h.notes.Delete(r.Context(), tenantID, noteID); err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Note not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete note"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
