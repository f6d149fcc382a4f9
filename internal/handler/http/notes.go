package http

import (
	"encoding/json"
	"net/http"

	"github.com/adontsov/go-note-keeper/internal/logger"
	"github.com/adontsov/go-note-keeper/internal/utils"
	"github.com/adontsov/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeErrorStatus(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Str("owner", userID).Msg("listing notes failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeErrorStatus(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
		return
	}

	var request models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorStatus(w, ErrInvalidJSONBody, http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.AddNote(ctx, userID, request)
	if err != nil {
		log.Err(err).Str("owner", userID).Msg("note creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeErrorStatus(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "noteID")

	var request models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorStatus(w, ErrInvalidJSONBody, http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.UpdateNote(ctx, userID, noteID, request)
	if err != nil {
		log.Err(err).Str("note", noteID).Msg("note update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeErrorStatus(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "noteID")

	deletedNote, err := h.services.NoteService.DeleteNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("note", noteID).Msg("note deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeleteNoteResponse{
		Success:     true,
		DeletedNote: deletedNote,
	}, http.StatusOK)
}
