package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adontsov/go-note-keeper/internal/logger"
	"github.com/adontsov/go-note-keeper/internal/store"
	"github.com/adontsov/go-note-keeper/internal/utils"
	"github.com/adontsov/go-note-keeper/internal/validators"
	"github.com/adontsov/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService.
// Every operation is scoped to the calling user: a note that belongs to
// someone else is reported as ErrNotNoteOwner, never silently skipped.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListNotes returns every note owned by the given user.
// A user without notes gets an empty list, not an error.
func (n *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.FindNotesByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("owner", userID).Msg("notes search by owner failed")
		return nil, fmt.Errorf("notes search by owner failed: %w", err)
	}

	return notes, nil
}

// AddNote creates a new note owned by the given user.
//
// It validates the payload and substitutes models.DefaultNoteTag when no tag
// is supplied. The returned note carries the server-assigned NoteID and
// timestamps.
func (n *noteService) AddNote(ctx context.Context, userID string, request models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("owner", userID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	tag := strings.TrimSpace(request.Tag)
	if tag == "" {
		tag = models.DefaultNoteTag
	}

	note := models.Note{
		OwnerID:     userID,
		Title:       request.Title,
		Description: request.Description,
		Tag:         tag,
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("owner", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// UpdateNote applies a partial mutation to an owned note.
//
// Checks run in a fixed order: identifier format first, then existence, then
// ownership. A malformed ID never reaches storage, and a missing note is
// reported before ownership is considered. Fields absent from the request are
// left untouched; the owner is never alterable through this path.
func (n *noteService) UpdateNote(ctx context.Context, userID string, noteID string, request models.UpdateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(noteID) {
		log.Error().Str("note", noteID).Msg("malformed note id")
		return models.Note{}, ErrInvalidNoteID
	}

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("note", noteID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	if _, err := n.findOwnedNote(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	update := request.Update()
	if update.IsEmpty() {
		// nothing to change: return the current state untouched
		return n.noteRepository.FindNoteByID(ctx, noteID)
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, noteID, update)
	if err != nil {
		log.Err(err).Str("note", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes an owned note and returns its last state.
// The same identifier-existence-ownership ordering as UpdateNote applies.
func (n *noteService) DeleteNote(ctx context.Context, userID string, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(noteID) {
		log.Error().Str("note", noteID).Msg("malformed note id")
		return models.Note{}, ErrInvalidNoteID
	}

	if _, err := n.findOwnedNote(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	deletedNote, err := n.noteRepository.DeleteNote(ctx, noteID)
	if err != nil {
		log.Err(err).Str("note", noteID).Msg("note deletion ended with error")
		return models.Note{}, fmt.Errorf("note deletion ended with error: %w", err)
	}

	return deletedNote, nil
}

// findOwnedNote loads a note and checks that it belongs to userID.
// Existence is checked before ownership, so a probe for someone else's
// deleted note cannot distinguish "gone" from "never yours".
func (n *noteService) findOwnedNote(ctx context.Context, userID string, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	foundNote, err := n.noteRepository.FindNoteByID(ctx, noteID)
	if err != nil {
		log.Err(err).Str("note", noteID).Msg("note search by id failed")
		return models.Note{}, fmt.Errorf("note search by id failed: %w", err)
	}

	if foundNote.OwnerID != userID {
		log.Error().Str("note", noteID).Str("owner", foundNote.OwnerID).Str("caller", userID).Msg("note belongs to another user")
		return models.Note{}, ErrNotNoteOwner
	}

	return foundNote, nil
}
