package store

import (
	"context"

	"github.com/adontsov/go-note-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// NoteRepository is the data-access contract for notes.
//
// Find-then-update and find-then-delete pairs issued by the service layer
// are not atomic across the two calls; concurrent writers to the same note
// follow last-write-wins semantics.
type NoteRepository interface {
	FindNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	FindNoteByID(ctx context.Context, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) (models.Note, error)
}
