package service

import (
	"context"

	"github.com/adontsov/go-note-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	AddNote(ctx context.Context, userID string, request models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, userID string, noteID string, request models.UpdateNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, userID string, noteID string) (models.Note, error)
}
