package service

import (
	"github.com/adontsov/go-note-keeper/internal/config"
	"github.com/adontsov/go-note-keeper/internal/logger"
	"github.com/adontsov/go-note-keeper/internal/store"
	"github.com/adontsov/go-note-keeper/internal/validators"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(repositories store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	requestValidator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, requestValidator, cfg.App, logger),
		NoteService: NewNoteService(repositories.NoteRepository, requestValidator, logger),
	}
}
