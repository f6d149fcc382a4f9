package store

import (
	"github.com/adontsov/go-note-keeper/internal/logger"
)

// Repositories bundles all data-access implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewRepositories constructs all repositories on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
